package engine

import (
	"errors"
	"strings"
	"testing"
)

var rolledChoice = Choice{
	ID: "gamble", Text: "Go for it",
	Effects:       Effects{StatHappiness: 5, StatHealth: -3},
	SuccessChance: 60, SuccessText: "It worked", FailureText: "It backfired",
}

func TestResolveChoiceSuccessScalesPositives(t *testing.T) {
	ev := Event{Kind: KindClassic, ID: "e", Title: "E", Choices: []Choice{rolledChoice}}
	out := ResolveChoice(ev, rolledChoice, NewScriptedRand(0.5))
	if !out.Rolled || !out.Succeeded {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Effects[StatHappiness] != 7 || out.Effects[StatHealth] != -3 {
		t.Fatalf("effects = %v", out.Effects)
	}
	if !strings.Contains(out.Narration, "It worked") {
		t.Fatalf("narration = %q", out.Narration)
	}
	if rolledChoice.Effects[StatHappiness] != 5 {
		t.Fatalf("template effects mutated")
	}
}

func TestResolveChoiceFailurePenalty(t *testing.T) {
	ch := rolledChoice
	ch.SuccessChance = 40
	ev := Event{Kind: KindEnhanced, ID: "e", Title: "E", Choices: []Choice{ch}}
	out := ResolveChoice(ev, ch, NewScriptedRand(0.5))
	if out.Succeeded {
		t.Fatalf("expected failure")
	}
	if out.Effects[StatHappiness] != -5 || out.Effects[StatHealth] != -3 {
		t.Fatalf("effects = %v", out.Effects)
	}
	if !strings.Contains(out.Narration, "It backfired") {
		t.Fatalf("narration = %q", out.Narration)
	}

	money := Choice{ID: "m", Text: "Bet", Effects: Effects{StatMoney: 100}, SuccessChance: 1}
	out = ResolveChoice(ev, money, NewScriptedRand(0.5))
	if d, ok := out.Effects[StatHappiness]; !ok || d != -10 {
		t.Fatalf("failure should create a happiness delta, got %v", out.Effects)
	}
}

func TestMajorEventsNeverRoll(t *testing.T) {
	ev := Event{Kind: KindMajor, ID: "m", Title: "M", Choices: []Choice{rolledChoice}}
	out := ResolveChoice(ev, rolledChoice, NewScriptedRand(0.99))
	if out.Rolled || out.Effects[StatHappiness] != 5 {
		t.Fatalf("major event rolled: %+v", out)
	}
}

func TestResolveAppliesAndLogs(t *testing.T) {
	c := adult()
	ev := Event{Kind: KindMajor, ID: "m", Title: "Big Day", Choices: []Choice{
		{ID: "yes", Text: "Celebrate", Effects: Effects{StatHappiness: 50, StatMoney: -5000}},
		{ID: "meh", Text: "Stay in", Effects: Effects{StatHealth: 1}},
	}}
	next, _, err := Resolve(c, ev, "yes", NewScriptedRand())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if next.Happiness != 100 || next.Money != 0 {
		t.Fatalf("happiness=%d money=%d", next.Happiness, next.Money)
	}
	last := next.LifeEvents[len(next.LifeEvents)-1]
	if last.Type != LifePositive || !strings.HasPrefix(last.Event, "Big Day: Celebrate") {
		t.Fatalf("log = %+v", last)
	}
	next, _, _ = Resolve(c, ev, "meh", NewScriptedRand())
	if last := next.LifeEvents[len(next.LifeEvents)-1]; last.Type != LifeNeutral {
		t.Fatalf("no happiness delta should log neutral, got %s", last.Type)
	}
}

func TestResolveRejectsGatedChoice(t *testing.T) {
	c := adult()
	ev := Event{Kind: KindClassic, ID: "c", Title: "C", Choices: []Choice{
		{ID: "smart", Text: "Solve it", Effects: Effects{StatMoney: 100}, Requirements: map[Stat]int{StatSmartness: 90}},
	}}
	if got := ev.AvailableChoices(c); len(got) != 0 {
		t.Fatalf("gated choice offered: %+v", got)
	}
	next, _, err := Resolve(c, ev, "smart", NewScriptedRand())
	if !errors.Is(err, ErrChoiceUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if next.Money != c.Money || len(next.LifeEvents) != len(c.LifeEvents) {
		t.Fatalf("rejected choice mutated the character")
	}
	if _, _, err := Resolve(c, ev, "missing", NewScriptedRand()); !errors.Is(err, ErrUnknownContent) {
		t.Fatalf("err = %v", err)
	}
}

func TestEnhancedChainsQueuePendingEvents(t *testing.T) {
	c := adult()
	ev, ok := EventByRef(KindEnhanced, "startup_idea")
	if !ok {
		t.Fatalf("startup_idea missing from catalog")
	}
	next, _, err := Resolve(c, ev, "drop", NewScriptedRand())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(next.PendingEvents) != 1 {
		t.Fatalf("pending events = %+v", next.PendingEvents)
	}
	p := next.PendingEvents[0]
	if p.EventID != "startup_funding" || p.TriggerAge != c.Age+1 {
		t.Fatalf("pending = %+v", p)
	}

	classic := Event{Kind: KindClassic, ID: "x", Title: "X", TriggerEvents: []string{"y"}, Choices: []Choice{{ID: "a", Text: "A"}}}
	next, _, _ = Resolve(c, classic, "a", NewScriptedRand())
	if len(next.PendingEvents) != 0 {
		t.Fatalf("classic events do not chain")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, ev := range Catalog() {
		if !ev.Kind.Validate() {
			t.Fatalf("%s has invalid kind %q", ev.ID, ev.Kind)
		}
		key := string(ev.Kind) + "/" + ev.ID
		if seen[key] {
			t.Fatalf("duplicate event %s", key)
		}
		seen[key] = true
		if len(ev.Choices) == 0 {
			t.Fatalf("%s has no choices", ev.ID)
		}
		for _, trig := range ev.TriggerEvents {
			if _, ok := EventByRef(KindEnhanced, trig); !ok {
				t.Fatalf("%s triggers unknown event %s", ev.ID, trig)
			}
		}
	}
	if got, _ := EventByRef(KindClassic, "playground_bully"); got.Title != "Playground Bully" {
		t.Fatalf("slugged classic id not found")
	}
}

func TestLotteryLossNeverPays(t *testing.T) {
	ev, ok := EventByRef(KindClassic, "lottery_ticket")
	if !ok {
		t.Fatalf("lottery event missing")
	}
	buy, _ := ev.choice("buy")
	lost := ResolveChoice(ev, buy, NewScriptedRand(0.99))
	if lost.Succeeded || lost.Effects[StatMoney] >= 0 {
		t.Fatalf("losing ticket paid out: %+v", lost)
	}
	won := ResolveChoice(ev, buy, NewScriptedRand(0))
	if !won.Succeeded || won.Effects[StatMoney] != -20 || won.Effects[StatHappiness] != 4 {
		t.Fatalf("winning ticket effects = %v", won.Effects)
	}
}
