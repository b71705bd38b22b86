package text

import (
	"strings"
	"testing"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
)

func TestMoney(t *testing.T) {
	cases := map[int]string{
		0:       "$0",
		950:     "$950",
		1250000: "$1,250,000",
		-4200:   "-$4,200",
	}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestBiographyGroupsByAge(t *testing.T) {
	c := engine.NewCharacter(engine.NewScriptedRand(), "Ava Test", engine.GenderFemale, 2000)
	c.Age = 2
	c.LifeEvents = append(c.LifeEvents,
		engine.LifeEvent{ID: "life-2", Age: 2, Year: 2002, Event: "Learned to walk.", Type: engine.LifePositive},
		engine.LifeEvent{ID: "life-3", Age: 2, Year: 2002, Event: "Fell down the stairs.", Type: engine.LifeNegative},
	)
	c.Achievements = []string{"parent"}
	md := Biography(c)
	for _, want := range []string{"# Ava Test", "**Age 0**", "**Age 2**", "- + Learned to walk.", "- - Fell down the stairs.", "**Parent**", "Unemployed"} {
		if !strings.Contains(md, want) {
			t.Fatalf("biography missing %q:\n%s", want, md)
		}
	}
	if strings.Count(md, "**Age 2**") != 1 {
		t.Fatalf("age heading repeated")
	}
}

func TestEventCardNumbersChoices(t *testing.T) {
	ev := engine.Event{Kind: engine.KindClassic, Title: "Office Gossip", Description: "Your coworkers are whispering.", Choices: []engine.Choice{
		{ID: "a", Text: "Join in", SuccessChance: 60},
		{ID: "b", Text: "Walk away"},
	}}
	md := EventCard(ev, ev.Choices)
	if !strings.Contains(md, "1. Join in *(60% chance)*") || !strings.Contains(md, "2. Walk away") {
		t.Fatalf("card:\n%s", md)
	}
	ev.Kind = engine.KindMajor
	if strings.Contains(EventCard(ev, ev.Choices), "chance") {
		t.Fatalf("major events never roll, so no odds should show")
	}
}

func TestOutcomeLineOrdersDeltas(t *testing.T) {
	out := engine.Outcome{Narration: "Join in. It worked", Effects: engine.Effects{engine.StatMoney: 500, engine.StatHappiness: 7, engine.StatHealth: 0}}
	if got := OutcomeLine(out); got != "Join in. It worked (happiness +7, money +500)" {
		t.Fatalf("OutcomeLine = %q", got)
	}
}
