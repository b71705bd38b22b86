package engine

import (
	"fmt"
	"math"
	"strings"
)

// Outcome is the computed result of one choice before it is applied.
type Outcome struct {
	EventID   string
	ChoiceID  string
	Effects   Effects
	Narration string
	Rolled    bool
	Succeeded bool
}

// ResolveChoice computes a choice's effects and narration. It does not touch the character.
func ResolveChoice(ev Event, ch Choice, r Rand) Outcome {
	out := Outcome{EventID: ev.ID, ChoiceID: ch.ID, Effects: cloneEffects(ch.Effects), Narration: ch.Text}
	if out.Effects == nil {
		out.Effects = Effects{}
	}
	if ch.SuccessChance <= 0 || !ev.Kind.Capabilities().SuccessRolls {
		return out
	}
	out.Rolled = true
	out.Succeeded = percent(r, float64(ch.SuccessChance))
	if out.Succeeded {
		for stat, v := range out.Effects {
			if v > 0 {
				out.Effects[stat] = int(math.Floor(float64(v) * 1.5))
			}
		}
		out.Narration = joinNarration(ch.Text, ch.SuccessText)
		return out
	}
	out.Effects[StatHappiness] -= 10
	out.Narration = joinNarration(ch.Text, ch.FailureText)
	return out
}

func joinNarration(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ". ")
}

// ApplyOutcome adds the effects to a copy of c, logs one entry and queues chained events.
func ApplyOutcome(c Character, ev Event, out Outcome) Character {
	next := c.Clone()
	applyEffects(&next, out.Effects)
	next.logEvent(fmt.Sprintf("%s: %s", ev.Title, out.Narration), happinessType(out.Effects))
	if ev.Kind.Capabilities().Chains {
		for _, id := range ev.TriggerEvents {
			next.PendingEvents = append(next.PendingEvents, PendingEventRef{
				ID:         fmt.Sprintf("pending-%d", len(next.PendingEvents)+1),
				EventID:    id,
				TriggerAge: next.Age + 1,
			})
		}
	}
	return next
}

// Resolve is the single entry point for answering a pending event of any kind.
func Resolve(c Character, ev Event, choiceID string, r Rand) (Character, Outcome, error) {
	ch, ok := ev.choice(choiceID)
	if !ok {
		return c, Outcome{}, declined(CodeUnknownContent, "event %s has no choice %q", ev.ID, choiceID)
	}
	if ev.Kind.Capabilities().GatedChoices && !ch.Available(c) {
		return c, Outcome{}, declined(CodeChoiceUnavailable, "choice %q requirements not met", choiceID)
	}
	out := ResolveChoice(ev, ch, r)
	return ApplyOutcome(c, ev, out), out, nil
}

func applyEffects(c *Character, eff Effects) {
	for stat, delta := range eff {
		c.adjust(stat, delta)
	}
	c.DatingProfile.Attractiveness = Attractiveness(*c)
}

func happinessType(eff Effects) LifeEventType {
	d, ok := eff[StatHappiness]
	switch {
	case !ok || d == 0:
		return LifeNeutral
	case d > 0:
		return LifePositive
	}
	return LifeNegative
}
