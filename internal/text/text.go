package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
)

var printer = message.NewPrinter(language.English)

// Money formats whole dollars with thousands separators, e.g. $1,250,000.
func Money(n int) string {
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// Number formats n with thousands separators.
func Number(n int) string { return printer.Sprintf("%d", n) }

func marker(t engine.LifeEventType) string {
	switch t {
	case engine.LifePositive:
		return "+"
	case engine.LifeNegative:
		return "-"
	}
	return "·"
}

// Overview is the compact character header shared by the biography and the TUI.
func Overview(c engine.Character) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n", c.Name))
	b.WriteString(fmt.Sprintf("%d years old • %s • born %d\n\n", c.Age, c.Gender, c.BirthYear))
	b.WriteString("| Stat | Value |\n|---|---|\n")
	for _, s := range []engine.Stat{engine.StatHealth, engine.StatHappiness, engine.StatSmartness, engine.StatAppearance, engine.StatFitness} {
		b.WriteString(fmt.Sprintf("| %s | %d |\n", s, c.StatValue(s)))
	}
	b.WriteString(fmt.Sprintf("| money | %s |\n", Money(c.Money)))
	b.WriteString(fmt.Sprintf("| net worth | %s |\n\n", Money(engine.NetWorth(c))))
	return b.String()
}

func situation(c engine.Character) string {
	var parts []string
	if career, ok := engine.CareerByID(c.Job); ok && c.Employed() {
		parts = append(parts, fmt.Sprintf("Works as a %s (level %d, %s/yr)", career.Name, c.CareerLevel, Money(c.Salary)))
	} else {
		parts = append(parts, "Unemployed")
	}
	if lvl, ok := engine.EducationByID(c.Education); ok {
		parts = append(parts, "Education: "+lvl.Name)
	}
	if c.Enrolled() {
		parts = append(parts, fmt.Sprintf("Studying %s, %d years left", c.CurrentEducation, c.EducationYearsLeft))
	}
	if h, ok := engine.HousingByID(c.Housing); ok {
		parts = append(parts, "Lives in: "+h.Name)
	}
	parts = append(parts, fmt.Sprintf("Social class: %s", c.SocialStatus.SocialClass))
	if c.MarriageStatus.IsMarried {
		parts = append(parts, fmt.Sprintf("Married since %d", c.MarriageStatus.MarriageYear))
	}
	if len(c.Children) > 0 {
		parts = append(parts, fmt.Sprintf("%d children", len(c.Children)))
	}
	if c.IsIncarcerated && c.CurrentSentence != nil {
		parts = append(parts, fmt.Sprintf("In %s security prison, %d years left", c.CurrentSentence.PrisonLevel, c.CurrentSentence.RemainingSentenceYears))
	}
	return "- " + strings.Join(parts, "\n- ") + "\n\n"
}

// Biography renders the whole life as markdown, newest events last.
func Biography(c engine.Character) string {
	var b strings.Builder
	b.WriteString(Overview(c))
	b.WriteString("## Situation\n")
	b.WriteString(situation(c))
	if len(c.PersonalityTraits) > 0 {
		traits := make([]string, len(c.PersonalityTraits))
		for i, t := range c.PersonalityTraits {
			traits[i] = string(t)
		}
		b.WriteString("**Traits:** " + strings.Join(traits, ", ") + "\n\n")
	}
	if len(c.Achievements) > 0 {
		b.WriteString("## Achievements\n")
		for _, id := range c.Achievements {
			if a, ok := engine.AchievementByID(id); ok {
				b.WriteString(fmt.Sprintf("- **%s** %s\n", a.Title, a.Description))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("## Life\n")
	age := -1
	for _, ev := range c.LifeEvents {
		if ev.Age != age {
			age = ev.Age
			b.WriteString(fmt.Sprintf("\n**Age %d**\n", age))
		}
		b.WriteString(fmt.Sprintf("- %s %s\n", marker(ev.Type), ev.Event))
	}
	return b.String()
}

// Recent renders the last n life events.
func Recent(c engine.Character, n int) string {
	events := c.LifeEvents
	if len(events) > n {
		events = events[len(events)-n:]
	}
	var b strings.Builder
	for _, ev := range events {
		b.WriteString(fmt.Sprintf("- (%d) %s %s\n", ev.Age, marker(ev.Type), ev.Event))
	}
	return b.String()
}

// EventCard renders a pending event with its numbered choices.
func EventCard(ev engine.Event, choices []engine.Choice) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("## %s\n", ev.Title))
	if ev.Description != "" {
		b.WriteString(ev.Description + "\n")
	}
	b.WriteString("\n")
	for i, ch := range choices {
		line := fmt.Sprintf("%d. %s", i+1, ch.Text)
		if ch.SuccessChance > 0 && ev.Kind.Capabilities().SuccessRolls {
			line += fmt.Sprintf(" *(%d%% chance)*", ch.SuccessChance)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// OutcomeLine summarizes a resolved choice.
func OutcomeLine(out engine.Outcome) string {
	var deltas []string
	for _, s := range engine.AllStats {
		d, ok := out.Effects[s]
		if !ok || d == 0 {
			continue
		}
		if s == engine.StatMoney {
			deltas = append(deltas, fmt.Sprintf("money %+d", d))
			continue
		}
		deltas = append(deltas, fmt.Sprintf("%s %+d", s, d))
	}
	if len(deltas) == 0 {
		return out.Narration
	}
	return fmt.Sprintf("%s (%s)", out.Narration, strings.Join(deltas, ", "))
}
