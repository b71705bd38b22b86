package engine

import (
	"fmt"
	"math"
)

const (
	ambientEventChance = 0.3
	randomEventChance  = 0.3
	relationshipDecay  = 0.1
	divorceChance      = 0.1
	experiencePerYear  = 10
)

// TickResult is the outcome of one AgeUp: the next character and at most one pending event.
type TickResult struct {
	Character Character
	Pending   *Event
}

type tick struct {
	c       *Character
	r       Rand
	pending *Event
}

type tickStep func(t *tick)

// tickSteps run in this exact order every year.
var tickSteps = []tickStep{
	stepAge,
	stepFinances,
	stepEducation,
	stepRevalueAssets,
	stepEconomicShocks,
	stepChildren,
	stepMarriage,
	stepSocialClass,
	stepRelationshipDecay,
	stepStatDrift,
	stepFamily,
	stepMajorEvent,
	stepAmbientEvent,
	stepRandomEvent,
	stepAchievements,
	stepExperience,
	stepSentence,
}

// AgeUp advances c by one year. The input is never modified.
func AgeUp(c Character, r Rand) TickResult {
	next := c.Clone()
	t := &tick{c: &next, r: r}
	for _, step := range tickSteps {
		step(t)
	}
	return TickResult{Character: next, Pending: t.pending}
}

func (t *tick) markPending(ev Event) {
	if t.pending != nil {
		return
	}
	t.pending = &ev
	t.c.EventHistory = append(t.c.EventHistory, EventRecord{EventID: ev.ID, Kind: ev.Kind, Age: t.c.Age})
}

func stepAge(t *tick) { t.c.Age++ }

func stepFinances(t *tick) {
	t.c.Money = floorZero(t.c.Money + NetMonthly(*t.c))
}

func stepEducation(t *tick) {
	c := t.c
	if !c.Enrolled() {
		return
	}
	c.EducationYearsLeft--
	if c.EducationYearsLeft > 0 {
		return
	}
	name := c.CurrentEducation
	if lvl, ok := EducationByID(c.CurrentEducation); ok {
		name = lvl.Name
	}
	c.Education = c.CurrentEducation
	c.CurrentEducation = ""
	c.EducationYearsLeft = 0
	c.logEvent(fmt.Sprintf("Graduated from %s!", name), LifePositive)
}

func revalue(value int, factor float64) int {
	v := math.Floor(float64(value) * factor)
	if v < 0 {
		return 0
	}
	return int(v)
}

func stepRevalueAssets(t *tick) {
	for i := range t.c.Assets {
		a := &t.c.Assets[i]
		a.CurrentValue = revalue(a.CurrentValue, 1+a.AverageGrowth+uniformSigned(t.r)*a.Volatility)
	}
}

func stepEconomicShocks(t *tick) {
	for _, ev := range EconomicEvents {
		if !chance(t.r, ev.Probability) {
			continue
		}
		t.c.logEvent(ev.Text, ev.Type)
		for i := range t.c.Assets {
			a := &t.c.Assets[i]
			if ev.MarketTrend != 0 && a.Type == AssetInvestment {
				a.CurrentValue = revalue(a.CurrentValue, ev.MarketTrend)
			}
			if trend, ok := ev.AssetTrends[a.Type]; ok {
				a.CurrentValue = revalue(a.CurrentValue, trend)
			}
		}
	}
}

func stepChildren(t *tick) {
	for i := range t.c.Children {
		ch := &t.c.Children[i]
		ch.Age++
		if ch.Age >= 18 {
			rel := Clamp(ch.RelationshipWithParent + t.r.Intn(11) - 5)
			if rel < 30 {
				rel = 30
			}
			ch.RelationshipWithParent = rel
		}
	}
}

func stepMarriage(t *tick) {
	c := t.c
	m := &c.MarriageStatus
	if !m.IsMarried {
		return
	}
	m.MarriageHappiness = Clamp(m.MarriageHappiness + t.r.Intn(11) - 5)
	if m.MarriageHappiness < 30 {
		m.DivorceRisk = Clamp(m.DivorceRisk + 10)
	} else {
		m.DivorceRisk = Clamp(m.DivorceRisk - 5)
	}
	if m.DivorceRisk > 70 && chance(t.r, divorceChance) {
		divorce(c)
	}
}

func divorce(c *Character) {
	spouse := c.MarriageStatus.SpouseID
	family := c.Family[:0:0]
	for _, f := range c.Family {
		if f.ID == spouse {
			continue
		}
		family = append(family, f)
	}
	c.Family = family
	c.MarriageStatus = MarriageStatus{MarriageHappiness: 50}
	c.DatingProfile.PastPartners++
	c.adjust(StatHappiness, -20)
	c.logEvent("Your marriage ended in divorce.", LifeNegative)
}

func stepSocialClass(t *tick) {
	c := t.c
	c.SocialStatus.SocialClass = ComputeSocialClass(c.Money, c.Salary, c.SocialStatus.Reputation)
}

func stepRelationshipDecay(t *tick) {
	kept := t.c.Relationships[:0:0]
	for _, rel := range t.c.Relationships {
		if rel.IsActive && chance(t.r, relationshipDecay) {
			rel.RelationshipLevel = Clamp(rel.RelationshipLevel - 5)
		}
		if rel.RelationshipLevel > 0 {
			kept = append(kept, rel)
		}
	}
	t.c.Relationships = kept
}

func stepStatDrift(t *tick) {
	c, r := t.c, t.r
	c.adjust(StatHealth, r.Intn(11)-5)
	c.adjust(StatHappiness, r.Intn(11)-5)
	c.adjust(StatSmartness, r.Intn(5)-2)
	c.adjust(StatAppearance, r.Intn(7)-3)
	c.adjust(StatFitness, r.Intn(9)-4)
	c.DatingProfile.Attractiveness = Attractiveness(*c)
}

func stepFamily(t *tick) {
	c := t.c
	for i := range c.Family {
		f := &c.Family[i]
		f.Age++
		if !f.Alive || f.Age < 70 {
			continue
		}
		if chance(t.r, float64(f.Age-65)/100) {
			f.Alive = false
			c.adjust(StatHappiness, -10)
			c.logEvent(fmt.Sprintf("Your %s %s passed away at %d.", f.Relationship, f.Name, f.Age), LifeNegative)
			if c.MarriageStatus.IsMarried && f.ID == c.MarriageStatus.SpouseID {
				widow(c)
			}
		}
	}
}

// widow ends the marriage after the spouse's death. The spouse stays in the family as deceased.
func widow(c *Character) {
	c.MarriageStatus = MarriageStatus{MarriageHappiness: 50}
	c.DatingProfile.PastPartners++
	c.logEvent("You are now widowed.", LifeNegative)
}

func stepMajorEvent(t *tick) {
	c := t.c
	if c.Age == 18 {
		t.markPending(lifePathEvent)
		return
	}
	var hits []Event
	for _, ev := range majorEvents {
		if ev.ID == LifePathEventID || !eventAllowed(*c, ev, c.EventHistory) {
			continue
		}
		if chance(t.r, ev.Probability) {
			hits = append(hits, ev)
		}
	}
	if len(hits) == 0 || t.pending != nil {
		return
	}
	t.markPending(hits[t.r.Intn(len(hits))])
}

func stepAmbientEvent(t *tick) {
	if !chance(t.r, ambientEventChance) {
		return
	}
	text := ambientEvents[t.r.Intn(len(ambientEvents))]
	t.c.logEvent(text, classifyAmbient(text))
}

func stepRandomEvent(t *tick) {
	if t.pending != nil || !chance(t.r, randomEventChance) {
		return
	}
	if ev := SelectEvent(*t.c, t.c.EventHistory, t.r); ev != nil {
		t.markPending(*ev)
	}
}

func stepAchievements(t *tick) { unlockAchievements(t.c) }

func stepExperience(t *tick) {
	if t.c.Employed() {
		t.c.ExperiencePoints += experiencePerYear
	}
}

func stepSentence(t *tick) { serveSentence(t.c, t.r) }
