package engine

import "fmt"

// PrisonSentence is created on conviction and cleared on release.
type PrisonSentence struct {
	Crime                  string           `json:"crime"`
	StartAge               int              `json:"startAge"`
	OriginalSentenceYears  int              `json:"originalSentenceYears"`
	RemainingSentenceYears int              `json:"remainingSentenceYears"`
	PrisonLevel            PrisonLevel      `json:"prisonLevel"`
	GoodBehaviorReduction  int              `json:"goodBehaviorReduction"`
	BehaviorRecord         []BehaviorRating `json:"behaviorRecord"`
}

// PrisonRecord is the closed history entry of a served sentence.
type PrisonRecord struct {
	Crime       string      `json:"crime"`
	StartAge    int         `json:"startAge"`
	EndAge      int         `json:"endAge"`
	YearsServed int         `json:"yearsServed"`
	PrisonLevel PrisonLevel `json:"prisonLevel"`
	Release     string      `json:"release"`
}

const (
	ReleaseServed  = "served"
	ReleaseParole  = "parole"
	ReleaseAppeal  = "appeal"
	ReleaseEscaped = "escaped"

	appealFee = 5000
)

func sentenceYears(months int) int { return (months + 11) / 12 }

func prisonLevelFor(crime Crime, severity Severity, priorTerms int) PrisonLevel {
	level := PrisonMinimum
	if severity == SeverityFelony {
		level = ternary(crime.Category == CrimeViolent, PrisonMaximum, PrisonMedium)
	}
	if priorTerms >= 2 {
		level = upgradeLevel(level)
	}
	return level
}

func upgradeLevel(l PrisonLevel) PrisonLevel {
	switch l {
	case PrisonMinimum:
		return PrisonMedium
	default:
		return PrisonMaximum
	}
}

func imprison(c *Character, crime Crime, severity Severity, months int) {
	years := sentenceYears(months)
	level := prisonLevelFor(crime, severity, len(c.PrisonRecord))
	c.IsIncarcerated = true
	c.CurrentSentence = &PrisonSentence{
		Crime:                  crime.ID,
		StartAge:               c.Age,
		OriginalSentenceYears:  years,
		RemainingSentenceYears: years,
		PrisonLevel:            level,
	}
	c.Job = JobUnemployed
	c.Salary = 0
	c.Reputation.Legal = Clamp(c.Reputation.Legal - 20)
	c.LegalConsequences = append(c.LegalConsequences, fmt.Sprintf("%d year(s) in %s security for %s", years, level, crime.Name))
}

func release(c *Character, how string) {
	s := c.CurrentSentence
	if s != nil {
		c.PrisonRecord = append(c.PrisonRecord, PrisonRecord{
			Crime:       s.Crime,
			StartAge:    s.StartAge,
			EndAge:      c.Age,
			YearsServed: c.Age - s.StartAge,
			PrisonLevel: s.PrisonLevel,
			Release:     how,
		})
	}
	c.IsIncarcerated = false
	c.CurrentSentence = nil
	switch how {
	case ReleaseEscaped:
		c.logEvent("You escaped from prison!", LifePositive)
	case ReleaseParole:
		c.logEvent("You were granted parole and walked free.", LifePositive)
	case ReleaseAppeal:
		c.logEvent("Your appeal overturned the rest of your sentence.", LifePositive)
	default:
		c.logEvent("You were released from prison after serving your sentence.", LifePositive)
	}
}

func rollBehavior(r Rand) BehaviorRating {
	v := r.Float64()
	switch {
	case v < 0.5:
		return BehaviorGood
	case v < 0.8:
		return BehaviorNeutral
	}
	return BehaviorBad
}

// serveSentence runs one year of incarceration. It is the last tick step.
func serveSentence(c *Character, r Rand) {
	s := c.CurrentSentence
	if !c.IsIncarcerated || s == nil {
		return
	}
	rating := rollBehavior(r)
	s.BehaviorRecord = append(s.BehaviorRecord, rating)
	earned := 0
	switch rating {
	case BehaviorGood:
		if countRating(s.BehaviorRecord, BehaviorGood)%2 == 0 {
			earned = 1
			s.GoodBehaviorReduction++
		}
	case BehaviorBad:
		c.Reputation.Criminal = Clamp(c.Reputation.Criminal + 2)
	}
	if chance(r, 0.05) {
		c.adjust(StatHealth, -15)
		c.logEvent("A riot broke out in the prison yard. You were hurt.", LifeNegative)
	}
	s.RemainingSentenceYears -= 1 + earned
	if s.RemainingSentenceYears <= 0 {
		s.RemainingSentenceYears = 0
		release(c, ReleaseServed)
	}
}

func countRating(list []BehaviorRating, want BehaviorRating) int {
	n := 0
	for _, r := range list {
		if r == want {
			n++
		}
	}
	return n
}

func paroleHearing(c *Character, r Rand) error {
	if !c.IsIncarcerated {
		return ErrNotIncarcerated
	}
	if !ParoleEligible(*c) {
		return declined(CodeNotEligible, "not eligible for parole yet")
	}
	s := c.CurrentSentence
	good := countRating(s.BehaviorRecord, BehaviorGood)
	bad := countRating(s.BehaviorRecord, BehaviorBad)
	if percent(r, clampFloat(50+10*float64(good-bad), 10, 90)) {
		release(c, ReleaseParole)
		return nil
	}
	c.logEvent("The parole board denied your request.", LifeNeutral)
	return nil
}

func appeal(c *Character, r Rand) error {
	if !c.IsIncarcerated || c.CurrentSentence == nil {
		return ErrNotIncarcerated
	}
	if c.Money < appealFee {
		return declined(CodeInsufficientFunds, "an appeal costs $%d", appealFee)
	}
	c.Money -= appealFee
	if !chance(r, 0.25) {
		c.logEvent("Your appeal was rejected.", LifeNegative)
		return nil
	}
	s := c.CurrentSentence
	s.RemainingSentenceYears /= 2
	if s.RemainingSentenceYears <= 0 {
		release(c, ReleaseAppeal)
		return nil
	}
	c.logEvent(fmt.Sprintf("Your appeal succeeded. %d year(s) remain.", s.RemainingSentenceYears), LifePositive)
	return nil
}

func escapeChance(c Character) float64 {
	penalty := 0.0
	switch c.CurrentSentence.PrisonLevel {
	case PrisonMedium:
		penalty = 10
	case PrisonMaximum:
		penalty = 20
	}
	return clampFloat(float64(c.Fitness)/4-penalty, 5, 60)
}

func attemptEscape(c *Character, r Rand) error {
	if !c.IsIncarcerated || c.CurrentSentence == nil {
		return ErrNotIncarcerated
	}
	if percent(r, escapeChance(*c)) {
		c.Reputation.Criminal = Clamp(c.Reputation.Criminal + 10)
		release(c, ReleaseEscaped)
		return nil
	}
	s := c.CurrentSentence
	s.RemainingSentenceYears += 2
	s.OriginalSentenceYears += 2
	s.PrisonLevel = upgradeLevel(s.PrisonLevel)
	c.logEvent(fmt.Sprintf("Your escape failed. Two years added and moved to %s security.", s.PrisonLevel), LifeNegative)
	return nil
}
