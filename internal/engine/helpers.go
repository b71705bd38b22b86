package engine

import (
	"math"
	"strings"
)

// MonthlyExpenses is housing cost plus every owned asset's maintenance.
func MonthlyExpenses(c Character) int {
	total := 0
	if h, ok := HousingByID(c.Housing); ok {
		total += h.MonthlyCost
	}
	for _, a := range c.Assets {
		total += a.MonthlyMaintenance
	}
	return total
}

// MonthlyAssetIncome sums the monthly income of owned assets.
func MonthlyAssetIncome(c Character) int {
	total := 0
	for _, a := range c.Assets {
		total += a.MonthlyIncome
	}
	return total
}

// NetMonthly is the per-month cash flow applied once per tick.
func NetMonthly(c Character) int {
	return c.Salary/12 + MonthlyAssetIncome(c) - MonthlyExpenses(c)
}

// NetWorth is money plus the current value of every owned asset.
func NetWorth(c Character) int {
	total := c.Money
	for _, a := range c.Assets {
		total += a.CurrentValue
	}
	return total
}

// ComputeSocialClass derives the class from money, salary and reputation.
func ComputeSocialClass(money, salary, reputation int) SocialClass {
	switch {
	case money >= 1_000_000 || salary >= 200_000 || (money >= 500_000 && reputation >= 80):
		return ClassUpper
	case money >= 50_000 || salary >= 40_000 || reputation >= 60:
		return ClassMiddle
	}
	return ClassLower
}

// Attractiveness weighs appearance, fitness and happiness into 0-100.
func Attractiveness(c Character) int {
	v := float64(c.Appearance)*0.5 + float64(c.Fitness)*0.3 + float64(c.Happiness)*0.2
	return Clamp(int(math.Floor(v)))
}

// CareerSkillBonus is the promotion bonus from skills matching the job's category, capped at 20.
func CareerSkillBonus(c Character) int {
	career, ok := CareerByID(c.Job)
	if !ok || career.SkillCategory == "" {
		return 0
	}
	bonus := 0
	for _, s := range c.Skills {
		if s.Category == career.SkillCategory {
			bonus += s.Level / 10
		}
	}
	if bonus > 20 {
		return 20
	}
	return bonus
}

// PromotionThreshold is the experience required for the next career level.
func PromotionThreshold(level int) int { return (level + 1) * 100 }

// PromotionChance is the percent chance a promotion request succeeds.
func PromotionChance(c Character) float64 {
	p := 40 + float64(CareerSkillBonus(c)) + float64(c.Smartness-50)/5 + float64(c.SocialStatus.Reputation-50)/10
	return clampFloat(p, 5, 95)
}

// ParoleEligible requires half the sentence served and good behavior at least matching bad.
func ParoleEligible(c Character) bool {
	s := c.CurrentSentence
	if !c.IsIncarcerated || s == nil {
		return false
	}
	served := s.OriginalSentenceYears - s.RemainingSentenceYears
	if served*2 < s.OriginalSentenceYears {
		return false
	}
	good, bad := 0, 0
	for _, r := range s.BehaviorRecord {
		switch r {
		case BehaviorGood:
			good++
		case BehaviorBad:
			bad++
		}
	}
	return good >= bad
}

// CrimeOdds are the clamped percentages used for the success and arrest rolls.
type CrimeOdds struct {
	Success float64
	Arrest  float64
}

// CalculateCrimeSuccess adjusts a crime's base rates for the character's stats, experience and record.
func CalculateCrimeSuccess(crime Crime, c Character) CrimeOdds {
	success := crime.BaseSuccessRate
	arrest := crime.ArrestChance
	for _, stat := range AllStats {
		threshold, ok := crime.RequiredStats[stat]
		if !ok {
			continue
		}
		diff := float64(c.StatValue(stat) - threshold)
		success += diff / 2
		if diff < 0 {
			arrest += -diff / 3
		}
	}
	success += math.Min(30, float64(c.CriminalExperience)/10)
	arrest -= math.Min(15, float64(c.CriminalExperience)/20)
	arrest += 5 * float64(len(c.CriminalRecord))
	return CrimeOdds{
		Success: clampFloat(success, 5, 95),
		Arrest:  clampFloat(arrest, 1, 90),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// meetsRequirements evaluates an enhanced event's gates against c.
func meetsRequirements(c Character, req *Requirements) bool {
	if req == nil {
		return true
	}
	for stat, min := range req.MinStats {
		if c.StatValue(stat) < min {
			return false
		}
	}
	if len(req.Education) > 0 && !contains(req.Education, c.Education) {
		return false
	}
	if len(req.Jobs) > 0 && !contains(req.Jobs, c.Job) {
		return false
	}
	if len(req.Housing) > 0 && !contains(req.Housing, c.Housing) {
		return false
	}
	if c.Money < req.MinMoney {
		return false
	}
	if req.MaxMoney > 0 && c.Money > req.MaxMoney {
		return false
	}
	if req.HasRelationship != nil && hasRelationship(c, req.RelationshipType) != *req.HasRelationship {
		return false
	}
	if req.HasCriminalRecord != nil && (len(c.CriminalRecord) > 0) != *req.HasCriminalRecord {
		return false
	}
	if req.Married != nil && c.MarriageStatus.IsMarried != *req.Married {
		return false
	}
	return true
}

// hasRelationship reports an active tie of the given type, or of any type when typ is empty.
func hasRelationship(c Character, typ RelationshipType) bool {
	for _, r := range c.Relationships {
		if !r.IsActive {
			continue
		}
		if typ == "" || r.Type == typ {
			return true
		}
	}
	return false
}

func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
