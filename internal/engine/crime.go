package engine

import (
	"fmt"
	"math"
)

// CrimeResult reports how one crime attempt played out.
type CrimeResult struct {
	Crime      string
	Odds       CrimeOdds
	Succeeded  bool
	Caught     bool
	Payout     int
	JailMonths int
	Fine       int
	Severity   Severity
}

func crimeSeverity(crime Crime) Severity {
	if crime.Category == CrimePetty {
		return SeverityMisdemeanor
	}
	return SeverityFelony
}

// rollCrime draws success, arrest, payout, jail and fine in that order.
func rollCrime(crime Crime, c Character, r Rand) CrimeResult {
	odds := CalculateCrimeSuccess(crime, c)
	res := CrimeResult{Crime: crime.ID, Odds: odds, Severity: crimeSeverity(crime)}
	res.Succeeded = percent(r, odds.Success)
	res.Caught = percent(r, odds.Arrest)
	if res.Succeeded {
		res.Payout = crime.BasePayout + int(math.Floor(r.Float64()*float64(crime.MaxPayout-crime.BasePayout)))
	}
	if res.Caught {
		res.JailMonths = randBetween(r, crime.JailMonths[0], crime.JailMonths[1])
		res.Fine = randBetween(r, crime.Fine[0], crime.Fine[1])
	}
	return res
}

func commitCrime(c *Character, crime Crime, r Rand) (CrimeResult, error) {
	if c.IsIncarcerated {
		return CrimeResult{}, ErrIncarcerated
	}
	if c.Age < crime.MinAge {
		return CrimeResult{}, declined(CodeNotEligible, "too young for %s", crime.Name)
	}
	res := rollCrime(crime, *c, r)
	rec := CrimeRecord{
		ID:     fmt.Sprintf("crime-%d", len(c.CriminalRecord)+1),
		Crime:  crime.ID,
		Year:   c.Year(),
		Age:    c.Age,
		Caught: res.Caught,
	}
	if res.Succeeded {
		c.Money += res.Payout
		c.Reputation.Criminal = Clamp(c.Reputation.Criminal + 5)
		c.CriminalExperience += 10
	} else {
		c.CriminalExperience += 5
	}
	if res.Caught {
		rec.Severity = res.Severity
		c.Money = floorZero(c.Money - res.Fine)
		c.adjust(StatReputation, -10)
		if res.JailMonths > 0 {
			rec.Punishment = fmt.Sprintf("%d months in prison and a $%d fine", res.JailMonths, res.Fine)
		} else {
			rec.Punishment = fmt.Sprintf("$%d fine", res.Fine)
			c.Reputation.Legal = Clamp(c.Reputation.Legal - 10)
		}
	}
	c.CriminalRecord = append(c.CriminalRecord, rec)

	var msg string
	switch {
	case res.Succeeded && !res.Caught:
		msg = fmt.Sprintf("Committed %s and got away with $%d.", crime.Name, res.Payout)
	case res.Succeeded && res.Caught:
		msg = fmt.Sprintf("Committed %s for $%d but got caught: %s.", crime.Name, res.Payout, rec.Punishment)
	case res.Caught:
		msg = fmt.Sprintf("Botched %s and got caught: %s.", crime.Name, rec.Punishment)
	default:
		msg = fmt.Sprintf("Tried %s but came away empty-handed.", crime.Name)
	}
	c.logEvent(msg, crimeLogType(res))
	if res.Caught && res.JailMonths > 0 {
		imprison(c, crime, res.Severity, res.JailMonths)
	}
	return res, nil
}

func crimeLogType(res CrimeResult) LifeEventType {
	return ternary(res.Succeeded && !res.Caught, LifePositive, LifeNeutral)
}
