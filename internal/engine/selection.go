package engine

// SelectOption tunes SelectEvent.
type SelectOption func(*selectConfig)

type selectConfig struct {
	maxPerYear  int
	minGapYears int
}

// WithRateLimit caps presented events per in-game year and enforces a minimum gap in years
// between any two. Zero disables the respective check.
func WithRateLimit(maxPerYear, minGapYears int) SelectOption {
	return func(c *selectConfig) {
		c.maxPerYear = maxPerYear
		c.minGapYears = minGapYears
	}
}

// Candidate is an eligible event with its contextual weight.
type Candidate struct {
	Event  Event
	Weight float64
}

func eventAllowed(c Character, ev Event, history []EventRecord) bool {
	if !ev.InWindow(c.Age) {
		return false
	}
	if ev.Kind.Capabilities().Requirements && !meetsRequirements(c, ev.Requirements) {
		return false
	}
	seenAt, seen := -1, false
	for _, rec := range history {
		if rec.EventID == ev.ID {
			seenAt, seen = rec.Age, true
		}
	}
	if !seen {
		return true
	}
	if ev.OncePerLifetime {
		return false
	}
	if ev.CooldownDays > 0 && (c.Age-seenAt)*365 < ev.CooldownDays {
		return false
	}
	return true
}

// eventWeight applies the contextual boosts. Milestone events take a flat x2 instead.
func eventWeight(c Character, ev Event) float64 {
	w := ev.Probability
	if ev.Milestone {
		return w * 2
	}
	switch {
	case ev.Category == CategoryCareer && c.Employed():
		w *= 1.5
	case ev.Category == CategoryEducational && c.Enrolled():
		w *= 2
	case ev.Category == CategoryFinancial && c.Money > 50000:
		w *= 1.3
	}
	return w
}

// Candidates returns every classic and enhanced event eligible for c, weighted.
func Candidates(c Character, history []EventRecord) []Candidate {
	var out []Candidate
	for _, pool := range [][]Event{classicEvents, enhancedEvents} {
		for _, ev := range pool {
			if !eventAllowed(c, ev, history) {
				continue
			}
			out = append(out, Candidate{Event: ev, Weight: eventWeight(c, ev)})
		}
	}
	return out
}

func rateLimited(c Character, history []EventRecord, cfg selectConfig) bool {
	if cfg.maxPerYear > 0 {
		n := 0
		for _, rec := range history {
			if rec.Age == c.Age {
				n++
			}
		}
		if n >= cfg.maxPerYear {
			return true
		}
	}
	if cfg.minGapYears > 0 && len(history) > 0 {
		last := history[len(history)-1].Age
		if c.Age-last < cfg.minGapYears {
			return true
		}
	}
	return false
}

// SelectEvent picks at most one classic or enhanced event by weighted linear scan.
// A nil result is the common case.
func SelectEvent(c Character, history []EventRecord, r Rand, opts ...SelectOption) *Event {
	cfg := selectConfig{maxPerYear: 1}
	for _, o := range opts {
		o(&cfg)
	}
	if rateLimited(c, history, cfg) {
		return nil
	}
	cands := Candidates(c, history)
	ev, ok := pickWeighted(cands, r)
	if !ok {
		return nil
	}
	return &ev
}

func pickWeighted(cands []Candidate, r Rand) (Event, bool) {
	total := 0.0
	for _, cand := range cands {
		total += cand.Weight
	}
	if len(cands) == 0 || total <= 0 {
		return Event{}, false
	}
	roll := r.Float64() * total
	for _, cand := range cands {
		roll -= cand.Weight
		if roll <= 0 {
			return cand.Event, true
		}
	}
	return cands[len(cands)-1].Event, true
}
