package engine

import "strings"

// Choice is one option on an event card.
type Choice struct {
	ID   string
	Text string
	// Effects is applied verbatim unless a success roll rescales it.
	Effects Effects
	// Requirements are stat minimums gating availability.
	Requirements map[Stat]int
	// SuccessChance is a percentage; 0 means the choice never rolls.
	SuccessChance int
	SuccessText   string
	FailureText   string
}

// Requirements are the contextual gates of an enhanced event. Zero values impose nothing.
type Requirements struct {
	MinStats          map[Stat]int
	Education         []string
	Jobs              []string
	Housing           []string
	MinMoney          int
	MaxMoney          int // 0 = unbounded
	HasRelationship   *bool
	RelationshipType  RelationshipType
	HasCriminalRecord *bool
	Married           *bool
}

// Event is the unified template for major, classic and enhanced events.
// Kind is fixed at construction and selects the resolution capabilities.
type Event struct {
	Kind        EventKind
	ID          string
	Title       string
	Description string
	Category    EventCategory
	Milestone   bool
	MinAge      int
	MaxAge      int
	// Probability is a per-tick roll chance for major events and a base weight otherwise.
	Probability     float64
	Choices         []Choice
	Requirements    *Requirements
	OncePerLifetime bool
	CooldownDays    int
	TriggerEvents   []string
}

// Capabilities are the kind-specific resolution behaviors.
type Capabilities struct {
	SuccessRolls bool
	GatedChoices bool
	Requirements bool
	Chains       bool
}

func (k EventKind) Capabilities() Capabilities {
	switch k {
	case KindMajor:
		return Capabilities{GatedChoices: true}
	case KindClassic:
		return Capabilities{SuccessRolls: true, GatedChoices: true}
	case KindEnhanced:
		return Capabilities{SuccessRolls: true, GatedChoices: true, Requirements: true, Chains: true}
	}
	return Capabilities{}
}

// InWindow reports whether age falls inside the event's [MinAge,MaxAge].
func (e Event) InWindow(age int) bool {
	if age < e.MinAge {
		return false
	}
	return e.MaxAge == 0 || age <= e.MaxAge
}

// Available reports whether c meets every stat minimum of the choice.
func (ch Choice) Available(c Character) bool {
	for stat, min := range ch.Requirements {
		if c.StatValue(stat) < min {
			return false
		}
	}
	return true
}

// AvailableChoices filters the event's choices down to those c may pick.
func (e Event) AvailableChoices(c Character) []Choice {
	if !e.Kind.Capabilities().GatedChoices {
		return append([]Choice(nil), e.Choices...)
	}
	var out []Choice
	for _, ch := range e.Choices {
		if ch.Available(c) {
			out = append(out, ch)
		}
	}
	return out
}

func (e Event) choice(id string) (Choice, bool) {
	for _, ch := range e.Choices {
		if ch.ID == id {
			return ch, true
		}
	}
	return Choice{}, false
}

// Ref identifies the event for persistence as kind plus id.
func (e Event) Ref() EventRecord { return EventRecord{EventID: e.ID, Kind: e.Kind} }

func boolPtr(b bool) *bool { return &b }

// LifePathEventID is forced at age 18.
const LifePathEventID = "life_path_choice"

var lifePathEvent = Event{
	Kind: KindMajor, ID: LifePathEventID, Title: "Choose Your Path",
	Description: "You turned 18. The whole world is asking what comes next.",
	Category:    CategoryEducational, Milestone: true, MinAge: 18, MaxAge: 18,
	Choices: []Choice{
		{ID: "college", Text: "Apply to college", Effects: Effects{StatSmartness: 5, StatHappiness: 5}, Requirements: map[Stat]int{StatSmartness: 50}},
		{ID: "work", Text: "Start working full time", Effects: Effects{StatMoney: 2000, StatHappiness: 2}},
		{ID: "travel", Text: "Take a gap year and travel", Effects: Effects{StatHappiness: 15, StatMoney: -1000, StatSmartness: 2}},
		{ID: "military", Text: "Enlist in the military", Effects: Effects{StatFitness: 15, StatHealth: 5, StatHappiness: -5}, Requirements: map[Stat]int{StatFitness: 40}},
	},
}

var majorEvents = []Event{
	lifePathEvent,
	{
		Kind: KindMajor, ID: "first_day_of_school", Title: "First Day of School",
		Description: "A backpack almost bigger than you and a classroom full of strangers.",
		Category:    CategoryEducational, Milestone: true, MinAge: 5, MaxAge: 6, Probability: 0.6, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "brave", Text: "Walk in with a smile", Effects: Effects{StatHappiness: 5, StatPopularity: 5}},
			{ID: "cry", Text: "Cling to your parent", Effects: Effects{StatHappiness: -5}},
		},
	},
	{
		Kind: KindMajor, ID: "puberty", Title: "Growing Up",
		Description: "Your body is changing faster than you would like.",
		Category:    CategoryHealth, MinAge: 12, MaxAge: 14, Probability: 0.3, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "embrace", Text: "Take it in stride", Effects: Effects{StatHappiness: 3, StatAppearance: 3}},
			{ID: "hide", Text: "Hide in your room", Effects: Effects{StatHappiness: -5, StatPopularity: -3}},
		},
	},
	{
		Kind: KindMajor, ID: "first_love", Title: "First Love",
		Description: "Someone in your class makes your heart race.",
		Category:    CategorySocial, Milestone: true, MinAge: 14, MaxAge: 20, Probability: 0.2, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "confess", Text: "Confess your feelings", Effects: Effects{StatHappiness: 10, StatPopularity: 3}, Requirements: map[Stat]int{StatAppearance: 40}},
			{ID: "admire", Text: "Admire from afar", Effects: Effects{StatHappiness: -3}},
		},
	},
	{
		Kind: KindMajor, ID: "quarter_life_crisis", Title: "Quarter-Life Crisis",
		Description: "Everyone else seems to have it figured out.",
		Category:    CategoryRandom, MinAge: 24, MaxAge: 30, Probability: 0.1, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "reinvent", Text: "Reinvent yourself", Effects: Effects{StatHappiness: 8, StatMoney: -2000}},
			{ID: "therapy", Text: "See a therapist", Effects: Effects{StatHappiness: 10, StatMoney: -800, StatHealth: 2}},
			{ID: "ignore", Text: "Push through it", Effects: Effects{StatHappiness: -8}},
		},
	},
	{
		Kind: KindMajor, ID: "midlife_crisis", Title: "Midlife Crisis",
		Description: "You wake up one morning wondering where the years went.",
		Category:    CategoryRandom, MinAge: 40, MaxAge: 55, Probability: 0.1, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "sports_car", Text: "Buy something fast and red", Effects: Effects{StatHappiness: 12, StatMoney: -30000}},
			{ID: "marathon", Text: "Train for a marathon", Effects: Effects{StatFitness: 12, StatHealth: 6}, Requirements: map[Stat]int{StatHealth: 50}},
			{ID: "accept", Text: "Accept getting older", Effects: Effects{StatHappiness: 3}},
		},
	},
	{
		Kind: KindMajor, ID: "inheritance", Title: "An Unexpected Inheritance",
		Description: "A distant relative left you something in their will.",
		Category:    CategoryFinancial, MinAge: 25, MaxAge: 80, Probability: 0.03, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "keep", Text: "Keep it all", Effects: Effects{StatMoney: 25000, StatHappiness: 5}},
			{ID: "donate", Text: "Donate half to charity", Effects: Effects{StatMoney: 12500, StatHappiness: 10, StatReputation: 8}},
		},
	},
	{
		Kind: KindMajor, ID: "retirement", Title: "Retirement",
		Description: "Your employer is offering an early retirement package.",
		Category:    CategoryCareer, Milestone: true, MinAge: 60, MaxAge: 70, Probability: 0.2, OncePerLifetime: true,
		Choices: []Choice{
			{ID: "retire", Text: "Take the package", Effects: Effects{StatHappiness: 15, StatMoney: 20000}},
			{ID: "stay", Text: "Keep working", Effects: Effects{StatHappiness: -3, StatMoney: 5000}},
		},
	},
	{
		Kind: KindMajor, ID: "health_scare", Title: "Health Scare",
		Description: "Your doctor calls you back about some test results.",
		Category:    CategoryHealth, MinAge: 50, MaxAge: 0, Probability: 0.08,
		Choices: []Choice{
			{ID: "treatment", Text: "Start treatment right away", Effects: Effects{StatHealth: 10, StatMoney: -5000}},
			{ID: "second_opinion", Text: "Get a second opinion", Effects: Effects{StatHealth: 3, StatMoney: -1000}},
			{ID: "ignore", Text: "Ignore it", Effects: Effects{StatHealth: -15, StatHappiness: -5}},
		},
	},
}

var enhancedEvents = []Event{
	{
		Kind: KindEnhanced, ID: "headhunter_call", Title: "A Headhunter Calls",
		Description: "A recruiter saw your work and has an offer.",
		Category:    CategoryCareer, MinAge: 22, MaxAge: 60, Probability: 0.3, CooldownDays: 1095,
		Requirements: &Requirements{MinStats: map[Stat]int{StatSmartness: 60}, Jobs: []string{"software_engineer", "accountant", "lawyer", "teacher", "nurse"}},
		Choices: []Choice{
			{ID: "negotiate", Text: "Negotiate a higher offer", Effects: Effects{StatMoney: 8000, StatHappiness: 5}, SuccessChance: 55, SuccessText: "They met your number.", FailureText: "They walked away from the table."},
			{ID: "decline", Text: "Stay loyal", Effects: Effects{StatReputation: 3}},
		},
	},
	{
		Kind: KindEnhanced, ID: "startup_idea", Title: "A Startup Idea",
		Description: "You cannot stop thinking about a business idea.",
		Category:    CategoryFinancial, MinAge: 20, MaxAge: 55, Probability: 0.2, OncePerLifetime: true,
		Requirements:  &Requirements{MinStats: map[Stat]int{StatSmartness: 55}, MinMoney: 10000},
		TriggerEvents: []string{"startup_funding"},
		Choices: []Choice{
			{ID: "launch", Text: "Quit and launch it", Effects: Effects{StatMoney: -10000, StatHappiness: 10}, SuccessChance: 40, SuccessText: "Early customers love it.", FailureText: "Nobody bought it."},
			{ID: "side_project", Text: "Build it on weekends", Effects: Effects{StatMoney: -2000, StatHappiness: 4, StatHealth: -2}},
			{ID: "drop", Text: "Let the idea go", Effects: Effects{StatHappiness: -2}},
		},
	},
	{
		Kind: KindEnhanced, ID: "startup_funding", Title: "Funding Round",
		Description: "An investor wants a piece of your company.",
		Category:    CategoryFinancial, MinAge: 21, MaxAge: 60, Probability: 0.1, OncePerLifetime: true,
		Requirements: &Requirements{MinMoney: 5000},
		Choices: []Choice{
			{ID: "accept", Text: "Take the money", Effects: Effects{StatMoney: 50000, StatHappiness: 8}, SuccessChance: 60, SuccessText: "The round closed.", FailureText: "The term sheet fell apart."},
			{ID: "bootstrap", Text: "Stay independent", Effects: Effects{StatHappiness: 3}},
		},
	},
	{
		Kind: KindEnhanced, ID: "anniversary_trip", Title: "Anniversary Trip",
		Description: "Your spouse hints about a getaway.",
		Category:    CategoryFamily, MinAge: 20, MaxAge: 90, Probability: 0.4, CooldownDays: 730,
		Requirements: &Requirements{Married: boolPtr(true), MinMoney: 2000},
		Choices: []Choice{
			{ID: "paris", Text: "Book a trip abroad", Effects: Effects{StatMoney: -4000, StatHappiness: 10, StatMarriageHappiness: 15}},
			{ID: "dinner", Text: "A nice dinner at home", Effects: Effects{StatMoney: -150, StatMarriageHappiness: 5}},
			{ID: "forget", Text: "Forget the date", Effects: Effects{StatMarriageHappiness: -15, StatHappiness: -5}},
		},
	},
	{
		Kind: KindEnhanced, ID: "friend_in_need", Title: "A Friend in Need",
		Description: "A close friend asks to borrow money.",
		Category:    CategorySocial, MinAge: 16, MaxAge: 90, Probability: 0.4, CooldownDays: 365,
		Requirements: &Requirements{HasRelationship: boolPtr(true), RelationshipType: RelFriend, MinMoney: 500},
		Choices: []Choice{
			{ID: "lend", Text: "Lend them the money", Effects: Effects{StatMoney: -500, StatHappiness: 4, StatReputation: 2}},
			{ID: "refuse", Text: "Say no", Effects: Effects{StatHappiness: -2, StatPopularity: -2}},
		},
	},
	{
		Kind: KindEnhanced, ID: "old_accomplice", Title: "An Old Accomplice",
		Description: "Someone from your past has a job that needs doing.",
		Category:    CategoryRandom, MinAge: 18, MaxAge: 70, Probability: 0.3, CooldownDays: 730,
		Requirements: &Requirements{HasCriminalRecord: boolPtr(true)},
		Choices: []Choice{
			{ID: "join", Text: "One last job", Effects: Effects{StatMoney: 5000, StatHappiness: 3}, SuccessChance: 45, SuccessText: "Clean getaway.", FailureText: "The cops were waiting."},
			{ID: "refuse", Text: "You are done with that life", Effects: Effects{StatHappiness: 3, StatReputation: 2}},
		},
	},
	{
		Kind: KindEnhanced, ID: "landlord_dispute", Title: "Landlord Dispute",
		Description: "The landlord is keeping your deposit over a scratch on the wall.",
		Category:    CategoryFinancial, MinAge: 18, MaxAge: 90, Probability: 0.3, CooldownDays: 1095,
		Requirements: &Requirements{Housing: []string{"shared_room", "studio_apartment", "apartment"}},
		Choices: []Choice{
			{ID: "court", Text: "Take them to small claims court", Effects: Effects{StatMoney: 1200, StatHappiness: 3}, SuccessChance: 50, SuccessText: "The judge sided with you.", FailureText: "The judge sided with the landlord."},
			{ID: "let_go", Text: "Let it go", Effects: Effects{StatHappiness: -3}},
		},
	},
	{
		Kind: KindEnhanced, ID: "graduation_party", Title: "Graduation Party",
		Description: "Your family wants to throw a party for your degree.",
		Category:    CategoryEducational, Milestone: true, MinAge: 20, MaxAge: 40, Probability: 0.4, OncePerLifetime: true,
		Requirements: &Requirements{Education: []string{"university", "masters", "law_school", "medical_school", "phd"}},
		Choices: []Choice{
			{ID: "big", Text: "Invite everyone", Effects: Effects{StatHappiness: 10, StatPopularity: 6, StatMoney: -500}},
			{ID: "small", Text: "Keep it small", Effects: Effects{StatHappiness: 5}},
		},
	},
	{
		Kind: KindEnhanced, ID: "exam_pressure", Title: "Exam Pressure",
		Description: "Finals are next week and you are behind.",
		Category:    CategoryEducational, MinAge: 14, MaxAge: 40, Probability: 0.3, CooldownDays: 365,
		Requirements: &Requirements{MinStats: map[Stat]int{StatHealth: 20}},
		Choices: []Choice{
			{ID: "cram", Text: "Pull all-nighters", Effects: Effects{StatSmartness: 4, StatHealth: -4}, SuccessChance: 65, SuccessText: "You aced it.", FailureText: "You blanked on the test."},
			{ID: "cheat", Text: "Buy the answers", Effects: Effects{StatSmartness: -2, StatMoney: -200}, SuccessChance: 50, SuccessText: "Nobody noticed.", FailureText: "You got caught and suspended.", Requirements: map[Stat]int{StatMoney: 200}},
		},
	},
	{
		Kind: KindEnhanced, ID: "lonely_heart", Title: "Lonely Heart",
		Description: "Everyone around you seems to be pairing up.",
		Category:    CategorySocial, MinAge: 18, MaxAge: 60, Probability: 0.3, CooldownDays: 730,
		Requirements: &Requirements{Married: boolPtr(false), HasRelationship: boolPtr(false), RelationshipType: RelDating},
		Choices: []Choice{
			{ID: "app", Text: "Try a dating app", Effects: Effects{StatHappiness: 5}, SuccessChance: 50, SuccessText: "You matched with someone great.", FailureText: "Nothing but bad dates."},
			{ID: "solo", Text: "Focus on yourself", Effects: Effects{StatFitness: 3, StatHappiness: 2}},
		},
	},
	{
		Kind: KindEnhanced, ID: "market_tip", Title: "A Hot Stock Tip",
		Description: "A colleague swears this stock is going to the moon.",
		Category:    CategoryFinancial, MinAge: 21, MaxAge: 90, Probability: 0.25, CooldownDays: 730,
		Requirements: &Requirements{MinMoney: 20000},
		Choices: []Choice{
			{ID: "all_in", Text: "Put in a big chunk", Effects: Effects{StatMoney: 15000, StatHappiness: 5}, SuccessChance: 35, SuccessText: "It actually went to the moon.", FailureText: "It went to zero."},
			{ID: "pass", Text: "Pass", Effects: Effects{}},
		},
	},
}

// ambientEvents is the flavor pool injected by the tick engine.
var ambientEvents = []string{
	"You found $20 on the sidewalk.",
	"You enjoyed a great book over the weekend.",
	"You made a new friend at the park.",
	"You caught a nasty cold.",
	"You had an argument with a neighbor.",
	"You watched the sunrise from a hilltop.",
	"You lost your favorite jacket.",
	"You tried a new restaurant in town.",
	"You got stuck in traffic for hours.",
	"You won a small raffle prize.",
	"You sprained your ankle on the stairs.",
	"You spent a quiet evening at home.",
	"Your phone was stolen on the bus.",
	"You went to a great concert.",
	"It rained all week.",
}

func classifyAmbient(text string) LifeEventType {
	lower := strings.ToLower(text)
	switch {
	case hasAny(lower, "found", "enjoyed", "new friend", "won", "great", "sunrise"):
		return LifePositive
	case hasAny(lower, "lost", "cold", "argument", "stolen", "sprained", "stuck"):
		return LifeNegative
	}
	return LifeNeutral
}

// Catalog returns every major, classic and enhanced event template.
func Catalog() []Event {
	out := make([]Event, 0, len(majorEvents)+len(classicEvents)+len(enhancedEvents))
	out = append(out, majorEvents...)
	out = append(out, classicEvents...)
	out = append(out, enhancedEvents...)
	return out
}

// EventByRef resolves a persisted kind+id back to its template.
func EventByRef(kind EventKind, id string) (Event, bool) {
	var pool []Event
	switch kind {
	case KindMajor:
		pool = majorEvents
	case KindClassic:
		pool = classicEvents
	case KindEnhanced:
		pool = enhancedEvents
	}
	for _, ev := range pool {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}
