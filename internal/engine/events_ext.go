package engine

import (
	"strings"
	"unicode"
)

// classicTemplate expands into one classic event per scenario, sharing the
// template's window, weight and choice shapes.
type classicTemplate struct {
	category  EventCategory
	minAge    int
	maxAge    int
	weight    float64
	cooldown  int
	scenarios []classicScenario
}

type classicScenario struct {
	title       string
	description string
	choices     []Choice
}

var classicEvents = buildClassicCatalog()

func buildClassicCatalog() []Event {
	templates := []classicTemplate{
		{
			category: CategorySocial, minAge: 6, maxAge: 17, weight: 1, cooldown: 730,
			scenarios: []classicScenario{
				{"Playground Bully", "A bigger kid keeps taking your lunch.", []Choice{
					{ID: "fight", Text: "Stand up to them", Effects: Effects{StatHappiness: 5, StatPopularity: 5, StatHealth: -3}, SuccessChance: 50, SuccessText: "They never bothered you again.", FailureText: "You ended up with a black eye."},
					{ID: "tell", Text: "Tell a teacher", Effects: Effects{StatHappiness: 2, StatPopularity: -2}},
					{ID: "ignore", Text: "Ignore it", Effects: Effects{StatHappiness: -4}},
				}},
				{"Sleepover Invite", "A classmate invites you to a sleepover.", []Choice{
					{ID: "go", Text: "Go", Effects: Effects{StatHappiness: 6, StatPopularity: 4}},
					{ID: "stay", Text: "Stay home", Effects: Effects{StatHappiness: -1}},
				}},
				{"Science Fair", "The school science fair is coming up.", []Choice{
					{ID: "volcano", Text: "Build an ambitious project", Effects: Effects{StatSmartness: 5, StatHappiness: 4}, SuccessChance: 60, SuccessText: "You took first place.", FailureText: "It exploded in front of the judges.", Requirements: map[Stat]int{StatSmartness: 45}},
					{ID: "skip", Text: "Skip it", Effects: Effects{}},
				}},
			},
		},
		{
			category: CategoryHealth, minAge: 5, maxAge: 0, weight: 0.8, cooldown: 365,
			scenarios: []classicScenario{
				{"Flu Season", "Everyone at work or school is sniffling.", []Choice{
					{ID: "vaccine", Text: "Get a flu shot", Effects: Effects{StatHealth: 3, StatMoney: -30}},
					{ID: "tough", Text: "Tough it out", Effects: Effects{StatHealth: -4}, SuccessChance: 50, SuccessText: "You dodged it.", FailureText: "You spent a week in bed."},
				}},
				{"Gym Membership Deal", "The local gym is running a promotion.", []Choice{
					{ID: "join", Text: "Sign up", Effects: Effects{StatFitness: 6, StatHealth: 3, StatMoney: -300}, Requirements: map[Stat]int{StatMoney: 300}},
					{ID: "pass", Text: "Not this year", Effects: Effects{}},
				}},
				{"Junk Food Craving", "There is a whole pizza in front of you.", []Choice{
					{ID: "eat", Text: "Eat the whole thing", Effects: Effects{StatHappiness: 4, StatHealth: -3, StatFitness: -2}},
					{ID: "salad", Text: "Have a salad instead", Effects: Effects{StatHealth: 2, StatHappiness: -1}},
				}},
			},
		},
		{
			category: CategoryCareer, minAge: 18, maxAge: 70, weight: 1, cooldown: 730,
			scenarios: []classicScenario{
				{"Office Gossip", "Coworkers are spreading rumors about your manager.", []Choice{
					{ID: "join", Text: "Join in", Effects: Effects{StatPopularity: 3, StatReputation: -4}},
					{ID: "shut", Text: "Shut it down", Effects: Effects{StatReputation: 4, StatPopularity: -2}},
				}},
				{"Overtime Request", "Your boss needs someone for weekend shifts.", []Choice{
					{ID: "accept", Text: "Take the overtime", Effects: Effects{StatMoney: 1500, StatHealth: -3, StatHappiness: -2}},
					{ID: "decline", Text: "Protect your weekend", Effects: Effects{StatHappiness: 3}},
				}},
				{"Big Presentation", "You are presenting to the leadership team.", []Choice{
					{ID: "wing", Text: "Wing it", Effects: Effects{StatReputation: 6, StatHappiness: 4}, SuccessChance: 40, SuccessText: "They loved it.", FailureText: "You froze on stage."},
					{ID: "prepare", Text: "Rehearse all week", Effects: Effects{StatReputation: 4, StatSmartness: 2, StatHappiness: -1}},
				}},
			},
		},
		{
			category: CategoryFinancial, minAge: 16, maxAge: 0, weight: 0.7, cooldown: 1095,
			scenarios: []classicScenario{
				{"Lottery Ticket", "The jackpot is huge this week.", []Choice{
					{ID: "buy", Text: "Buy a ticket", Effects: Effects{StatMoney: -20, StatHappiness: 3}, SuccessChance: 10, SuccessText: "Three numbers matched. The thrill was worth the $20.", FailureText: "Not even close."},
					{ID: "save", Text: "Save your money", Effects: Effects{}},
				}},
				{"Car Trouble", "Your ride is making a terrible noise.", []Choice{
					{ID: "fix", Text: "Take it to a mechanic", Effects: Effects{StatMoney: -600, StatHappiness: -1}},
					{ID: "ignore", Text: "Turn up the radio", Effects: Effects{StatMoney: -100, StatHappiness: -3}, SuccessChance: 30, SuccessText: "The noise went away on its own.", FailureText: "The engine died on the highway."},
				}},
				{"Tax Refund", "A refund landed in your account.", []Choice{
					{ID: "splurge", Text: "Treat yourself", Effects: Effects{StatHappiness: 6, StatMoney: 200}},
					{ID: "save", Text: "Put it in savings", Effects: Effects{StatMoney: 800, StatHappiness: 1}},
				}},
			},
		},
		{
			category: CategoryFamily, minAge: 3, maxAge: 0, weight: 0.8, cooldown: 730,
			scenarios: []classicScenario{
				{"Family Reunion", "The whole family is getting together this summer.", []Choice{
					{ID: "go", Text: "Go and catch up", Effects: Effects{StatHappiness: 6}},
					{ID: "skip", Text: "Make an excuse", Effects: Effects{StatHappiness: -2}},
				}},
				{"Holiday Argument", "Dinner turned into a shouting match.", []Choice{
					{ID: "peace", Text: "Play peacemaker", Effects: Effects{StatHappiness: 2, StatReputation: 2}, SuccessChance: 50, SuccessText: "Everyone calmed down.", FailureText: "Everyone turned on you."},
					{ID: "leave", Text: "Leave early", Effects: Effects{StatHappiness: -3}},
				}},
			},
		},
		{
			category: CategoryRandom, minAge: 8, maxAge: 0, weight: 0.6, cooldown: 1825,
			scenarios: []classicScenario{
				{"Stray Dog", "A scruffy dog follows you home.", []Choice{
					{ID: "adopt", Text: "Keep it", Effects: Effects{StatHappiness: 10, StatMoney: -200}},
					{ID: "shelter", Text: "Bring it to a shelter", Effects: Effects{StatHappiness: 2, StatReputation: 1}},
				}},
				{"Street Magician", "A magician picks you from the crowd.", []Choice{
					{ID: "play", Text: "Play along", Effects: Effects{StatHappiness: 5, StatPopularity: 2}},
					{ID: "heckle", Text: "Heckle them", Effects: Effects{StatPopularity: -3, StatHappiness: 1}},
				}},
				{"Flash Mob", "Strangers start dancing in the plaza.", []Choice{
					{ID: "dance", Text: "Join the dance", Effects: Effects{StatHappiness: 6, StatFitness: 1}, Requirements: map[Stat]int{StatFitness: 30}},
					{ID: "film", Text: "Film it for later", Effects: Effects{StatPopularity: 2}},
				}},
			},
		},
	}
	var out []Event
	for _, t := range templates {
		for _, sc := range t.scenarios {
			out = append(out, Event{
				Kind:         KindClassic,
				ID:           slugify(sc.title),
				Title:        sc.title,
				Description:  sc.description,
				Category:     t.category,
				MinAge:       t.minAge,
				MaxAge:       t.maxAge,
				Probability:  t.weight,
				CooldownDays: t.cooldown,
				Choices:      sc.choices,
			})
		}
	}
	return out
}

func slugify(raw string) string {
	raw = strings.ToLower(raw)
	var b strings.Builder
	underscore := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if underscore {
				b.WriteRune('_')
				underscore = false
			}
			b.WriteRune(r)
		case r == '&':
			if underscore {
				b.WriteRune('_')
				underscore = false
			}
			b.WriteString("and")
		default:
			underscore = true
		}
	}
	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "event"
	}
	return slug
}
