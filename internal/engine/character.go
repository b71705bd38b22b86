package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Character is the single mutable aggregate of a life. It serializes as one JSON document.
type Character struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    Gender `json:"gender"`
	BirthYear int    `json:"birthYear"`
	Age       int    `json:"age"`

	Health     int `json:"health"`
	Happiness  int `json:"happiness"`
	Smartness  int `json:"smartness"`
	Appearance int `json:"appearance"`
	Fitness    int `json:"fitness"`

	Money              int          `json:"money"`
	Education          string       `json:"education"`
	Job                string       `json:"job"`
	Salary             int          `json:"salary"`
	Housing            string       `json:"housing"`
	CurrentEducation   string       `json:"currentEducation,omitempty"`
	EducationYearsLeft int          `json:"educationYearsLeft,omitempty"`
	CareerLevel        int          `json:"careerLevel"`
	ExperiencePoints   int          `json:"experiencePoints"`
	Skills             []SkillLevel `json:"skills"`

	SocialStatus      SocialStatus   `json:"socialStatus"`
	PersonalityTraits []Trait        `json:"personalityTraits"`
	DatingProfile     DatingProfile  `json:"datingProfile"`
	MarriageStatus    MarriageStatus `json:"marriageStatus"`

	Family        []FamilyMember `json:"family"`
	Relationships []Relationship `json:"relationships"`
	Children      []Child        `json:"children"`

	LifeEvents     []LifeEvent       `json:"lifeEvents"`
	PendingEvents  []PendingEventRef `json:"pendingEvents"`
	Achievements   []string          `json:"achievements"`
	CriminalRecord []CrimeRecord     `json:"criminalRecord"`
	Assets         []OwnedAsset      `json:"assets"`
	EventHistory   []EventRecord     `json:"eventHistory"`

	IsIncarcerated     bool            `json:"isIncarcerated"`
	CurrentSentence    *PrisonSentence `json:"currentSentence,omitempty"`
	PrisonRecord       []PrisonRecord  `json:"prisonRecord,omitempty"`
	Reputation         LegalStanding   `json:"reputation"`
	LegalConsequences  []string        `json:"legalConsequences,omitempty"`
	CriminalExperience int             `json:"criminalExperience"`
}

type SkillLevel struct {
	ID       string        `json:"id"`
	Level    int           `json:"level"`
	Category SkillCategory `json:"category"`
}

type SocialStatus struct {
	Reputation  int         `json:"reputation"`
	SocialClass SocialClass `json:"socialClass"`
	Popularity  int         `json:"popularity"`
	NetworkSize int         `json:"networkSize"`
}

type DatingProfile struct {
	IsLooking      bool `json:"isLooking"`
	Attractiveness int  `json:"attractiveness"`
	PastPartners   int  `json:"pastPartners"`
}

type MarriageStatus struct {
	IsMarried         bool   `json:"isMarried"`
	SpouseID          string `json:"spouseId,omitempty"`
	MarriageYear      int    `json:"marriageYear,omitempty"`
	MarriageHappiness int    `json:"marriageHappiness"`
	DivorceRisk       int    `json:"divorceRisk"`
}

type FamilyMember struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Relationship      FamilyRelation `json:"relationship"`
	Age               int            `json:"age"`
	Alive             bool           `json:"alive"`
	RelationshipLevel int            `json:"relationshipLevel"`
}

type Relationship struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Type              RelationshipType `json:"type"`
	RelationshipLevel int              `json:"relationshipLevel"`
	IsActive          bool             `json:"isActive"`
}

type Child struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Gender                 Gender `json:"gender"`
	Age                    int    `json:"age"`
	Health                 int    `json:"health"`
	Happiness              int    `json:"happiness"`
	Smartness              int    `json:"smartness"`
	Appearance             int    `json:"appearance"`
	RelationshipWithParent int    `json:"relationshipWithParent"`
	Adopted                bool   `json:"adopted,omitempty"`
}

type LifeEvent struct {
	ID    string        `json:"id"`
	Year  int           `json:"year"`
	Age   int           `json:"age"`
	Event string        `json:"event"`
	Type  LifeEventType `json:"type"`
}

// PendingEventRef is a deferred chain event recorded for a later age.
type PendingEventRef struct {
	ID         string `json:"id"`
	EventID    string `json:"eventId"`
	TriggerAge int    `json:"triggerAge"`
}

type CrimeRecord struct {
	ID         string   `json:"id"`
	Crime      string   `json:"crime"`
	Year       int      `json:"year"`
	Age        int      `json:"age"`
	Caught     bool     `json:"caught"`
	Punishment string   `json:"punishment,omitempty"`
	Severity   Severity `json:"severity,omitempty"`
}

// EventRecord marks that an event was presented at a given age.
type EventRecord struct {
	EventID string    `json:"eventId"`
	Kind    EventKind `json:"kind"`
	Age     int       `json:"age"`
}

type LegalStanding struct {
	Legal    int `json:"legal"`
	Criminal int `json:"criminal"`
}

// Year is the in-game calendar year at the character's current age.
func (c Character) Year() int { return c.BirthYear + c.Age }

// Employed reports whether the character holds a paying job.
func (c Character) Employed() bool { return c.Job != "" && c.Job != JobUnemployed }

// Enrolled reports whether an education program is in progress.
func (c Character) Enrolled() bool { return c.CurrentEducation != "" }

// Clone returns a deep copy so transitions never alias their input.
func (c Character) Clone() Character {
	out := c
	out.Skills = append([]SkillLevel(nil), c.Skills...)
	out.PersonalityTraits = append([]Trait(nil), c.PersonalityTraits...)
	out.Family = append([]FamilyMember(nil), c.Family...)
	out.Relationships = append([]Relationship(nil), c.Relationships...)
	out.Children = append([]Child(nil), c.Children...)
	out.LifeEvents = append([]LifeEvent(nil), c.LifeEvents...)
	out.PendingEvents = append([]PendingEventRef(nil), c.PendingEvents...)
	out.Achievements = append([]string(nil), c.Achievements...)
	out.CriminalRecord = append([]CrimeRecord(nil), c.CriminalRecord...)
	out.Assets = append([]OwnedAsset(nil), c.Assets...)
	out.EventHistory = append([]EventRecord(nil), c.EventHistory...)
	out.PrisonRecord = append([]PrisonRecord(nil), c.PrisonRecord...)
	out.LegalConsequences = append([]string(nil), c.LegalConsequences...)
	for i := range out.Assets {
		out.Assets[i].StatEffects = cloneEffects(c.Assets[i].StatEffects)
	}
	if c.CurrentSentence != nil {
		s := *c.CurrentSentence
		s.BehaviorRecord = append([]BehaviorRating(nil), c.CurrentSentence.BehaviorRecord...)
		out.CurrentSentence = &s
	}
	return out
}

// Clamp stat into 0-100.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (c *Character) statPtr(s Stat) *int {
	switch s {
	case StatHealth:
		return &c.Health
	case StatHappiness:
		return &c.Happiness
	case StatSmartness:
		return &c.Smartness
	case StatAppearance:
		return &c.Appearance
	case StatFitness:
		return &c.Fitness
	case StatMoney:
		return &c.Money
	case StatReputation:
		return &c.SocialStatus.Reputation
	case StatPopularity:
		return &c.SocialStatus.Popularity
	case StatMarriageHappiness:
		return &c.MarriageStatus.MarriageHappiness
	}
	return nil
}

// StatValue returns the current value of s, or 0 for unknown stats.
func (c Character) StatValue(s Stat) int {
	if p := c.statPtr(s); p != nil {
		return *p
	}
	return 0
}

// adjust adds delta to s. Money floors at 0; every other stat clamps to 0-100.
// Unknown stats are ignored and reported as false.
func (c *Character) adjust(s Stat, delta int) bool {
	p := c.statPtr(s)
	if p == nil {
		return false
	}
	if s == StatMoney {
		*p = floorZero(*p + delta)
	} else {
		*p = Clamp(*p + delta)
	}
	return true
}

// logEvent appends one life event stamped with the current age and year.
func (c *Character) logEvent(text string, typ LifeEventType) {
	c.LifeEvents = append(c.LifeEvents, LifeEvent{
		ID:    fmt.Sprintf("life-%d", len(c.LifeEvents)+1),
		Year:  c.Year(),
		Age:   c.Age,
		Event: text,
		Type:  typ,
	})
}

func (c Character) hasAchievement(id string) bool {
	for _, a := range c.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func (c Character) ownsAsset(id string) bool {
	for _, a := range c.Assets {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (c Character) skill(id string) (SkillLevel, int) {
	for i, s := range c.Skills {
		if s.ID == id {
			return s, i
		}
	}
	return SkillLevel{}, -1
}

var maleNames = []string{"James", "Liam", "Noah", "Lucas", "Mateo", "Ethan", "Daniel", "Owen", "Samuel", "Leo"}
var femaleNames = []string{"Ava", "Emma", "Olivia", "Mia", "Sofia", "Chloe", "Grace", "Nora", "Lily", "Zoe"}
var surnames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Wilson", "Moore", "Taylor", "Anderson", "Thomas", "Jackson", "White"}

func randomFirstName(r Rand, g Gender) string {
	switch g {
	case GenderMale:
		return maleNames[r.Intn(len(maleNames))]
	case GenderFemale:
		return femaleNames[r.Intn(len(femaleNames))]
	}
	if r.Intn(2) == 0 {
		return maleNames[r.Intn(len(maleNames))]
	}
	return femaleNames[r.Intn(len(femaleNames))]
}

func randomGender(r Rand) Gender {
	if r.Intn(2) == 0 {
		return GenderMale
	}
	return GenderFemale
}

// RandomName draws a full name for gender g.
func RandomName(r Rand, g Gender) string {
	return randomFirstName(r, g) + " " + surnames[r.Intn(len(surnames))]
}

func familySurname(name string, r Rand) string {
	parts := strings.Fields(name)
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return surnames[r.Intn(len(surnames))]
}

func pickTraits(r Rand) []Trait {
	n := 2 + r.Intn(2)
	pool := ListTraits()
	traits := make([]Trait, 0, n)
	for len(traits) < n {
		i := r.Intn(len(pool))
		traits = append(traits, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return traits
}

// NewCharacter seeds a newborn: randomized stats, starting money, two parents and a birth entry.
func NewCharacter(r Rand, name string, gender Gender, birthYear int) Character {
	id, err := uuid.NewRandomFromReader(randReader{r})
	if err != nil {
		id = uuid.Nil
	}
	surname := familySurname(name, r)
	c := Character{
		ID:         id.String(),
		Name:       name,
		Gender:     gender,
		BirthYear:  birthYear,
		Age:        0,
		Health:     randBetween(r, 70, 100),
		Happiness:  randBetween(r, 70, 100),
		Smartness:  randBetween(r, 50, 100),
		Appearance: randBetween(r, 50, 100),
		Fitness:    randBetween(r, 70, 100),
		Money:      500 + r.Intn(1000),
		Education:  EducationNone,
		Job:        JobUnemployed,
		Housing:    HousingParents,
		SocialStatus: SocialStatus{
			Reputation:  50,
			SocialClass: ClassLower,
			Popularity:  50,
		},
		PersonalityTraits: pickTraits(r),
		MarriageStatus:    MarriageStatus{MarriageHappiness: 50},
		Reputation:        LegalStanding{Legal: 100},
	}
	c.Family = []FamilyMember{
		{ID: "father", Name: randomFirstName(r, GenderMale) + " " + surname, Relationship: FamilyFather, Age: 25 + r.Intn(15), Alive: true, RelationshipLevel: 70 + r.Intn(30)},
		{ID: "mother", Name: randomFirstName(r, GenderFemale) + " " + surname, Relationship: FamilyMother, Age: 25 + r.Intn(15), Alive: true, RelationshipLevel: 70 + r.Intn(30)},
	}
	c.DatingProfile.Attractiveness = Attractiveness(c)
	c.logEvent(fmt.Sprintf("%s was born!", name), LifePositive)
	return c
}
