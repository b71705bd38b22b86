package engine

import (
	"fmt"
)

const (
	skillTrainingCost = 500
	skillTrainingGain = 15
	skillTrainingXP   = 5
	babyChance        = 40
	adoptionFee       = 5000
	adoptionMinAge    = 21
	datingMinAge      = 16
)

// Action is the closed set of player-initiated mutations outside the tick.
type Action interface {
	Type() string
	sealed()
}

type StartEducation struct{ EducationID string }
type ChangeJob struct {
	CareerID       string
	HappinessBoost int
}
type BuyHousing struct{ HousingID string }
type BuyAsset struct{ AssetID string }
type SellAsset struct{ AssetID string }
type TrainSkill struct{ SkillID string }
type Promote struct{}
type CommitCrime struct{ CrimeID string }
type JoinActivity struct{ ActivityID string }

// StartDating opens a dating relationship. An empty Name draws one.
type StartDating struct{ Name string }

// ProposeMarriage proposes to a dating partner. An empty PartnerID picks the closest one.
type ProposeMarriage struct{ PartnerID string }
type TryForBaby struct{}
type AdoptChild struct{ Name string }
type ParoleHearing struct{}
type Appeal struct{}
type AttemptEscape struct{}

// StatDelta is the generic effect map, applied with the usual clamping.
type StatDelta struct {
	Effects Effects
	Message string
}

func (StartEducation) Type() string  { return "start_education" }
func (ChangeJob) Type() string       { return "change_job" }
func (BuyHousing) Type() string      { return "buy_housing" }
func (BuyAsset) Type() string        { return "buy_asset" }
func (SellAsset) Type() string       { return "sell_asset" }
func (TrainSkill) Type() string      { return "train_skill" }
func (Promote) Type() string         { return "promotion" }
func (CommitCrime) Type() string     { return "commit_crime" }
func (JoinActivity) Type() string    { return "social_activity" }
func (StartDating) Type() string     { return "start_dating" }
func (ProposeMarriage) Type() string { return "propose_marriage" }
func (TryForBaby) Type() string      { return "try_for_baby" }
func (AdoptChild) Type() string      { return "adopt_child" }
func (ParoleHearing) Type() string   { return "parole_hearing" }
func (Appeal) Type() string          { return "appeal" }
func (AttemptEscape) Type() string   { return "attempt_escape" }
func (StatDelta) Type() string       { return "stat_delta" }

func (StartEducation) sealed()  {}
func (ChangeJob) sealed()       {}
func (BuyHousing) sealed()      {}
func (BuyAsset) sealed()        {}
func (SellAsset) sealed()       {}
func (TrainSkill) sealed()      {}
func (Promote) sealed()         {}
func (CommitCrime) sealed()     {}
func (JoinActivity) sealed()    {}
func (StartDating) sealed()     {}
func (ProposeMarriage) sealed() {}
func (TryForBaby) sealed()      {}
func (AdoptChild) sealed()      {}
func (ParoleHearing) sealed()   {}
func (Appeal) sealed()          {}
func (AttemptEscape) sealed()   {}
func (StatDelta) sealed()       {}

// Dispatch applies a to a copy of c. On error the input is returned unchanged.
func Dispatch(c Character, a Action, r Rand) (Character, error) {
	next := c.Clone()
	if err := apply(&next, a, r); err != nil {
		return c, err
	}
	return next, nil
}

func apply(c *Character, a Action, r Rand) error {
	switch act := a.(type) {
	case ParoleHearing:
		return paroleHearing(c, r)
	case Appeal:
		return appeal(c, r)
	case AttemptEscape:
		return attemptEscape(c, r)
	case StatDelta:
		applyEffects(c, act.Effects)
		if act.Message != "" {
			c.logEvent(act.Message, LifeNeutral)
		}
		return nil
	}
	if c.IsIncarcerated {
		return declined(CodeIncarcerated, "cannot %s while incarcerated", a.Type())
	}
	switch act := a.(type) {
	case StartEducation:
		return startEducation(c, act)
	case ChangeJob:
		return changeJob(c, act)
	case BuyHousing:
		return buyHousing(c, act)
	case BuyAsset:
		return buyAsset(c, act)
	case SellAsset:
		return sellAsset(c, act)
	case TrainSkill:
		return trainSkill(c, act)
	case Promote:
		return promote(c, r)
	case CommitCrime:
		crime, ok := CrimeByID(act.CrimeID)
		if !ok {
			return unknown("crime", act.CrimeID)
		}
		_, err := commitCrime(c, crime, r)
		return err
	case JoinActivity:
		return joinActivity(c, act)
	case StartDating:
		return startDating(c, act, r)
	case ProposeMarriage:
		return proposeMarriage(c, act, r)
	case TryForBaby:
		return tryForBaby(c, r)
	case AdoptChild:
		return adoptChild(c, act, r)
	}
	return unknown("action", a.Type())
}

func unknown(kind, id string) error {
	return declined(CodeUnknownContent, "unknown %s %q", kind, id)
}

func insufficient(need int) error {
	return declined(CodeInsufficientFunds, "need $%d", need)
}

func educationEligible(c Character, lvl EducationLevel) error {
	if c.Enrolled() {
		return declined(CodeAlreadyEnrolled, "already enrolled in %s", c.CurrentEducation)
	}
	if c.Education == lvl.ID || educationRank(c.Education) > lvl.Rank {
		return declined(CodeNotEligible, "already completed %s", lvl.Name)
	}
	if c.Age < lvl.MinAge {
		return declined(CodeNotEligible, "must be %d to enroll in %s", lvl.MinAge, lvl.Name)
	}
	if !hasCompleted(c.Education, lvl.Prerequisite) {
		return declined(CodeNotEligible, "%s requires %s", lvl.Name, lvl.Prerequisite)
	}
	return nil
}

func startEducation(c *Character, act StartEducation) error {
	lvl, ok := EducationByID(act.EducationID)
	if !ok || lvl.ID == EducationNone {
		return unknown("education", act.EducationID)
	}
	if err := educationEligible(*c, lvl); err != nil {
		return err
	}
	if c.Money < lvl.Cost {
		return insufficient(lvl.Cost)
	}
	c.Money -= lvl.Cost
	c.CurrentEducation = lvl.ID
	c.EducationYearsLeft = lvl.Years
	applyEffects(c, lvl.StatBoosts)
	c.logEvent(fmt.Sprintf("Enrolled in %s.", lvl.Name), LifeNeutral)
	return nil
}

func careerEligible(c Character, career Career) error {
	if c.Age < career.MinAge {
		return declined(CodeNotEligible, "must be %d to work as %s", career.MinAge, career.Name)
	}
	if !hasCompleted(c.Education, career.RequiredEducation) {
		return declined(CodeNotEligible, "%s requires %s", career.Name, career.RequiredEducation)
	}
	return nil
}

func changeJob(c *Character, act ChangeJob) error {
	career, ok := CareerByID(act.CareerID)
	if !ok {
		return unknown("career", act.CareerID)
	}
	if c.Job == career.ID {
		return declined(CodeNotEligible, "already working as %s", career.Name)
	}
	if err := careerEligible(*c, career); err != nil {
		return err
	}
	c.Job = career.ID
	c.Salary = career.BaseSalary
	c.CareerLevel = 0
	if act.HappinessBoost != 0 {
		c.adjust(StatHappiness, act.HappinessBoost)
	}
	if career.ID == JobUnemployed {
		c.logEvent("Quit your job.", LifeNeutral)
		return nil
	}
	c.logEvent(fmt.Sprintf("Started working as a %s.", career.Name), LifeNeutral)
	return nil
}

func buyHousing(c *Character, act BuyHousing) error {
	h, ok := HousingByID(act.HousingID)
	if !ok {
		return unknown("housing", act.HousingID)
	}
	if c.Housing == h.ID {
		return declined(CodeAlreadyOwned, "already living in %s", h.Name)
	}
	if c.Money < h.Cost {
		return insufficient(h.Cost)
	}
	c.Money -= h.Cost
	c.Housing = h.ID
	applyEffects(c, h.StatEffects)
	c.logEvent(fmt.Sprintf("Moved into a %s.", h.Name), LifeNeutral)
	return nil
}

func buyAsset(c *Character, act BuyAsset) error {
	a, ok := AssetByID(act.AssetID)
	if !ok {
		return unknown("asset", act.AssetID)
	}
	if c.Age < a.MinAgeToAcquire {
		return declined(CodeNotEligible, "must be %d to buy %s", a.MinAgeToAcquire, a.Name)
	}
	if c.ownsAsset(a.ID) {
		return declined(CodeAlreadyOwned, "already own %s", a.Name)
	}
	if c.Money < a.PurchasePrice {
		return insufficient(a.PurchasePrice)
	}
	c.Money -= a.PurchasePrice
	owned := OwnedAsset{Asset: a, PurchaseYear: c.Year(), CurrentValue: a.PurchasePrice}
	owned.StatEffects = cloneEffects(a.StatEffects)
	c.Assets = append(c.Assets, owned)
	applyEffects(c, a.StatEffects)
	c.logEvent(fmt.Sprintf("Bought %s for $%d.", a.Name, a.PurchasePrice), LifeNeutral)
	return nil
}

func sellAsset(c *Character, act SellAsset) error {
	for i, a := range c.Assets {
		if a.ID != act.AssetID {
			continue
		}
		c.Money += a.CurrentValue
		c.Assets = append(c.Assets[:i:i], c.Assets[i+1:]...)
		c.logEvent(fmt.Sprintf("Sold %s for $%d.", a.Name, a.CurrentValue), LifeNeutral)
		return nil
	}
	return declined(CodeNotOwned, "you do not own %q", act.AssetID)
}

func trainSkill(c *Character, act TrainSkill) error {
	sk, ok := SkillByID(act.SkillID)
	if !ok {
		return unknown("skill", act.SkillID)
	}
	if c.Age < sk.MinAge {
		return declined(CodeNotEligible, "must be %d to learn %s", sk.MinAge, sk.Name)
	}
	cur, idx := c.skill(sk.ID)
	if idx >= 0 && cur.Level >= 100 {
		return declined(CodeMaxLevel, "%s is already maxed out", sk.Name)
	}
	if c.Money < skillTrainingCost {
		return insufficient(skillTrainingCost)
	}
	c.Money -= skillTrainingCost
	level := cur.Level + skillTrainingGain
	if level > 100 {
		level = 100
	}
	if idx >= 0 {
		c.Skills[idx].Level = level
	} else {
		c.Skills = append(c.Skills, SkillLevel{ID: sk.ID, Level: level, Category: sk.Category})
	}
	c.ExperiencePoints += skillTrainingXP
	c.logEvent(fmt.Sprintf("Trained %s to level %d.", sk.Name, level), LifeNeutral)
	return nil
}

func promote(c *Character, r Rand) error {
	if !c.Employed() {
		return declined(CodeNotEligible, "you need a job to get promoted")
	}
	need := PromotionThreshold(c.CareerLevel)
	if c.ExperiencePoints < need {
		return declined(CodeInsufficientExperience, "need %d experience, have %d", need, c.ExperiencePoints)
	}
	if !percent(r, PromotionChance(*c)) {
		c.logEvent("Asked for a promotion and was turned down.", LifeNeutral)
		return nil
	}
	c.CareerLevel++
	c.Salary += c.Salary * 15 / 100
	c.ExperiencePoints = 0
	c.adjust(StatHappiness, 20)
	c.logEvent(fmt.Sprintf("Promoted to level %d! Salary is now $%d.", c.CareerLevel, c.Salary), LifeNeutral)
	return nil
}

func joinActivity(c *Character, act JoinActivity) error {
	a, ok := SocialActivityByID(act.ActivityID)
	if !ok {
		return unknown("activity", act.ActivityID)
	}
	if c.Age < a.MinAge {
		return declined(CodeNotEligible, "must be %d to %s", a.MinAge, a.Name)
	}
	if c.Money < a.Cost {
		return insufficient(a.Cost)
	}
	c.Money -= a.Cost
	applyEffects(c, a.Effects)
	c.adjust(StatPopularity, a.PopularityGain)
	c.SocialStatus.NetworkSize += a.NetworkGain
	c.logEvent(fmt.Sprintf("You %s.", a.Message), LifeNeutral)
	return nil
}

func (c Character) nextID(prefix string, n int) string { return fmt.Sprintf("%s-%d", prefix, n+1) }

func startDating(c *Character, act StartDating, r Rand) error {
	if c.Age < datingMinAge {
		return declined(CodeNotEligible, "must be %d to date", datingMinAge)
	}
	if c.MarriageStatus.IsMarried {
		return declined(CodeAlreadyMarried, "you are married")
	}
	name := act.Name
	if name == "" {
		name = RandomName(r, GenderOther)
	}
	level := 40 + r.Intn(30)
	if c.DatingProfile.Attractiveness >= 70 {
		level += 10
	}
	c.Relationships = append(c.Relationships, Relationship{
		ID:                c.nextID("rel", len(c.LifeEvents)),
		Name:              name,
		Type:              RelDating,
		RelationshipLevel: Clamp(level),
		IsActive:          true,
	})
	c.DatingProfile.IsLooking = false
	c.adjust(StatHappiness, 5)
	c.logEvent(fmt.Sprintf("Started dating %s.", name), LifeNeutral)
	return nil
}

func (c Character) partner(id string) int {
	best := -1
	for i, rel := range c.Relationships {
		if !rel.IsActive || (rel.Type != RelDating && rel.Type != RelRomantic) {
			continue
		}
		if id != "" {
			if rel.ID == id {
				return i
			}
			continue
		}
		if best < 0 || rel.RelationshipLevel > c.Relationships[best].RelationshipLevel {
			best = i
		}
	}
	return best
}

func proposeMarriage(c *Character, act ProposeMarriage, r Rand) error {
	if c.MarriageStatus.IsMarried {
		return declined(CodeAlreadyMarried, "you are already married")
	}
	idx := c.partner(act.PartnerID)
	if idx < 0 {
		return declined(CodeNotEligible, "no partner to propose to")
	}
	rel := c.Relationships[idx]
	if !percent(r, float64(rel.RelationshipLevel)) {
		c.Relationships[idx].RelationshipLevel = Clamp(rel.RelationshipLevel - 20)
		c.adjust(StatHappiness, -10)
		c.logEvent(fmt.Sprintf("%s turned down your proposal.", rel.Name), LifeNeutral)
		return nil
	}
	c.Relationships = append(c.Relationships[:idx:idx], c.Relationships[idx+1:]...)
	c.Family = append(c.Family, FamilyMember{
		ID:                rel.ID,
		Name:              rel.Name,
		Relationship:      FamilySpouse,
		Age:               c.Age,
		Alive:             true,
		RelationshipLevel: rel.RelationshipLevel,
	})
	c.MarriageStatus = MarriageStatus{
		IsMarried:         true,
		SpouseID:          rel.ID,
		MarriageYear:      c.Year(),
		MarriageHappiness: Clamp(rel.RelationshipLevel + 10),
	}
	c.adjust(StatHappiness, 15)
	c.logEvent(fmt.Sprintf("Married %s!", rel.Name), LifeNeutral)
	return nil
}

func spouseDeceased(c Character) bool {
	for _, f := range c.Family {
		if f.ID == c.MarriageStatus.SpouseID {
			return !f.Alive
		}
	}
	return false
}

func newChild(c *Character, r Rand, name string, age int, adopted bool) Child {
	g := randomGender(r)
	if name == "" {
		name = randomFirstName(r, g)
	}
	return Child{
		ID:                     c.nextID("child", len(c.Children)),
		Name:                   name,
		Gender:                 g,
		Age:                    age,
		Health:                 randBetween(r, 60, 100),
		Happiness:              randBetween(r, 60, 100),
		Smartness:              randBetween(r, 30, 100),
		Appearance:             randBetween(r, 30, 100),
		RelationshipWithParent: randBetween(r, 70, 100),
		Adopted:                adopted,
	}
}

func tryForBaby(c *Character, r Rand) error {
	if !c.MarriageStatus.IsMarried {
		return declined(CodeNotMarried, "you need to be married")
	}
	if spouseDeceased(*c) {
		return declined(CodeNotMarried, "your spouse has passed away")
	}
	if !percent(r, babyChance) {
		c.logEvent("You tried for a baby, but no luck this time.", LifeNeutral)
		return nil
	}
	child := newChild(c, r, "", 0, false)
	c.Children = append(c.Children, child)
	c.adjust(StatHappiness, 10)
	c.logEvent(fmt.Sprintf("Welcomed a baby, %s!", child.Name), LifeNeutral)
	return nil
}

func adoptChild(c *Character, act AdoptChild, r Rand) error {
	if c.Age < adoptionMinAge {
		return declined(CodeNotEligible, "must be %d to adopt", adoptionMinAge)
	}
	if c.Money < adoptionFee {
		return insufficient(adoptionFee)
	}
	c.Money -= adoptionFee
	child := newChild(c, r, act.Name, r.Intn(11), true)
	c.Children = append(c.Children, child)
	c.adjust(StatHappiness, 10)
	c.logEvent(fmt.Sprintf("Adopted %s, age %d.", child.Name, child.Age), LifeNeutral)
	return nil
}
