package engine

// String backed enums for JSON and DB interoperability.

type Gender string
type Trait string
type Stat string
type SocialClass string
type RelationshipType string
type FamilyRelation string
type LifeEventType string
type AssetType string
type SkillCategory string
type CareerCategory string
type CrimeCategory string
type Severity string
type PrisonLevel string
type BehaviorRating string
type EventKind string
type EventCategory string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

const (
	TraitAmbitious   Trait = "ambitious"
	TraitCreative    Trait = "creative"
	TraitKind        Trait = "kind"
	TraitLazy        Trait = "lazy"
	TraitOutgoing    Trait = "outgoing"
	TraitShy         Trait = "shy"
	TraitRebellious  Trait = "rebellious"
	TraitDisciplined Trait = "disciplined"
	TraitAdventurous Trait = "adventurous"
	TraitCautious    Trait = "cautious"
)

var AllTraits = []Trait{TraitAmbitious, TraitCreative, TraitKind, TraitLazy, TraitOutgoing, TraitShy, TraitRebellious, TraitDisciplined, TraitAdventurous, TraitCautious}

// Stats addressable by effect maps. Core stats and percentage fields clamp to 0-100; money only floors at 0.
const (
	StatHealth            Stat = "health"
	StatHappiness         Stat = "happiness"
	StatSmartness         Stat = "smartness"
	StatAppearance        Stat = "appearance"
	StatFitness           Stat = "fitness"
	StatMoney             Stat = "money"
	StatReputation        Stat = "reputation"
	StatPopularity        Stat = "popularity"
	StatMarriageHappiness Stat = "marriageHappiness"
)

var AllStats = []Stat{StatHealth, StatHappiness, StatSmartness, StatAppearance, StatFitness, StatMoney, StatReputation, StatPopularity, StatMarriageHappiness}

var CoreStats = []Stat{StatHealth, StatHappiness, StatSmartness, StatAppearance, StatFitness}

const (
	ClassLower  SocialClass = "lower"
	ClassMiddle SocialClass = "middle"
	ClassUpper  SocialClass = "upper"
)

var AllSocialClasses = []SocialClass{ClassLower, ClassMiddle, ClassUpper}

const (
	RelFriend   RelationshipType = "friend"
	RelRomantic RelationshipType = "romantic"
	RelDating   RelationshipType = "dating"
	RelEnemy    RelationshipType = "enemy"
)

var AllRelationshipTypes = []RelationshipType{RelFriend, RelRomantic, RelDating, RelEnemy}

const (
	FamilyFather  FamilyRelation = "father"
	FamilyMother  FamilyRelation = "mother"
	FamilySibling FamilyRelation = "sibling"
	FamilySpouse  FamilyRelation = "spouse"
)

var AllFamilyRelations = []FamilyRelation{FamilyFather, FamilyMother, FamilySibling, FamilySpouse}

const (
	LifePositive LifeEventType = "positive"
	LifeNegative LifeEventType = "negative"
	LifeNeutral  LifeEventType = "neutral"
)

var AllLifeEventTypes = []LifeEventType{LifePositive, LifeNegative, LifeNeutral}

const (
	AssetVehicle    AssetType = "vehicle"
	AssetProperty   AssetType = "property"
	AssetInvestment AssetType = "investment"
	AssetLuxury     AssetType = "luxury_good"
	AssetBusiness   AssetType = "business"
)

var AllAssetTypes = []AssetType{AssetVehicle, AssetProperty, AssetInvestment, AssetLuxury, AssetBusiness}

const (
	SkillTechnology    SkillCategory = "technology"
	SkillCommunication SkillCategory = "communication"
	SkillCreative      SkillCategory = "creative"
	SkillBusiness      SkillCategory = "business"
	SkillPhysical      SkillCategory = "physical"
	SkillPractical     SkillCategory = "practical"
)

var AllSkillCategories = []SkillCategory{SkillTechnology, SkillCommunication, SkillCreative, SkillBusiness, SkillPhysical, SkillPractical}

const (
	CareerEntry        CareerCategory = "entry"
	CareerProfessional CareerCategory = "professional"
	CareerCreative     CareerCategory = "creative"
	CareerTrade        CareerCategory = "trade"
	CareerMedical      CareerCategory = "medical"
	CareerBusiness     CareerCategory = "business"
)

var AllCareerCategories = []CareerCategory{CareerEntry, CareerProfessional, CareerCreative, CareerTrade, CareerMedical, CareerBusiness}

const (
	CrimePetty       CrimeCategory = "petty"
	CrimeProperty    CrimeCategory = "property"
	CrimeViolent     CrimeCategory = "violent"
	CrimeWhiteCollar CrimeCategory = "white_collar"
)

var AllCrimeCategories = []CrimeCategory{CrimePetty, CrimeProperty, CrimeViolent, CrimeWhiteCollar}

const (
	SeverityMisdemeanor Severity = "misdemeanor"
	SeverityFelony      Severity = "felony"
)

const (
	PrisonMinimum PrisonLevel = "minimum"
	PrisonMedium  PrisonLevel = "medium"
	PrisonMaximum PrisonLevel = "maximum"
)

var AllPrisonLevels = []PrisonLevel{PrisonMinimum, PrisonMedium, PrisonMaximum}

const (
	BehaviorGood    BehaviorRating = "good"
	BehaviorNeutral BehaviorRating = "neutral"
	BehaviorBad     BehaviorRating = "bad"
)

const (
	KindMajor    EventKind = "major"
	KindClassic  EventKind = "classic"
	KindEnhanced EventKind = "enhanced"
)

var AllEventKinds = []EventKind{KindMajor, KindClassic, KindEnhanced}

const (
	CategoryCareer      EventCategory = "career"
	CategoryEducational EventCategory = "educational"
	CategoryFinancial   EventCategory = "financial"
	CategorySocial      EventCategory = "social"
	CategoryHealth      EventCategory = "health"
	CategoryFamily      EventCategory = "family"
	CategoryRandom      EventCategory = "random"
)

var AllEventCategories = []EventCategory{CategoryCareer, CategoryEducational, CategoryFinancial, CategorySocial, CategoryHealth, CategoryFamily, CategoryRandom}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (g Gender) Validate() bool           { return contains(AllGenders, g) }
func (t Trait) Validate() bool            { return contains(AllTraits, t) }
func (s Stat) Validate() bool             { return contains(AllStats, s) }
func (c SocialClass) Validate() bool      { return contains(AllSocialClasses, c) }
func (r RelationshipType) Validate() bool { return contains(AllRelationshipTypes, r) }
func (a AssetType) Validate() bool        { return contains(AllAssetTypes, a) }
func (k EventKind) Validate() bool        { return contains(AllEventKinds, k) }
func (p PrisonLevel) Validate() bool      { return contains(AllPrisonLevels, p) }

// ParseGender maps free text onto a Gender, defaulting to other.
func ParseGender(raw string) Gender {
	g := Gender(raw)
	if g.Validate() {
		return g
	}
	switch raw {
	case "m", "M", "Male":
		return GenderMale
	case "f", "F", "Female":
		return GenderFemale
	}
	return GenderOther
}

// List helpers
func ListTraits() []Trait { return append([]Trait{}, AllTraits...) }
