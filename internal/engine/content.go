package engine

// Static content tables. Balance constants live here and nowhere else.

// Effects is a sparse signed delta per stat.
type Effects map[Stat]int

func cloneEffects(src Effects) Effects {
	if src == nil {
		return nil
	}
	out := make(Effects, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

const (
	JobUnemployed  = "unemployed"
	EducationNone  = "none"
	HousingParents = "parents_house"
)

type Career struct {
	ID                string
	Name              string
	Category          CareerCategory
	MinAge            int
	RequiredEducation string
	BaseSalary        int
	SkillCategory     SkillCategory
}

var Careers = []Career{
	{ID: JobUnemployed, Name: "Unemployed", Category: CareerEntry, MinAge: 0, RequiredEducation: EducationNone},
	{ID: "fast_food_worker", Name: "Fast Food Worker", Category: CareerEntry, MinAge: 16, RequiredEducation: EducationNone, BaseSalary: 18000, SkillCategory: SkillPractical},
	{ID: "retail_clerk", Name: "Retail Clerk", Category: CareerEntry, MinAge: 16, RequiredEducation: EducationNone, BaseSalary: 22000, SkillCategory: SkillCommunication},
	{ID: "electrician", Name: "Electrician", Category: CareerTrade, MinAge: 18, RequiredEducation: "trade_school", BaseSalary: 52000, SkillCategory: SkillPractical},
	{ID: "mechanic", Name: "Mechanic", Category: CareerTrade, MinAge: 18, RequiredEducation: "high_school", BaseSalary: 42000, SkillCategory: SkillPractical},
	{ID: "graphic_designer", Name: "Graphic Designer", Category: CareerCreative, MinAge: 18, RequiredEducation: "community_college", BaseSalary: 48000, SkillCategory: SkillCreative},
	{ID: "musician", Name: "Musician", Category: CareerCreative, MinAge: 16, RequiredEducation: EducationNone, BaseSalary: 25000, SkillCategory: SkillCreative},
	{ID: "teacher", Name: "Teacher", Category: CareerProfessional, MinAge: 22, RequiredEducation: "university", BaseSalary: 45000, SkillCategory: SkillCommunication},
	{ID: "software_engineer", Name: "Software Engineer", Category: CareerProfessional, MinAge: 21, RequiredEducation: "university", BaseSalary: 95000, SkillCategory: SkillTechnology},
	{ID: "accountant", Name: "Accountant", Category: CareerBusiness, MinAge: 22, RequiredEducation: "university", BaseSalary: 65000, SkillCategory: SkillBusiness},
	{ID: "nurse", Name: "Nurse", Category: CareerMedical, MinAge: 21, RequiredEducation: "university", BaseSalary: 70000, SkillCategory: SkillCommunication},
	{ID: "lawyer", Name: "Lawyer", Category: CareerProfessional, MinAge: 25, RequiredEducation: "law_school", BaseSalary: 130000, SkillCategory: SkillCommunication},
	{ID: "doctor", Name: "Doctor", Category: CareerMedical, MinAge: 26, RequiredEducation: "medical_school", BaseSalary: 210000, SkillCategory: SkillTechnology},
	{ID: "executive", Name: "Executive", Category: CareerBusiness, MinAge: 30, RequiredEducation: "masters", BaseSalary: 180000, SkillCategory: SkillBusiness},
}

type EducationLevel struct {
	ID           string
	Name         string
	Rank         int
	MinAge       int
	Years        int
	Cost         int
	Prerequisite string
	StatBoosts   Effects
}

var EducationLevels = []EducationLevel{
	{ID: EducationNone, Name: "No Formal Education", Rank: 0},
	{ID: "high_school", Name: "High School", Rank: 1, MinAge: 14, Years: 4, Cost: 0, StatBoosts: Effects{StatSmartness: 5}},
	{ID: "trade_school", Name: "Trade School", Rank: 2, MinAge: 17, Years: 2, Cost: 12000, Prerequisite: "high_school", StatBoosts: Effects{StatSmartness: 3, StatFitness: 2}},
	{ID: "community_college", Name: "Community College", Rank: 2, MinAge: 17, Years: 2, Cost: 8000, Prerequisite: "high_school", StatBoosts: Effects{StatSmartness: 5}},
	{ID: "university", Name: "University", Rank: 3, MinAge: 17, Years: 4, Cost: 40000, Prerequisite: "high_school", StatBoosts: Effects{StatSmartness: 10, StatHappiness: 5}},
	{ID: "masters", Name: "Master's Degree", Rank: 4, MinAge: 21, Years: 2, Cost: 30000, Prerequisite: "university", StatBoosts: Effects{StatSmartness: 8}},
	{ID: "law_school", Name: "Law School", Rank: 4, MinAge: 21, Years: 3, Cost: 90000, Prerequisite: "university", StatBoosts: Effects{StatSmartness: 10, StatHappiness: -5}},
	{ID: "medical_school", Name: "Medical School", Rank: 4, MinAge: 21, Years: 4, Cost: 120000, Prerequisite: "university", StatBoosts: Effects{StatSmartness: 12, StatHappiness: -5}},
	{ID: "phd", Name: "Doctorate", Rank: 5, MinAge: 23, Years: 5, Cost: 20000, Prerequisite: "masters", StatBoosts: Effects{StatSmartness: 15}},
}

type Housing struct {
	ID          string
	Name        string
	Cost        int
	MonthlyCost int
	StatEffects Effects
}

var HousingOptions = []Housing{
	{ID: HousingParents, Name: "Parents' House"},
	{ID: "shared_room", Name: "Shared Room", Cost: 500, MonthlyCost: 400, StatEffects: Effects{StatHappiness: 2}},
	{ID: "studio_apartment", Name: "Studio Apartment", Cost: 2000, MonthlyCost: 900, StatEffects: Effects{StatHappiness: 5}},
	{ID: "apartment", Name: "Two-Bedroom Apartment", Cost: 5000, MonthlyCost: 1500, StatEffects: Effects{StatHappiness: 8}},
	{ID: "suburban_house", Name: "Suburban House", Cost: 60000, MonthlyCost: 2200, StatEffects: Effects{StatHappiness: 12}},
	{ID: "luxury_condo", Name: "Luxury Condo", Cost: 150000, MonthlyCost: 4000, StatEffects: Effects{StatHappiness: 15, StatReputation: 5}},
	{ID: "mansion", Name: "Mansion", Cost: 800000, MonthlyCost: 9000, StatEffects: Effects{StatHappiness: 20, StatReputation: 15}},
}

// Asset is a purchasable template; OwnedAsset is the copy-on-purchase instance.
type Asset struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Type               AssetType `json:"type"`
	PurchasePrice      int       `json:"purchasePrice"`
	MonthlyMaintenance int       `json:"monthlyMaintenance"`
	MonthlyIncome      int       `json:"monthlyIncome"`
	MinAgeToAcquire    int       `json:"minAgeToAcquire"`
	StatEffects        Effects   `json:"statEffectsOnPurchase,omitempty"`
	AverageGrowth      float64   `json:"averageAnnualGrowth"`
	Volatility         float64   `json:"volatility"`
}

type OwnedAsset struct {
	Asset
	PurchaseYear int `json:"purchaseYear"`
	CurrentValue int `json:"currentValue"`
}

var Assets = []Asset{
	{ID: "used_car", Name: "Used Car", Type: AssetVehicle, PurchasePrice: 6000, MonthlyMaintenance: 150, MinAgeToAcquire: 16, StatEffects: Effects{StatHappiness: 5}, AverageGrowth: -0.12, Volatility: 0.05},
	{ID: "sports_car", Name: "Sports Car", Type: AssetVehicle, PurchasePrice: 90000, MonthlyMaintenance: 600, MinAgeToAcquire: 18, StatEffects: Effects{StatHappiness: 15, StatPopularity: 10}, AverageGrowth: -0.08, Volatility: 0.08},
	{ID: "rental_property", Name: "Rental Property", Type: AssetProperty, PurchasePrice: 250000, MonthlyMaintenance: 400, MonthlyIncome: 1800, MinAgeToAcquire: 18, AverageGrowth: 0.04, Volatility: 0.06},
	{ID: "vacation_home", Name: "Vacation Home", Type: AssetProperty, PurchasePrice: 400000, MonthlyMaintenance: 1200, MinAgeToAcquire: 21, StatEffects: Effects{StatHappiness: 12}, AverageGrowth: 0.03, Volatility: 0.07},
	{ID: "index_fund", Name: "Index Fund", Type: AssetInvestment, PurchasePrice: 10000, MinAgeToAcquire: 18, AverageGrowth: 0.07, Volatility: 0.15},
	{ID: "tech_stocks", Name: "Tech Stocks", Type: AssetInvestment, PurchasePrice: 25000, MinAgeToAcquire: 18, AverageGrowth: 0.1, Volatility: 0.3},
	{ID: "government_bonds", Name: "Government Bonds", Type: AssetInvestment, PurchasePrice: 5000, MinAgeToAcquire: 18, AverageGrowth: 0.03, Volatility: 0.02},
	{ID: "cryptocurrency", Name: "Cryptocurrency", Type: AssetInvestment, PurchasePrice: 5000, MinAgeToAcquire: 18, AverageGrowth: 0.15, Volatility: 0.6},
	{ID: "designer_watch", Name: "Designer Watch", Type: AssetLuxury, PurchasePrice: 15000, MinAgeToAcquire: 16, StatEffects: Effects{StatAppearance: 3, StatPopularity: 5}, AverageGrowth: 0.02, Volatility: 0.05},
	{ID: "art_collection", Name: "Art Collection", Type: AssetLuxury, PurchasePrice: 120000, MonthlyMaintenance: 100, MinAgeToAcquire: 21, StatEffects: Effects{StatReputation: 5}, AverageGrowth: 0.05, Volatility: 0.2},
	{ID: "food_truck", Name: "Food Truck", Type: AssetBusiness, PurchasePrice: 45000, MonthlyMaintenance: 800, MonthlyIncome: 2500, MinAgeToAcquire: 18, AverageGrowth: -0.02, Volatility: 0.1},
	{ID: "coffee_shop", Name: "Coffee Shop", Type: AssetBusiness, PurchasePrice: 180000, MonthlyMaintenance: 3000, MonthlyIncome: 6500, MinAgeToAcquire: 21, StatEffects: Effects{StatReputation: 3}, AverageGrowth: 0.01, Volatility: 0.15},
}

type Crime struct {
	ID              string
	Name            string
	Category        CrimeCategory
	MinAge          int
	BaseSuccessRate float64
	ArrestChance    float64
	BasePayout      int
	MaxPayout       int
	RequiredStats   map[Stat]int
	JailMonths      [2]int
	Fine            [2]int
}

var Crimes = []Crime{
	{ID: "shoplifting", Name: "Shoplifting", Category: CrimePetty, MinAge: 10, BaseSuccessRate: 75, ArrestChance: 20, BasePayout: 20, MaxPayout: 200, JailMonths: [2]int{0, 1}, Fine: [2]int{100, 500}},
	{ID: "pickpocketing", Name: "Pickpocketing", Category: CrimePetty, MinAge: 12, BaseSuccessRate: 65, ArrestChance: 20, BasePayout: 50, MaxPayout: 400, RequiredStats: map[Stat]int{StatFitness: 40}, JailMonths: [2]int{0, 2}, Fine: [2]int{200, 800}},
	{ID: "car_theft", Name: "Grand Theft Auto", Category: CrimeProperty, MinAge: 16, BaseSuccessRate: 50, ArrestChance: 35, BasePayout: 2000, MaxPayout: 12000, RequiredStats: map[Stat]int{StatSmartness: 40, StatFitness: 50}, JailMonths: [2]int{6, 36}, Fine: [2]int{1000, 5000}},
	{ID: "burglary", Name: "Burglary", Category: CrimeProperty, MinAge: 16, BaseSuccessRate: 55, ArrestChance: 30, BasePayout: 1000, MaxPayout: 8000, RequiredStats: map[Stat]int{StatFitness: 50}, JailMonths: [2]int{12, 48}, Fine: [2]int{1000, 4000}},
	{ID: "mugging", Name: "Mugging", Category: CrimeViolent, MinAge: 16, BaseSuccessRate: 55, ArrestChance: 40, BasePayout: 100, MaxPayout: 1500, RequiredStats: map[Stat]int{StatFitness: 60}, JailMonths: [2]int{12, 60}, Fine: [2]int{500, 3000}},
	{ID: "fraud", Name: "Insurance Fraud", Category: CrimeWhiteCollar, MinAge: 18, BaseSuccessRate: 45, ArrestChance: 25, BasePayout: 5000, MaxPayout: 50000, RequiredStats: map[Stat]int{StatSmartness: 70}, JailMonths: [2]int{12, 60}, Fine: [2]int{5000, 25000}},
	{ID: "embezzlement", Name: "Embezzlement", Category: CrimeWhiteCollar, MinAge: 21, BaseSuccessRate: 40, ArrestChance: 30, BasePayout: 20000, MaxPayout: 200000, RequiredStats: map[Stat]int{StatSmartness: 75}, JailMonths: [2]int{24, 96}, Fine: [2]int{20000, 100000}},
	{ID: "bank_robbery", Name: "Bank Robbery", Category: CrimeViolent, MinAge: 18, BaseSuccessRate: 25, ArrestChance: 60, BasePayout: 20000, MaxPayout: 150000, RequiredStats: map[Stat]int{StatFitness: 70, StatSmartness: 60}, JailMonths: [2]int{60, 180}, Fine: [2]int{10000, 50000}},
}

type Skill struct {
	ID       string
	Name     string
	Category SkillCategory
	MinAge   int
}

var Skills = []Skill{
	{ID: "programming", Name: "Programming", Category: SkillTechnology, MinAge: 10},
	{ID: "electronics", Name: "Electronics", Category: SkillTechnology, MinAge: 12},
	{ID: "public_speaking", Name: "Public Speaking", Category: SkillCommunication, MinAge: 12},
	{ID: "foreign_language", Name: "Foreign Language", Category: SkillCommunication, MinAge: 6},
	{ID: "painting", Name: "Painting", Category: SkillCreative, MinAge: 6},
	{ID: "guitar", Name: "Guitar", Category: SkillCreative, MinAge: 8},
	{ID: "negotiation", Name: "Negotiation", Category: SkillBusiness, MinAge: 16},
	{ID: "leadership", Name: "Leadership", Category: SkillBusiness, MinAge: 16},
	{ID: "martial_arts", Name: "Martial Arts", Category: SkillPhysical, MinAge: 6},
	{ID: "cooking", Name: "Cooking", Category: SkillPractical, MinAge: 10},
	{ID: "carpentry", Name: "Carpentry", Category: SkillPractical, MinAge: 14},
}

type SocialActivity struct {
	ID             string
	Name           string
	Cost           int
	MinAge         int
	Effects        Effects
	PopularityGain int
	NetworkGain    int
	Message        string
}

var SocialActivities = []SocialActivity{
	{ID: "house_party", Name: "Go to a House Party", Cost: 50, MinAge: 15, Effects: Effects{StatHappiness: 8, StatHealth: -2}, PopularityGain: 5, NetworkGain: 3, Message: "went to a house party"},
	{ID: "volunteer", Name: "Volunteer", MinAge: 12, Effects: Effects{StatHappiness: 5, StatReputation: 5}, PopularityGain: 2, NetworkGain: 2, Message: "volunteered at a shelter"},
	{ID: "gym", Name: "Work Out at the Gym", Cost: 40, MinAge: 14, Effects: Effects{StatFitness: 6, StatHealth: 3, StatAppearance: 1}, NetworkGain: 1, Message: "worked out at the gym"},
	{ID: "networking_event", Name: "Attend a Networking Event", Cost: 100, MinAge: 18, Effects: Effects{StatReputation: 3}, PopularityGain: 3, NetworkGain: 8, Message: "attended a networking event"},
	{ID: "book_club", Name: "Join a Book Club", Cost: 20, MinAge: 10, Effects: Effects{StatSmartness: 3, StatHappiness: 3}, NetworkGain: 2, Message: "joined a book club"},
	{ID: "night_club", Name: "Go Clubbing", Cost: 150, MinAge: 18, Effects: Effects{StatHappiness: 10, StatHealth: -4}, PopularityGain: 6, NetworkGain: 4, Message: "partied all night at a club"},
	{ID: "vacation", Name: "Take a Vacation", Cost: 3000, MinAge: 18, Effects: Effects{StatHappiness: 15, StatHealth: 5}, NetworkGain: 1, Message: "took a relaxing vacation"},
	{ID: "meditation", Name: "Meditate", MinAge: 8, Effects: Effects{StatHappiness: 4, StatHealth: 2}, Message: "spent a month meditating"},
}

type EconomicEvent struct {
	ID          string
	Text        string
	Type        LifeEventType
	Probability float64
	MarketTrend float64
	AssetTrends map[AssetType]float64
}

var EconomicEvents = []EconomicEvent{
	{ID: "recession", Text: "A recession hit the economy. Markets tumbled.", Type: LifeNegative, Probability: 0.05, MarketTrend: 0.8},
	{ID: "bull_market", Text: "A bull market sent stocks soaring.", Type: LifePositive, Probability: 0.08, MarketTrend: 1.2},
	{ID: "housing_boom", Text: "Home prices boomed across the country.", Type: LifePositive, Probability: 0.05, AssetTrends: map[AssetType]float64{AssetProperty: 1.15}},
	{ID: "housing_crash", Text: "The housing bubble burst.", Type: LifeNegative, Probability: 0.03, AssetTrends: map[AssetType]float64{AssetProperty: 0.75}},
	{ID: "inflation_spike", Text: "Inflation spiked and luxury goods gained value.", Type: LifeNeutral, Probability: 0.06, MarketTrend: 0.95, AssetTrends: map[AssetType]float64{AssetLuxury: 1.1}},
	{ID: "tech_bubble", Text: "A tech bubble inflated investment portfolios.", Type: LifePositive, Probability: 0.04, MarketTrend: 1.35},
}

func CareerByID(id string) (Career, bool) {
	for _, c := range Careers {
		if c.ID == id {
			return c, true
		}
	}
	return Career{}, false
}

func EducationByID(id string) (EducationLevel, bool) {
	for _, e := range EducationLevels {
		if e.ID == id {
			return e, true
		}
	}
	return EducationLevel{}, false
}

func HousingByID(id string) (Housing, bool) {
	for _, h := range HousingOptions {
		if h.ID == id {
			return h, true
		}
	}
	return Housing{}, false
}

func AssetByID(id string) (Asset, bool) {
	for _, a := range Assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

func CrimeByID(id string) (Crime, bool) {
	for _, c := range Crimes {
		if c.ID == id {
			return c, true
		}
	}
	return Crime{}, false
}

func SkillByID(id string) (Skill, bool) {
	for _, s := range Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

func SocialActivityByID(id string) (SocialActivity, bool) {
	for _, a := range SocialActivities {
		if a.ID == id {
			return a, true
		}
	}
	return SocialActivity{}, false
}

// AvailableCareers lists careers the character could take right now.
func AvailableCareers(c Character) []Career {
	var out []Career
	for _, career := range Careers {
		if careerEligible(c, career) == nil {
			out = append(out, career)
		}
	}
	return out
}

// AvailableEducation lists programs the character could enroll in right now.
func AvailableEducation(c Character) []EducationLevel {
	var out []EducationLevel
	for _, lvl := range EducationLevels {
		if lvl.ID == EducationNone {
			continue
		}
		if educationEligible(c, lvl) == nil {
			out = append(out, lvl)
		}
	}
	return out
}

// AssetsByType filters the asset templates by type.
func AssetsByType(t AssetType) []Asset {
	var out []Asset
	for _, a := range Assets {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func educationRank(id string) int {
	if lvl, ok := EducationByID(id); ok {
		return lvl.Rank
	}
	return 0
}

// hasCompleted reports whether the completed level satisfies a prerequisite.
// Higher ranks imply lower ones except for sibling programs of equal rank.
func hasCompleted(completed, required string) bool {
	if required == "" || required == EducationNone {
		return true
	}
	if completed == required {
		return true
	}
	return educationRank(completed) > educationRank(required)
}
