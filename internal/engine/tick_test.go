package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func runStep(c Character, step tickStep, r Rand) (Character, *Event) {
	next := c.Clone()
	t := &tick{c: &next, r: r}
	step(t)
	return next, t.pending
}

func TestAgeUpIncrementsAgeAndLeavesInputAlone(t *testing.T) {
	seed, _ := NewRunSeed("age-up")
	c := adult()
	before, _ := json.Marshal(c)
	res := AgeUp(c, seed.Stream("age:31:tick"))
	if res.Character.Age != 31 {
		t.Fatalf("age = %d, want 31", res.Character.Age)
	}
	after, _ := json.Marshal(c)
	if string(before) != string(after) {
		t.Fatalf("AgeUp mutated its input")
	}
}

func TestAgeUpDeterministicReplay(t *testing.T) {
	seed, _ := NewRunSeed("replay")
	c := NewCharacter(seed.Stream("create"), "Ava", GenderFemale, 2000)
	a, b := c, c
	for age := 1; age <= 40; age++ {
		label := fmt.Sprintf("age:%d:tick", age)
		ra := AgeUp(a, seed.Stream(label))
		rb := AgeUp(b, seed.Stream(label))
		a, b = ra.Character, rb.Character
	}
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Fatalf("replay diverged")
	}
}

func TestLifePathForcedAtEighteen(t *testing.T) {
	seed, _ := NewRunSeed("eighteen")
	c := adult()
	c.Age = 17
	res := AgeUp(c, seed.Stream("age:18:tick"))
	if res.Pending == nil || res.Pending.ID != LifePathEventID {
		t.Fatalf("pending = %+v, want %s", res.Pending, LifePathEventID)
	}
	hist := res.Character.EventHistory
	if len(hist) != 1 || hist[0].EventID != LifePathEventID || hist[0].Age != 18 {
		t.Fatalf("history = %+v", hist)
	}
}

func TestRandomEventSkippedWhenMajorPending(t *testing.T) {
	c := adult()
	c.Age = 18
	ev := majorEvents[1]
	next := c.Clone()
	tk := &tick{c: &next, r: NewScriptedRand(0)}
	tk.markPending(ev)
	stepRandomEvent(tk)
	if tk.pending.ID != ev.ID || len(next.EventHistory) != 1 {
		t.Fatalf("random step replaced the pending event: %+v", next.EventHistory)
	}
}

// checkLifeInvariants fails when c breaks a 0-100 bound, goes negative on money or rewrites prev's logs.
func checkLifeInvariants(t *testing.T, step string, prev, c Character) {
	t.Helper()
	for _, v := range []int{c.Health, c.Happiness, c.Smartness, c.Appearance, c.Fitness,
		c.SocialStatus.Reputation, c.SocialStatus.Popularity,
		c.MarriageStatus.MarriageHappiness, c.MarriageStatus.DivorceRisk, c.DatingProfile.Attractiveness} {
		if v < 0 || v > 100 {
			t.Fatalf("%s: percentage out of bounds: %d", step, v)
		}
	}
	if c.Money < 0 {
		t.Fatalf("%s: negative money %d", step, c.Money)
	}
	if len(c.LifeEvents) < len(prev.LifeEvents) || len(c.Achievements) < len(prev.Achievements) || len(c.CriminalRecord) < len(prev.CriminalRecord) {
		t.Fatalf("%s: append-only log shrank", step)
	}
	for i := range prev.LifeEvents {
		if c.LifeEvents[i] != prev.LifeEvents[i] {
			t.Fatalf("%s: life event %d rewritten", step, i)
		}
	}
	for i := range prev.Achievements {
		if c.Achievements[i] != prev.Achievements[i] {
			t.Fatalf("%s: achievement %d rewritten", step, i)
		}
	}
}

func TestAgeUpInvariantsOverLifetime(t *testing.T) {
	seed, _ := NewRunSeed("lifetime")
	c := NewCharacter(seed.Stream("create"), "Noah", GenderMale, 1980)
	for age := 1; age <= 100; age++ {
		prev := c
		res := AgeUp(c, seed.Stream(fmt.Sprintf("age:%d:tick", age)))
		c = res.Character
		if res.Pending != nil {
			choices := res.Pending.AvailableChoices(c)
			if len(choices) > 0 {
				var err error
				c, _, err = Resolve(c, *res.Pending, choices[0].ID, seed.Stream(fmt.Sprintf("age:%d:resolve", age)))
				if err != nil {
					t.Fatalf("resolve at %d: %v", age, err)
				}
			}
		}
		if c.Age != prev.Age+1 {
			t.Fatalf("age went %d -> %d", prev.Age, c.Age)
		}
		checkLifeInvariants(t, fmt.Sprintf("tick %d", age), prev, c)

		actions := []Action{
			StatDelta{Effects: Effects{StatMoney: -3000, StatHappiness: 40, StatHealth: -25}, Message: "A wild year."},
			BuyAsset{AssetID: "used_car"},
			CommitCrime{CrimeID: "shoplifting"},
		}
		if age%3 == 0 {
			actions = append(actions, SellAsset{AssetID: "used_car"})
		}
		for i, a := range actions {
			before := c
			next, err := Dispatch(c, a, seed.Stream(fmt.Sprintf("age:%d:action:%d", age, i)))
			step := fmt.Sprintf("age %d dispatch %T", age, a)
			if err != nil {
				if next.Money != before.Money || len(next.LifeEvents) != len(before.LifeEvents) || len(next.Assets) != len(before.Assets) {
					t.Fatalf("%s: rejected action mutated the character: %v", step, err)
				}
				continue
			}
			if next.Age != before.Age {
				t.Fatalf("%s: action changed age", step)
			}
			checkLifeInvariants(t, step, before, next)
			c = next
		}
	}
}

func TestFinancialSettlement(t *testing.T) {
	c := adult()
	c.Salary = 120000
	c.Housing = "apartment"
	c.Assets = []OwnedAsset{{Asset: Asset{ID: "rental_property", MonthlyMaintenance: 400, MonthlyIncome: 1800}, CurrentValue: 1}}
	next, _ := runStep(c, stepFinances, NewScriptedRand())
	// 10000 + 1800 - (1500 + 400)
	if want := 1000 + 9900; next.Money != want {
		t.Fatalf("money = %d, want %d", next.Money, want)
	}
	c.Salary = 0
	c.Money = 100
	next, _ = runStep(c, stepFinances, NewScriptedRand())
	if next.Money != 0 {
		t.Fatalf("money = %d, want floor 0", next.Money)
	}
}

func TestEducationCompletes(t *testing.T) {
	c := adult()
	c.CurrentEducation = "university"
	c.EducationYearsLeft = 1
	next, _ := runStep(c, stepEducation, NewScriptedRand())
	if next.Education != "university" || next.Enrolled() || next.EducationYearsLeft != 0 {
		t.Fatalf("education not completed: %+v", next)
	}
	last := next.LifeEvents[len(next.LifeEvents)-1]
	if last.Type != LifePositive {
		t.Fatalf("graduation logged as %s", last.Type)
	}
}

func TestAssetRevaluationScenario(t *testing.T) {
	c := adult()
	c.Assets = []OwnedAsset{{Asset: Asset{ID: "fund", Type: AssetInvestment, AverageGrowth: 0.05, Volatility: 0.1}, CurrentValue: 1000}}
	next, _ := runStep(c, stepRevalueAssets, NewScriptedRand(0.5))
	if got := next.Assets[0].CurrentValue; got != 1050 {
		t.Fatalf("currentValue = %d, want 1050", got)
	}
	c.Assets[0].AverageGrowth = -3
	next, _ = runStep(c, stepRevalueAssets, NewScriptedRand(0.5))
	if got := next.Assets[0].CurrentValue; got != 0 {
		t.Fatalf("currentValue = %d, want floor 0", got)
	}
}

func TestEconomicShocksCompound(t *testing.T) {
	c := adult()
	c.Assets = []OwnedAsset{
		{Asset: Asset{ID: "fund", Type: AssetInvestment}, CurrentValue: 1000},
		{Asset: Asset{ID: "house", Type: AssetProperty}, CurrentValue: 1000},
	}
	// every shock fires
	next, _ := runStep(c, stepEconomicShocks, NewScriptedRand(0))
	want := 1000
	for _, ev := range EconomicEvents {
		if ev.MarketTrend != 0 {
			want = revalue(want, ev.MarketTrend)
		}
	}
	if got := next.Assets[0].CurrentValue; got != want {
		t.Fatalf("investment = %d, want %d", got, want)
	}
	if got := next.Assets[1].CurrentValue; got != revalue(revalue(1000, 1.15), 0.75) {
		t.Fatalf("property = %d", got)
	}
	if len(next.LifeEvents) != len(EconomicEvents) {
		t.Fatalf("logged %d shocks, want %d", len(next.LifeEvents), len(EconomicEvents))
	}
}

func TestDivorceScenario(t *testing.T) {
	c := adult()
	c.Family = append(c.Family, FamilyMember{ID: "rel-7", Name: "Pat", Relationship: FamilySpouse, Age: 30, Alive: true, RelationshipLevel: 40})
	c.MarriageStatus = MarriageStatus{IsMarried: true, SpouseID: "rel-7", MarriageYear: 2015, MarriageHappiness: 10, DivorceRisk: 65}
	// 0.5 maps to a zero happiness walk and a failed divorce roll
	steady := NewScriptedRand(0.5)
	reached := 0
	for i := 1; i <= 5; i++ {
		c.MarriageStatus.MarriageHappiness = 10
		c, _ = runStep(c, stepMarriage, steady)
		if !c.MarriageStatus.IsMarried {
			t.Fatalf("divorced on a failed roll at tick %d", i)
		}
		if c.MarriageStatus.DivorceRisk == 100 && reached == 0 {
			reached = i
		}
	}
	if reached == 0 || reached > 4 {
		t.Fatalf("divorce risk reached 100 at tick %d", reached)
	}
	happy := c.Happiness
	c, _ = runStep(c, stepMarriage, NewScriptedRand(0.5, 0))
	if c.MarriageStatus.IsMarried || c.MarriageStatus.SpouseID != "" {
		t.Fatalf("marriage not cleared: %+v", c.MarriageStatus)
	}
	for _, f := range c.Family {
		if f.ID == "rel-7" {
			t.Fatalf("spouse still in family")
		}
	}
	if c.Happiness != happy-20 {
		t.Fatalf("happiness = %d, want %d", c.Happiness, happy-20)
	}
	if last := c.LifeEvents[len(c.LifeEvents)-1]; last.Type != LifeNegative {
		t.Fatalf("divorce logged as %s", last.Type)
	}
}

func TestChildrenRelationshipFloor(t *testing.T) {
	c := adult()
	c.Children = []Child{{ID: "child-1", Age: 17, RelationshipWithParent: 10}, {ID: "child-2", Age: 3, RelationshipWithParent: 10}}
	next, _ := runStep(c, stepChildren, NewScriptedRand(0))
	if next.Children[0].Age != 18 || next.Children[0].RelationshipWithParent != 30 {
		t.Fatalf("adult child = %+v", next.Children[0])
	}
	if next.Children[1].RelationshipWithParent != 10 {
		t.Fatalf("young child redrawn: %+v", next.Children[1])
	}
}

func TestRelationshipDecayRemovesZero(t *testing.T) {
	c := adult()
	c.Relationships = []Relationship{
		{ID: "rel-1", Type: RelFriend, RelationshipLevel: 5, IsActive: true},
		{ID: "rel-2", Type: RelFriend, RelationshipLevel: 50, IsActive: true},
	}
	next, _ := runStep(c, stepRelationshipDecay, NewScriptedRand(0))
	if len(next.Relationships) != 1 || next.Relationships[0].ID != "rel-2" || next.Relationships[0].RelationshipLevel != 45 {
		t.Fatalf("relationships = %+v", next.Relationships)
	}
}

func TestSocialClassThresholds(t *testing.T) {
	cases := []struct {
		money, salary, rep int
		want               SocialClass
	}{
		{0, 0, 0, ClassLower},
		{50_000, 0, 0, ClassMiddle},
		{0, 40_000, 0, ClassMiddle},
		{0, 0, 60, ClassMiddle},
		{1_000_000, 0, 0, ClassUpper},
		{0, 200_000, 0, ClassUpper},
		{500_000, 0, 80, ClassUpper},
		{500_000, 0, 79, ClassMiddle},
	}
	for _, tc := range cases {
		if got := ComputeSocialClass(tc.money, tc.salary, tc.rep); got != tc.want {
			t.Fatalf("ComputeSocialClass(%d,%d,%d) = %s, want %s", tc.money, tc.salary, tc.rep, got, tc.want)
		}
	}
}

func TestFamilyMortality(t *testing.T) {
	c := adult()
	c.Family[0].Age = 99
	next, _ := runStep(c, stepFamily, NewScriptedRand(0))
	if next.Family[0].Alive || next.Family[0].Age != 100 {
		t.Fatalf("elderly parent = %+v", next.Family[0])
	}
	if !next.Family[1].Alive || next.Family[1].Age != 57 {
		t.Fatalf("younger parent = %+v", next.Family[1])
	}
	if next.Happiness != c.Happiness-10 {
		t.Fatalf("happiness = %d", next.Happiness)
	}
}

func TestSpouseDeathWidows(t *testing.T) {
	c := adult()
	c.Age = 80
	c.Family = append(c.Family, FamilyMember{ID: "rel-3", Name: "Pat", Relationship: FamilySpouse, Age: 90, Alive: true, RelationshipLevel: 80})
	c.MarriageStatus = MarriageStatus{IsMarried: true, SpouseID: "rel-3", MarriageYear: 2000, MarriageHappiness: 80}
	next, _ := runStep(c, stepFamily, NewScriptedRand(0))
	spouse := next.Family[len(next.Family)-1]
	if spouse.Alive {
		t.Fatalf("spouse survived a certain roll")
	}
	if next.MarriageStatus.IsMarried || next.MarriageStatus.SpouseID != "" || next.MarriageStatus.MarriageHappiness != 50 {
		t.Fatalf("marriage not cleared: %+v", next.MarriageStatus)
	}
	if last := next.LifeEvents[len(next.LifeEvents)-1]; last.Event != "You are now widowed." {
		t.Fatalf("last log = %q", last.Event)
	}
	if _, err := Dispatch(next, TryForBaby{}, NewScriptedRand(0)); !errors.Is(err, ErrNotMarried) {
		t.Fatalf("try for baby after widowhood: %v", err)
	}
	if _, err := Dispatch(next, StartDating{Name: "Robin"}, NewScriptedRand()); err != nil {
		t.Fatalf("widow cannot date: %v", err)
	}
}

func TestTryForBabyNeedsLivingSpouse(t *testing.T) {
	c := adult()
	c.Family = append(c.Family, FamilyMember{ID: "rel-3", Name: "Pat", Relationship: FamilySpouse, Age: 31, Alive: false})
	c.MarriageStatus = MarriageStatus{IsMarried: true, SpouseID: "rel-3", MarriageHappiness: 70}
	got, err := Dispatch(c, TryForBaby{}, NewScriptedRand(0))
	if !errors.Is(err, ErrNotMarried) || len(got.Children) != 0 {
		t.Fatalf("baby with deceased spouse: err=%v children=%d", err, len(got.Children))
	}
}

func TestExperienceOnlyWhenEmployed(t *testing.T) {
	c := adult()
	next, _ := runStep(c, stepExperience, NewScriptedRand())
	if next.ExperiencePoints != 0 {
		t.Fatalf("unemployed gained xp")
	}
	c.Job = "retail_clerk"
	next, _ = runStep(c, stepExperience, NewScriptedRand())
	if next.ExperiencePoints != experiencePerYear {
		t.Fatalf("xp = %d", next.ExperiencePoints)
	}
}

func TestAmbientClassification(t *testing.T) {
	cases := map[string]LifeEventType{
		"You found $20 on the sidewalk.":      LifePositive,
		"Your phone was stolen on the bus.":   LifeNegative,
		"You spent a quiet evening at home.":  LifeNeutral,
		"You caught a nasty cold.":            LifeNegative,
		"You made a new friend at the park.":  LifePositive,
	}
	for text, want := range cases {
		if got := classifyAmbient(text); got != want {
			t.Fatalf("classifyAmbient(%q) = %s, want %s", text, got, want)
		}
	}
}
