package engine

import (
	"fmt"
	"testing"
)

// adult returns a plain 30 year old with no randomness involved.
func adult() Character {
	return Character{
		ID: "test", Name: "Sam Tester", Gender: GenderOther, BirthYear: 1990, Age: 30,
		Health: 60, Happiness: 60, Smartness: 60, Appearance: 60, Fitness: 60,
		Money:     1000,
		Education: "high_school", Job: JobUnemployed, Housing: HousingParents,
		SocialStatus:   SocialStatus{Reputation: 50, SocialClass: ClassLower, Popularity: 50},
		MarriageStatus: MarriageStatus{MarriageHappiness: 50},
		Reputation:     LegalStanding{Legal: 100},
		Family: []FamilyMember{
			{ID: "father", Name: "Tom Tester", Relationship: FamilyFather, Age: 58, Alive: true, RelationshipLevel: 70},
			{ID: "mother", Name: "Ann Tester", Relationship: FamilyMother, Age: 56, Alive: true, RelationshipLevel: 70},
		},
	}
}

func TestNewCharacterScenario(t *testing.T) {
	c := NewCharacter(NewScriptedRand(), "Ava", GenderFemale, 2000)
	if c.Age != 0 {
		t.Fatalf("age = %d", c.Age)
	}
	if len(c.Family) != 2 || !c.Family[0].Alive || !c.Family[1].Alive {
		t.Fatalf("family = %+v", c.Family)
	}
	if c.Family[0].Relationship != FamilyFather || c.Family[1].Relationship != FamilyMother {
		t.Fatalf("parents = %s/%s", c.Family[0].Relationship, c.Family[1].Relationship)
	}
	if len(c.LifeEvents) != 1 || c.LifeEvents[0].Event != "Ava was born!" || c.LifeEvents[0].Type != LifePositive {
		t.Fatalf("life events = %+v", c.LifeEvents)
	}
	if n := len(c.PersonalityTraits); n < 2 || n > 3 {
		t.Fatalf("trait count = %d", n)
	}
	if c.ID == "" {
		t.Fatalf("missing id")
	}
}

func TestNewCharacterRanges(t *testing.T) {
	seed, _ := NewRunSeed("ranges")
	for i := 0; i < 200; i++ {
		c := NewCharacter(seed.Stream(fmt.Sprintf("new:%d", i)), "Kid", GenderMale, 2000)
		for _, v := range []int{c.Health, c.Happiness, c.Fitness} {
			if v < 70 || v > 100 {
				t.Fatalf("health/happiness/fitness out of range: %d", v)
			}
		}
		for _, v := range []int{c.Smartness, c.Appearance} {
			if v < 50 || v > 100 {
				t.Fatalf("smartness/appearance out of range: %d", v)
			}
		}
		if c.Money < 500 || c.Money >= 1500 {
			t.Fatalf("money out of range: %d", c.Money)
		}
		for _, f := range c.Family {
			if f.Age < 25 || f.Age >= 40 || f.RelationshipLevel < 70 || f.RelationshipLevel >= 100 {
				t.Fatalf("parent out of range: %+v", f)
			}
		}
		seen := map[Trait]bool{}
		for _, tr := range c.PersonalityTraits {
			if seen[tr] {
				t.Fatalf("duplicate trait %s", tr)
			}
			seen[tr] = true
		}
	}
}

func TestNewCharacterSameSeedSameID(t *testing.T) {
	seed, _ := NewRunSeed("ids")
	a := NewCharacter(seed.Stream("create"), "Ava", GenderFemale, 2000)
	b := NewCharacter(seed.Stream("create"), "Ava", GenderFemale, 2000)
	if a.ID != b.ID {
		t.Fatalf("ids differ: %s vs %s", a.ID, b.ID)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := adult()
	c.Assets = []OwnedAsset{{Asset: Asset{ID: "used_car", StatEffects: Effects{StatHappiness: 5}}, CurrentValue: 10}}
	c.CurrentSentence = &PrisonSentence{RemainingSentenceYears: 3, BehaviorRecord: []BehaviorRating{BehaviorGood}}
	cp := c.Clone()
	cp.Family[0].Age = 99
	cp.Assets[0].StatEffects[StatHappiness] = 50
	cp.CurrentSentence.BehaviorRecord[0] = BehaviorBad
	cp.CurrentSentence.RemainingSentenceYears = 0
	if c.Family[0].Age == 99 {
		t.Fatalf("family aliased")
	}
	if c.Assets[0].StatEffects[StatHappiness] != 5 {
		t.Fatalf("asset effects aliased")
	}
	if c.CurrentSentence.BehaviorRecord[0] != BehaviorGood || c.CurrentSentence.RemainingSentenceYears != 3 {
		t.Fatalf("sentence aliased")
	}
}

func TestAdjustClampsAndFloors(t *testing.T) {
	c := adult()
	c.adjust(StatHealth, 500)
	c.adjust(StatHappiness, -500)
	c.adjust(StatMoney, -5000)
	c.adjust(StatReputation, 80)
	if c.Health != 100 || c.Happiness != 0 {
		t.Fatalf("clamp failed: health=%d happiness=%d", c.Health, c.Happiness)
	}
	if c.Money != 0 {
		t.Fatalf("money = %d, want floor 0", c.Money)
	}
	if c.SocialStatus.Reputation != 100 {
		t.Fatalf("reputation = %d", c.SocialStatus.Reputation)
	}
	c.adjust(StatMoney, 2_000_000)
	if c.Money != 2_000_000 {
		t.Fatalf("money must be unbounded above, got %d", c.Money)
	}
	if c.adjust(Stat("age"), 10) {
		t.Fatalf("unknown stat should be ignored")
	}
	if c.Age != 30 {
		t.Fatalf("age touched by adjust")
	}
}
