package engine

import "fmt"

type Achievement struct {
	ID          string
	Title       string
	Description string
	Check       func(Character) bool
}

var Achievements = []Achievement{
	{ID: "millionaire", Title: "Millionaire", Description: "Have $1,000,000 in the bank", Check: func(c Character) bool { return c.Money >= 1_000_000 }},
	{ID: "parent", Title: "Parent", Description: "Have or adopt a child", Check: func(c Character) bool { return len(c.Children) > 0 }},
	{ID: "best_friend", Title: "Best Friend", Description: "Reach 90 with anyone close to you", Check: func(c Character) bool {
		for _, f := range c.Family {
			if f.RelationshipLevel >= 90 {
				return true
			}
		}
		for _, r := range c.Relationships {
			if r.RelationshipLevel >= 90 {
				return true
			}
		}
		return false
	}},
	{ID: "graduate", Title: "Graduate", Description: "Complete a university degree", Check: func(c Character) bool { return educationRank(c.Education) >= 3 }},
	{ID: "married", Title: "Tied the Knot", Description: "Get married", Check: func(c Character) bool { return c.MarriageStatus.IsMarried }},
	{ID: "homeowner", Title: "Homeowner", Description: "Move into a house of your own", Check: func(c Character) bool {
		return contains([]string{"suburban_house", "luxury_condo", "mansion"}, c.Housing)
	}},
	{ID: "centenarian", Title: "Centenarian", Description: "Live to 100", Check: func(c Character) bool { return c.Age >= 100 }},
	{ID: "fit", Title: "Peak Condition", Description: "Reach 95 fitness", Check: func(c Character) bool { return c.Fitness >= 95 }},
	{ID: "genius", Title: "Genius", Description: "Reach 95 smartness", Check: func(c Character) bool { return c.Smartness >= 95 }},
	{ID: "career_top", Title: "Top of the Ladder", Description: "Reach career level 5", Check: func(c Character) bool { return c.CareerLevel >= 5 }},
	{ID: "investor", Title: "Investor", Description: "Own three assets at once", Check: func(c Character) bool { return len(c.Assets) >= 3 }},
	{ID: "social_butterfly", Title: "Social Butterfly", Description: "Reach 90 popularity", Check: func(c Character) bool { return c.SocialStatus.Popularity >= 90 }},
	{ID: "criminal_mastermind", Title: "Criminal Mastermind", Description: "Pull off ten crimes without getting caught", Check: func(c Character) bool {
		clean := 0
		for _, r := range c.CriminalRecord {
			if !r.Caught {
				clean++
			}
		}
		return clean >= 10
	}},
	{ID: "jailbird", Title: "Jailbird", Description: "Serve time in prison", Check: func(c Character) bool { return len(c.PrisonRecord) > 0 || c.IsIncarcerated }},
	{ID: "skill_master", Title: "Master", Description: "Max out any skill", Check: func(c Character) bool {
		for _, s := range c.Skills {
			if s.Level >= 100 {
				return true
			}
		}
		return false
	}},
}

func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// NewAchievements returns ids that c now satisfies but has not unlocked. Predicates are independent.
func NewAchievements(c Character) []string {
	var out []string
	for _, a := range Achievements {
		if !c.hasAchievement(a.ID) && a.Check(c) {
			out = append(out, a.ID)
		}
	}
	return out
}

func unlockAchievements(c *Character) {
	for _, id := range NewAchievements(*c) {
		a, _ := AchievementByID(id)
		c.Achievements = append(c.Achievements, id)
		c.logEvent(fmt.Sprintf("Achievement unlocked: %s!", a.Title), LifePositive)
	}
}
