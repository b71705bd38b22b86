package engine

import (
	"strings"
	"testing"
)

func TestAchievementsUnlockTogether(t *testing.T) {
	c := adult()
	c.Money = 2_000_000
	c.Children = []Child{{ID: "child-1", Name: "Bo"}}
	unlockAchievements(&c)
	if len(c.Achievements) != 2 || c.Achievements[0] != "millionaire" || c.Achievements[1] != "parent" {
		t.Fatalf("achievements = %v", c.Achievements)
	}
	if len(c.LifeEvents) != 2 {
		t.Fatalf("expected one log entry per unlock, got %d", len(c.LifeEvents))
	}
	for _, ev := range c.LifeEvents {
		if ev.Type != LifePositive || !strings.HasPrefix(ev.Event, "Achievement unlocked") {
			t.Fatalf("log = %+v", ev)
		}
	}
}

func TestAchievementsNeverDuplicate(t *testing.T) {
	c := adult()
	c.Fitness = 99
	unlockAchievements(&c)
	unlockAchievements(&c)
	if len(c.Achievements) != 1 || c.Achievements[0] != "fit" {
		t.Fatalf("achievements = %v", c.Achievements)
	}
	if got := NewAchievements(c); len(got) != 0 {
		t.Fatalf("already unlocked reported again: %v", got)
	}
}

func TestAchievementsArePermanent(t *testing.T) {
	c := adult()
	c.Money = 1_000_000
	unlockAchievements(&c)
	c.Money = 0
	unlockAchievements(&c)
	if !c.hasAchievement("millionaire") {
		t.Fatalf("achievement lost after money dropped")
	}
}

func TestAchievementCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Achievements {
		if seen[a.ID] || a.Check == nil || a.Title == "" {
			t.Fatalf("bad catalog entry %+v", a)
		}
		seen[a.ID] = true
	}
	if a, ok := AchievementByID("jailbird"); !ok || !a.Check(inmate(1)) {
		t.Fatalf("jailbird should hold for an inmate")
	}
	if _, ok := AchievementByID("nope"); ok {
		t.Fatalf("unknown id found")
	}
}

func TestBestFriendCountsEveryoneClose(t *testing.T) {
	a, _ := AchievementByID("best_friend")
	c := adult()
	if a.Check(c) {
		t.Fatalf("no one is at 90 yet")
	}
	c.Family[0].RelationshipLevel = 95
	c.Family[0].Alive = false
	if !a.Check(c) {
		t.Fatalf("a deceased parent at 95 still counts")
	}
	c = adult()
	c.Relationships = []Relationship{{ID: "rel-1", Name: "Lee", Type: RelFriend, RelationshipLevel: 90, IsActive: true}}
	if !a.Check(c) {
		t.Fatalf("friend at 90 should count")
	}
}
