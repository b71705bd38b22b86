package ui

import (
	"fmt"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/text"
)

type menuItem struct {
	label  string
	action engine.Action
}

type menuSection struct {
	title string
	items func(c engine.Character) []menuItem
}

var sections = []menuSection{
	{title: "Career", items: careerItems},
	{title: "Education", items: educationItems},
	{title: "Housing", items: housingItems},
	{title: "Assets", items: assetItems},
	{title: "Skills", items: skillItems},
	{title: "Social", items: socialItems},
	{title: "Love & Family", items: loveItems},
	{title: "Crime", items: crimeItems},
	{title: "Prison", items: prisonItems},
}

func careerItems(c engine.Character) []menuItem {
	var out []menuItem
	if c.Employed() {
		out = append(out, menuItem{label: fmt.Sprintf("Ask for a promotion (%s/%s xp)", text.Number(c.ExperiencePoints), text.Number(engine.PromotionThreshold(c.CareerLevel))), action: engine.Promote{}})
		out = append(out, menuItem{label: "Quit your job", action: engine.ChangeJob{CareerID: engine.JobUnemployed}})
	}
	for _, career := range engine.AvailableCareers(c) {
		if career.ID == engine.JobUnemployed || career.ID == c.Job {
			continue
		}
		out = append(out, menuItem{label: fmt.Sprintf("%s (%s/yr)", career.Name, text.Money(career.BaseSalary)), action: engine.ChangeJob{CareerID: career.ID}})
	}
	return out
}

func educationItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, lvl := range engine.AvailableEducation(c) {
		out = append(out, menuItem{label: fmt.Sprintf("%s (%d yrs, %s)", lvl.Name, lvl.Years, text.Money(lvl.Cost)), action: engine.StartEducation{EducationID: lvl.ID}})
	}
	return out
}

func housingItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, h := range engine.HousingOptions {
		if h.ID == c.Housing {
			continue
		}
		out = append(out, menuItem{label: fmt.Sprintf("%s (%s, %s/mo)", h.Name, text.Money(h.Cost), text.Money(h.MonthlyCost)), action: engine.BuyHousing{HousingID: h.ID}})
	}
	return out
}

func assetItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, a := range c.Assets {
		out = append(out, menuItem{label: fmt.Sprintf("Sell %s (%s)", a.Name, text.Money(a.CurrentValue)), action: engine.SellAsset{AssetID: a.ID}})
	}
	for _, t := range engine.AllAssetTypes {
		for _, a := range engine.AssetsByType(t) {
			if c.Age < a.MinAgeToAcquire {
				continue
			}
			out = append(out, menuItem{label: fmt.Sprintf("Buy %s (%s)", a.Name, text.Money(a.PurchasePrice)), action: engine.BuyAsset{AssetID: a.ID}})
		}
	}
	return out
}

func skillItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, s := range engine.Skills {
		if c.Age < s.MinAge {
			continue
		}
		out = append(out, menuItem{label: fmt.Sprintf("Train %s (%s)", s.Name, s.Category), action: engine.TrainSkill{SkillID: s.ID}})
	}
	return out
}

func socialItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, a := range engine.SocialActivities {
		if c.Age < a.MinAge {
			continue
		}
		out = append(out, menuItem{label: fmt.Sprintf("%s (%s)", a.Name, text.Money(a.Cost)), action: engine.JoinActivity{ActivityID: a.ID}})
	}
	return out
}

func loveItems(c engine.Character) []menuItem {
	if c.MarriageStatus.IsMarried {
		return []menuItem{
			{label: "Try for a baby", action: engine.TryForBaby{}},
			{label: "Adopt a child", action: engine.AdoptChild{}},
		}
	}
	out := []menuItem{{label: "Go on a date", action: engine.StartDating{}}}
	for _, rel := range c.Relationships {
		if rel.IsActive && (rel.Type == engine.RelDating || rel.Type == engine.RelRomantic) {
			out = append(out, menuItem{label: fmt.Sprintf("Propose to %s (%d)", rel.Name, rel.RelationshipLevel), action: engine.ProposeMarriage{PartnerID: rel.ID}})
		}
	}
	return append(out, menuItem{label: "Adopt a child", action: engine.AdoptChild{}})
}

func crimeItems(c engine.Character) []menuItem {
	var out []menuItem
	for _, cr := range engine.Crimes {
		if c.Age < cr.MinAge {
			continue
		}
		odds := engine.CalculateCrimeSuccess(cr, c)
		out = append(out, menuItem{label: fmt.Sprintf("%s (%.0f%% success, %.0f%% arrest)", cr.Name, odds.Success, odds.Arrest), action: engine.CommitCrime{CrimeID: cr.ID}})
	}
	return out
}

func prisonItems(c engine.Character) []menuItem {
	if !c.IsIncarcerated {
		return nil
	}
	parole := "Request a parole hearing"
	if !engine.ParoleEligible(c) {
		parole += " (not yet eligible)"
	}
	return []menuItem{
		{label: parole, action: engine.ParoleHearing{}},
		{label: "File an appeal ($5,000)", action: engine.Appeal{}},
		{label: "Attempt an escape", action: engine.AttemptEscape{}},
	}
}

// visibleSections hides sections that have nothing to offer right now.
func visibleSections(c engine.Character) []menuSection {
	var out []menuSection
	for _, s := range sections {
		if len(s.items(c)) > 0 {
			out = append(out, s)
		}
	}
	return out
}
