package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/game"
	"github.com/DaanHessen/lifesim-tui/internal/store"
	"github.com/DaanHessen/lifesim-tui/internal/util"
)

func testModel(t *testing.T, repo store.Repository) model {
	t.Helper()
	s, err := game.New(game.Config{Seed: "ui-test", RulesVersion: "test", Name: "Ava Test", Gender: engine.GenderFemale, BirthYear: 2000})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return newModel(context.Background(), s, repo, "catppuccin", "test", nil)
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

// ageUntilPending presses "a" until an event needs a choice.
func ageUntilPending(t *testing.T, m model) model {
	t.Helper()
	for m.view != viewEvent {
		if m.session.Character().Age > 18 {
			t.Fatalf("no event surfaced by age 18")
		}
		m = press(m, "a")
	}
	return m
}

func TestAgeUpKey(t *testing.T) {
	m := testModel(t, nil)
	m = press(m, "a")
	if got := m.session.Character().Age; got != 1 {
		t.Fatalf("age after one press = %d", got)
	}
	if !strings.Contains(m.status, "You are now 1") && m.view != viewEvent {
		t.Fatalf("status = %q", m.status)
	}
}

func TestEventViewResolvesWithNumberKey(t *testing.T) {
	m := ageUntilPending(t, testModel(t, nil))
	if !strings.Contains(m.View(), "1.") {
		t.Fatalf("event view lacks numbered choices:\n%s", m.View())
	}
	age := m.session.Character().Age
	m = press(m, "a")
	if m.session.Character().Age != age || m.view != viewEvent {
		t.Fatalf("aging should be blocked while an event is pending")
	}
	m = press(m, "1")
	if m.session.Pending() != nil || m.view != viewLife {
		t.Fatalf("choice not resolved: view=%s status=%q", m.view, m.status)
	}
	if m.outcome == "" {
		t.Fatalf("outcome line not recorded")
	}
}

func TestActionsMenuNavigation(t *testing.T) {
	m := testModel(t, nil)
	m = press(m, "enter")
	if m.view != viewActions {
		t.Fatalf("view = %s", m.view)
	}
	secs := visibleSections(m.session.Character())
	if len(secs) > 1 {
		m = press(m, "right")
		if m.section != 1 {
			t.Fatalf("section = %d", m.section)
		}
	}
	m = press(m, "esc")
	if m.view != viewLife {
		t.Fatalf("esc did not return to life view")
	}
}

func TestSaveWithoutRepo(t *testing.T) {
	m := press(testModel(t, nil), "s")
	if !strings.Contains(m.status, "disabled") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestSaveAndLoadThroughRepository(t *testing.T) {
	cfg := util.Config{Dialect: util.DialectSQLite, SQLitePath: filepath.Join(t.TempDir(), "ui.sqlite")}
	repo, err := store.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	m := testModel(t, repo)
	m = press(m, "a", "s")
	if m.status != "Game saved." && m.view != viewEvent {
		t.Fatalf("status = %q", m.status)
	}
	if m.view == viewEvent {
		m = press(m, "1", "s")
	}
	age := m.session.Character().Age
	m = press(m, "o")
	if m.view != viewSaves || len(m.saves) != 1 {
		t.Fatalf("saves view: view=%s saves=%d", m.view, len(m.saves))
	}
	m = press(m, "enter")
	if m.session.Character().Age != age || m.session.Character().Name != "Ava Test" {
		t.Fatalf("loaded wrong save: %+v", m.session.Character().Name)
	}
}

func TestThemeCycle(t *testing.T) {
	m := press(testModel(t, nil), "t")
	if m.theme != "dracula" {
		t.Fatalf("theme = %s", m.theme)
	}
	if nextThemeName("gruvbox", 1) != "catppuccin" || nextThemeName("catppuccin", -1) != "gruvbox" {
		t.Fatalf("theme cycle does not wrap")
	}
	if nextThemeName("missing", 1) != "dracula" {
		t.Fatalf("unknown theme should start from the first entry")
	}
}

func TestStatBarShowsValue(t *testing.T) {
	m := testModel(t, nil)
	bar := m.statBar("Health", 50)
	if !strings.HasPrefix(bar, "Health") || !strings.HasSuffix(bar, " 50\n") {
		t.Fatalf("bar = %q", bar)
	}
	if strings.Count(bar, "█") != 5 {
		t.Fatalf("want 5 filled cells: %q", bar)
	}
}

func TestHelpToggle(t *testing.T) {
	m := press(testModel(t, nil), "?")
	if m.view != viewHelp || !strings.Contains(m.View(), "ui-test") {
		t.Fatalf("help view missing seed")
	}
	m = press(m, "esc")
	if m.view != viewLife {
		t.Fatalf("help did not close")
	}
}
