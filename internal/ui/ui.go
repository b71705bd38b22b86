package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/lifesim-tui/internal/engine"
	"github.com/DaanHessen/lifesim-tui/internal/game"
	"github.com/DaanHessen/lifesim-tui/internal/store"
	"github.com/DaanHessen/lifesim-tui/internal/text"
)

const (
	viewLife      = "life"
	viewEvent     = "event"
	viewActions   = "actions"
	viewBiography = "biography"
	viewSaves     = "saves"
	viewHelp      = "help"
)

type model struct {
	ctx     context.Context
	session *game.Session
	repo    store.Repository
	logger  *log.Logger
	version string

	theme    string
	styles   styles
	renderer *glamour.TermRenderer

	view   string
	status string
	// last resolved outcome, shown on the life view
	outcome string

	section int
	cursor  int

	saves     []store.SaveGame
	saveIndex int

	bioScroll int
	width     int
	height    int
}

func newModel(ctx context.Context, session *game.Session, repo store.Repository, theme, version string, logger *log.Logger) model {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := model{
		ctx:     ctx,
		session: session,
		repo:    repo,
		logger:  logger,
		version: version,
		theme:   theme,
		styles:  newStyles(paletteFor(theme)),
		view:    viewLife,
	}
	if session.Pending() != nil {
		m.view = viewEvent
	}
	return m
}

// markdown renders md through glamour when a renderer is configured.
func (m *model) markdown(md string) string {
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) View() string {
	switch m.view {
	case viewEvent:
		return m.renderEvent()
	case viewActions:
		return m.renderActions()
	case viewBiography:
		return m.renderBiography()
	case viewSaves:
		return m.renderSaves()
	case viewHelp:
		return m.renderHelp()
	default:
		return m.renderLife()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewEvent:
			m.updateEvent(k)
			return m, nil
		case viewActions:
			m.updateActions(k)
			return m, nil
		case viewBiography:
			m.updateBiography(k)
			return m, nil
		case viewSaves:
			m.updateSaves(k)
			return m, nil
		case viewHelp:
			if k == "esc" || k == "?" || k == "q" {
				m.view = viewLife
			}
			return m, nil
		}
		switch k {
		case "q":
			return m, tea.Quit
		case " ", "a":
			m.ageUp()
		case "enter", "tab":
			m.view = viewActions
			m.section, m.cursor = 0, 0
		case "b":
			m.view = viewBiography
			m.bioScroll = 0
		case "s":
			m.save()
		case "o":
			m.openSaves()
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.styles = newStyles(paletteFor(m.theme))
			m.status = "Theme: " + m.theme
		case "?":
			m.view = viewHelp
		}
	}
	return m, nil
}

func (m *model) ageUp() {
	res, err := m.session.AgeUp()
	if err != nil {
		m.status = describe(err)
		if errors.Is(err, game.ErrEventPending) {
			m.view = viewEvent
		}
		return
	}
	m.outcome = ""
	m.status = fmt.Sprintf("Happy birthday! You are now %d.", res.Character.Age)
	if res.Pending != nil {
		m.view = viewEvent
	}
}

func (m *model) updateEvent(k string) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return
	}
	choices := m.session.Choices()
	idx := int(k[0] - '1')
	if idx >= len(choices) {
		return
	}
	out, err := m.session.Resolve(choices[idx].ID)
	if err != nil {
		m.status = describe(err)
		return
	}
	m.outcome = text.OutcomeLine(out)
	m.status = ""
	m.view = viewLife
}

func (m *model) updateActions(k string) {
	c := m.session.Character()
	secs := visibleSections(c)
	if len(secs) == 0 {
		m.view = viewLife
		return
	}
	if m.section >= len(secs) {
		m.section = len(secs) - 1
	}
	items := secs[m.section].items(c)
	switch k {
	case "esc", "q":
		m.view = viewLife
	case "left", "h", "shift+tab":
		m.section = (m.section - 1 + len(secs)) % len(secs)
		m.cursor = 0
	case "right", "l", "tab":
		m.section = (m.section + 1) % len(secs)
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= len(items) {
			return
		}
		item := items[m.cursor]
		before := len(c.LifeEvents)
		next, err := m.session.Dispatch(item.action)
		if err != nil {
			m.status = describe(err)
			return
		}
		m.status = "Done."
		if len(next.LifeEvents) > before {
			m.status = next.LifeEvents[len(next.LifeEvents)-1].Event
		}
		if m.cursor >= len(secs[m.section].items(next)) {
			m.cursor = 0
		}
	}
}

func (m *model) updateBiography(k string) {
	switch k {
	case "down", "j":
		m.bioScroll += 3
	case "up", "k":
		m.bioScroll -= 3
	case "pgdown", "ctrl+f":
		m.bioScroll += 12
	case "pgup", "ctrl+b":
		m.bioScroll -= 12
	case "home":
		m.bioScroll = 0
	case "esc", "q", "b":
		m.view = viewLife
	}
	if m.bioScroll < 0 {
		m.bioScroll = 0
	}
}

func (m *model) save() {
	if m.repo == nil {
		m.status = "Saving is disabled (no database)."
		return
	}
	if err := m.repo.Save(m.ctx, m.session.Snapshot()); err != nil {
		m.logger.Printf("[lifesim] save failed: %v", err)
		m.status = "Save failed: " + err.Error()
		return
	}
	m.status = "Game saved."
}

func (m *model) openSaves() {
	if m.repo == nil {
		m.status = "Loading is disabled (no database)."
		return
	}
	saves, err := m.repo.List(m.ctx, 20)
	if err != nil {
		m.status = "Could not list saves: " + err.Error()
		return
	}
	m.saves = saves
	m.saveIndex = 0
	m.view = viewSaves
}

func (m *model) updateSaves(k string) {
	switch k {
	case "up", "k":
		if m.saveIndex > 0 {
			m.saveIndex--
		}
	case "down", "j":
		if m.saveIndex < len(m.saves)-1 {
			m.saveIndex++
		}
	case "enter":
		if m.saveIndex >= len(m.saves) {
			return
		}
		s, err := game.Restore(m.saves[m.saveIndex], m.logger)
		if err != nil {
			m.status = "Could not load save: " + err.Error()
			return
		}
		m.session = s
		m.status = "Loaded " + s.Character().Name + "."
		m.view = viewLife
		if s.Pending() != nil {
			m.view = viewEvent
		}
	case "esc", "q":
		m.view = viewLife
	}
}

func describe(err error) string {
	var e *engine.Error
	if errors.As(err, &e) && e.Message != "" {
		return strings.ToUpper(e.Message[:1]) + e.Message[1:] + "."
	}
	return err.Error()
}

// Layout rendering -----------------------------------------------------------
func (m *model) screenWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m *model) renderTopBar() string {
	c := m.session.Character()
	left := fmt.Sprintf("LIFESIM • %s • age %d • %d", c.Name, c.Age, c.Year())
	right := text.Money(c.Money)
	if c.IsIncarcerated {
		right = "INCARCERATED  " + right
	}
	gap := m.screenWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.title.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *model) renderBottomBar(keys string) string {
	line := keys
	if m.status != "" {
		line = m.status + "\n" + keys
	}
	return m.styles.muted.Render(line)
}

func (m *model) renderLife() string {
	c := m.session.Character()
	w := m.screenWidth()
	sidebarWidth := 32
	if w < 90 {
		sidebarWidth = 26
	}
	mainWidth := w - sidebarWidth - 4

	var b strings.Builder
	if m.outcome != "" {
		b.WriteString(m.styles.good.Render(m.outcome) + "\n\n")
	}
	b.WriteString(m.markdown("## Recent\n" + text.Recent(c, 12)))
	main := lipgloss.NewStyle().Width(mainWidth).Render(b.String())
	side := m.styles.panel.Width(sidebarWidth).Render(m.buildSidebar(c))
	body := lipgloss.JoinHorizontal(lipgloss.Top, main, side)
	keys := "[A/Space] age up  [Enter] actions  [B] biography  [S] save  [O] open  [T] theme  [?] help  [Q] quit"
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderBottomBar(keys))
}

func (m *model) buildSidebar(c engine.Character) string {
	var b strings.Builder
	b.WriteString("STATS\n")
	b.WriteString(m.statBar("Health", c.Health))
	b.WriteString(m.statBar("Happy", c.Happiness))
	b.WriteString(m.statBar("Smarts", c.Smartness))
	b.WriteString(m.statBar("Looks", c.Appearance))
	b.WriteString(m.statBar("Fitness", c.Fitness))
	b.WriteString("\nLIFE\n")
	job := "Unemployed"
	if career, ok := engine.CareerByID(c.Job); ok && c.Employed() {
		job = fmt.Sprintf("%s L%d", career.Name, c.CareerLevel)
	}
	b.WriteString(job + "\n")
	if c.Enrolled() {
		b.WriteString(fmt.Sprintf("Studying %s (%dy)\n", c.CurrentEducation, c.EducationYearsLeft))
	}
	b.WriteString(fmt.Sprintf("Net %s/mo\n", text.Money(engine.NetMonthly(c))))
	b.WriteString(fmt.Sprintf("Worth %s\n", text.Money(engine.NetWorth(c))))
	b.WriteString(fmt.Sprintf("Class %s\n", c.SocialStatus.SocialClass))
	if c.MarriageStatus.IsMarried {
		b.WriteString(fmt.Sprintf("Married (%d)\n", c.MarriageStatus.MarriageHappiness))
	}
	if len(c.Children) > 0 {
		b.WriteString(fmt.Sprintf("Children %d\n", len(c.Children)))
	}
	if c.IsIncarcerated && c.CurrentSentence != nil {
		b.WriteString(m.styles.bad.Render(fmt.Sprintf("Prison %dy left", c.CurrentSentence.RemainingSentenceYears)) + "\n")
	}
	if len(c.Achievements) > 0 {
		b.WriteString(fmt.Sprintf("\n%d achievements\n", len(c.Achievements)))
	}
	return b.String()
}

func (m *model) statBar(label string, v int) string {
	fill := int((float64(v)/100.0)*10 + 0.5)
	if fill > 10 {
		fill = 10
	}
	if fill < 0 {
		fill = 0
	}
	return fmt.Sprintf("%-7s %s%s %3d\n", label, m.styles.fill.Render(strings.Repeat("█", fill)), m.styles.empty.Render(strings.Repeat("·", 10-fill)), v)
}

func (m *model) renderEvent() string {
	ev := m.session.Pending()
	if ev == nil {
		return m.renderLife()
	}
	card := m.markdown(text.EventCard(*ev, m.session.Choices()))
	box := m.styles.panel.Width(m.screenWidth() - 4).Render(card)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), box, m.renderBottomBar("[1-9] choose"))
}

func (m *model) renderActions() string {
	c := m.session.Character()
	secs := visibleSections(c)
	if len(secs) == 0 {
		return "Nothing to do right now. Esc to return"
	}
	section := m.section
	if section >= len(secs) {
		section = len(secs) - 1
	}
	var tabs []string
	for i, s := range secs {
		if i == section {
			tabs = append(tabs, m.styles.cursor.Render("["+s.title+"]"))
			continue
		}
		tabs = append(tabs, m.styles.muted.Render(s.title))
	}
	var b strings.Builder
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")
	for i, item := range secs[section].items(c) {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "+item.label) + "\n")
			continue
		}
		b.WriteString("  " + item.label + "\n")
	}
	box := m.styles.panel.Width(m.screenWidth() - 4).Render(b.String())
	keys := "[←/→] section  [↑/↓] move  [Enter] do it  [Esc] back"
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), box, m.renderBottomBar(keys))
}

func (m *model) renderBiography() string {
	lines := strings.Split(m.markdown(text.Biography(m.session.Character())), "\n")
	h := m.height - 2
	if h < 5 {
		h = 30
	}
	start := m.bioScroll
	if start > len(lines)-h {
		start = len(lines) - h
	}
	if start < 0 {
		start = 0
	}
	end := start + h
	if end > len(lines) {
		end = len(lines)
	}
	title := m.styles.title.Render("BIOGRAPHY (↑/↓ scroll, Esc back)")
	return title + "\n" + strings.Join(lines[start:end], "\n")
}

func (m *model) renderSaves() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("SAVED LIVES (↑/↓, Enter load, Esc back)") + "\n")
	if len(m.saves) == 0 {
		b.WriteString("(no saves yet)\n")
	}
	for i, s := range m.saves {
		cursor := "  "
		if i == m.saveIndex {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-24s age %-3d %s\n", cursor, s.Name, s.Character.Age, s.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}
	return b.String()
}

func (m *model) renderHelp() string {
	return m.styles.panel.Render(fmt.Sprintf("LIFESIM %s\nSeed: %s\n\n"+
		"Each key press of A ages you one year. Life happens along the way: school, jobs, money, love, family and the occasional crime.\n"+
		"When something big comes up you must choose before time moves on again.\n\n"+
		"Controls: A/Space age up | Enter actions | B biography | S save | O open save | T theme | Q quit.\n\nEsc returns from subviews.",
		m.version, m.session.SeedText()))
}
