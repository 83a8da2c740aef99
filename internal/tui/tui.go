package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/steps/internal/catalog"
	"github.com/idilsaglam/steps/internal/dates"
	"github.com/idilsaglam/steps/internal/log"
	"github.com/idilsaglam/steps/internal/nav"
	"github.com/idilsaglam/steps/internal/session"
	"github.com/idilsaglam/steps/internal/ui"
)

type model struct {
	ctx  context.Context
	sess *session.Session
	log  *log.Logger
	now  func() time.Time

	nav    nav.State
	cursor int // 1-based day of the displayed month

	keys keyMap
	help help.Model

	status    string
	statusErr bool

	width, height int
}

func newModel(ctx context.Context, sess *session.Session, logger *log.Logger, now func() time.Time) model {
	t := now()
	h := help.New()
	h.Styles.ShortKey = ui.Current().Accent
	h.Styles.FullKey = ui.Current().Accent
	return model{
		ctx:    ctx,
		sess:   sess,
		log:    logger.WithComponent("tui"),
		now:    now,
		nav:    nav.New(t),
		cursor: t.Day(),
		keys:   defaultKeys(),
		help:   h,
	}
}

// Run starts the Bubble Tea calendar. Every toggle is persisted as it
// happens; a write still pending on quit is retried once.
func Run(ctx context.Context, sess *session.Session, logger *log.Logger) error {
	m := newModel(ctx, sess, logger, time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	if err := sess.Flush(ctx); err != nil {
		return fmt.Errorf("changes not saved: %w", err)
	}
	return nil
}

// Update and View implement Bubble Tea's Model on model
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-7)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(7)
		case key.Matches(msg, m.keys.PrevMonth):
			m.changeMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.changeMonth(1)
		case key.Matches(msg, m.keys.NextItem):
			m.nav = nav.Cycle(m.nav, m.sess.Catalog(), 1)
		case key.Matches(msg, m.keys.PrevItem):
			m.nav = nav.Cycle(m.nav, m.sess.Catalog(), -1)
		case key.Matches(msg, m.keys.Overview):
			m.nav = nav.Overview(m.nav)
		case key.Matches(msg, m.keys.Today):
			t := m.now()
			m.nav = nav.JumpTo(m.nav, t)
			m.cursor = t.Day()
		case key.Matches(msg, m.keys.Toggle):
			e, ok := m.nav.Selected()
			if !ok {
				m.setStatus("overview: press 1-9 to toggle an item, tab to select one", false)
				break
			}
			m.toggle(e)
		case key.Matches(msg, m.keys.ToggleNth):
			if !m.nav.IsOverview() {
				break
			}
			n := int(msg.String()[0] - '1')
			if e, ok := m.sess.Catalog().At(n); ok {
				m.toggle(e)
			}
		}
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	days := dates.DaysInMonth(m.nav.Year, m.nav.Month)
	m.cursor = min(max(m.cursor+delta, 1), days)
}

func (m *model) changeMonth(delta int) {
	m.nav = nav.ChangeMonth(m.nav, delta)
	m.cursor = min(m.cursor, dates.DaysInMonth(m.nav.Year, m.nav.Month))
	m.status = ""
	m.log.Debug("month changed", "year", m.nav.Year, "month", m.nav.Month+1)
}

func (m *model) toggle(e catalog.Entry) {
	dateKey := dates.Key(m.nav.Year, m.nav.Month, m.cursor)
	if err := m.sess.Toggle(m.ctx, e, dateKey); err != nil {
		m.setStatus("not saved: "+err.Error(), true)
		return
	}
	state := "undone"
	if m.sess.Data().Checked(e.ID(), dateKey) {
		state = "done"
	}
	m.setStatus(fmt.Sprintf("%s %s %s", e.ID(), dateKey, state), false)
}

func (m *model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m model) View() string {
	t := ui.Current()
	today := dates.Today(m.now())

	month := m.sess.Calendar(m.nav, today)
	pane := []string{
		t.Title.Render("◀  " + ui.MonthTitle(m.nav.Year, m.nav.Month) + "  ▶"),
		"",
	}
	if e, ok := m.nav.Selected(); ok {
		pane = append(pane, t.Item(e, t.Title.Render(string(e.ID())+" Calendar")), "")
	} else {
		pane = append(pane, ui.RenderLegend(m.sess.Catalog()), "")
	}
	pane = append(pane, ui.RenderMonth(month, m.cursor))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Panel(m.sidebar()),
		ui.Panel(pane...),
		ui.Panel(ui.RenderStats(m.sess.Stats())),
	)

	footer := m.help.View(m.keys)
	if m.status != "" {
		st := t.Muted
		if m.statusErr {
			st = t.Error
		}
		footer = st.Render(m.status) + "\n" + footer
	}
	return body + "\n" + footer
}

func (m model) sidebar() string {
	t := ui.Current()
	c := m.sess.Catalog()
	selected, _ := m.nav.Selected()

	line := func(label string, active bool) string {
		if active {
			return t.Selected.Render("> " + label)
		}
		return "  " + label
	}
	lines := []string{line("Overview", m.nav.IsOverview())}
	for _, cat := range c.Categories() {
		lines = append(lines, "", t.Muted.Render(cat.Name))
		for _, id := range cat.Items {
			e, _ := c.Lookup(string(id))
			label := fmt.Sprintf("%d %s", e.Index()+1, t.Item(e, string(id)))
			lines = append(lines, line(label, e.ID() == selected.ID()))
		}
	}
	return strings.Join(lines, "\n")
}
