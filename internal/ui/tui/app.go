package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neolcr/patterns/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenOutput
)

type demoItem struct {
	demo domain.Demo
}

func (i demoItem) Title() string { return i.demo.Title }
func (i demoItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.demo.Category, i.demo.Name, i.demo.Summary)
}
func (i demoItem) FilterValue() string { return i.demo.Name + " " + i.demo.Title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	menu   list.Model
	output viewport.Model

	width, height int

	active  domain.Demo
	report  domain.DemoReport
	saveID  string
	running bool
	cancel  context.CancelFunc
	toast   string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Catalog != nil {
		for _, d := range deps.Catalog.List() {
			items = append(items, demoItem{demo: d})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Demos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  t,
		deps:   deps,
		scr:    screenHome,
		menu:   l,
		output: viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.output.Width = max(msg.Width-10, 0)
		m.output.Height = max(msg.Height-14, 0)
		return m, nil

	case demoDoneMsg:
		if m.scr != screenRunning {
			// the user already left; drop a late result
			return m, nil
		}
		m.running = false
		m.cancel = nil
		m.report = msg.report
		m.saveID = msg.id
		m.toast = userMessage(msg.err)
		if msg.report.Name == "" && msg.err != nil {
			m.scr = screenHome
			return m, nil
		}
		m.scr = screenOutput
		m.output.SetContent(renderOutput(msg.report, m.output.Width))
		m.output.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.stopRun()
			return m, tea.Quit
		}
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q":
			m.stopRun()
			return m, tea.Quit

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(demoItem)
				if !ok {
					return m, nil
				}
				return m.startRun(it.demo)
			}

		case "r":
			if m.scr == screenOutput {
				return m.startRun(m.active)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.stopRun()
				m.scr = screenHome
				m.toast = ""
				return m, nil
			}
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenOutput:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) startRun(d domain.Demo) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.active = d
	m.scr = screenRunning
	m.running = true
	m.cancel = cancel
	m.toast = ""
	return m, cmdRunDemo(ctx, m.deps, d.Name)
}

func (m *model) stopRun() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.running = false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("patterns") + "\n" +
		m.theme.Subtitle.Render("Runnable design pattern, SOLID, DDD and Go feature demos") + "\n"

	banner := m.theme.Help.Render("No patterns.yaml found, using defaults")
	if m.deps.Root != "" {
		banner = m.theme.Help.Render("Config root: " + m.deps.Root)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + toast + "\n" + help)

	case screenRunning:
		card := m.theme.Card.Render(fmt.Sprintf("%s\n\nRunning %s…\n\n%s",
			m.theme.Title.Render(m.active.Title),
			m.active.Name,
			m.theme.Help.Render("esc/b cancel • q quit"),
		))
		return wrap.Render(header + "\n" + card)

	case screenOutput:
		footer := renderFooter(m.report, m.saveID)
		card := m.theme.Card.Render(fmt.Sprintf("%s\n%s\n\n%s\n\n%s",
			m.theme.Title.Render(m.active.Title),
			m.theme.Subtitle.Render(m.active.Summary),
			m.output.View(),
			m.theme.Help.Render(footer),
		))
		help := m.theme.Help.Render("↑/↓ scroll • r rerun • esc/b back • q quit")
		return wrap.Render(header + "\n" + card + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
