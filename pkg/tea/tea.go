package tea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micr0-dev/prose/pkg/reflow"
	"github.com/muesli/reflow/truncate"
)

const maxWidth = 200

// Lines above and below the viewport.
const (
	headerHeight = 2
	footerHeight = 1
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	rulerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type keyMap struct {
	Narrow    key.Binding
	Widen     key.Binding
	BetterFit key.Binding
	LastLine  key.Binding
	Save      key.Binding
	Accept    key.Binding
	Quit      key.Binding
}

var defaultKeys = keyMap{
	Narrow:    key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "narrower")),
	Widen:     key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "wider")),
	BetterFit: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "better fit")),
	LastLine:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "last line")),
	Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save defaults")),
	Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Narrow, k.Widen, k.BetterFit, k.LastLine, k.Save, k.Accept, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// SaveFunc persists the options currently shown in the preview.
type SaveFunc func(reflow.Options) error

type model struct {
	viewport   viewport.Model
	keys       keyMap
	paragraphs []string
	opts       reflow.Options
	save       SaveFunc
	output     string
	lines      int
	cost       int
	status     string
	statusErr  bool
	width      int
	height     int
	ready      bool
	accepted   bool
}

type savedMsg struct{ err error }

// InitialModel builds a preview over paragraphs, starting from opts. save
// may be nil, in which case the save key is ignored.
func InitialModel(paragraphs []string, opts reflow.Options, save SaveFunc) model {
	m := model{
		keys:       defaultKeys,
		paragraphs: paragraphs,
		opts:       opts,
		save:       save,
	}
	if m.opts.MaxLength < 1 {
		m.opts.MaxLength = 1
	}
	m.rewrap()
	return m
}

// Result returns the reflowed text if the user accepted it.
func Result(final tea.Model) (string, bool) {
	m, ok := final.(model)
	if !ok || !m.accepted {
		return "", false
	}
	return m.output, true
}

func (m *model) rewrap() {
	rendered := make([]string, 0, len(m.paragraphs))
	m.lines, m.cost = 0, 0
	for _, p := range m.paragraphs {
		words := reflow.Tokenize(p)
		if len(words) == 0 {
			continue
		}
		lines := reflow.Pack(words, m.opts)
		m.lines += len(lines)
		m.cost += reflow.Cost(lines, m.opts.MaxLength)
		rendered = append(rendered, reflow.Render(lines))
	}
	m.output = strings.Join(rendered, "\n\n")
	if m.ready {
		m.viewport.SetContent(m.output)
	}
}

func saveCmd(save SaveFunc, opts reflow.Options) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: save(opts)}
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.viewport.SetContent(m.output)
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.statusErr = true
		} else {
			m.status = "defaults saved"
			m.statusErr = false
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Narrow):
			if m.opts.MaxLength > 1 {
				m.opts.MaxLength--
				m.rewrap()
			}
			return m, nil
		case key.Matches(msg, m.keys.Widen):
			if m.opts.MaxLength < maxWidth {
				m.opts.MaxLength++
				m.rewrap()
			}
			return m, nil
		case key.Matches(msg, m.keys.BetterFit):
			m.opts.ReduceJaggedness = !m.opts.ReduceJaggedness
			m.rewrap()
			return m, nil
		case key.Matches(msg, m.keys.LastLine):
			m.opts.LastLine = !m.opts.LastLine
			m.rewrap()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			if m.save == nil {
				return m, nil
			}
			return m, saveCmd(m.save, m.opts)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var s strings.Builder

	status := fmt.Sprintf("width %d · %s · last line %s · %d lines · cost %d",
		m.opts.MaxLength, m.opts.Mode(), onOff(m.opts.LastLine), m.lines, m.cost)
	if m.status != "" {
		status += " · " + m.status
	}
	status = truncate.StringWithTail(status, uint(max(m.width, 0)), "…")
	if m.statusErr {
		s.WriteString(errorStyle.Render(status))
	} else {
		s.WriteString(statusStyle.Render(status))
	}
	s.WriteString("\n")

	ruler := strings.Repeat("─", max(min(m.opts.MaxLength, m.width-1), 0)) + "┤"
	s.WriteString(rulerStyle.Render(ruler))
	s.WriteString("\n")

	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	help := truncate.StringWithTail(m.keys.help(), uint(max(m.width, 0)), "…")
	s.WriteString(helpStyle.Render(help))

	return s.String()
}
