package lampboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/machine"
	"github.com/varalys/maschine/internal/report"
	"github.com/varalys/maschine/internal/settings"
)

// rows follows the lamp layout of the historical machine.
var rows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	windowStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	lampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	litStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Bold(true)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))
)

type keyMap struct {
	Quit  key.Binding
	Copy  key.Binding
	Reset key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy output")),
		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset rotors")),
	}
}

// Model is the bubbletea model of the keyboard and lamp panel.
type Model struct {
	settings settings.Settings
	machine  *machine.Machine
	keys     keyMap

	input  []byte
	output []byte
	lit    byte

	status string
	copy   func(string) error
}

// NewModel builds a lampboard for s with a fresh machine.
func NewModel(s settings.Settings) (Model, error) {
	m, err := s.Build()
	if err != nil {
		return Model{}, err
	}
	return Model{
		settings: s,
		machine:  m,
		keys:     defaultKeys(),
		status:   "type to encipher",
		copy:     clipboard.WriteAll,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Copy):
		if err := m.copy(m.Output()); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.status = "copied output to clipboard"
		}
		return m, nil
	case key.Matches(km, m.keys.Reset):
		fresh, err := m.settings.Build()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.machine = fresh
		m.input, m.output, m.lit = nil, nil, 0
		m.status = "rotors reset"
		return m, nil
	}
	if km.Type != tea.KeyRunes {
		return m, nil
	}
	for _, r := range km.Runes {
		if r > 0x7f {
			continue
		}
		c := byte(r)
		out, ok := m.machine.Press(c)
		if !ok {
			continue
		}
		idx, _ := alphabet.Index(c)
		m.input = append(m.input, alphabet.Letter(idx))
		m.output = append(m.output, out)
		m.lit = out
		m.status = fmt.Sprintf("%c -> %c", alphabet.Letter(idx), out)
	}
	return m, nil
}

// Input returns the typed letters in groups of four.
func (m Model) Input() string { return alphabet.Group(string(m.input), alphabet.GroupSize) }

// Output returns the lit letters in groups of four.
func (m Model) Output() string { return alphabet.Group(string(m.output), alphabet.GroupSize) }

// Lit returns the lamp lit by the last key press, or 0.
func (m Model) Lit() byte { return m.lit }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("maschine"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(report.MachineLine(m.settings.Describe())))
	b.WriteString("\n\n")

	windows := make([]string, 0, machine.Rotors)
	for _, c := range m.machine.Windows() {
		windows = append(windows, windowStyle.Render(string(c)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, windows...))
	b.WriteString("\n\n")

	for i, row := range rows {
		b.WriteString(strings.Repeat(" ", i*2))
		for j := 0; j < len(row); j++ {
			lamp := " " + string(row[j]) + " "
			if row[j] == m.lit {
				b.WriteString(litStyle.Render(lamp))
			} else {
				b.WriteString(lampStyle.Render(lamp))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("in: "), m.Input())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("out:"), m.Output())
	b.WriteString("\n")

	help := make([]string, 0, 3)
	for _, k := range []key.Binding{m.keys.Quit, m.keys.Copy, m.keys.Reset} {
		help = append(help, k.Help().Key+": "+k.Help().Desc)
	}
	b.WriteString(statusStyle.Render(m.status + " | " + strings.Join(help, " | ")))
	b.WriteString("\n")
	return b.String()
}
