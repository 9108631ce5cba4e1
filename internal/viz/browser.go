package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/numfmt"
	"github.com/san-kum/refsheet/internal/preview"
)

const (
	minFrames     = 2
	maxFrames     = 24
	defaultFrames = 7
	listWidth     = 22
)

// Browser lists the curves of a registry next to a plot of the selected
// one and the times its frames land on.
type Browser struct {
	reg     *easing.Registry
	names   []string
	cursor  int
	frames  int
	braille bool
	theme   int
	styles  Styles
	fmt     numfmt.Formatter

	width  int
	height int
}

func NewBrowser(reg *easing.Registry) Browser {
	return Browser{
		reg:    reg,
		names:  reg.Names(),
		frames: defaultFrames,
		styles: NewStyles(Themes[0]),
		fmt:    numfmt.New(numfmt.DefaultPrecision),
		width:  80,
		height: 24,
	}
}

func (m Browser) Init() tea.Cmd { return nil }

func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Browser) handleKey(msg tea.KeyMsg) (Browser, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.frames > minFrames {
			m.frames--
		}
	case "right", "l":
		if m.frames < maxFrames {
			m.frames++
		}
	case "b":
		m.braille = !m.braille
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = NewStyles(Themes[m.theme])
	}
	return m, nil
}

// Selected returns the name under the cursor.
func (m Browser) Selected() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.cursor]
}

func (m Browser) View() string {
	s := m.styles
	if len(m.names) == 0 {
		return s.Error.Render("no easing curves registered") + "\n"
	}

	var list strings.Builder
	list.WriteString(s.Title.Render("easings") + "\n")
	for i, name := range m.names {
		if i == m.cursor {
			list.WriteString(s.Selected.Render("> "+name) + "\n")
		} else {
			list.WriteString(s.Name.Render("  "+name) + "\n")
		}
	}

	right := m.detail()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(list.String()),
		s.Panel.Render(right))

	help := s.Muted.Render(fmt.Sprintf("j/k select  h/l frames (%d)  b braille  t theme (%s)  q quit",
		m.frames, Themes[m.theme].Name))
	return body + "\n" + help + "\n"
}

func (m Browser) detail() string {
	s := m.styles
	name := m.Selected()
	f, err := m.reg.Lookup(name)
	if err != nil {
		return s.Error.Render(err.Error())
	}

	plotW := max(m.width-listWidth-12, 20)
	plotH := max(m.height-12, 6)

	var chart string
	if m.braille {
		chart, err = preview.Braille(f, plotW/2, plotH/2)
	} else {
		chart, err = preview.Plot(f, plotW, plotH, "")
	}
	if err != nil {
		return s.Error.Render(err.Error())
	}

	values, _ := m.reg.Sample(name, m.frames)
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = m.fmt.Must(v)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(name) + "\n")
	b.WriteString(s.Muted.Render(f.String()) + "\n\n")
	b.WriteString(chart + "\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d frames: ", m.frames)))
	b.WriteString(s.Value.Render(strings.Join(formatted, " ")))
	return b.String()
}

// RunBrowser runs the browser full screen until the user quits.
func RunBrowser(reg *easing.Registry) error {
	_, err := tea.NewProgram(NewBrowser(reg), tea.WithAltScreen()).Run()
	return err
}
