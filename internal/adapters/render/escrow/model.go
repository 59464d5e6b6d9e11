package escrow

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// model renders a report once and quits. It lets lipgloss resolve the
// terminal profile the same way the interactive UI does.
type model struct {
	report Report
	opts   RenderOptions
	styles Styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = View(m.report, m.opts, m.styles)
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render produces the report through a headless bubbletea program.
func Render(report Report, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{report: report, opts: opts, styles: NewStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
