package sales

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

const viewerHelp = "Press q, esc or enter to close the chart."

// viewer shows a rendered chart until it is closed.
type viewer struct {
	chart  string
	closed bool
}

func (v viewer) Init() tea.Cmd {
	return nil
}

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			v.closed = true
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v viewer) View() string {
	if v.closed {
		return v.chart + "\n"
	}
	return v.chart + "\n\n" + viewerHelp + "\n"
}

// Show displays the chart and blocks until the viewer is closed. When out is
// not an interactive terminal the chart is written once and Show returns.
func Show(chart string, in io.Reader, out io.Writer, interactive bool) error {
	if !interactive {
		_, err := fmt.Fprintln(out, chart)
		return err
	}

	p := tea.NewProgram(viewer{chart: chart}, tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("showing chart: %w", err)
	}
	return nil
}
