package sales

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/mazradwan/onestop/pkg/onestop/money"
)

const (
	Title  = "Monthly Sales for the Year"
	XLabel = "Months"
	YLabel = "Total Sales ($)"

	bar      = "███"
	colWidth = len(" Jan")
)

// Chart draws monthly sales as a vertical bar chart on a terminal.
type Chart struct {
	Height int

	title lipgloss.Style
	axis  lipgloss.Style
	bar   lipgloss.Style
}

// NewChart returns a chart Height rows tall styled for the renderer's terminal.
func NewChart(r *lipgloss.Renderer, height int) *Chart {
	return &Chart{
		Height: height,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		axis:   r.NewStyle().Faint(true),
		bar:    r.NewStyle().Foreground(lipgloss.Color("#04B575")),
	}
}

// barHeights scales amounts to rows; any positive amount gets at least one row.
func (c *Chart) barHeights(sales dal.MonthlySales) []int {
	heights := make([]int, len(sales))
	highest := sales.Max()
	if highest <= 0 {
		return heights
	}
	for i, s := range sales {
		h := int(math.Round(s.Amount / highest * float64(c.Height)))
		if h == 0 && s.Amount > 0 {
			h = 1
		}
		heights[i] = h
	}
	return heights
}

// Render returns the chart as text.
func (c *Chart) Render(sales dal.MonthlySales) string {
	highest := sales.Max()
	heights := c.barHeights(sales)
	plotWidth := colWidth * len(sales)

	ticks := map[int]string{
		c.Height: money.Format(highest),
	}
	if half := c.Height / 2; half > 0 && half < c.Height {
		ticks[half] = money.Format(highest * float64(half) / float64(c.Height))
	}
	zero := money.Format(0)
	tickWidth := len(zero)
	for _, t := range ticks {
		if len(t) > tickWidth {
			tickWidth = len(t)
		}
	}

	var rows []string
	rows = append(rows, c.title.Width(tickWidth+1+plotWidth).Align(lipgloss.Center).Render(Title), "")
	rows = append(rows, c.axis.Render(YLabel))

	for row := c.Height; row >= 1; row-- {
		var sb strings.Builder
		if t, ok := ticks[row]; ok {
			sb.WriteString(c.axis.Render(money.Right(t, tickWidth) + "┤"))
		} else {
			sb.WriteString(c.axis.Render(strings.Repeat(" ", tickWidth) + "│"))
		}
		for _, h := range heights {
			sb.WriteString(" ")
			if h >= row {
				sb.WriteString(c.bar.Render(bar))
			} else {
				sb.WriteString(strings.Repeat(" ", len([]rune(bar))))
			}
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}

	rows = append(rows, c.axis.Render(money.Right(zero, tickWidth)+"┼"+strings.Repeat("─", plotWidth)))

	var labels strings.Builder
	labels.WriteString(strings.Repeat(" ", tickWidth+1))
	for _, s := range sales {
		labels.WriteString(" " + s.Month)
	}
	rows = append(rows, labels.String())
	rows = append(rows, strings.Repeat(" ", tickWidth+1)+c.axis.Width(plotWidth).Align(lipgloss.Center).Render(XLabel))

	return strings.Join(rows, "\n")
}
