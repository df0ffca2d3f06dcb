package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

// Chart geometry.
const (
	// BarScale is the cell width of the longest bar.
	BarScale = 30
	// MinBarCells keeps small non-zero values visible.
	MinBarCells = 2
	// TrendFloor is the minimum y-axis ceiling of the trend chart.
	TrendFloor = 100
)

// driftOrder fixes segment and legend order: worst bucket first.
var driftOrder = []string{model.DriftHigh, model.DriftMedium, model.DriftLow}

// RenderPie renders a drift distribution as a proportional segmented band
// with a legend. The terminal stand-in for a pie: segment widths carry the
// proportions.
func RenderPie(dist map[string]int, width int, theme themes.Theme) string {
	if width < 10 {
		width = 10
	}

	total := 0
	for _, bucket := range driftOrder {
		total += dist[bucket]
	}
	if total == 0 {
		return theme.StatusPending.Render(strings.Repeat("░", width) + "  no drift data")
	}

	// Cumulative boundaries so rounding errors land on the last segment
	// instead of accumulating.
	var band strings.Builder
	legend := make([]string, 0, len(driftOrder))
	cum := 0
	prevEnd := 0
	for _, bucket := range driftOrder {
		count := dist[bucket]
		cum += count
		end := cum * width / total
		if cells := end - prevEnd; cells > 0 {
			band.WriteString(theme.DriftStyle(bucket).Render(strings.Repeat("█", cells)))
		}
		prevEnd = end

		pct := float64(count) / float64(total) * 100
		legend = append(legend, theme.DriftStyle(bucket).Render(fmt.Sprintf("■ %s %d (%.0f%%)", bucket, count, pct)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		band.String(),
		strings.Join(legend, "  "),
	)
}

// BarRow is one rendered bar of a distribution.
type BarRow struct {
	Label string
	Value int
	Cells int
}

// BarRows converts a distribution to rows sorted by value (descending,
// label as tiebreaker). Non-zero values get at least MinBarCells so small
// bands stay visible; ordering by value keeps the floor from inverting
// relative lengths.
func BarRows(dist map[string]int) []BarRow {
	rows := make([]BarRow, 0, len(dist))
	maxValue := 0
	for label, value := range dist {
		rows = append(rows, BarRow{Label: label, Value: value})
		if value > maxValue {
			maxValue = value
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Label < rows[j].Label
	})

	if maxValue == 0 {
		return rows
	}

	for i := range rows {
		if rows[i].Value == 0 {
			continue
		}
		cells := rows[i].Value * BarScale / maxValue
		if cells < MinBarCells {
			cells = MinBarCells
		}
		rows[i].Cells = cells
	}
	return rows
}

// RenderBar renders a horizontal bar chart of a distribution.
func RenderBar(dist map[string]int, theme themes.Theme) string {
	rows := BarRows(dist)
	if len(rows) == 0 {
		return theme.StatusPending.Render("no data")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", row.Cells))
		lines = append(lines, fmt.Sprintf("%-10s %s %d", row.Label, bar, row.Value))
	}
	return strings.Join(lines, "\n")
}

// RenderTrend renders the recent-runs trend as a two-series character
// grid: ● auto-updates, ○ manual reviews. The y axis tops out at the
// larger of the observed maximum and TrendFloor, with ticks at quarters.
func RenderTrend(points []model.TrendPoint, width, height int, theme themes.Theme) string {
	if len(points) == 0 {
		return theme.StatusPending.Render("no trend data")
	}

	const labelWidth = 5
	cols := width - labelWidth
	if cols < 10 {
		cols = 10
	}
	plotH := height - 2
	if plotH < 4 {
		plotH = 4
	}

	yMax := TrendFloor
	for _, p := range points {
		if p.AutoUpdates > yMax {
			yMax = p.AutoUpdates
		}
		if p.ManualReviews > yMax {
			yMax = p.ManualReviews
		}
	}

	grid := make([][]rune, plotH)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	colFor := func(i int) int {
		if len(points) == 1 {
			return 0
		}
		return i * (cols - 1) / (len(points) - 1)
	}
	rowFor := func(v int) int {
		r := plotH - 1 - int(float64(v)/float64(yMax)*float64(plotH-1)+0.5)
		if r < 0 {
			r = 0
		}
		if r > plotH-1 {
			r = plotH - 1
		}
		return r
	}

	// Manual reviews first so auto-updates win shared cells.
	plotSeries(grid, points, colFor, rowFor, func(p model.TrendPoint) int { return p.ManualReviews }, '○')
	plotSeries(grid, points, colFor, rowFor, func(p model.TrendPoint) int { return p.AutoUpdates }, '●')

	// Tick labels at quarters of the axis.
	tickRows := make(map[int]int, 5)
	for _, pct := range []int{0, 25, 50, 75, 100} {
		value := yMax * pct / 100
		tickRows[rowFor(value)] = value
	}

	lines := make([]string, 0, plotH+2)
	for r := 0; r < plotH; r++ {
		label := strings.Repeat(" ", labelWidth-1)
		if value, ok := tickRows[r]; ok {
			label = fmt.Sprintf("%*d", labelWidth-1, value)
		}
		lines = append(lines, label+"┤"+string(grid[r]))
	}

	first := points[0].Date
	last := points[len(points)-1].Date
	gap := cols - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, strings.Repeat(" ", labelWidth)+first+strings.Repeat(" ", gap)+last)
	lines = append(lines, strings.Repeat(" ", labelWidth)+
		theme.StatusSuccess.Render("● auto-updates")+"  "+
		theme.StatusWarning.Render("○ manual reviews"))

	return strings.Join(lines, "\n")
}

// plotSeries draws one series onto the grid, interpolating between
// consecutive points so segments read as lines rather than dots.
func plotSeries(grid [][]rune, points []model.TrendPoint, colFor func(int) int, rowFor func(int) int, value func(model.TrendPoint) int, mark rune) {
	if len(points) == 1 {
		grid[rowFor(value(points[0]))][colFor(0)] = mark
		return
	}

	for i := 0; i < len(points)-1; i++ {
		c0, c1 := colFor(i), colFor(i+1)
		v0, v1 := value(points[i]), value(points[i+1])
		for c := c0; c <= c1; c++ {
			v := v0
			if c1 > c0 {
				v = v0 + (v1-v0)*(c-c0)/(c1-c0)
			}
			grid[rowFor(v)][c] = mark
		}
	}
}
