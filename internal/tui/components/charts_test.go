package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekta-240/provider-pulse/internal/model"
	"github.com/ekta-240/provider-pulse/internal/tui/themes"
)

func TestRenderPie(t *testing.T) {
	dist := map[string]int{
		model.DriftHigh:   2,
		model.DriftMedium: 5,
		model.DriftLow:    13,
	}

	out := RenderPie(dist, 40, themes.Dark)

	assert.Contains(t, out, "High 2 (10%)")
	assert.Contains(t, out, "Medium 5 (25%)")
	assert.Contains(t, out, "Low 13 (65%)")
}

func TestRenderPie_ZeroTotal(t *testing.T) {
	assert.Contains(t, RenderPie(nil, 40, themes.Dark), "no drift data")
	assert.Contains(t, RenderPie(map[string]int{model.DriftHigh: 0}, 40, themes.Dark), "no drift data")
}

func TestBarRows(t *testing.T) {
	rows := BarRows(map[string]int{
		"Excellent": 4,
		"Good":      30,
		"Fair":      1,
		"Poor":      0,
	})

	require.Len(t, rows, 4)

	// Sorted descending by value.
	assert.Equal(t, "Good", rows[0].Label)
	assert.Equal(t, BarScale, rows[0].Cells)

	// Small non-zero values keep a visible floor.
	assert.Equal(t, "Fair", rows[2].Label)
	assert.Equal(t, MinBarCells, rows[2].Cells)

	// Zero stays at zero cells.
	assert.Equal(t, "Poor", rows[3].Label)
	assert.Equal(t, 0, rows[3].Cells)

	// The floor never inverts relative lengths.
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i].Cells, rows[i-1].Cells)
	}
}

func TestBarRows_AllZero(t *testing.T) {
	rows := BarRows(map[string]int{"Good": 0, "Fair": 0})

	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 0, row.Cells)
	}
}

func TestRenderBar(t *testing.T) {
	out := RenderBar(map[string]int{"Good": 10, "Fair": 5}, themes.Dark)

	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Fair")
	assert.Contains(t, out, "10")

	assert.Contains(t, RenderBar(nil, themes.Dark), "no data")
}

func TestRenderTrend(t *testing.T) {
	points := []model.TrendPoint{
		{Date: "2026-02-27", AutoUpdates: 5, ManualReviews: 4},
		{Date: "2026-02-28", AutoUpdates: 60, ManualReviews: 30},
		{Date: "2026-03-01", AutoUpdates: 90, ManualReviews: 10},
	}

	out := RenderTrend(points, 60, 12, themes.Dark)

	assert.Contains(t, out, "●")
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "2026-02-27")
	assert.Contains(t, out, "2026-03-01")
	assert.Contains(t, out, "auto-updates")
	assert.Contains(t, out, "manual reviews")

	// Quarter ticks on the default 100-unit axis.
	assert.Contains(t, out, "100┤")
	assert.Contains(t, out, "  0┤")
	assert.Contains(t, out, " 50┤")
}

func TestRenderTrend_SinglePoint(t *testing.T) {
	points := []model.TrendPoint{{Date: "2026-03-01", AutoUpdates: 7, ManualReviews: 3}}

	out := RenderTrend(points, 60, 12, themes.Dark)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "2026-03-01")
}

func TestRenderTrend_Empty(t *testing.T) {
	assert.Contains(t, RenderTrend(nil, 60, 12, themes.Dark), "no trend data")
}

func TestRenderTrend_AxisScalesAboveFloor(t *testing.T) {
	points := []model.TrendPoint{
		{Date: "2026-02-28", AutoUpdates: 150, ManualReviews: 10},
		{Date: "2026-03-01", AutoUpdates: 200, ManualReviews: 20},
	}

	out := RenderTrend(points, 60, 12, themes.Dark)
	assert.Contains(t, out, "200┤")
	assert.False(t, strings.Contains(out, "100┤") && !strings.Contains(out, "200┤"))
}
