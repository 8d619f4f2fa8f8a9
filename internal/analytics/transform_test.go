package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"expensetrack/internal/api"
)

func monthSummary() api.Summary {
	return api.Summary{
		Year:  2026,
		Month: 1,
		Categories: []api.CategorySummary{
			{Category: "travel", Total: 200.00, Count: 5, Average: 40.00},
			{Category: "food", Total: 450.25, Count: 15, Average: 30.02},
			{Category: "entertainment", Total: 150.75, Count: 8, Average: 18.84},
		},
		GrandTotal: 801.00,
	}
}

func TestToChartSeriesSortsByTotalDesc(t *testing.T) {
	t.Parallel()
	points := ToChartSeries(monthSummary())

	require.Len(t, points, 3)
	require.Equal(t, "Food", points[0].Label)
	require.Equal(t, "Travel", points[1].Label)
	require.Equal(t, "Entertainment", points[2].Label)

	require.InDelta(t, 450.25/801.00, points[0].Share, 1e-9)
	var total float64
	for _, p := range points {
		require.LessOrEqual(t, p.Share, 1.0)
		total += p.Share
	}
	require.InDelta(t, 1.0, total, 1e-9)
}

func TestToChartSeriesOmitsZeroCountCategories(t *testing.T) {
	t.Parallel()
	s := monthSummary()
	s.Categories = append(s.Categories, api.CategorySummary{Category: "utilities", Total: 0, Count: 0})

	points := ToChartSeries(s)
	require.Len(t, points, 3)
	for _, p := range points {
		require.NotEqual(t, "Utilities", p.Label)
	}
}

func TestToChartSeriesZeroGrandTotal(t *testing.T) {
	t.Parallel()
	s := api.Summary{Categories: []api.CategorySummary{{Category: "food", Total: 0, Count: 1}}}

	points := ToChartSeries(s)
	require.Len(t, points, 1)
	require.Equal(t, 0.0, points[0].Share)
}

func TestTopCategory(t *testing.T) {
	t.Parallel()

	top, ok := TopCategory(monthSummary())
	require.True(t, ok)
	require.Equal(t, "food", top.Category)

	_, ok = TopCategory(api.Summary{})
	require.False(t, ok)

	// first occurrence wins a tie
	tied := api.Summary{Categories: []api.CategorySummary{
		{Category: "food", Total: 100, Count: 1},
		{Category: "travel", Total: 100, Count: 1},
	}}
	top, ok = TopCategory(tied)
	require.True(t, ok)
	require.Equal(t, "food", top.Category)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	st := Summarize(monthSummary())

	require.Equal(t, 28, st.Transactions)
	require.InDelta(t, 801.00/28, st.Average, 1e-9)
	require.Equal(t, "Food", st.TopCategory)
	require.Equal(t, 450.25, st.TopTotal)

	empty := Summarize(api.Summary{})
	require.Zero(t, empty.Transactions)
	require.Zero(t, empty.Average)
	require.Empty(t, empty.TopCategory)
}

func TestValidateSummary(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateSummary(monthSummary()))

	s := monthSummary()
	s.GrandTotal = 900.00
	require.Error(t, ValidateSummary(s))

	// rounding drift within half a cent per category passes
	s = monthSummary()
	s.GrandTotal = 801.01
	require.NoError(t, ValidateSummary(s))
}

func TestToPredictionNarrativeOverspend(t *testing.T) {
	t.Parallel()
	got := ToPredictionNarrative("food", api.Prediction{
		PredictedOverspend: 75.0,
		Confidence:         0.846,
		DataPoints:         6,
	})
	require.Equal(t,
		"Based on your spending patterns, you might overspend by $75 next month in food."+
			" Prediction confidence: 85% based on 6 historical data points.",
		got)
}

func TestToPredictionNarrativeOnTrack(t *testing.T) {
	t.Parallel()
	got := ToPredictionNarrative("travel", api.Prediction{
		PredictedOverspend: 0,
		Confidence:         0.5,
		DataPoints:         3,
	})
	require.Equal(t,
		"Your travel spending is on track. No overspend predicted for next month."+
			" Prediction confidence: 50% based on 3 historical data points.",
		got)
}

func TestRederiveOverspend(t *testing.T) {
	t.Parallel()
	require.Equal(t, 25.0, RederiveOverspend(api.Prediction{Prediction: 125, RecentAverage: 100}))
	require.Equal(t, 0.0, RederiveOverspend(api.Prediction{Prediction: 80, RecentAverage: 100}))
}
