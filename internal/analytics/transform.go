// Package analytics turns raw summary and prediction responses into
// report-ready view models. Everything here is a pure function.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"expensetrack/internal/api"
)

// ChartPoint is one bar of the category chart.
type ChartPoint struct {
	Label string  // display category name
	Total float64 // category total
	Share float64 // fraction of the grand total, 0 when the grand total is 0
}

// ToChartSeries sorts categories by descending total and annotates each with
// its share of the grand total. Categories with zero transactions are
// omitted. The sort is stable, so equal totals keep their input order.
func ToChartSeries(s api.Summary) []ChartPoint {
	rows := make([]api.CategorySummary, 0, len(s.Categories))
	for _, c := range s.Categories {
		if c.Count == 0 {
			continue
		}
		rows = append(rows, c)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

	out := make([]ChartPoint, 0, len(rows))
	for _, c := range rows {
		share := 0.0
		if s.GrandTotal > 0 {
			share = c.Total / s.GrandTotal
		}
		out = append(out, ChartPoint{Label: api.TitleCategory(c.Category), Total: c.Total, Share: share})
	}
	return out
}

// TopCategory returns the category with the largest total, first occurrence
// winning ties. ok is false for an empty summary ("no data").
func TopCategory(s api.Summary) (api.CategorySummary, bool) {
	if len(s.Categories) == 0 {
		return api.CategorySummary{}, false
	}
	top := s.Categories[0]
	for _, c := range s.Categories[1:] {
		if c.Total > top.Total {
			top = c
		}
	}
	return top, true
}

// Stats are the report footer aggregates.
type Stats struct {
	Transactions int     // total count across categories
	Average      float64 // grand total / transactions, 0 when there are none
	TopCategory  string
	TopTotal     float64
}

// Summarize derives footer statistics from a summary.
func Summarize(s api.Summary) Stats {
	st := Stats{}
	for _, c := range s.Categories {
		st.Transactions += c.Count
	}
	if st.Transactions > 0 {
		st.Average = s.GrandTotal / float64(st.Transactions)
	}
	if top, ok := TopCategory(s); ok {
		st.TopCategory = api.TitleCategory(top.Category)
		st.TopTotal = top.Total
	}
	return st
}

// ValidateSummary checks the grand total against the per-category sum within
// currency rounding tolerance (half a cent per category).
func ValidateSummary(s api.Summary) error {
	var sum float64
	for _, c := range s.Categories {
		sum += c.Total
	}
	tol := 0.005 * float64(len(s.Categories))
	if tol < 0.005 {
		tol = 0.005
	}
	if math.Abs(sum-s.GrandTotal) > tol {
		return fmt.Errorf("grand total %.2f does not match category sum %.2f", s.GrandTotal, sum)
	}
	return nil
}

// ToPredictionNarrative renders the forecast as two sentences: an overspend
// warning or an on-track message, then the confidence (rounded to the
// nearest integer percent) and data-point count.
func ToPredictionNarrative(category string, p api.Prediction) string {
	var b strings.Builder
	if p.PredictedOverspend > 0 {
		fmt.Fprintf(&b, "Based on your spending patterns, you might overspend by %s next month in %s.",
			WholeCurrency(p.PredictedOverspend), category)
	} else {
		fmt.Fprintf(&b, "Your %s spending is on track. No overspend predicted for next month.", category)
	}
	fmt.Fprintf(&b, " Prediction confidence: %d%% based on %d historical data points.",
		int(math.Round(p.Confidence*100)), p.DataPoints)
	return b.String()
}

// RederiveOverspend recomputes max(0, prediction - recent average) for
// validating the server-reported figure.
func RederiveOverspend(p api.Prediction) float64 {
	return math.Max(0, p.Prediction-p.RecentAverage)
}

// Currency formats a dollar amount with cents ("$450.25").
func Currency(v float64) string { return fmt.Sprintf("$%.2f", v) }

// WholeCurrency formats a dollar amount without cents ("$450").
func WholeCurrency(v float64) string { return fmt.Sprintf("$%.0f", v) }
