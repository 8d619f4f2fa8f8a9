package cache

import (
	"fmt"
	"net/url"
	"strconv"

	"expensetrack/internal/api"
)

// ExpensesDescriptor canonicalizes list parameters so that two requests with
// the same filters share one entry regardless of construction order.
func ExpensesDescriptor(p api.ListParams) Descriptor {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.StartDate != "" {
		q.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("endDate", p.EndDate)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return Descriptor{Kind: KindExpenses, Params: q.Encode()}
}

func ExpenseDescriptor(id int) Descriptor {
	return Descriptor{Kind: KindExpense, Params: strconv.Itoa(id)}
}

func SummaryDescriptor(year, month int) Descriptor {
	return Descriptor{Kind: KindSummary, Params: fmt.Sprintf("%d-%02d", year, month)}
}

func PredictionDescriptor(category string) Descriptor {
	return Descriptor{Kind: KindPrediction, Params: category}
}
