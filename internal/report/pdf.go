// Package report renders the monthly summary into export documents.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"expensetrack/internal/analytics"
	"expensetrack/internal/api"
)

// ErrNoData is returned when a renderer is handed an empty summary.
var ErrNoData = errors.New("report: no summary data")

// FileName is the canonical export name for a period.
func FileName(year, month int) string {
	return fmt.Sprintf("expense-report-%d-%02d.pdf", year, month)
}

// bottom margin that triggers a page break mid-list
const pageBreakMargin = 40

// WritePDF renders the summary to path: header, grand total, one line per
// category, then a statistics footer. Long category lists continue on a new
// page without repeating the header.
func WritePDF(path string, s api.Summary) error {
	if len(s.Categories) == 0 {
		return ErrNoData
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pageW, pageH := pdf.GetPageSize()
	pdf.AddPage()

	// title and period
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(59, 130, 246)
	pdf.Text(pageW/2-pdf.GetStringWidth("Expense Report")/2, 30, "Expense Report")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(75, 85, 99)
	period := fmt.Sprintf("Period: %s %d", time.Month(s.Month).String(), s.Year)
	pdf.Text(pageW/2-pdf.GetStringWidth(period)/2, 45, period)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(16, 185, 129)
	total := "Total Spending: " + analytics.Currency(s.GrandTotal)
	pdf.Text(pageW/2-pdf.GetStringWidth(total)/2, 65, total)

	// category section
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(20, 90, "Spending by Category")
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(20, 95, pageW-20, 95)

	y := 110.0
	for _, c := range s.Categories {
		if y > pageH-pageBreakMargin {
			pdf.AddPage()
			y = 30
		}
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(55, 65, 81)
		pdf.Text(30, y, api.TitleCategory(c.Category))
		pdf.SetTextColor(59, 130, 246)
		pdf.Text(pageW-50, y, analytics.Currency(c.Total))

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(107, 114, 128)
		pdf.Text(30, y+6, fmt.Sprintf("%d transactions", c.Count))
		pdf.Text(pageW-50, y+6, "Avg: "+analytics.Currency(c.Average))

		pdf.SetDrawColor(243, 244, 246)
		pdf.Line(20, y+12, pageW-20, y+12)
		y += 20
	}

	// statistics footer
	if y > pageH-60 {
		pdf.AddPage()
		y = 30
	}
	y += 10
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(20, y, "Summary Statistics")
	pdf.SetDrawColor(229, 231, 235)
	pdf.Line(20, y+5, pageW-20, y+5)

	st := analytics.Summarize(s)
	y += 20
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(55, 65, 81)
	pdf.Text(30, y, fmt.Sprintf("Total Transactions: %d", st.Transactions))
	y += 15
	pdf.Text(30, y, "Average Transaction: "+analytics.Currency(st.Average))
	y += 15
	pdf.Text(30, y, fmt.Sprintf("Top Category: %s (%s)", st.TopCategory, analytics.Currency(st.TopTotal)))

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(156, 163, 175)
	stamp := "Generated on " + time.Now().Format("2006-01-02 15:04")
	pdf.Text(pageW/2-pdf.GetStringWidth(stamp)/2, pageH-20, stamp)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
