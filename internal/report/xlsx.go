package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"expensetrack/internal/analytics"
	"expensetrack/internal/api"
)

// XLSXFileName is the spreadsheet export name for a period.
func XLSXFileName(year, month int) string {
	return fmt.Sprintf("expense-report-%d-%02d.xlsx", year, month)
}

// WriteXLSX renders the summary to a single-sheet workbook mirroring the PDF
// content: one row per category plus the statistics block.
func WriteXLSX(path string, s api.Summary) error {
	if len(s.Categories) == 0 {
		return ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	set := func(cell string, v any) {
		_ = f.SetCellValue(sheet, cell, v)
	}

	set("A1", fmt.Sprintf("Expense Report %d-%02d", s.Year, s.Month))
	set("A2", "Grand Total")
	set("B2", s.GrandTotal)

	set("A4", "Category")
	set("B4", "Total")
	set("C4", "Count")
	set("D4", "Average")
	row := 5
	for _, c := range s.Categories {
		set(fmt.Sprintf("A%d", row), api.TitleCategory(c.Category))
		set(fmt.Sprintf("B%d", row), c.Total)
		set(fmt.Sprintf("C%d", row), c.Count)
		set(fmt.Sprintf("D%d", row), c.Average)
		row++
	}

	st := analytics.Summarize(s)
	row++
	set(fmt.Sprintf("A%d", row), "Total Transactions")
	set(fmt.Sprintf("B%d", row), st.Transactions)
	row++
	set(fmt.Sprintf("A%d", row), "Average Transaction")
	set(fmt.Sprintf("B%d", row), st.Average)
	row++
	set(fmt.Sprintf("A%d", row), "Top Category")
	set(fmt.Sprintf("B%d", row), st.TopCategory)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
