package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"expensetrack/internal/analytics"
	"expensetrack/internal/api"
	"expensetrack/internal/service"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewLogin:
		body = a.renderLogin()
	case viewDashboard:
		body = a.renderDashboard()
	case viewForm:
		body = a.renderForm()
	default:
		body = a.renderExpenses()
	}
	if a.modal != modalNone {
		body += "\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n\n" + faintStyle.Render(a.status)
	}
	return body + "\n"
}

func (a *App) renderLogin() string {
	var b strings.Builder
	if a.registering {
		b.WriteString(titleStyle.Render("Create Account") + "\n\n")
		labels := []string{"Email", "First name", "Last name", "Password"}
		for i, in := range a.authInputs {
			b.WriteString(fmt.Sprintf("%-11s %s\n", labels[i], in.View()))
		}
		b.WriteString("\n" + faintStyle.Render("[enter] Next/Submit  [ctrl+r] Back to login  [ctrl+c] Quit"))
		return b.String()
	}
	b.WriteString(titleStyle.Render("Sign In") + "\n\n")
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Email", a.authInputs[0].View()))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Password", a.authInputs[1].View()))
	b.WriteString("\n" + faintStyle.Render("[enter] Next/Submit  [ctrl+r] Register  [ctrl+c] Quit"))
	return b.String()
}

func (a *App) renderExpenses() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Expenses") + "\n\n")

	filter := "all"
	if a.filterCategory >= 0 {
		filter = api.TitleCategory(api.Categories[a.filterCategory])
	}
	b.WriteString("Category: " + filter)
	if a.searching {
		b.WriteString("   Search: " + a.searchInput.View())
	} else if s := a.searchInput.Value(); s != "" {
		b.WriteString("   Search: " + s)
	}
	b.WriteString("\n\n")

	if len(a.visible) == 0 {
		b.WriteString(faintStyle.Render("no expenses") + "\n")
	}
	for i, e := range a.visible {
		marker := "  "
		line := fmt.Sprintf("%s  %-13s %10s  %s",
			e.Day(), api.TitleCategory(e.Category), analytics.Currency(e.Amount), e.Notes)
		if i == a.expCur {
			marker = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(
		"[n] New  [enter] Edit  [x] Delete  [/] Search  [c] Category  [r] Refresh  [d] Dashboard  [q] Quit"))
	return b.String()
}

func (a *App) renderDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Dashboard — %s", a.month.Format("January 2006"))) + "\n\n")

	if a.summary == nil {
		b.WriteString(faintStyle.Render("loading summary...") + "\n")
	} else {
		s := *a.summary
		points := analytics.ToChartSeries(s)
		if len(points) == 0 {
			b.WriteString(faintStyle.Render("no expenses recorded this month") + "\n")
		} else {
			b.WriteString(a.renderChart(points) + "\n")
			for _, p := range points {
				b.WriteString(fmt.Sprintf("  %-13s %10s  %5.1f%%\n", p.Label, analytics.Currency(p.Total), p.Share*100))
			}
			st := analytics.Summarize(s)
			b.WriteString(fmt.Sprintf("\nGrand total %s over %d transactions (avg %s), top: %s\n",
				analytics.Currency(s.GrandTotal), st.Transactions, analytics.Currency(st.Average),
				st.TopCategory))
		}
		if a.summaryErr != "" {
			b.WriteString(errStyle.Render("warning: "+a.summaryErr) + "\n")
		}
	}

	b.WriteString("\n" + titleStyle.Render("Prediction") + "\n")
	b.WriteString("Category: " + api.TitleCategory(api.Categories[a.predictionCat]) + "\n")
	switch {
	case a.prediction == nil:
		b.WriteString(faintStyle.Render("loading prediction...") + "\n")
	case a.prediction.Message != "":
		// fewer than three months of history; the server sends an
		// explanation instead of a forecast
		b.WriteString(faintStyle.Render(a.prediction.Message) + "\n")
	default:
		b.WriteString(analytics.ToPredictionNarrative(api.Categories[a.predictionCat], *a.prediction) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(
		"[h/l] Month  [c] Prediction category  [e] Export PDF  [x] Export XLSX  [r] Refresh  [esc] Expenses  [q] Quit"))
	return b.String()
}

func (a *App) renderChart(points []analytics.ChartPoint) string {
	w, h := a.width-4, 10
	if w < 20 {
		w = 60
	}
	bc := barchart.New(w, h)
	for _, p := range points {
		bc.Push(barchart.BarData{
			Label:  p.Label,
			Values: []barchart.BarValue{{Name: p.Label, Value: p.Total, Style: barStyle}},
		})
	}
	bc.Draw()
	return bc.View()
}

func (a *App) renderForm() string {
	var b strings.Builder
	header := "New Expense"
	if a.editingID > 0 {
		header = fmt.Sprintf("Edit Expense #%d", a.editingID)
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	labels := []string{"Amount", "Category", "Date", "Notes", "Receipt URL"}
	fieldKeys := []string{"amount", "category", "date", "notes", "receipt_url"}
	for i := 0; i < formFieldCount; i++ {
		marker := "  "
		if i == a.formCursor {
			marker = "> "
		}
		if i == formCategory {
			val := a.draft.Get(service.FieldCategory)
			if val == "" {
				val = faintStyle.Render("(press enter to choose)")
			} else {
				val = api.TitleCategory(val)
			}
			b.WriteString(fmt.Sprintf("%s%-12s %s\n", marker, labels[i], val))
		} else {
			b.WriteString(fmt.Sprintf("%s%-12s %s\n", marker, labels[i], a.formInputs[i].View()))
		}
		if msg, ok := a.fieldErrs[fieldKeys[i]]; ok {
			b.WriteString("              " + errStyle.Render(msg) + "\n")
		}
	}

	if st := a.deps.Receipt.State(); st != service.ReceiptIdle {
		b.WriteString("\nReceipt: " + st.String())
		if w := a.deps.Receipt.Warning(); w != "" && st == service.ReceiptFailed {
			b.WriteString("  " + errStyle.Render(w))
		}
		b.WriteString("\n")
	}
	if a.formErr != "" {
		b.WriteString("\n" + errStyle.Render(a.formErr) + "\n")
	}
	if a.inFlight {
		b.WriteString("\n" + faintStyle.Render("saving...") + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(
		"[tab] Next field  [enter] Choose/Submit  [ctrl+o] Scan receipt  [esc] Cancel"))
	return b.String()
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmDelete:
		e := a.visible[a.expCur]
		return fmt.Sprintf("Delete %s expense of %s from %s? [y/n]",
			api.TitleCategory(e.Category), analytics.Currency(e.Amount), e.Day())
	case modalCategoryPick:
		var b strings.Builder
		b.WriteString("Choose category:\n")
		for i, c := range api.Categories {
			marker := "  "
			label := api.TitleCategory(c)
			if i == a.catCursor {
				marker = "> "
				label = cursorStyle.Render(label)
			}
			b.WriteString(marker + label + "\n")
		}
		b.WriteString(faintStyle.Render("[enter] Select  [esc] Cancel"))
		return b.String()
	case modalReceiptPath:
		return "Receipt file path: " + a.receiptInput.View() + "\n" +
			faintStyle.Render("[enter] Upload  [esc] Cancel")
	}
	return ""
}
