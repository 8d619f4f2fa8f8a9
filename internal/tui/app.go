// Package tui is the terminal frontend: login, expense list, expense form
// with receipt upload, and the analytics dashboard with report export.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"expensetrack/internal/analytics"
	"expensetrack/internal/api"
	"expensetrack/internal/cache"
	"expensetrack/internal/config"
	"expensetrack/internal/offline"
	"expensetrack/internal/report"
	"expensetrack/internal/service"
	"expensetrack/internal/session"
	"expensetrack/internal/store"
)

type appState string

const (
	viewLogin     appState = "login"
	viewDashboard appState = "dashboard"
	viewExpenses  appState = "expenses"
	viewForm      appState = "form"
)

type modalState string

const (
	modalNone          modalState = ""
	modalConfirmDelete modalState = "confirmDelete"
	modalReceiptPath   modalState = "receiptPath"
	modalCategoryPick  modalState = "categoryPick"
)

// Deps bundles the wiring the app needs.
type Deps struct {
	Client   *api.Client
	Session  *session.Session
	Store    *store.Store
	Cache    *cache.Cache
	Mutator  *service.Mutator
	Receipt  *service.ReceiptPipeline
	Snapshot *offline.Snapshot // nil when the snapshot db failed to open
}

// formField indexes the form inputs in display order.
const (
	formAmount = iota
	formCategory
	formDate
	formNotes
	formReceiptURL
	formFieldCount
)

var draftFieldFor = map[int]service.DraftField{
	formAmount:     service.FieldAmount,
	formCategory:   service.FieldCategory,
	formDate:       service.FieldDate,
	formNotes:      service.FieldNotes,
	formReceiptURL: service.FieldReceiptURL,
}

// App ties together views.
type App struct {
	ctx   context.Context
	cfg   config.Config
	deps  Deps
	state appState
	modal modalState

	status  string
	month   time.Time
	expCur  int
	visible []api.Expense

	// list filter
	filterCategory int // index into api.Categories, -1 = all
	searchInput    textinput.Model
	searching      bool

	// login / register
	registering bool
	authInputs  []textinput.Model
	authCursor  int

	// form
	draft      *service.Draft
	editingID  int // 0 = creating
	formInputs []textinput.Model
	formCursor int
	fieldErrs  map[string]string
	formErr    string
	catCursor  int
	inFlight   bool

	// receipt
	receiptInput textinput.Model

	// dashboard
	summary       *api.Summary
	summaryErr    string
	prediction    *api.Prediction
	predictionCat int

	width  int
	height int
}

// New builds the app. The initial view depends on whether a persisted
// session token survived the restart.
func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	a := &App{
		ctx:            ctx,
		cfg:            cfg,
		deps:           deps,
		month:          time.Now().UTC(),
		filterCategory: -1,
		state:          viewLogin,
		fieldErrs:      map[string]string{},
	}
	if deps.Session.Authenticated() {
		a.state = viewExpenses
	}
	a.searchInput = newInput("search notes...", 40)
	a.receiptInput = newInput("receipt.jpg", 60)
	a.resetAuthInputs()
	return a
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = width
	return ti
}

func (a *App) Init() tea.Cmd {
	if a.state == viewLogin {
		return textinput.Blink
	}
	return tea.Batch(a.loadSnapshot(), a.loadExpenses())
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) listParams() api.ListParams {
	p := api.ListParams{Limit: a.cfg.UI.PageLimit}
	if a.filterCategory >= 0 {
		p.Category = api.Categories[a.filterCategory]
	}
	if s := strings.TrimSpace(a.searchInput.Value()); s != "" {
		p.Search = s
	}
	return p
}

func (a *App) loadExpenses() tea.Cmd {
	params := a.listParams()
	return func() tea.Msg {
		page, err := cache.Fetch(a.ctx, a.deps.Cache, cache.ExpensesDescriptor(params),
			func(ctx context.Context) (api.ExpensePage, error) {
				return a.deps.Client.ListExpenses(ctx, params)
			})
		if err != nil {
			return errMsg{err}
		}
		return expensesMsg{page}
	}
}

func (a *App) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		if a.deps.Snapshot == nil {
			return nil
		}
		records, fetched, err := a.deps.Snapshot.Load(a.ctx)
		if err != nil || len(records) == 0 {
			return nil
		}
		return snapshotMsg{records: records, fetched: fetched}
	}
}

func (a *App) saveSnapshot(records []api.Expense) tea.Cmd {
	return func() tea.Msg {
		if a.deps.Snapshot == nil {
			return nil
		}
		if err := a.deps.Snapshot.Save(a.ctx, records); err != nil {
			return statusMsg("snapshot save failed: " + err.Error())
		}
		return nil
	}
}

func (a *App) loadSummary() tea.Cmd {
	year, month := a.month.Year(), int(a.month.Month())
	return func() tea.Msg {
		s, err := cache.Fetch(a.ctx, a.deps.Cache, cache.SummaryDescriptor(year, month),
			func(ctx context.Context) (api.Summary, error) {
				return a.deps.Client.Summary(ctx, year, month)
			})
		if err != nil {
			return errMsg{err}
		}
		return summaryMsg{s}
	}
}

func (a *App) loadPrediction() tea.Cmd {
	cat := api.Categories[a.predictionCat]
	return func() tea.Msg {
		p, err := cache.Fetch(a.ctx, a.deps.Cache, cache.PredictionDescriptor(cat),
			func(ctx context.Context) (api.Prediction, error) {
				return a.deps.Client.Predict(ctx, cat)
			})
		if err != nil {
			return errMsg{err}
		}
		return predictionMsg{category: cat, prediction: p}
	}
}

func (a *App) submitForm() tea.Cmd {
	input, err := a.draftInput()
	if err != nil {
		a.formErr = err.Error()
		return nil
	}
	id := a.editingID
	a.inFlight = true
	return func() tea.Msg {
		if id > 0 {
			upd := api.ExpenseUpdate{
				Amount:   &input.Amount,
				Category: &input.Category,
				Date:     &input.Date,
				Notes:    &input.Notes,
			}
			if input.ReceiptURL != "" {
				upd.ReceiptURL = &input.ReceiptURL
			}
			e, err := a.deps.Mutator.Update(a.ctx, id, upd)
			if err != nil {
				return mutationErrMsg{err}
			}
			return mutationDoneMsg{expense: e}
		}
		e, err := a.deps.Mutator.Create(a.ctx, input)
		if err != nil {
			return mutationErrMsg{err}
		}
		return mutationDoneMsg{expense: e}
	}
}

// draftInput validates the draft into a request body. Validation here is a
// convenience; the server remains authoritative.
func (a *App) draftInput() (api.ExpenseInput, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(a.draft.Get(service.FieldAmount)), 64)
	if err != nil || amount <= 0 {
		return api.ExpenseInput{}, fmt.Errorf("amount must be greater than 0")
	}
	cat := strings.TrimSpace(a.draft.Get(service.FieldCategory))
	if !api.ValidCategory(cat) {
		return api.ExpenseInput{}, fmt.Errorf("category is required")
	}
	date := strings.TrimSpace(a.draft.Get(service.FieldDate))
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	return api.ExpenseInput{
		Amount:     amount,
		Category:   cat,
		Date:       date,
		Notes:      strings.TrimSpace(a.draft.Get(service.FieldNotes)),
		ReceiptURL: strings.TrimSpace(a.draft.Get(service.FieldReceiptURL)),
	}, nil
}

func (a *App) deleteExpense(id int) tea.Cmd {
	return func() tea.Msg {
		if err := a.deps.Mutator.Delete(a.ctx, id); err != nil {
			return mutationErrMsg{err}
		}
		return mutationDoneMsg{deleted: id}
	}
}

func (a *App) processReceipt(path string) tea.Cmd {
	draft := a.draft
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return receiptDoneMsg{err: err}
		}
		defer f.Close()
		applied, err := a.deps.Receipt.Run(a.ctx, draft, filepath.Base(path), f)
		return receiptDoneMsg{applied: applied, err: err}
	}
}

func (a *App) exportReport(xlsx bool) tea.Cmd {
	if a.summary == nil || len(a.summary.Categories) == 0 {
		a.status = "No data available to export"
		return nil
	}
	s := *a.summary
	dir := a.cfg.Export.Dir
	return func() tea.Msg {
		var path string
		var err error
		if xlsx {
			path = filepath.Join(dir, report.XLSXFileName(s.Year, s.Month))
			err = report.WriteXLSX(path, s)
		} else {
			path = filepath.Join(dir, report.FileName(s.Year, s.Month))
			err = report.WritePDF(path, s)
		}
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg(path)
	}
}

func (a *App) login() tea.Cmd {
	email := strings.TrimSpace(a.authInputs[0].Value())
	password := a.authInputs[len(a.authInputs)-1].Value()
	if a.registering {
		req := api.RegisterRequest{
			Email:     email,
			FirstName: strings.TrimSpace(a.authInputs[1].Value()),
			LastName:  strings.TrimSpace(a.authInputs[2].Value()),
			Password:  password,
		}
		return func() tea.Msg {
			if _, err := a.deps.Client.Register(a.ctx, req); err != nil {
				return authErrMsg{err}
			}
			if err := a.deps.Client.Login(a.ctx, req.Email, req.Password); err != nil {
				return authErrMsg{err}
			}
			return authDoneMsg{}
		}
	}
	return func() tea.Msg {
		if err := a.deps.Client.Login(a.ctx, email, password); err != nil {
			return authErrMsg{err}
		}
		return authDoneMsg{}
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(m)

	case SessionExpiredMsg:
		a.state = viewLogin
		a.registering = false
		a.resetAuthInputs()
		a.status = "Session expired. Please log in again."
		return a, textinput.Blink

	case snapshotMsg:
		// Only seed the store before the first live fetch lands.
		if a.deps.Store.Len() == 0 {
			a.deps.Store.ReplaceAll(m.records)
			a.refreshVisible()
			if !m.fetched.IsZero() {
				a.status = "offline data from " + m.fetched.Format("2006-01-02 15:04")
			}
		}
		return a, nil

	case expensesMsg:
		a.deps.Store.ReplaceAll(m.page.Items)
		a.refreshVisible()
		a.status = fmt.Sprintf("%d of %d expenses", len(a.visible), m.page.Total)
		return a, a.saveSnapshot(m.page.Items)

	case summaryMsg:
		s := m.summary
		a.summary = &s
		a.summaryErr = ""
		if err := analytics.ValidateSummary(s); err != nil {
			a.summaryErr = err.Error()
		}
		return a, nil

	case predictionMsg:
		p := m.prediction
		a.prediction = &p
		return a, nil

	case mutationDoneMsg:
		a.inFlight = false
		if a.state == viewForm {
			a.closeForm()
		}
		a.status = "saved"
		if m.deleted > 0 {
			a.status = "deleted"
		}
		a.refreshVisible()
		if m.deleted == 0 {
			// keep the cursor on the record that was just saved
			for i, e := range a.visible {
				if e.ID == m.expense.ID {
					a.expCur = i
					break
				}
			}
		}
		return a, a.loadExpenses()

	case mutationErrMsg:
		a.inFlight = false
		return a.handleMutationErr(m.err)

	case receiptDoneMsg:
		if a.state != viewForm || a.draft == nil {
			// the form was submitted or abandoned while the upload ran
			return a, nil
		}
		if m.err != nil {
			a.status = a.deps.Receipt.Warning()
			return a, nil
		}
		if m.applied {
			a.syncFormFromDraft()
			a.status = "receipt applied"
		} else {
			a.status = "receipt result superseded"
		}
		return a, nil

	case exportDoneMsg:
		a.status = "exported " + string(m)
		return a, nil

	case authDoneMsg:
		a.state = viewExpenses
		a.status = ""
		return a, a.loadExpenses()

	case authErrMsg:
		var apiErr *api.APIError
		if errors.As(m.err, &apiErr) {
			a.status = apiErr.Error()
		} else {
			a.status = "login failed: " + m.err.Error()
		}
		return a, nil

	case statusMsg:
		a.status = string(m)
		return a, nil

	case errMsg:
		if errors.Is(m.error, api.ErrUnauthorized) {
			return a.Update(SessionExpiredMsg{})
		}
		a.status = "error: " + m.Error()
		return a, nil
	}
	return a, nil
}

// handleMutationErr routes the error taxonomy: auth to the login flow,
// validation to field messages, everything else to the form-level line.
func (a *App) handleMutationErr(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, api.ErrUnauthorized) {
		return a.Update(SessionExpiredMsg{})
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Validation() {
			a.fieldErrs = map[string]string{}
			for _, f := range apiErr.Fields {
				a.fieldErrs[f.Field] = f.Message
			}
			a.formErr = ""
			return a, nil
		}
		a.formErr = apiErr.Message
		return a, nil
	}
	a.formErr = "request failed: " + err.Error()
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	switch a.state {
	case viewLogin:
		return a.handleLoginKey(m)
	case viewForm:
		return a.handleFormKey(m)
	case viewDashboard:
		return a.handleDashboardKey(m)
	default:
		return a.handleExpensesKey(m)
	}
}

func (a *App) handleExpensesKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch m.String() {
		case "enter":
			a.searching = false
			a.searchInput.Blur()
			return a, a.loadExpenses()
		case "esc":
			a.searching = false
			a.searchInput.Blur()
			a.searchInput.SetValue("")
			a.refreshVisible()
			return a, a.loadExpenses()
		default:
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(m)
			a.refreshVisible()
			return a, cmd
		}
	}
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "d":
		a.state = viewDashboard
		return a, tea.Batch(a.loadSummary(), a.loadPrediction())
	case "up", "k":
		if a.expCur > 0 {
			a.expCur--
		}
	case "down", "j":
		if a.expCur < len(a.visible)-1 {
			a.expCur++
		}
	case "/":
		a.searching = true
		return a, a.searchInput.Focus()
	case "c":
		a.filterCategory++
		if a.filterCategory >= len(api.Categories) {
			a.filterCategory = -1
		}
		a.expCur = 0
		a.refreshVisible()
		return a, a.loadExpenses()
	case "r":
		a.deps.Cache.Invalidate(cache.KindExpenses, cache.KindSummary, cache.KindPrediction)
		return a, a.loadExpenses()
	case "n":
		a.openForm(nil)
		return a, textinput.Blink
	case "enter":
		if len(a.visible) > 0 {
			e := a.visible[a.expCur]
			a.openForm(&e)
			return a, textinput.Blink
		}
	case "backspace", "delete", "x":
		if len(a.visible) > 0 {
			a.modal = modalConfirmDelete
		}
	}
	return a, nil
}

func (a *App) handleDashboardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "t", "esc":
		a.state = viewExpenses
		return a, nil
	case "left", "h":
		a.month = a.month.AddDate(0, -1, 0)
		return a, a.loadSummary()
	case "right", "l":
		a.month = a.month.AddDate(0, 1, 0)
		return a, a.loadSummary()
	case "c":
		a.predictionCat = (a.predictionCat + 1) % len(api.Categories)
		a.prediction = nil
		return a, a.loadPrediction()
	case "r":
		a.deps.Cache.Invalidate(cache.KindSummary, cache.KindPrediction)
		return a, tea.Batch(a.loadSummary(), a.loadPrediction())
	case "e":
		return a, a.exportReport(false)
	case "x":
		return a, a.exportReport(true)
	}
	return a, nil
}

func (a *App) handleLoginKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "tab", "down":
		a.focusAuth(a.authCursor + 1)
		return a, textinput.Blink
	case "shift+tab", "up":
		a.focusAuth(a.authCursor - 1)
		return a, textinput.Blink
	case "ctrl+r":
		a.registering = !a.registering
		a.resetAuthInputs()
		a.status = ""
		return a, textinput.Blink
	case "enter":
		if a.authCursor < len(a.authInputs)-1 {
			a.focusAuth(a.authCursor + 1)
			return a, textinput.Blink
		}
		a.status = "signing in..."
		return a, a.login()
	}
	var cmd tea.Cmd
	a.authInputs[a.authCursor], cmd = a.authInputs[a.authCursor].Update(m)
	return a, cmd
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.closeForm()
		return a, nil
	case "tab", "down":
		a.focusForm(a.formCursor + 1)
		return a, textinput.Blink
	case "shift+tab", "up":
		a.focusForm(a.formCursor - 1)
		return a, textinput.Blink
	case "ctrl+o":
		a.modal = modalReceiptPath
		a.receiptInput.SetValue("")
		return a, a.receiptInput.Focus()
	case "enter":
		if a.formCursor == formCategory {
			a.modal = modalCategoryPick
			a.catCursor = 0
			if cur := a.draft.Get(service.FieldCategory); cur != "" {
				for i, c := range api.Categories {
					if c == cur {
						a.catCursor = i
					}
				}
			}
			return a, nil
		}
		if a.formCursor < formFieldCount-1 {
			a.focusForm(a.formCursor + 1)
			return a, textinput.Blink
		}
		if a.inFlight {
			return a, nil // submit disabled while a mutation is in flight
		}
		return a, a.submitForm()
	}
	if a.formCursor == formCategory {
		return a, nil // category is picker-only
	}
	before := a.formInputs[a.formCursor].Value()
	var cmd tea.Cmd
	a.formInputs[a.formCursor], cmd = a.formInputs[a.formCursor].Update(m)
	if after := a.formInputs[a.formCursor].Value(); after != before {
		a.draft.Set(draftFieldFor[a.formCursor], after)
	}
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmDelete:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			if len(a.visible) > 0 {
				return a, a.deleteExpense(a.visible[a.expCur].ID)
			}
		case "n", "N", "esc":
			a.modal = modalNone
		}
	case modalCategoryPick:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.catCursor > 0 {
				a.catCursor--
			}
		case "down", "j":
			if a.catCursor < len(api.Categories)-1 {
				a.catCursor++
			}
		case "enter":
			a.modal = modalNone
			cat := api.Categories[a.catCursor]
			a.draft.Set(service.FieldCategory, cat)
			a.formInputs[formCategory].SetValue(cat)
		}
	case modalReceiptPath:
		switch m.String() {
		case "esc":
			a.modal = modalNone
			a.receiptInput.Blur()
		case "enter":
			a.modal = modalNone
			a.receiptInput.Blur()
			path := strings.TrimSpace(a.receiptInput.Value())
			if path == "" {
				return a, nil
			}
			a.status = "processing receipt..."
			return a, a.processReceipt(path)
		default:
			var cmd tea.Cmd
			a.receiptInput, cmd = a.receiptInput.Update(m)
			return a, cmd
		}
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Form / auth state helpers
// ---------------------------------------------------------------------------

func (a *App) openForm(existing *api.Expense) {
	a.draft = service.NewDraft()
	a.editingID = 0
	a.fieldErrs = map[string]string{}
	a.formErr = ""
	a.formCursor = 0

	labels := []string{"0.00", "category", "YYYY-MM-DD", "notes", "receipt URL"}
	a.formInputs = make([]textinput.Model, formFieldCount)
	for i := range a.formInputs {
		a.formInputs[i] = newInput(labels[i], 40)
	}

	if existing != nil {
		a.editingID = existing.ID
		a.draft.Seed(map[service.DraftField]string{
			service.FieldAmount:     strconv.FormatFloat(existing.Amount, 'f', 2, 64),
			service.FieldCategory:   existing.Category,
			service.FieldDate:       existing.Day(),
			service.FieldNotes:      existing.Notes,
			service.FieldReceiptURL: existing.ReceiptURL,
		})
	} else {
		a.draft.Seed(map[service.DraftField]string{
			service.FieldDate: time.Now().UTC().Format("2006-01-02"),
		})
	}
	a.syncFormFromDraft()
	a.state = viewForm
	a.focusForm(0)
}

func (a *App) closeForm() {
	a.state = viewExpenses
	a.draft = nil
	a.formInputs = nil
	a.editingID = 0
}

// syncFormFromDraft pushes draft values into the inputs (after seeding or an
// extraction merge) without marking anything touched.
func (a *App) syncFormFromDraft() {
	if a.draft == nil || len(a.formInputs) == 0 {
		return
	}
	for i := 0; i < formFieldCount; i++ {
		a.formInputs[i].SetValue(a.draft.Get(draftFieldFor[i]))
	}
}

func (a *App) focusForm(i int) {
	if i < 0 {
		i = formFieldCount - 1
	}
	if i >= formFieldCount {
		i = 0
	}
	for j := range a.formInputs {
		a.formInputs[j].Blur()
	}
	a.formCursor = i
	a.formInputs[i].Focus()
}

func (a *App) resetAuthInputs() {
	email := newInput("email", 40)
	password := newInput("password", 40)
	password.EchoMode = textinput.EchoPassword
	if a.registering {
		a.authInputs = []textinput.Model{email, newInput("first name", 40), newInput("last name", 40), password}
	} else {
		a.authInputs = []textinput.Model{email, password}
	}
	a.authCursor = 0
	a.authInputs[0].Focus()
}

func (a *App) focusAuth(i int) {
	if i < 0 {
		i = len(a.authInputs) - 1
	}
	if i >= len(a.authInputs) {
		i = 0
	}
	for j := range a.authInputs {
		a.authInputs[j].Blur()
	}
	a.authCursor = i
	a.authInputs[i].Focus()
}

// refreshVisible re-evaluates the store filter into the slice the list view
// renders.
func (a *App) refreshVisible() {
	f := store.Filter{}
	if a.filterCategory >= 0 {
		f.Category = api.Categories[a.filterCategory]
	}
	if s := strings.TrimSpace(a.searchInput.Value()); s != "" {
		f.Search = s
	}
	a.visible = a.visible[:0]
	for e := range a.deps.Store.List(f) {
		a.visible = append(a.visible, e)
	}
	if a.expCur >= len(a.visible) {
		a.expCur = 0
	}
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// SessionExpiredMsg is sent from outside the update loop when the session's
// expiry hook fires (main wires session.OnExpire to Program.Send).
type SessionExpiredMsg struct{}

type expensesMsg struct{ page api.ExpensePage }

type snapshotMsg struct {
	records []api.Expense
	fetched time.Time
}

type summaryMsg struct{ summary api.Summary }

type predictionMsg struct {
	category   string
	prediction api.Prediction
}

type mutationDoneMsg struct {
	expense api.Expense
	deleted int
}

type mutationErrMsg struct{ err error }

type receiptDoneMsg struct {
	applied bool
	err     error
}

type exportDoneMsg string

type authDoneMsg struct{}

type authErrMsg struct{ err error }

type statusMsg string

type errMsg struct{ error }
