package api

import "strings"

// Categories is the closed set of expense categories accepted by the server.
// Order matters: pickers and reports present them in this order.
var Categories = []string{
	"food",
	"travel",
	"entertainment",
	"shopping",
	"healthcare",
	"utilities",
	"education",
	"other",
}

// ValidCategory reports whether c is a member of the category enum.
func ValidCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// TitleCategory renders a category for display ("food" -> "Food").
func TitleCategory(c string) string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(c[:1]) + c[1:]
}

// Expense is a server-owned expense record. ID and CreatedAt are assigned by
// the server and immutable. Date is an ISO timestamp; only the calendar day
// carries meaning.
type Expense struct {
	ID         int     `json:"id"`
	UserID     int     `json:"user_id"`
	Amount     float64 `json:"amount"`
	Category   string  `json:"category"`
	Date       string  `json:"date"`
	Notes      string  `json:"notes,omitempty"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// Day returns the YYYY-MM-DD part of the expense date.
func (e Expense) Day() string {
	if len(e.Date) >= 10 {
		return e.Date[:10]
	}
	return e.Date
}

// ExpenseInput is the body for creating an expense.
type ExpenseInput struct {
	Amount     float64 `json:"amount"`
	Category   string  `json:"category"`
	Date       string  `json:"date,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
}

// ExpenseUpdate is a partial update; nil fields are left unchanged.
type ExpenseUpdate struct {
	Amount     *float64 `json:"amount,omitempty"`
	Category   *string  `json:"category,omitempty"`
	Date       *string  `json:"date,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	ReceiptURL *string  `json:"receipt_url,omitempty"`
}

// ListParams are the query parameters for GET expenses.
type ListParams struct {
	Page      int
	Limit     int
	Category  string
	StartDate string
	EndDate   string
	Search    string
}

// ExpensePage is the normalized collection envelope. The server may return a
// bare array; the client always presents {items, total}.
type ExpensePage struct {
	Items []Expense `json:"items"`
	Total int       `json:"total"`
}

// CategorySummary is one row of the monthly summary.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"`
}

// Summary is the per-month category breakdown.
type Summary struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Categories []CategorySummary `json:"categories"`
	GrandTotal float64           `json:"grand_total"`
}

// Prediction is the overspend forecast for one category.
// PredictedOverspend is max(0, Prediction - RecentAverage) as reported by the
// server; fewer than three data points yields a zeroed result with a Message.
type Prediction struct {
	PredictedOverspend float64 `json:"predicted_overspend"`
	Confidence         float64 `json:"confidence"`
	DataPoints         int     `json:"data_points"`
	Prediction         float64 `json:"prediction,omitempty"`
	RecentAverage      float64 `json:"recent_average,omitempty"`
	Message            string  `json:"message,omitempty"`
}

// Extraction is the structured result of receipt OCR.
type Extraction struct {
	Amount     float64 `json:"amount"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text"`
}

// User is the registered account.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// RegisterRequest is the body for POST auth/register.
type RegisterRequest struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MobileNumber string `json:"mobile_number,omitempty"`
	Password     string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
