// Package api is the typed HTTP client for the expense tracker backend.
// Every authenticated call carries the session bearer token; a 401 from any
// endpoint expires the session and surfaces ErrUnauthorized.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"expensetrack/internal/session"
)

// Client talks to the expense API.
type Client struct {
	base string
	http *http.Client
	sess *session.Session
}

// New builds a client for baseURL. The session supplies the bearer token and
// receives the expiry signal on 401.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
		sess: sess,
	}
}

// Login exchanges credentials for a bearer token (form-encoded, the username
// field carries the email) and installs it into the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.send(req, &tok); err != nil {
		return err
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("login: empty access token")
	}
	return c.sess.SetToken(tok.AccessToken)
}

// Register creates an account. A duplicate email comes back as an *APIError
// with a single top-level message.
func (c *Client) Register(ctx context.Context, r RegisterRequest) (User, error) {
	var u User
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", r, &u)
	return u, err
}

// ListExpenses fetches a filtered collection page. A bare-array response is
// normalized to an envelope with Total = len(items).
func (c *Client) ListExpenses(ctx context.Context, p ListParams) (ExpensePage, error) {
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
	path := "/expenses"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return ExpensePage{}, err
	}
	return normalizePage(raw)
}

func (c *Client) GetExpense(ctx context.Context, id int) (Expense, error) {
	var e Expense
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil, &e)
	return e, err
}

func (c *Client) CreateExpense(ctx context.Context, in ExpenseInput) (Expense, error) {
	var e Expense
	err := c.doJSON(ctx, http.MethodPost, "/expenses", in, &e)
	return e, err
}

func (c *Client) UpdateExpense(ctx context.Context, id int, in ExpenseUpdate) (Expense, error) {
	var e Expense
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), in, &e)
	return e, err
}

func (c *Client) DeleteExpense(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

func (c *Client) Summary(ctx context.Context, year, month int) (Summary, error) {
	var s Summary
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/expenses/summary/%d/%d", year, month), nil, &s)
	return s, err
}

func (c *Client) Predict(ctx context.Context, category string) (Prediction, error) {
	var p Prediction
	err := c.doJSON(ctx, http.MethodPost, "/expenses/predict/"+url.PathEscape(category), nil, &p)
	return p, err
}

// ExtractReceipt uploads a receipt image as multipart form data and returns
// the OCR extraction.
func (c *Client) ExtractReceipt(ctx context.Context, filename string, r io.Reader) (Extraction, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Extraction{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return Extraction{}, fmt.Errorf("read receipt: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Extraction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/ocr/extract", &body)
	if err != nil {
		return Extraction{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out Extraction
	if err := c.send(req, &out); err != nil {
		return Extraction{}, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send executes the request and decodes the response or the error taxonomy.
// Transport failures come back wrapped; the previous cached data stays with
// the caller (stale-but-shown).
func (c *Client) send(req *http.Request, out any) error {
	if tok := c.sess.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.sess.Expire()
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func normalizePage(raw json.RawMessage) (ExpensePage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Expense
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return ExpensePage{}, fmt.Errorf("decode expense list: %w", err)
		}
		return ExpensePage{Items: items, Total: len(items)}, nil
	}
	var page ExpensePage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return ExpensePage{}, fmt.Errorf("decode expense page: %w", err)
	}
	if page.Total == 0 {
		page.Total = len(page.Items)
	}
	return page, nil
}
