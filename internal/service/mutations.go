// Package service coordinates remote mutations and the receipt ingestion
// pipeline on top of the record store and query cache.
package service

import (
	"context"

	"expensetrack/internal/api"
	"expensetrack/internal/cache"
	"expensetrack/internal/store"
)

// ExpenseAPI is the slice of the client the mutator needs.
type ExpenseAPI interface {
	CreateExpense(ctx context.Context, in api.ExpenseInput) (api.Expense, error)
	UpdateExpense(ctx context.Context, id int, in api.ExpenseUpdate) (api.Expense, error)
	DeleteExpense(ctx context.Context, id int) error
}

// Mutator executes create/update/delete against the API. On success it
// applies the server's record to the store and marks the collection,
// single-record and summary kinds stale; on failure local state is untouched
// and the error carries enough structure for field or form level rendering.
// A 401 is handled inside the API client (session expiry) and comes back as
// api.ErrUnauthorized, never as a validation error.
type Mutator struct {
	API   ExpenseAPI
	Store *store.Store
	Cache *cache.Cache
}

func (m *Mutator) Create(ctx context.Context, in api.ExpenseInput) (api.Expense, error) {
	created, err := m.API.CreateExpense(ctx, in)
	if err != nil {
		return api.Expense{}, err
	}
	m.Store.Upsert(created)
	m.invalidate()
	return created, nil
}

func (m *Mutator) Update(ctx context.Context, id int, in api.ExpenseUpdate) (api.Expense, error) {
	updated, err := m.API.UpdateExpense(ctx, id, in)
	if err != nil {
		return api.Expense{}, err
	}
	m.Store.Upsert(updated)
	m.invalidate()
	return updated, nil
}

func (m *Mutator) Delete(ctx context.Context, id int) error {
	if err := m.API.DeleteExpense(ctx, id); err != nil {
		return err
	}
	m.Store.Remove(id)
	m.invalidate()
	return nil
}

func (m *Mutator) invalidate() {
	m.Cache.Invalidate(cache.KindExpenses, cache.KindExpense, cache.KindSummary)
}
