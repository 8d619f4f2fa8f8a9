package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"expensetrack/internal/api"
	"expensetrack/internal/cache"
	"expensetrack/internal/config"
	"expensetrack/internal/offline"
	"expensetrack/internal/secrets"
	"expensetrack/internal/service"
	"expensetrack/internal/session"
	"expensetrack/internal/store"
	"expensetrack/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sess := session.New(secrets.NewFileStore())

	client := api.New(cfg.API.BaseURL, sess)
	records := store.New()
	queryCache := cache.New()

	var snapshot *offline.Snapshot
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Printf("warn: snapshot dir: %v", err)
	} else if snapshot, err = offline.Open(cfg.Database.Path); err != nil {
		log.Printf("warn: offline snapshot unavailable: %v", err)
		snapshot = nil
	}
	if snapshot != nil {
		defer snapshot.Close()
	}

	mutator := &service.Mutator{API: client, Store: records, Cache: queryCache}
	receipts := &service.ReceiptPipeline{API: client}

	p := tea.NewProgram(tui.New(ctx, cfg, tui.Deps{
		Client:   client,
		Session:  sess,
		Store:    records,
		Cache:    queryCache,
		Mutator:  mutator,
		Receipt:  receipts,
		Snapshot: snapshot,
	}), tea.WithAltScreen())

	// Expiry can fire inside any command goroutine; forward it to the
	// update loop so the UI drops to the login view.
	sess.OnExpire(func() {
		p.Send(tui.SessionExpiredMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
