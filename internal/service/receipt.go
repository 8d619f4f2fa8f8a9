package service

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"expensetrack/internal/api"
)

// ReceiptState is the phase of the current upload attempt.
type ReceiptState int

const (
	ReceiptIdle ReceiptState = iota
	ReceiptUploading
	ReceiptExtracting
	ReceiptApplied
	ReceiptFailed
)

func (s ReceiptState) String() string {
	switch s {
	case ReceiptIdle:
		return "idle"
	case ReceiptUploading:
		return "uploading"
	case ReceiptExtracting:
		return "extracting"
	case ReceiptApplied:
		return "applied"
	case ReceiptFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OCRAPI is the slice of the client the pipeline needs.
type OCRAPI interface {
	ExtractReceipt(ctx context.Context, filename string, r io.Reader) (api.Extraction, error)
}

// ReceiptPipeline runs one OCR attempt at a time for a single form. Starting
// a new attempt bumps the sequence number; a result arriving for an earlier
// sequence is computed upstream but discarded here, so a superseded upload
// can never clobber the draft. Failure is terminal for the attempt and
// non-fatal for the form.
type ReceiptPipeline struct {
	API OCRAPI

	mu      sync.Mutex
	state   ReceiptState
	seq     uint64
	warning string
}

// Begin starts a new attempt (the user picked a file) and returns its
// sequence number. Any earlier in-flight attempt is superseded.
func (p *ReceiptPipeline) Begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.state = ReceiptUploading
	p.warning = ""
	return p.seq
}

// MarkExtracting transitions Uploading -> Extracting once the image bytes
// are on the wire. Stale attempts are ignored.
func (p *ReceiptPipeline) MarkExtracting(attempt uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if attempt != p.seq || p.state != ReceiptUploading {
		return
	}
	p.state = ReceiptExtracting
}

// Apply merges the extraction into the draft's untouched fields and reports
// whether the result was used. A stale attempt is discarded without touching
// the draft. The extracted category is snapped to the closed enum to absorb
// OCR noise; amount is formatted to cents; notes embed the raw text.
func (p *ReceiptPipeline) Apply(attempt uint64, d *Draft, res api.Extraction) bool {
	// The sequence check and the merge must be one critical section: a Begin
	// interleaving between them would let a superseded extraction write into
	// the new attempt's draft. Draft has its own lock and never calls back
	// into the pipeline, so holding mu across the proposes cannot deadlock.
	p.mu.Lock()
	defer p.mu.Unlock()
	if attempt != p.seq {
		return false
	}
	p.state = ReceiptApplied

	d.propose(FieldAmount, strconv.FormatFloat(res.Amount, 'f', 2, 64))
	d.propose(FieldCategory, SnapCategory(res.Category))
	d.propose(FieldNotes, "OCR Extracted: "+res.RawText)
	return true
}

// Fail records a terminal failure for the attempt; the form stays usable and
// every field keeps its current value. Stale attempts are ignored.
func (p *ReceiptPipeline) Fail(attempt uint64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if attempt != p.seq {
		return
	}
	p.state = ReceiptFailed
	if err != nil {
		p.warning = "Receipt processing failed: " + err.Error()
	} else {
		p.warning = "Receipt processing failed"
	}
}

// State returns the current phase.
func (p *ReceiptPipeline) State() ReceiptState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Warning returns the non-fatal failure message, empty outside ReceiptFailed.
func (p *ReceiptPipeline) Warning() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.warning
}

// Run drives a whole attempt synchronously: upload, extraction, merge.
// Intended to be called from a background command; concurrent user edits to
// the draft win over the extraction regardless of timing.
func (p *ReceiptPipeline) Run(ctx context.Context, d *Draft, filename string, r io.Reader) (applied bool, err error) {
	attempt := p.Begin()
	p.MarkExtracting(attempt)
	res, err := p.API.ExtractReceipt(ctx, filename, r)
	if err != nil {
		p.Fail(attempt, err)
		return false, err
	}
	return p.Apply(attempt, d, res), nil
}

// SnapCategory maps a raw OCR category string onto the category enum. Exact
// (case-insensitive) matches pass through; otherwise the nearest enum member
// within a levenshtein distance of 2 wins, and anything less recognizable
// falls back to "other" so the category invariant holds.
func SnapCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if api.ValidCategory(c) {
		return c
	}
	best, bestDist := "", 3
	for _, k := range api.Categories {
		if d := levenshtein.ComputeDistance(c, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	if best != "" {
		return best
	}
	return "other"
}
