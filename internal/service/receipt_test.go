package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"expensetrack/internal/api"
)

type fakeOCR struct {
	fn func(filename string) (api.Extraction, error)
}

func (f *fakeOCR) ExtractReceipt(_ context.Context, filename string, _ io.Reader) (api.Extraction, error) {
	return f.fn(filename)
}

func TestRunAppliesExtractionToUntouchedFields(t *testing.T) {
	t.Parallel()
	p := &ReceiptPipeline{API: &fakeOCR{fn: func(string) (api.Extraction, error) {
		return api.Extraction{Amount: 42.5, Category: "food", RawText: "COFFEE SHOP $42.50"}, nil
	}}}
	d := NewDraft()

	applied, err := p.Run(testCtx(t), d, "receipt.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, ReceiptApplied, p.State())

	require.Equal(t, "42.50", d.Get(FieldAmount))
	require.Equal(t, "food", d.Get(FieldCategory))
	require.Equal(t, "OCR Extracted: COFFEE SHOP $42.50", d.Get(FieldNotes))
	// extraction results never count as user edits
	require.False(t, d.Touched(FieldAmount))
}

func TestRunPreservesTouchedFields(t *testing.T) {
	t.Parallel()
	p := &ReceiptPipeline{API: &fakeOCR{fn: func(string) (api.Extraction, error) {
		return api.Extraction{Amount: 42.5, Category: "food", RawText: "raw"}, nil
	}}}
	d := NewDraft()
	d.Set(FieldCategory, "travel")

	applied, err := p.Run(testCtx(t), d, "receipt.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	require.True(t, applied)

	require.Equal(t, "travel", d.Get(FieldCategory), "user edit wins over extraction")
	require.Equal(t, "42.50", d.Get(FieldAmount), "untouched field takes the extracted value")
}

func TestFailureIsNonFatal(t *testing.T) {
	t.Parallel()
	p := &ReceiptPipeline{API: &fakeOCR{fn: func(string) (api.Extraction, error) {
		return api.Extraction{}, errors.New("unreadable image")
	}}}
	d := NewDraft()
	d.Set(FieldAmount, "10.00")

	applied, err := p.Run(testCtx(t), d, "receipt.jpg", strings.NewReader("img"))
	require.Error(t, err)
	require.False(t, applied)
	require.Equal(t, ReceiptFailed, p.State())
	require.Contains(t, p.Warning(), "unreadable image")

	require.Equal(t, "10.00", d.Get(FieldAmount), "failure leaves the form untouched")
}

func TestStaleAttemptIsDiscarded(t *testing.T) {
	t.Parallel()
	p := &ReceiptPipeline{API: &fakeOCR{}}
	d := NewDraft()

	first := p.Begin()
	second := p.Begin() // user picked a new file; first is superseded

	applied := p.Apply(first, d, api.Extraction{Amount: 1, Category: "food", RawText: "old"})
	require.False(t, applied)
	require.Equal(t, "", d.Get(FieldAmount))

	applied = p.Apply(second, d, api.Extraction{Amount: 2, Category: "food", RawText: "new"})
	require.True(t, applied)
	require.Equal(t, "2.00", d.Get(FieldAmount))
}

func TestStaleFailureDoesNotClobberNewAttempt(t *testing.T) {
	t.Parallel()
	p := &ReceiptPipeline{API: &fakeOCR{}}

	first := p.Begin()
	p.Begin()
	p.Fail(first, errors.New("old attempt"))

	require.Equal(t, ReceiptUploading, p.State())
	require.Empty(t, p.Warning())
}

func TestSupersededApplyCannotMutateSettledDraft(t *testing.T) {
	t.Parallel()

	// Race a late Apply for the first attempt against Begin+Fail of a second.
	// Whatever the interleaving, once the second attempt has failed the draft
	// is settled: either the first attempt applied before it was superseded,
	// or it was discarded without writing. The draft must never change after
	// that point.
	for i := 0; i < 10000; i++ {
		p := &ReceiptPipeline{API: &fakeOCR{}}
		d := NewDraft()
		first := p.Begin()

		applied := make(chan bool, 1)
		go func() {
			applied <- p.Apply(first, d, api.Extraction{Amount: 5, Category: "food", RawText: "STALE"})
		}()

		second := p.Begin()
		p.Fail(second, errors.New("unreadable image"))
		settled := d.Get(FieldNotes)

		ok := <-applied
		require.Equal(t, settled, d.Get(FieldNotes),
			"draft mutated after the superseding attempt failed")
		if !ok {
			require.Empty(t, d.Get(FieldNotes))
			require.Empty(t, d.Get(FieldAmount))
		}
	}
}

func TestSnapCategory(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"food":          "food",
		"Food":          "food",
		" TRAVEL ":      "travel",
		"fod":           "food",      // one edit away
		"helthcare":     "healthcare",
		"entertainmnt":  "entertainment",
		"groceries":     "other", // too far from any member
		"":              "other",
		"miscellaneous": "other",
	}
	for raw, want := range cases {
		require.Equal(t, want, SnapCategory(raw), "raw %q", raw)
	}
}
