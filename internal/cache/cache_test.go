package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fetchString(t *testing.T, c *Cache, d Descriptor, fn func(ctx context.Context) (string, error)) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Fetch(ctx, c, d, fn)
}

func TestFetchCachesSuccess(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindSummary, Params: "2026-01"}

	var calls int
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "data", nil
	}

	got, err := fetchString(t, c, d, fn)
	require.NoError(t, err)
	require.Equal(t, "data", got)

	got, err = fetchString(t, c, d, fn)
	require.NoError(t, err)
	require.Equal(t, "data", got)
	require.Equal(t, 1, calls)

	e, ok := c.Peek(d)
	require.True(t, ok)
	require.Equal(t, StateSuccess, e.State)
	require.False(t, e.FetchedAt.IsZero())
}

func TestFetchDistinctParamsAreIndependent(t *testing.T) {
	t.Parallel()
	c := New()

	var calls int
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "x", nil
	}

	_, err := fetchString(t, c, Descriptor{Kind: KindSummary, Params: "2026-01"}, fn)
	require.NoError(t, err)
	_, err = fetchString(t, c, Descriptor{Kind: KindSummary, Params: "2026-02"}, fn)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestConcurrentFetchesShareOneCall(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindExpenses, Params: "page=1"}

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := Fetch(context.Background(), c, d, fn)
			require.NoError(t, err)
			results[i] = got
		}(i)
	}

	// Let the goroutines pile onto the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		require.Equal(t, "shared", r)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindExpenses, Params: ""}

	var calls int
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := fetchString(t, c, d, fn)
	require.NoError(t, err)

	c.Invalidate(KindExpenses)
	e, ok := c.Peek(d)
	require.True(t, ok)
	require.True(t, e.Stale)

	_, err = fetchString(t, c, d, fn)
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	e, _ = c.Peek(d)
	require.False(t, e.Stale)
}

func TestInvalidateOtherKindLeavesEntryFresh(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindSummary, Params: "2026-01"}

	var calls int
	fn := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}
	_, err := fetchString(t, c, d, fn)
	require.NoError(t, err)

	c.Invalidate(KindExpenses, KindPrediction)

	_, err = fetchString(t, c, d, fn)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestErrorRetainsLastGoodData(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindSummary, Params: "2026-01"}

	_, err := fetchString(t, c, d, func(ctx context.Context) (string, error) {
		return "good", nil
	})
	require.NoError(t, err)

	c.Invalidate(KindSummary)

	boom := errors.New("boom")
	_, err = fetchString(t, c, d, func(ctx context.Context) (string, error) {
		return "", boom
	})
	require.ErrorIs(t, err, boom)

	e, ok := c.Peek(d)
	require.True(t, ok)
	require.Equal(t, StateError, e.State)
	require.Equal(t, "good", e.Data)
}

func TestHungFetchStaysLoading(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindPrediction, Params: "food"}

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = Fetch(context.Background(), c, d, func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "late", nil
		})
	}()
	<-started

	e, ok := c.Peek(d)
	require.True(t, ok)
	require.Equal(t, StateLoading, e.State)

	// A second caller joins the in-flight request rather than timing out the
	// entry or issuing its own.
	done := make(chan string, 1)
	go func() {
		got, err := Fetch(context.Background(), c, d, func(ctx context.Context) (string, error) {
			t.Error("second fetch must not run its own request")
			return "", nil
		})
		require.NoError(t, err)
		done <- got
	}()

	select {
	case <-done:
		t.Fatal("joined fetch returned before the request completed")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.Equal(t, "late", <-done)
}

func TestDropRemovesEntry(t *testing.T) {
	t.Parallel()
	c := New()
	d := Descriptor{Kind: KindExpense, Params: "7"}

	_, err := fetchString(t, c, d, func(ctx context.Context) (string, error) { return "v", nil })
	require.NoError(t, err)

	c.Drop(d)
	_, ok := c.Peek(d)
	require.False(t, ok)
}

func TestDescriptorParamsCanonical(t *testing.T) {
	t.Parallel()

	a := Descriptor{Kind: KindExpenses, Params: "category=food&page=1"}
	b := Descriptor{Kind: KindExpenses, Params: "category=food&page=1"}
	require.Equal(t, a.key(), b.key())
	require.NotEqual(t, a.key(), Descriptor{Kind: KindExpense, Params: a.Params}.key())
}
