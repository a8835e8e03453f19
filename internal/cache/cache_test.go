package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leilaoradar/server/internal/models"
)

func listing(ids ...int) []models.PropertyRecord {
	records := make([]models.PropertyRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, models.PropertyRecord{ID: id, Region: "SP"})
	}
	return records
}

func TestGetFetchesOnFirstRequest(t *testing.T) {
	calls := 0
	c := New(func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		calls++
		assert.Equal(t, "SP", uf)
		return listing(0, 1), nil
	}, 10*time.Minute, nil)

	records, err := c.Get(context.Background(), "sp")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestGetServesFreshEntryWithoutFetching(t *testing.T) {
	calls := 0
	c := New(func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		calls++
		return listing(0), nil
	}, 10*time.Minute, nil)

	first, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)

	second, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
	// Same backing data, untouched by the second call.
	assert.Equal(t, first, second)

	// Region codes are one cache key regardless of case.
	_, err = c.Get(context.Background(), "sp")
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestGetRefreshesExpiredEntry(t *testing.T) {
	calls := 0
	c := New(func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		calls++
		return listing(calls), nil
	}, 10*time.Minute, nil)

	_, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Backdate the entry past the window.
	c.mu.Lock()
	e := c.entries["SP"]
	e.fetchedAt = time.Now().Add(-11 * time.Minute)
	c.entries["SP"] = e
	c.mu.Unlock()

	records, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []models.PropertyRecord{{ID: 2, Region: "SP"}}, records)
}

func TestGetPropagatesFailureAndKeepsEntry(t *testing.T) {
	calls := 0
	fail := false
	c := New(func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		calls++
		if fail {
			return nil, errors.New("upstream down")
		}
		return listing(7), nil
	}, 10*time.Minute, nil)

	_, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)

	c.mu.Lock()
	e := c.entries["SP"]
	e.fetchedAt = time.Now().Add(-time.Hour)
	c.entries["SP"] = e
	c.mu.Unlock()

	fail = true
	_, err = c.Get(context.Background(), "SP")
	assert.Error(t, err)
	assert.Equal(t, 2, calls)

	// The stale entry is still there and the next request fetches again.
	assert.Equal(t, 1, c.Len())
	c.mu.RLock()
	assert.Equal(t, listing(7), c.entries["SP"].records)
	c.mu.RUnlock()

	fail = false
	records, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, records, 1)
}

func TestGetKeepsRegionsIndependent(t *testing.T) {
	calls := map[string]int{}
	c := New(func(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
		calls[uf]++
		return listing(0), nil
	}, 10*time.Minute, nil)

	_, err := c.Get(context.Background(), "SP")
	assert.NoError(t, err)
	_, err = c.Get(context.Background(), "RJ")
	assert.NoError(t, err)
	_, err = c.Get(context.Background(), "SP")
	assert.NoError(t, err)

	assert.Equal(t, 1, calls["SP"])
	assert.Equal(t, 1, calls["RJ"])
	assert.Equal(t, 2, c.Len())
}
