package watchlist

import (
	"context"
	"testing"

	"learn2trade-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWatchlistTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.WatchlistItem{}))
	return &Service{DB: db}
}

func TestAdd_NormalizesSymbol(t *testing.T) {
	svc := setupWatchlistTest(t)

	item, err := svc.Add(context.Background(), 1, " aapl ", "Apple Inc.", "earnings soon")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", item.Symbol)
	assert.Equal(t, "Apple Inc.", item.CompanyName)
}

func TestAdd_DuplicateRejected(t *testing.T) {
	svc := setupWatchlistTest(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, "AAPL", "Apple Inc.", "")
	require.NoError(t, err)

	_, err = svc.Add(ctx, 1, "aapl", "Apple Inc.", "")
	assert.ErrorIs(t, err, ErrAlreadyWatched)

	// same symbol for another user is fine
	_, err = svc.Add(ctx, 2, "AAPL", "Apple Inc.", "")
	assert.NoError(t, err)
}

func TestAdd_EmptySymbol(t *testing.T) {
	svc := setupWatchlistTest(t)
	_, err := svc.Add(context.Background(), 1, "  ", "", "")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestRemove(t *testing.T) {
	svc := setupWatchlistTest(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, "AAPL", "Apple Inc.", "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 1, "aapl"))
	assert.ErrorIs(t, svc.Remove(ctx, 1, "AAPL"), ErrNotWatched)
}

func TestList_NewestFirst(t *testing.T) {
	svc := setupWatchlistTest(t)
	ctx := context.Background()

	for _, sym := range []string{"AAPL", "MSFT", "TSLA"} {
		_, err := svc.Add(ctx, 1, sym, "", "")
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, 2, "AMZN", "", "")
	require.NoError(t, err)

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "TSLA", items[0].Symbol)
	assert.Equal(t, "AAPL", items[2].Symbol)
}
