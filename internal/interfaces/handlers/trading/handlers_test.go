package trading

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"learn2trade-backend/internal/application/ledger"
	tradesvc "learn2trade-backend/internal/application/trading"
	"learn2trade-backend/internal/domain"
	"learn2trade-backend/internal/pkg/money"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTradingApp(t *testing.T) (*fiber.App, *ledger.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Portfolio{}, &domain.Holding{}, &domain.Order{}))

	store := ledger.NewStore(db, decimal.NewFromInt(100000))
	h := &Handlers{Service: &tradesvc.Service{
		Ledger: store,
		Format: money.NewFormatter("USD"),
	}}

	app := fiber.New()
	app.Post("/buy", h.Buy)
	app.Post("/sell", h.Sell)
	return app, store
}

func trade(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestBuy_Succeeds(t *testing.T) {
	app, store := setupTradingApp(t)

	status, out := trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "aapl", "company_name": "Apple Inc.",
		"shares": 10, "price": 100.00,
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, "Buy order executed", out["message"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, "AAPL", data["symbol"])

	snap, err := store.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 10, snap.Holdings["AAPL"].Shares)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	app, _ := setupTradingApp(t)

	status, out := trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 5000, "price": 100.00,
	})
	assert.Equal(t, 422, status)
	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, "Insufficient funds", errObj["message"])
}

func TestSell_HappyPathCarriesPL(t *testing.T) {
	app, _ := setupTradingApp(t)

	status, _ := trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 10, "price": 100.00,
	})
	require.Equal(t, 200, status)

	status, out := trade(t, app, "/sell", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 5, "price": 150.00,
	})
	assert.Equal(t, 200, status)
	assert.Equal(t, "Sell order executed (P&L: $250.00)", out["message"])
}

func TestSell_NoPositionIs404(t *testing.T) {
	app, _ := setupTradingApp(t)

	status, _ := trade(t, app, "/sell", map[string]interface{}{
		"user_id": 1, "symbol": "TSLA", "shares": 1, "price": 100.00,
	})
	assert.Equal(t, 404, status)
}

func TestSell_OversellIs422(t *testing.T) {
	app, _ := setupTradingApp(t)

	status, _ := trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 3, "price": 100.00,
	})
	require.Equal(t, 200, status)

	status, out := trade(t, app, "/sell", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 4, "price": 100.00,
	})
	assert.Equal(t, 422, status)
	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, "Insufficient shares", errObj["message"])
}

func TestTrade_BadInput(t *testing.T) {
	app, _ := setupTradingApp(t)

	// missing user_id
	status, _ := trade(t, app, "/buy", map[string]interface{}{
		"symbol": "AAPL", "shares": 1, "price": 100.00,
	})
	assert.Equal(t, 400, status)

	// non-positive shares
	status, _ = trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 0, "price": 100.00,
	})
	assert.Equal(t, 400, status)

	// price as string still parses
	status, _ = trade(t, app, "/buy", map[string]interface{}{
		"user_id": 1, "symbol": "AAPL", "shares": 1, "price": "99.95",
	})
	assert.Equal(t, 200, status)
}
