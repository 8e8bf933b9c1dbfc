package stream

import (
	"context"
	"strings"
	"time"

	"learn2trade-backend/internal/marketdata"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers pushes quote updates over a websocket until the client goes
// away. Prices come from the same Source the REST endpoints use, so a
// cached or simulated provider behaves identically here.
type Handlers struct {
	Source         marketdata.Source
	DefaultSymbols []string
	Interval       time.Duration
}

// Upgrade gates the stream route to websocket upgrade requests.
func (h *Handlers) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Quotes GET /ws/quotes?symbols=AAPL,MSFT — pushes the current quote set
// on every tick. A write error means the client disconnected.
func (h *Handlers) Quotes() fiber.Handler {
	interval := h.Interval
	if interval <= 0 {
		interval = time.Second
	}

	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		symbols := h.DefaultSymbols
		if raw := conn.Query("symbols"); raw != "" {
			symbols = nil
			for _, s := range strings.Split(raw, ",") {
				if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
					symbols = append(symbols, s)
				}
			}
		}
		if len(symbols) == 0 {
			_ = conn.WriteJSON(fiber.Map{"error": "no symbols requested"})
			return
		}

		log.Info().Strs("symbols", symbols).Msg("quote stream opened")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if err := h.push(conn, symbols); err != nil {
				log.Info().Err(err).Msg("quote stream closed")
				return
			}
			<-ticker.C
		}
	})
}

func (h *Handlers) push(conn *websocket.Conn, symbols []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates := make([]marketdata.Quote, 0, len(symbols))
	for _, sym := range symbols {
		q, err := h.Source.Quote(ctx, sym)
		if err != nil {
			// unknown or temporarily unpriced symbols are skipped, not fatal
			continue
		}
		updates = append(updates, q)
	}
	return conn.WriteJSON(fiber.Map{
		"quotes": updates,
		"as_of":  time.Now(),
	})
}
