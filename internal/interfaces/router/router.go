package router

import (
	"time"

	acctsvc "learn2trade-backend/internal/application/accounts"
	"learn2trade-backend/internal/application/ledger"
	learnsvc "learn2trade-backend/internal/application/learning"
	tradesvc "learn2trade-backend/internal/application/trading"
	"learn2trade-backend/internal/application/valuation"
	watchsvc "learn2trade-backend/internal/application/watchlist"
	"learn2trade-backend/internal/config"
	"learn2trade-backend/internal/infrastructure/database"
	accthandler "learn2trade-backend/internal/interfaces/handlers/accounts"
	healthhandler "learn2trade-backend/internal/interfaces/handlers/health"
	learnhandler "learn2trade-backend/internal/interfaces/handlers/learning"
	portfoliohandler "learn2trade-backend/internal/interfaces/handlers/portfolio"
	quotehandler "learn2trade-backend/internal/interfaces/handlers/quotes"
	streamhandler "learn2trade-backend/internal/interfaces/handlers/stream"
	tradehandler "learn2trade-backend/internal/interfaces/handlers/trading"
	watchhandler "learn2trade-backend/internal/interfaces/handlers/watchlist"
	"learn2trade-backend/internal/marketdata"
	"learn2trade-backend/internal/middleware"
	"learn2trade-backend/internal/pkg/money"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// newPriceSource picks the configured provider and puts the Redis quote
// cache in front when a client is available.
func newPriceSource(cfg *config.Config, rdb *redis.Client) (marketdata.Source, []string) {
	var src marketdata.Source
	defaults := []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN"}

	switch cfg.MarketDataProvider {
	case config.ProviderAlpaca:
		src = marketdata.NewAlpacaSource(cfg.AlpacaAPIKey, cfg.AlpacaAPISecret, cfg.AlpacaBaseURL)
	default:
		sim := marketdata.NewSimulatedSource(time.Now().UnixNano())
		defaults = sim.Symbols()
		src = sim
	}

	if rdb != nil {
		src = &marketdata.CachedSource{Inner: src, Rdb: rdb, TTL: cfg.QuoteTTL}
	}
	return src, defaults
}

// CreateApp builds the Fiber app with all middleware and routes wired over
// the configured database, Redis and market-data provider.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.AllowedOriginSuffix,
	}))
	app.Use(middleware.ResponseHeaders())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
	}

	hh := &healthhandler.Handlers{Rdb: rdb, Env: cfg.Env}
	if db != nil {
		hh.DB = &gormDBPinger{db: db}
	}
	app.Get("/", hh.Banner)
	app.Get("/health/json", hh.JSON)

	priceSource, defaultSymbols := newPriceSource(cfg, rdb)

	qh := &quotehandler.Handlers{Source: priceSource}
	app.Get("/api/v1/quotes/:symbol", qh.Quote)

	sh := &streamhandler.Handlers{
		Source:         priceSource,
		DefaultSymbols: defaultSymbols,
		Interval:       time.Second,
	}
	app.Use("/ws", sh.Upgrade)
	app.Get("/ws/quotes", sh.Quotes())

	if db == nil {
		log.Warn().Msg("DATABASE_URL not set; ledger routes disabled")
		return app, db, rdb, nil
	}

	format := money.NewFormatter(cfg.Currency)
	store := ledger.NewStore(db, cfg.StartingCash)

	// Accounts
	as := &acctsvc.Service{DB: db}
	ah := &accthandler.Handlers{Service: as}
	ag := app.Group("/api/v1/accounts")
	ag.Post("/register", ah.Register)
	ag.Post("/login", ah.Login)

	// Portfolio + orders
	ph := &portfoliohandler.Handlers{
		Ledger: store,
		Valuator: &valuation.Service{
			Ledger: store,
			Prices: priceSource,
		},
	}
	app.Get("/api/v1/portfolio/:userID", ph.Snapshot)
	app.Get("/api/v1/portfolio/:userID/value", ph.Value)
	app.Get("/api/v1/orders/:userID", ph.Orders)

	// Trading
	ts := &tradesvc.Service{Ledger: store, Format: format}
	th := &tradehandler.Handlers{Service: ts}
	tg := app.Group("/api/v1/trading")
	tg.Post("/buy", th.Buy)
	tg.Post("/sell", th.Sell)

	// Watchlist
	ws := &watchsvc.Service{DB: db}
	wh := &watchhandler.Handlers{Service: ws}
	app.Get("/api/v1/watchlist/:userID", wh.List)
	app.Post("/api/v1/watchlist", wh.Add)
	app.Delete("/api/v1/watchlist/:userID/:symbol", wh.Remove)

	// Learning
	ls := &learnsvc.Service{DB: db}
	lh := &learnhandler.Handlers{Service: ls}
	lg := app.Group("/api/v1/learning")
	lg.Get("/courses", lh.Courses)
	lg.Get("/progress/:userID", lh.Progress)
	lg.Post("/complete", lh.Complete)

	return app, db, rdb, nil
}
