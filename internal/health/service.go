package health

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DBPinger is optional for the health check. When nil the database is
// reported as disconnected instead of failing the endpoint.
type DBPinger interface {
	Ping() error
}

var processStart = time.Now()

// DepStatus is the probe result for one dependency.
type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

// Report is the /health/json payload.
type Report struct {
	Status        string               `json:"status"`
	Environment   string               `json:"environment"`
	UptimeSeconds int64                `json:"uptimeSeconds"`
	Dependencies  map[string]DepStatus `json:"dependencies"`
}

// Collect probes the database and Redis. A degraded dependency degrades
// the overall status; it never errors the check itself.
func Collect(ctx context.Context, rdb *redis.Client, db DBPinger, env string) Report {
	report := Report{
		Status:        "ok",
		Environment:   env,
		UptimeSeconds: int64(time.Since(processStart).Seconds()),
		Dependencies:  make(map[string]DepStatus),
	}

	report.Dependencies["database"] = probe(db != nil, func() error {
		return db.Ping()
	})
	report.Dependencies["redis"] = probe(rdb != nil, func() error {
		return rdb.Ping(ctx).Err()
	})

	for _, dep := range report.Dependencies {
		if dep.Status != "connected" {
			report.Status = "degraded"
		}
	}
	return report
}

func probe(configured bool, ping func() error) DepStatus {
	if !configured {
		return DepStatus{Status: "disconnected"}
	}
	start := time.Now()
	if err := ping(); err != nil {
		return DepStatus{Status: "error"}
	}
	ms := time.Since(start).Milliseconds()
	return DepStatus{Status: "connected", PingMs: ms}
}
