package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/ischultz503/Survivor/internal/metrics"
	"go.uber.org/zap"
)

// DBPing измеряет задержку пинга базы (survivor_db_ping_seconds).
func DBPing(database *sql.DB) Job {
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		t0 := time.Now()
		if err := database.PingContext(ctx); err != nil {
			return err
		}
		metrics.ObserveDBPing(time.Since(t0))
		return nil
	}
}

type purger interface {
	Purge() int
}

// PurgeCache чистит истёкшие записи кэша в памяти процесса.
func PurgeCache(c purger, log *zap.Logger) Job {
	return func(context.Context) error {
		if n := c.Purge(); n > 0 {
			log.Debug("cache purged", zap.Int("entries", n))
		}
		return nil
	}
}
