// Package cache — опциональный read-through кэш дашбордов.
// Ключ всегда включает отпечаток данных (ревизию сезона), поэтому после
// любой мутации старые записи просто перестают читаться и истекают по TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ischultz503/Survivor/internal/metrics"
	"go.uber.org/zap"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Key склеивает логический ключ и отпечаток.
func Key(logical string, fingerprint int64) string {
	return fmt.Sprintf("survivor:%s@%d", logical, fingerprint)
}

// Loader хранит кэш, TTL и логгер для GetOrLoad. Нулевой Cache — кэш выключен.
type Loader struct {
	Cache Cache
	TTL   time.Duration
	Log   *zap.Logger
}

// GetOrLoad отдаёт значение из кэша либо вызывает load и сохраняет результат.
// Ошибки кэша не фатальны: всегда откатываемся к load.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, load func(context.Context) (T, error)) (T, error) {
	if l == nil || l.Cache == nil {
		return load(ctx)
	}
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	raw, ok, err := l.Cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	case ok:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return v, nil
		}
		metrics.CacheLookups.WithLabelValues("error").Inc()
		log.Warn("cache decode failed", zap.String("key", key))
	default:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if raw, err := json.Marshal(v); err == nil {
		if err := l.Cache.Set(ctx, key, raw, l.TTL); err != nil {
			log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}
