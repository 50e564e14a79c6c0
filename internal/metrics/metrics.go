package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survivor", Name: "http_requests_total", Help: "Processed HTTP requests",
	}, []string{"route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "survivor", Name: "http_request_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	BotUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "survivor", Name: "bot_updates_total", Help: "Processed telegram updates",
	})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "survivor", Name: "handler_errors_total", Help: "Handler errors",
	})
	SeedSkippedRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survivor", Name: "seed_skipped_rows_total", Help: "Spreadsheet rows skipped during import",
	}, []string{"reason"})
	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survivor", Name: "cache_lookups_total", Help: "Read-through cache lookups",
	}, []string{"result"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "survivor", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, BotUpdates, HandlerErrors, SeedSkippedRows, CacheLookups, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
