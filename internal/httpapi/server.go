// Package httpapi — JSON API поверх service (gin).
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ischultz503/Survivor/internal/metrics"
	"github.com/ischultz503/Survivor/internal/models"
	"github.com/ischultz503/Survivor/internal/scoring"
	"github.com/ischultz503/Survivor/internal/service"
	"go.uber.org/zap"
)

// Service — операции, которые нужны HTTP-слою (реализуется *service.Service).
type Service interface {
	RegisterUser(ctx context.Context, username, password string) (*models.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
	AssignTeam(ctx context.Context, username string, sel service.Selection) error

	UpsertPlayerEvent(ctx context.Context, season string, week int, player, event string, value float64) error
	UpsertWeeklyBonus(ctx context.Context, sel service.Selection, week int, points float64) error
	UpsertPointValue(ctx context.Context, season, event string, points float64, category string) error

	ListSeasons(ctx context.Context) ([]string, error)
	ListLeagues(ctx context.Context) ([]string, error)
	ListSeasonsForLeague(ctx context.Context, league string) ([]string, error)
	ListTeams(ctx context.Context, league, season string) ([]models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsForUser(ctx context.Context, userID int64) ([]models.UserTeam, error)
	ListPlayers(ctx context.Context, season string) ([]string, error)
	ListEvents(ctx context.Context, season string) ([]string, error)
	ListPointValues(ctx context.Context, season string) ([]models.PointValue, error)
	TeamRoster(ctx context.Context, teamID int64) ([]string, error)

	Standings(ctx context.Context, league, season string) ([]models.Standing, error)
	TeamDashboard(ctx context.Context, teamID int64) (scoring.Dashboard, error)
	PlayerTrends(ctx context.Context, season string, players []string) ([]scoring.TrendPoint, error)
	BonusGrid(ctx context.Context, league, season string) (scoring.BonusGrid, error)
	QuestionAccuracy(ctx context.Context, league, season string) ([]scoring.TeamAccuracy, error)
}

// Pinger проверяет доступность базы для /healthz.
type Pinger func(ctx context.Context) error

type Options struct {
	CORSOrigin string
	Release    bool
}

type handler struct {
	svc Service
	log *zap.Logger
}

func NewRouter(svc Service, ping Pinger, log *zap.Logger, opt Options) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opt.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	h := &handler{svc: svc, log: log}

	r := gin.New()
	r.Use(gin.Recovery(), requestMetrics(), opContext(), securityHeaders())
	if opt.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{opt.CORSOrigin},
			AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/healthz", healthz(ping))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		api.GET("/seasons", h.listSeasons)
		api.GET("/leagues", h.listLeagues)
		api.GET("/leagues/:league/seasons", h.listLeagueSeasons)
		api.GET("/leagues/:league/seasons/:season/teams", h.listTeams)
		api.GET("/leagues/:league/seasons/:season/standings", h.standings)
		api.GET("/leagues/:league/seasons/:season/bonus", h.bonusGrid)
		api.GET("/leagues/:league/seasons/:season/questions/accuracy", h.questionAccuracy)

		api.GET("/seasons/:season/events", h.listEvents)
		api.GET("/seasons/:season/players", h.listPlayers)
		api.GET("/seasons/:season/point-values", h.listPointValues)
		api.GET("/seasons/:season/trends", h.playerTrends)

		api.GET("/teams", h.listAllTeams)
		api.GET("/teams/:id/roster", h.roster)
		api.GET("/teams/:id/dashboard", h.dashboard)
		api.GET("/teams/:id/export.xlsx", h.exportDashboard)
	}

	me := api.Group("/me", basicAuth(svc))
	{
		me.GET("/teams", h.myTeams)
		me.POST("/teams", h.assignTeam)
	}

	admin := api.Group("/admin", basicAuth(svc), requireAdmin())
	{
		admin.PUT("/events", h.upsertEvent)
		admin.PUT("/bonuses", h.upsertBonus)
		admin.PUT("/point-values", h.upsertPointValue)
	}
	return r
}

func healthz(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if ping != nil {
			if err := ping(ctx); err != nil {
				c.String(http.StatusServiceUnavailable, "db not ok: "+err.Error())
				return
			}
		}
		metrics.ObserveDBPing(time.Since(t0))
		c.String(http.StatusOK, "ok")
	}
}

type HTTPServer struct {
	srv  *http.Server
	done chan struct{}
}

// Start запускает сервер и гасит его при отмене ctx.
func Start(ctx context.Context, addr string, handler http.Handler, log *zap.Logger) *HTTPServer {
	s := &HTTPServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		log.Info("http listening", zap.String("addr", addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shCtx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
	}()

	return s
}

// Done закрывается, когда сервер перестал принимать соединения (после Shutdown или ошибки запуска).
func (s *HTTPServer) Done() <-chan struct{} { return s.done }
