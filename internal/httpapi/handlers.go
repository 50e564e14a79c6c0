package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ischultz503/Survivor/internal/ctxutil"
	"github.com/ischultz503/Survivor/internal/export"
	"github.com/ischultz503/Survivor/internal/service"
	"go.uber.org/zap"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type eventRequest struct {
	Season string  `json:"season" binding:"required"`
	Week   int     `json:"week"`
	Player string  `json:"player" binding:"required"`
	Event  string  `json:"event" binding:"required"`
	Value  float64 `json:"value"`
}

type bonusRequest struct {
	League string  `json:"league" binding:"required"`
	Season string  `json:"season" binding:"required"`
	Team   string  `json:"team" binding:"required"`
	Week   int     `json:"week"`
	Points float64 `json:"points"`
}

type pointValueRequest struct {
	Season   string  `json:"season" binding:"required"`
	Event    string  `json:"event" binding:"required"`
	Points   float64 `json:"points"`
	Category string  `json:"category"`
}

func (h *handler) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}
	u, err := h.svc.RegisterUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.log.Info("user registered", zap.String("username", u.Username))
	c.JSON(http.StatusCreated, u)
}

func (h *handler) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}
	u, err := h.svc.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handler) listSeasons(c *gin.Context) {
	out, err := h.svc.ListSeasons(c.Request.Context())
	h.respond(c, out, err)
}

func (h *handler) listLeagues(c *gin.Context) {
	out, err := h.svc.ListLeagues(c.Request.Context())
	h.respond(c, out, err)
}

func (h *handler) listLeagueSeasons(c *gin.Context) {
	out, err := h.svc.ListSeasonsForLeague(c.Request.Context(), c.Param("league"))
	h.respond(c, out, err)
}

func (h *handler) listTeams(c *gin.Context) {
	out, err := h.svc.ListTeams(c.Request.Context(), c.Param("league"), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) listAllTeams(c *gin.Context) {
	out, err := h.svc.ListAllTeams(c.Request.Context())
	h.respond(c, out, err)
}

func (h *handler) standings(c *gin.Context) {
	out, err := h.svc.Standings(c.Request.Context(), c.Param("league"), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) bonusGrid(c *gin.Context) {
	out, err := h.svc.BonusGrid(c.Request.Context(), c.Param("league"), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) questionAccuracy(c *gin.Context) {
	out, err := h.svc.QuestionAccuracy(c.Request.Context(), c.Param("league"), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) listEvents(c *gin.Context) {
	out, err := h.svc.ListEvents(c.Request.Context(), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) listPlayers(c *gin.Context) {
	out, err := h.svc.ListPlayers(c.Request.Context(), c.Param("season"))
	h.respond(c, out, err)
}

func (h *handler) listPointValues(c *gin.Context) {
	out, err := h.svc.ListPointValues(c.Request.Context(), c.Param("season"))
	h.respond(c, out, err)
}

// playerTrends: ?player=A&player=B; без параметра — все игроки сезона.
func (h *handler) playerTrends(c *gin.Context) {
	out, err := h.svc.PlayerTrends(c.Request.Context(), c.Param("season"), c.QueryArray("player"))
	h.respond(c, out, err)
}

func (h *handler) roster(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	out, err := h.svc.TeamRoster(c.Request.Context(), id)
	h.respond(c, out, err)
}

func (h *handler) dashboard(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	out, err := h.svc.TeamDashboard(c.Request.Context(), id)
	h.respond(c, out, err)
}

func (h *handler) exportDashboard(c *gin.Context) {
	id, ok := teamID(c)
	if !ok {
		return
	}
	d, err := h.svc.TeamDashboard(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := export.WriteDashboard(&buf, d); err != nil {
		h.fail(c, err)
		return
	}
	name := export.DashboardFilename(d.Team.Name, d.Team.LeagueName, d.Team.SeasonLabel)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *handler) myTeams(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := ctxutil.UserID(ctx)
	out, err := h.svc.ListTeamsForUser(ctx, userID)
	h.respond(c, out, err)
}

func (h *handler) assignTeam(c *gin.Context) {
	u, _ := currentUser(c)
	var sel service.Selection
	if err := c.ShouldBindJSON(&sel); err != nil || sel.League == "" || sel.Season == "" || sel.Team == "" {
		badRequest(c, "league, season and team are required")
		return
	}
	if err := h.svc.AssignTeam(c.Request.Context(), u.Username, sel); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) upsertEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "season, player and event are required")
		return
	}
	err := h.svc.UpsertPlayerEvent(c.Request.Context(), req.Season, req.Week, req.Player, req.Event, req.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) upsertBonus(c *gin.Context) {
	var req bonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "league, season and team are required")
		return
	}
	sel := service.Selection{League: req.League, Season: req.Season, Team: req.Team}
	if err := h.svc.UpsertWeeklyBonus(c.Request.Context(), sel, req.Week, req.Points); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) upsertPointValue(c *gin.Context) {
	var req pointValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "season and event are required")
		return
	}
	if err := h.svc.UpsertPointValue(c.Request.Context(), req.Season, req.Event, req.Points, req.Category); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) respond(c *gin.Context, out any, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func teamID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "team id must be a positive integer")
		return 0, false
	}
	return id, true
}
