// Package controllers translates HTTP requests into service calls.
// File: controllers/public_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services"
)

// PublicController serves the unauthenticated, read-only site API.
type PublicController struct {
	teams   *services.TeamService
	players *services.PlayerService
	games   *services.GameService
	staff   *services.StaffService
}

// NewPublicController creates a new PublicController instance.
func NewPublicController(teams *services.TeamService, players *services.PlayerService,
	games *services.GameService, staff *services.StaffService) *PublicController {
	return &PublicController{teams: teams, players: players, games: games, staff: staff}
}

// ---------- teams & roster ----------

// GetTeams lists every team.
func (ctl *PublicController) GetTeams(c *gin.Context) {
	teams, err := ctl.teams.GetAllTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetPlayersByTeam lists a team's roster ordered by jersey number.
func (ctl *PublicController) GetPlayersByTeam(c *gin.Context) {
	teamID, ok := pathID(c, "teamId")
	if !ok {
		return
	}

	players, err := ctl.players.GetPlayersByTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// ---------- games / schedule ----------

// GetFullSchedule lists every game, earliest first.
func (ctl *PublicController) GetFullSchedule(c *gin.Context) {
	games, err := ctl.games.GetFullSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetUpcomingGames lists games after now, capped by ?limit= (default 3).
func (ctl *PublicController) GetUpcomingGames(c *gin.Context) {
	limit := queryLimit(c, services.DefaultUpcomingLimit)

	games, err := ctl.games.GetUpcomingGames(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetRecentGames lists games before now, capped by ?limit= (default 5).
func (ctl *PublicController) GetRecentGames(c *gin.Context) {
	limit := queryLimit(c, services.DefaultRecentLimit)

	games, err := ctl.games.GetRecentGames(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// ---------- staff ----------

// GetStaff lists active staff, optionally filtered by ?teamLevel=.
func (ctl *PublicController) GetStaff(c *gin.Context) {
	var level *models.TeamLevel
	if raw := c.Query("teamLevel"); raw != "" {
		l := models.TeamLevel(raw)
		if !l.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "teamLevel must be REGIONAL or NATIONAL"})
			return
		}
		level = &l
	}

	staff, err := ctl.staff.GetPublicStaff(c.Request.Context(), level)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffMember shows one active staff member.
func (ctl *PublicController) GetStaffMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	staff, err := ctl.staff.GetPublicStaffMember(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}
