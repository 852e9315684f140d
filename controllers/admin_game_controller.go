// Package controllers translates HTTP requests into service calls.
// File: controllers/admin_game_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services"
)

// AdminGameController handles schedule management.
type AdminGameController struct {
	games *services.GameService
}

// NewAdminGameController creates a new AdminGameController instance.
func NewAdminGameController(games *services.GameService) *AdminGameController {
	return &AdminGameController{games: games}
}

// ListGames lists the full schedule.
func (ctl *AdminGameController) ListGames(c *gin.Context) {
	games, err := ctl.games.GetFullSchedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// CreateGame adds a game to the schedule.
func (ctl *AdminGameController) CreateGame(c *gin.Context) {
	var req models.CreateOrUpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := ctl.games.CreateGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// UpdateGame replaces a game's fields.
func (ctl *AdminGameController) UpdateGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateOrUpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := ctl.games.UpdateGame(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a game.
func (ctl *AdminGameController) DeleteGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.games.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
