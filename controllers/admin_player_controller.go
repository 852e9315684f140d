// Package controllers translates HTTP requests into service calls.
// File: controllers/admin_player_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services"
)

// AdminPlayerController handles roster management.
type AdminPlayerController struct {
	players *services.PlayerService
	photos  services.PhotoStorage
}

// NewAdminPlayerController creates a new AdminPlayerController instance.
func NewAdminPlayerController(players *services.PlayerService, photos services.PhotoStorage) *AdminPlayerController {
	return &AdminPlayerController{players: players, photos: photos}
}

// ListPlayersByTeam lists a team's roster.
func (ctl *AdminPlayerController) ListPlayersByTeam(c *gin.Context) {
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

// CreatePlayer adds a player to a team.
func (ctl *AdminPlayerController) CreatePlayer(c *gin.Context) {
	var req models.CreateOrUpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	player, err := ctl.players.CreatePlayer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// UpdatePlayer replaces a player's fields.
func (ctl *AdminPlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateOrUpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	player, err := ctl.players.UpdatePlayer(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a player.
func (ctl *AdminPlayerController) DeletePlayer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.players.DeletePlayer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPhoto stores a player photo and returns its URL. The caller
// threads the URL into a later create or update call.
func (ctl *AdminPlayerController) UploadPhoto(c *gin.Context) {
	uploadPhoto(c, ctl.photos)
}
