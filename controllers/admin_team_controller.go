// Package controllers translates HTTP requests into service calls.
// File: controllers/admin_team_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services"
)

// AdminTeamController handles team management.
type AdminTeamController struct {
	teams *services.TeamService
}

// NewAdminTeamController creates a new AdminTeamController instance.
func NewAdminTeamController(teams *services.TeamService) *AdminTeamController {
	return &AdminTeamController{teams: teams}
}

// ListTeams lists every team.
func (ctl *AdminTeamController) ListTeams(c *gin.Context) {
	teams, err := ctl.teams.GetAllTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam shows one team.
func (ctl *AdminTeamController) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	team, err := ctl.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam creates a team, answering 201 with a Location header.
func (ctl *AdminTeamController) CreateTeam(c *gin.Context) {
	var req models.CreateOrUpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := ctl.teams.CreateTeam(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/admin/teams/%d", team.ID))
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam replaces a team's fields.
func (ctl *AdminTeamController) UpdateTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateOrUpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := ctl.teams.UpdateTeam(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team. Deleting an absent team still answers 204.
func (ctl *AdminTeamController) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.teams.DeleteTeam(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
