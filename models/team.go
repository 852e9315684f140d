// Package models defines data structures used across the application.
// File: models/team.go
package models

// ----------------------- team level -----------------------

// TeamLevel distinguishes the program tiers.
type TeamLevel string

const (
	TeamLevelRegional TeamLevel = "REGIONAL"
	TeamLevelNational TeamLevel = "NATIONAL"
)

// Valid reports whether the level is one of the known tiers.
func (l TeamLevel) Valid() bool {
	return l == TeamLevelRegional || l == TeamLevelNational
}

// ------------------------ team model -----------------------

// Team represents one of the program's teams.
type Team struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Level       TeamLevel `json:"level"`
	Season      string    `json:"season,omitempty"`      // e.g. "2024-2025"
	Description string    `json:"description,omitempty"` // shown on the roster page
}

// CreateOrUpdateTeamRequest is the admin payload for creating or replacing a team.
// A blank season is derived from the current date by the service.
type CreateOrUpdateTeamRequest struct {
	Name        string    `json:"name" binding:"required"`
	Level       TeamLevel `json:"level" binding:"required,oneof=REGIONAL NATIONAL"`
	Season      string    `json:"season"`
	Description string    `json:"description"`
}
