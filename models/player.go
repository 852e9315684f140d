// Package models defines data structures used across the application.
// File: models/player.go
package models

// Player represents a rostered player. Optional fields are pointers so
// that absent values round-trip as JSON null.
type Player struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	JerseyNumber *int    `json:"jerseyNumber"`
	Position     *string `json:"position"` // "G", "F", "C", "G/F", ...
	Height       *string `json:"height"`   // free-form, e.g. "6'3\"" or "190 cm"
	GradYear     *int    `json:"gradYear"`
	Country      *string `json:"country"`
	PhotoURL     *string `json:"photoUrl"`
	TeamID       int64   `json:"teamId"`
	TeamName     string  `json:"teamName"`
}

// CreateOrUpdatePlayerRequest is the admin payload for creating or replacing a player.
type CreateOrUpdatePlayerRequest struct {
	TeamID       int64   `json:"teamId" binding:"required"`
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	JerseyNumber *int    `json:"jerseyNumber"`
	Position     *string `json:"position"`
	Height       *string `json:"height"`
	GradYear     *int    `json:"gradYear"`
	Country      *string `json:"country"`
	PhotoURL     *string `json:"photoUrl"`
}
