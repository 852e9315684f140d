// Package models defines data structures used across the application.
// File: models/game.go
package models

import "time"

// ----------------------- home/away -----------------------

// HomeAway marks the venue of a game relative to our team.
type HomeAway string

const (
	HomeGame HomeAway = "HOME"
	AwayGame HomeAway = "AWAY"
)

// Valid reports whether the value is HOME or AWAY.
func (h HomeAway) Valid() bool {
	return h == HomeGame || h == AwayGame
}

// ------------------------ game model -----------------------

// Game represents a scheduled or played game. Win is derived, never
// stored: it is nil until both scores are recorded.
type Game struct {
	ID             int64     `json:"id"`
	TeamID         int64     `json:"teamId"`
	TeamName       string    `json:"teamName"`
	Opponent       string    `json:"opponent"`
	GameDateTime   time.Time `json:"gameDateTime"`
	HomeAway       HomeAway  `json:"homeAway"`
	Location       string    `json:"location"`
	ScoreUs        *int      `json:"scoreUs"`
	ScoreThem      *int      `json:"scoreThem"`
	Win            *bool     `json:"win"`
	ConferenceGame bool      `json:"conferenceGame"`
	Notes          *string   `json:"notes"` // tournament name, showcase, etc.
}

// CreateOrUpdateGameRequest is the admin payload for creating or replacing a game.
type CreateOrUpdateGameRequest struct {
	TeamID         int64     `json:"teamId" binding:"required"`
	Opponent       string    `json:"opponent" binding:"required"`
	GameDateTime   time.Time `json:"gameDateTime" binding:"required"`
	HomeAway       HomeAway  `json:"homeAway" binding:"required,oneof=HOME AWAY"`
	Location       string    `json:"location" binding:"required"`
	ScoreUs        *int      `json:"scoreUs"`
	ScoreThem      *int      `json:"scoreThem"`
	ConferenceGame bool      `json:"conferenceGame"`
	Notes          *string   `json:"notes"`
}
