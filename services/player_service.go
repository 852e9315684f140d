// Package services holds the application's business logic.
// File: services/player_service.go
package services

import (
	"context"

	"courtside/logger"
	"courtside/models"
)

// PlayerStore is the persistence surface the player service needs.
type PlayerStore interface {
	GetByTeamID(ctx context.Context, teamID int64) ([]models.Player, error)
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int64) error
}

// PlayerService manages team rosters.
type PlayerService struct {
	repo  PlayerStore
	teams *TeamService
}

// NewPlayerService creates a new PlayerService instance.
func NewPlayerService(repo PlayerStore, teams *TeamService) *PlayerService {
	return &PlayerService{repo: repo, teams: teams}
}

// GetPlayersByTeam returns the roster ordered by jersey number.
func (s *PlayerService) GetPlayersByTeam(ctx context.Context, teamID int64) ([]models.Player, error) {
	return s.repo.GetByTeamID(ctx, teamID)
}

// CreatePlayer resolves the team first, then inserts the player. A bad
// teamId fails with models.ErrTeamNotFound before any write happens.
func (s *PlayerService) CreatePlayer(ctx context.Context, req models.CreateOrUpdatePlayerRequest) (*models.Player, error) {
	team, err := s.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	player := &models.Player{}
	applyPlayer(req, player, team)

	if err := s.repo.Create(ctx, player); err != nil {
		return nil, err
	}
	logger.Info.Printf("Created player %d (%s %s) on team %d", player.ID, player.FirstName, player.LastName, team.ID)
	return player, nil
}

// UpdatePlayer replaces every mutable field of an existing player.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, req models.CreateOrUpdatePlayerRequest) (*models.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	applyPlayer(req, player, team)

	if err := s.repo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer removes the player, failing when the id does not exist.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func applyPlayer(req models.CreateOrUpdatePlayerRequest, player *models.Player, team *models.Team) {
	player.FirstName = req.FirstName
	player.LastName = req.LastName
	player.JerseyNumber = req.JerseyNumber
	player.Position = req.Position
	player.Height = req.Height
	player.GradYear = req.GradYear
	player.Country = req.Country
	player.PhotoURL = req.PhotoURL
	player.TeamID = team.ID
	player.TeamName = team.Name
}
