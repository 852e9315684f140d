// Package services holds the application's business logic.
// File: services/team_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courtside/logger"
	"courtside/models"
)

// TeamStore is the persistence surface the team service needs.
type TeamStore interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int64) error
}

// TeamService manages the program's teams.
type TeamService struct {
	repo TeamStore
	now  func() time.Time
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(repo TeamStore) *TeamService {
	return &TeamService{repo: repo, now: time.Now}
}

// GetAllTeams returns every team.
func (s *TeamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	return s.repo.GetAll(ctx)
}

// GetTeam returns the team or fails with models.ErrTeamNotFound.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateTeam validates the request and inserts a new team.
func (s *TeamService) CreateTeam(ctx context.Context, req models.CreateOrUpdateTeamRequest) (*models.Team, error) {
	team := &models.Team{}
	if err := s.apply(req, team); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	logger.Info.Printf("Created team %d (%s, %s)", team.ID, team.Name, team.Level)
	return team, nil
}

// UpdateTeam validates the request and replaces the team's fields.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, req models.CreateOrUpdateTeamRequest) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(req, team); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam removes the team. Deleting an absent team is a silent no-op;
// every other entity treats that as an error.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, models.ErrTeamNotFound) {
		logger.Debug.Printf("DeleteTeam: team %d already gone, ignoring", id)
		return nil
	}
	return err
}

// ------------------------- helpers -------------------------

// apply copies the request onto the team, trimming the name and deriving
// the season when it was left blank.
func (s *TeamService) apply(req models.CreateOrUpdateTeamRequest, team *models.Team) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.NewValidationError("name", "must not be blank")
	}
	if !req.Level.Valid() {
		return models.NewValidationError("level", "must be REGIONAL or NATIONAL")
	}

	team.Name = name
	team.Level = req.Level
	team.Season = strings.TrimSpace(req.Season)
	team.Description = req.Description

	if team.Season == "" {
		team.Season = s.currentSeason()
	}
	return nil
}

// currentSeason derives the "YYYY-YYYY" label from today's date. The
// season rolls over in August.
func (s *TeamService) currentSeason() string {
	now := s.now()
	year := now.Year()
	if now.Month() >= time.August {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}
