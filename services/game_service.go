// Package services holds the application's business logic.
// File: services/game_service.go
package services

import (
	"context"
	"time"

	"courtside/logger"
	"courtside/models"
)

// Default list sizes for the public schedule widgets.
const (
	DefaultUpcomingLimit = 3
	DefaultRecentLimit   = 5
)

// GameStore is the persistence surface the game service needs.
type GameStore interface {
	GetAll(ctx context.Context) ([]models.Game, error)
	GetAfter(ctx context.Context, after time.Time) ([]models.Game, error)
	GetBefore(ctx context.Context, before time.Time) ([]models.Game, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id int64) error
}

// GameService manages the game schedule.
type GameService struct {
	repo  GameStore
	teams *TeamService
	now   func() time.Time
}

// NewGameService creates a new GameService instance.
func NewGameService(repo GameStore, teams *TeamService) *GameService {
	return &GameService{repo: repo, teams: teams, now: time.Now}
}

// ---------- public reads ----------

// GetFullSchedule returns every game, earliest first.
func (s *GameService) GetFullSchedule(ctx context.Context) ([]models.Game, error) {
	games, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return deriveWins(games), nil
}

// GetUpcomingGames returns games strictly after now, soonest first,
// truncated to limit. The data set is small, so truncating in memory
// beats complicating the query.
func (s *GameService) GetUpcomingGames(ctx context.Context, limit int) ([]models.Game, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	games, err := s.repo.GetAfter(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if len(games) > limit {
		games = games[:limit]
	}
	return deriveWins(games), nil
}

// GetRecentGames returns games strictly before now, latest first,
// truncated to limit.
func (s *GameService) GetRecentGames(ctx context.Context, limit int) ([]models.Game, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	games, err := s.repo.GetBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if len(games) > limit {
		games = games[:limit]
	}
	return deriveWins(games), nil
}

// ---------- admin CRUD ----------

// CreateGame resolves the team first, then inserts the game. A bad
// teamId fails with models.ErrTeamNotFound before any write happens.
func (s *GameService) CreateGame(ctx context.Context, req models.CreateOrUpdateGameRequest) (*models.Game, error) {
	team, err := s.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	game := &models.Game{}
	applyGame(req, game, team)

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, err
	}
	logger.Info.Printf("Created game %d (%s vs %s)", game.ID, game.TeamName, game.Opponent)
	game.Win = winOf(game)
	return game, nil
}

// UpdateGame replaces every mutable field of an existing game.
func (s *GameService) UpdateGame(ctx context.Context, id int64, req models.CreateOrUpdateGameRequest) (*models.Game, error) {
	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetTeam(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	applyGame(req, game, team)

	if err := s.repo.Update(ctx, game); err != nil {
		return nil, err
	}
	game.Win = winOf(game)
	return game, nil
}

// DeleteGame removes the game, failing when the id does not exist.
func (s *GameService) DeleteGame(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ------------------------- helpers -------------------------

func applyGame(req models.CreateOrUpdateGameRequest, game *models.Game, team *models.Team) {
	game.TeamID = team.ID
	game.TeamName = team.Name
	game.Opponent = req.Opponent
	game.GameDateTime = req.GameDateTime
	game.HomeAway = req.HomeAway
	game.Location = req.Location
	game.ScoreUs = req.ScoreUs
	game.ScoreThem = req.ScoreThem
	game.ConferenceGame = req.ConferenceGame
	game.Notes = req.Notes
}

// winOf derives the win flag: nil until both scores are recorded.
func winOf(game *models.Game) *bool {
	if game.ScoreUs == nil || game.ScoreThem == nil {
		return nil
	}
	win := *game.ScoreUs > *game.ScoreThem
	return &win
}

func deriveWins(games []models.Game) []models.Game {
	for i := range games {
		games[i].Win = winOf(&games[i])
	}
	return games
}
