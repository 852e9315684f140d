// File: store/game_repository.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courtside/models"
)

// GameRepository handles game data access.
type GameRepository struct {
	db *Database
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *Database) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `
	g.id, g.team_id, t.name, g.opponent, g.game_date_time, g.home_away,
	g.location, g.score_us, g.score_them, g.conference_game, g.notes
`

// GetAll returns the full schedule ordered by tip-off ascending.
func (r *GameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN teams t ON t.id = g.team_id
		ORDER BY g.game_date_time ASC
	`
	return r.queryGames(ctx, query)
}

// GetAfter returns games strictly after the given instant, soonest first.
func (r *GameRepository) GetAfter(ctx context.Context, after time.Time) ([]models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN teams t ON t.id = g.team_id
		WHERE g.game_date_time > $1
		ORDER BY g.game_date_time ASC
	`
	return r.queryGames(ctx, query, after)
}

// GetBefore returns games strictly before the given instant, latest first.
func (r *GameRepository) GetBefore(ctx context.Context, before time.Time) ([]models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN teams t ON t.id = g.team_id
		WHERE g.game_date_time < $1
		ORDER BY g.game_date_time DESC
	`
	return r.queryGames(ctx, query, before)
}

// GetByID finds a game by ID.
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN teams t ON t.id = g.team_id
		WHERE g.id = $1
	`

	row := r.db.DB().QueryRowContext(ctx, query, id)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrGameNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// Create inserts a new game and fills in its generated ID.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (team_id, opponent, game_date_time, home_away,
			location, score_us, score_them, conference_game, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		game.TeamID, game.Opponent, game.GameDateTime, game.HomeAway,
		game.Location, toSQLInt32(game.ScoreUs), toSQLInt32(game.ScoreThem),
		game.ConferenceGame, toSQLString(game.Notes),
	).Scan(&game.ID)
	if err != nil {
		return fmt.Errorf("inserting game: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the game.
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games
		SET team_id = $2, opponent = $3, game_date_time = $4, home_away = $5,
			location = $6, score_us = $7, score_them = $8,
			conference_game = $9, notes = $10
		WHERE id = $1
	`

	res, err := r.db.DB().ExecContext(ctx, query,
		game.ID, game.TeamID, game.Opponent, game.GameDateTime, game.HomeAway,
		game.Location, toSQLInt32(game.ScoreUs), toSQLInt32(game.ScoreThem),
		game.ConferenceGame, toSQLString(game.Notes),
	)
	if err != nil {
		return fmt.Errorf("updating game: %w", err)
	}
	return checkAffected(res, models.ErrGameNotFound, game.ID)
}

// Delete removes the game row, failing when it does not exist.
func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}
	return checkAffected(res, models.ErrGameNotFound, id)
}

func (r *GameRepository) queryGames(ctx context.Context, query string, args ...any) ([]models.Game, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, *game)
	}

	return games, rows.Err()
}

func scanGame(row rowScanner) (*models.Game, error) {
	var (
		game      models.Game
		scoreUs   sql.NullInt32
		scoreThem sql.NullInt32
		notes     sql.NullString
	)
	err := row.Scan(
		&game.ID, &game.TeamID, &game.TeamName, &game.Opponent, &game.GameDateTime,
		&game.HomeAway, &game.Location, &scoreUs, &scoreThem,
		&game.ConferenceGame, &notes,
	)
	if err != nil {
		return nil, err
	}
	game.ScoreUs = fromSQLInt32(scoreUs)
	game.ScoreThem = fromSQLInt32(scoreThem)
	game.Notes = fromSQLString(notes)
	return &game, nil
}
