// File: store/player_repository.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside/models"
)

// PlayerRepository handles player data access.
type PlayerRepository struct {
	db *Database
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `
	p.id, p.first_name, p.last_name, p.jersey_number, p.position,
	p.height, p.grad_year, p.country, p.photo_url, p.team_id, t.name
`

// GetByTeamID returns a team's roster ordered by jersey number ascending.
// Players without a number sort last.
func (r *PlayerRepository) GetByTeamID(ctx context.Context, teamID int64) ([]models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN teams t ON t.id = p.team_id
		WHERE p.team_id = $1
		ORDER BY p.jersey_number ASC NULLS LAST, p.last_name ASC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, *player)
	}

	return players, rows.Err()
}

// GetByID finds a player by ID.
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players p
		JOIN teams t ON t.id = p.team_id
		WHERE p.id = $1
	`

	row := r.db.DB().QueryRowContext(ctx, query, id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// Create inserts a new player and fills in its generated ID.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (first_name, last_name, jersey_number, position,
			height, grad_year, country, photo_url, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		player.FirstName, player.LastName,
		toSQLInt32(player.JerseyNumber), toSQLString(player.Position),
		toSQLString(player.Height), toSQLInt32(player.GradYear),
		toSQLString(player.Country), toSQLString(player.PhotoURL),
		player.TeamID,
	).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("inserting player: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the player.
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players
		SET first_name = $2, last_name = $3, jersey_number = $4, position = $5,
			height = $6, grad_year = $7, country = $8, photo_url = $9, team_id = $10
		WHERE id = $1
	`

	res, err := r.db.DB().ExecContext(ctx, query,
		player.ID, player.FirstName, player.LastName,
		toSQLInt32(player.JerseyNumber), toSQLString(player.Position),
		toSQLString(player.Height), toSQLInt32(player.GradYear),
		toSQLString(player.Country), toSQLString(player.PhotoURL),
		player.TeamID,
	)
	if err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	return checkAffected(res, models.ErrPlayerNotFound, player.ID)
}

// Delete removes the player row, failing when it does not exist.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	return checkAffected(res, models.ErrPlayerNotFound, id)
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var (
		player   models.Player
		jersey   sql.NullInt32
		position sql.NullString
		height   sql.NullString
		gradYear sql.NullInt32
		country  sql.NullString
		photoURL sql.NullString
	)
	err := row.Scan(
		&player.ID, &player.FirstName, &player.LastName, &jersey, &position,
		&height, &gradYear, &country, &photoURL, &player.TeamID, &player.TeamName,
	)
	if err != nil {
		return nil, err
	}
	player.JerseyNumber = fromSQLInt32(jersey)
	player.Position = fromSQLString(position)
	player.Height = fromSQLString(height)
	player.GradYear = fromSQLInt32(gradYear)
	player.Country = fromSQLString(country)
	player.PhotoURL = fromSQLString(photoURL)
	return &player, nil
}
