// File: store/team_repository.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside/models"
)

// TeamRepository handles team data access.
type TeamRepository struct {
	db *Database
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns every team ordered by name.
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	query := `
		SELECT id, name, level, season, description
		FROM teams
		ORDER BY name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, *team)
	}

	return teams, rows.Err()
}

// GetByID finds a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	query := `
		SELECT id, name, level, season, description
		FROM teams
		WHERE id = $1
	`

	row := r.db.DB().QueryRowContext(ctx, query, id)
	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrTeamNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// Create inserts a new team and fills in its generated ID.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, level, season, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		team.Name, team.Level, nullIfEmpty(team.Season), nullIfEmpty(team.Description),
	).Scan(&team.ID)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the team.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `
		UPDATE teams
		SET name = $2, level = $3, season = $4, description = $5
		WHERE id = $1
	`

	res, err := r.db.DB().ExecContext(ctx, query,
		team.ID, team.Name, team.Level, nullIfEmpty(team.Season), nullIfEmpty(team.Description),
	)
	if err != nil {
		return fmt.Errorf("updating team: %w", err)
	}
	return checkAffected(res, models.ErrTeamNotFound, team.ID)
}

// Delete removes the team row. Callers decide whether a missing row matters.
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return checkAffected(res, models.ErrTeamNotFound, id)
}

// ------------------------- helpers -------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var (
		team    models.Team
		season  sql.NullString
		descrip sql.NullString
	)
	if err := row.Scan(&team.ID, &team.Name, &team.Level, &season, &descrip); err != nil {
		return nil, err
	}
	team.Season = season.String
	team.Description = descrip.String
	return &team, nil
}

// nullIfEmpty stores blank strings as SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// checkAffected maps a zero-row update or delete to notFound.
func checkAffected(res sql.Result, notFound error, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", notFound, id)
	}
	return nil
}
