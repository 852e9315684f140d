// File: store/staff_repository.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside/models"
)

// StaffRepository handles staff member data access.
type StaffRepository struct {
	db *Database
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *Database) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = `
	id, full_name, team_level, position, display_order,
	primary_photo_url, secondary_photo_url, bio, email, phone, active
`

// GetAll returns every staff member ordered for display.
func (r *StaffRepository) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		ORDER BY display_order ASC, full_name ASC
	`
	return r.queryStaff(ctx, query)
}

// GetActive returns active staff ordered for display, optionally
// filtered to one team level.
func (r *StaffRepository) GetActive(ctx context.Context, level *models.TeamLevel) ([]models.StaffMember, error) {
	if level != nil {
		query := `
			SELECT ` + staffColumns + `
			FROM staff_members
			WHERE active = TRUE AND team_level = $1
			ORDER BY display_order ASC, full_name ASC
		`
		return r.queryStaff(ctx, query, *level)
	}

	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE active = TRUE
		ORDER BY display_order ASC, full_name ASC
	`
	return r.queryStaff(ctx, query)
}

// GetByID finds a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE id = $1
	`

	row := r.db.DB().QueryRowContext(ctx, query, id)
	staff, err := scanStaff(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrStaffNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying staff member: %w", err)
	}

	return staff, nil
}

// Create inserts a new staff member and fills in its generated ID.
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffMember) error {
	query := `
		INSERT INTO staff_members (full_name, team_level, position, display_order,
			primary_photo_url, secondary_photo_url, bio, email, phone, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		staff.FullName, staff.TeamLevel, staff.Position, staff.DisplayOrder,
		toSQLString(staff.PrimaryPhotoURL), toSQLString(staff.SecondaryPhotoURL),
		toSQLString(staff.Bio), toSQLString(staff.Email), toSQLString(staff.Phone),
		staff.Active,
	).Scan(&staff.ID)
	if err != nil {
		return fmt.Errorf("inserting staff member: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the staff member.
func (r *StaffRepository) Update(ctx context.Context, staff *models.StaffMember) error {
	query := `
		UPDATE staff_members
		SET full_name = $2, team_level = $3, position = $4, display_order = $5,
			primary_photo_url = $6, secondary_photo_url = $7, bio = $8,
			email = $9, phone = $10, active = $11
		WHERE id = $1
	`

	res, err := r.db.DB().ExecContext(ctx, query,
		staff.ID, staff.FullName, staff.TeamLevel, staff.Position, staff.DisplayOrder,
		toSQLString(staff.PrimaryPhotoURL), toSQLString(staff.SecondaryPhotoURL),
		toSQLString(staff.Bio), toSQLString(staff.Email), toSQLString(staff.Phone),
		staff.Active,
	)
	if err != nil {
		return fmt.Errorf("updating staff member: %w", err)
	}
	return checkAffected(res, models.ErrStaffNotFound, staff.ID)
}

// Delete removes the staff member row, failing when it does not exist.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM staff_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting staff member: %w", err)
	}
	return checkAffected(res, models.ErrStaffNotFound, id)
}

func (r *StaffRepository) queryStaff(ctx context.Context, query string, args ...any) ([]models.StaffMember, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying staff: %w", err)
	}
	defer rows.Close()

	var members []models.StaffMember
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staff member: %w", err)
		}
		members = append(members, *staff)
	}

	return members, rows.Err()
}

func scanStaff(row rowScanner) (*models.StaffMember, error) {
	var (
		staff     models.StaffMember
		primary   sql.NullString
		secondary sql.NullString
		bio       sql.NullString
		email     sql.NullString
		phone     sql.NullString
	)
	err := row.Scan(
		&staff.ID, &staff.FullName, &staff.TeamLevel, &staff.Position, &staff.DisplayOrder,
		&primary, &secondary, &bio, &email, &phone, &staff.Active,
	)
	if err != nil {
		return nil, err
	}
	staff.PrimaryPhotoURL = fromSQLString(primary)
	staff.SecondaryPhotoURL = fromSQLString(secondary)
	staff.Bio = fromSQLString(bio)
	staff.Email = fromSQLString(email)
	staff.Phone = fromSQLString(phone)
	return &staff, nil
}
