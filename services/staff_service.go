// Package services holds the application's business logic.
// File: services/staff_service.go
package services

import (
	"context"
	"fmt"

	"courtside/logger"
	"courtside/models"
)

// StaffStore is the persistence surface the staff service needs.
type StaffStore interface {
	GetAll(ctx context.Context) ([]models.StaffMember, error)
	GetActive(ctx context.Context, level *models.TeamLevel) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
	Create(ctx context.Context, staff *models.StaffMember) error
	Update(ctx context.Context, staff *models.StaffMember) error
	Delete(ctx context.Context, id int64) error
}

// StaffService manages coaching staff entries.
type StaffService struct {
	repo StaffStore
}

// NewStaffService creates a new StaffService instance.
func NewStaffService(repo StaffStore) *StaffService {
	return &StaffService{repo: repo}
}

// ---------- admin ----------

// GetAllStaff returns every staff member, active or not, ordered for display.
func (s *StaffService) GetAllStaff(ctx context.Context) ([]models.StaffMember, error) {
	return s.repo.GetAll(ctx)
}

// CreateStaff inserts a new staff member.
func (s *StaffService) CreateStaff(ctx context.Context, req models.CreateOrUpdateStaffMemberRequest) (*models.StaffMember, error) {
	staff := &models.StaffMember{}
	applyStaff(req, staff)

	if err := s.repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	logger.Info.Printf("Created staff member %d (%s, %s)", staff.ID, staff.FullName, staff.Position)
	return staff, nil
}

// UpdateStaff replaces every mutable field of an existing staff member.
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req models.CreateOrUpdateStaffMemberRequest) (*models.StaffMember, error) {
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyStaff(req, staff)

	if err := s.repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes the staff member, failing when the id does not exist.
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ---------- public ----------

// GetPublicStaff returns active staff, optionally filtered by team level.
func (s *StaffService) GetPublicStaff(ctx context.Context, level *models.TeamLevel) ([]models.StaffMember, error) {
	return s.repo.GetActive(ctx, level)
}

// GetPublicStaffMember returns one staff member, hiding inactive entries
// from the public site.
func (s *StaffService) GetPublicStaffMember(ctx context.Context, id int64) (*models.StaffMember, error) {
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, fmt.Errorf("%w: %d is not active", models.ErrStaffNotFound, id)
	}
	return staff, nil
}

func applyStaff(req models.CreateOrUpdateStaffMemberRequest, staff *models.StaffMember) {
	staff.FullName = req.FullName
	staff.TeamLevel = req.TeamLevel
	staff.Position = req.Position
	staff.DisplayOrder = req.DisplayOrder
	staff.PrimaryPhotoURL = req.PrimaryPhotoURL
	staff.SecondaryPhotoURL = req.SecondaryPhotoURL
	staff.Bio = req.Bio
	staff.Email = req.Email
	staff.Phone = req.Phone
	staff.Active = req.Active
}
