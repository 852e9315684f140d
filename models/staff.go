// Package models defines data structures used across the application.
// File: models/staff.go
package models

// StaffMember represents a coach or program staff entry. Only active
// members are visible on the public site.
type StaffMember struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"fullName"`
	TeamLevel         TeamLevel `json:"teamLevel"`
	Position          string    `json:"position"` // "Head Coach", "Assistant Coach", ...
	DisplayOrder      int       `json:"displayOrder"`
	PrimaryPhotoURL   *string   `json:"primaryPhotoUrl"`
	SecondaryPhotoURL *string   `json:"secondaryPhotoUrl"`
	Bio               *string   `json:"bio"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Active            bool      `json:"active"`
}

// CreateOrUpdateStaffMemberRequest is the admin payload for creating or
// replacing a staff member.
type CreateOrUpdateStaffMemberRequest struct {
	FullName          string    `json:"fullName" binding:"required"`
	TeamLevel         TeamLevel `json:"teamLevel" binding:"required,oneof=REGIONAL NATIONAL"`
	Position          string    `json:"position" binding:"required"`
	DisplayOrder      int       `json:"displayOrder" binding:"min=0"`
	PrimaryPhotoURL   *string   `json:"primaryPhotoUrl" binding:"omitempty,max=1000"`
	SecondaryPhotoURL *string   `json:"secondaryPhotoUrl" binding:"omitempty,max=1000"`
	Bio               *string   `json:"bio"`
	Email             *string   `json:"email" binding:"omitempty,email,max=255"`
	Phone             *string   `json:"phone" binding:"omitempty,max=50"`
	Active            bool      `json:"active"`
}

// PhotoUploadResponse carries the public URL of a stored photo.
type PhotoUploadResponse struct {
	URL string `json:"url"`
}
