// Package controllers translates HTTP requests into service calls.
// File: controllers/admin_staff_controller.go
package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services"
)

// AdminStaffController handles staff management and photo uploads.
type AdminStaffController struct {
	staff  *services.StaffService
	photos services.PhotoStorage
}

// NewAdminStaffController creates a new AdminStaffController instance.
func NewAdminStaffController(staff *services.StaffService, photos services.PhotoStorage) *AdminStaffController {
	return &AdminStaffController{staff: staff, photos: photos}
}

// ListStaff lists every staff member, active or not.
func (ctl *AdminStaffController) ListStaff(c *gin.Context) {
	staff, err := ctl.staff.GetAllStaff(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff adds a staff member.
func (ctl *AdminStaffController) CreateStaff(c *gin.Context) {
	var req models.CreateOrUpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff, err := ctl.staff.CreateStaff(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaff replaces a staff member's fields.
func (ctl *AdminStaffController) UpdateStaff(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.CreateOrUpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	staff, err := ctl.staff.UpdateStaff(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member.
func (ctl *AdminStaffController) DeleteStaff(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.staff.DeleteStaff(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPhoto stores a staff photo and returns its URL. The caller
// threads the URL into a later create or update call.
func (ctl *AdminStaffController) UploadPhoto(c *gin.Context) {
	uploadPhoto(c, ctl.photos)
}

// uploadPhoto reads the multipart "file" field and hands it to the
// configured storage backend.
func uploadPhoto(c *gin.Context, photos services.PhotoStorage) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := photos.Store(c.Request.Context(), content, fileHeader.Filename, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PhotoUploadResponse{URL: url})
}
