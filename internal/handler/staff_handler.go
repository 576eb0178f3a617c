package handler

import (
	"net/http"

	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

func staffInputFromForm(c *gin.Context) service.StaffInput {
	return service.StaffInput{
		Username:   c.PostForm("username"),
		Password:   c.PostForm("password"),
		RealName:   c.PostForm("real_name"),
		Role:       c.PostForm("role"),
		Department: c.PostForm("department"),
		Phone:      c.PostForm("phone"),
		Email:      c.PostForm("email"),
		IsActive:   c.PostForm("is_active"),
	}
}

// List returns a paginated staff listing, newest first. An optional
// ?search= term matches username or real name.
func (h *StaffHandler) List(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	staff, pagination, err := h.staffService.List(search, page)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"staff":      staff,
		"pagination": pagination,
		"search":     search,
	})
}

// AddForm answers the staff creation form route
func (h *StaffHandler) AddForm(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"staff": nil})
}

// Create registers a new staff account and redirects to the listing
func (h *StaffHandler) Create(c *gin.Context) {
	if _, err := h.staffService.Create(staffInputFromForm(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/staff")
}

// EditForm answers the staff edit form route
func (h *StaffHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	staff, err := h.staffService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"staff": staff})
}

// Update edits an existing staff account and redirects to the listing
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.staffService.Update(id, staffInputFromForm(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/staff")
}

// Delete removes a staff account, refusing self-deletion
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.staffService.Delete(id, user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/staff")
}
