package handler

import (
	"net/http"

	"ckd-followup-backend/internal/middleware"
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/apperr"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingService *service.SettingService
}

func NewSettingHandler(settingService *service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// respondResult maps a typed application error onto the settings endpoints'
// {success, message} body
func respondResult(c *gin.Context, err error) {
	message := apperr.Message(err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindConflict:
		utils.ResultResponse(c, http.StatusBadRequest, false, message)
	case apperr.KindNotFound:
		utils.ResultResponse(c, http.StatusNotFound, false, message)
	default:
		utils.ResultResponse(c, http.StatusInternalServerError, false, message)
	}
}

// List returns all settings ordered by key
func (h *SettingHandler) List(c *gin.Context) {
	settings, err := h.settingService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"settings": settings})
}

// Create adds a new setting, rejecting duplicate keys
func (h *SettingHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	_, err := h.settingService.Create(
		c.PostForm("key"),
		c.PostForm("value"),
		c.PostForm("description"),
		user.ID,
	)
	if err != nil {
		respondResult(c, err)
		return
	}

	utils.ResultResponse(c, http.StatusOK, true, "setting created")
}

// Update overwrites a setting's value and description
func (h *SettingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)

	_, err := h.settingService.Update(id, c.PostForm("value"), c.PostForm("description"), user.ID)
	if err != nil {
		respondResult(c, err)
		return
	}

	utils.ResultResponse(c, http.StatusOK, true, "setting updated")
}

// Delete removes a setting
func (h *SettingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.settingService.Delete(id); err != nil {
		respondResult(c, err)
		return
	}

	utils.ResultResponse(c, http.StatusOK, true, "setting deleted")
}
