package handler

import (
	"net/http"
	"strconv"

	"ckd-followup-backend/pkg/apperr"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID parses the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// pageParam parses the ?page= query parameter, defaulting to 1
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// respondError maps a typed application error onto the JSON error response
func respondError(c *gin.Context, err error) {
	message := apperr.Message(err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		utils.ErrorResponse(c, http.StatusBadRequest, message)
	case apperr.KindConflict:
		utils.ErrorResponse(c, http.StatusConflict, message)
	case apperr.KindNotFound:
		utils.ErrorResponse(c, http.StatusNotFound, message)
	case apperr.KindUnauthorized:
		utils.ErrorResponse(c, http.StatusUnauthorized, message)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, message)
	}
}
