package handler

import (
	"net/http"

	"anoa.com/socialfeed/internal/modules/profile/dto"
	profile "anoa.com/socialfeed/internal/modules/profile/service"
	"anoa.com/socialfeed/pkg/response"
	"anoa.com/socialfeed/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var query dto.ProfileQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.profileService.GetProfile(c.Request.Context(), query.Tab)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
