package handler

import (
	"net/http"

	"anoa.com/socialfeed/internal/modules/category/dto"
	category "anoa.com/socialfeed/internal/modules/category/service"
	"anoa.com/socialfeed/pkg/apperror"
	"anoa.com/socialfeed/pkg/response"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(service category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories := h.service.ListCategories(c.Request.Context())

	resp := dto.CategoryListResponse{Data: make([]dto.CategoryResponse, 0, len(categories))}
	for _, cat := range categories {
		resp.Data = append(resp.Data, dto.NewCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	cat, ok := h.service.FindCategory(c.Request.Context(), c.Param("id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound("category not found"))
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(*cat))
}
