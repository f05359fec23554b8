package handler

import (
	"net/http"

	screen "anoa.com/socialfeed/internal/modules/screen/service"
	"anoa.com/socialfeed/pkg/response"
	"github.com/gin-gonic/gin"
)

type ScreenHandler struct {
	service screen.ScreenService
}

func NewScreenHandler(service screen.ScreenService) *ScreenHandler {
	return &ScreenHandler{service: service}
}

func (h *ScreenHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Home(c.Request.Context()))
}

func (h *ScreenHandler) Explore(c *gin.Context) {
	res, err := h.service.Explore(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ScreenHandler) Create(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Create(c.Request.Context()))
}

func (h *ScreenHandler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Activity(c.Request.Context()))
}

func (h *ScreenHandler) Profile(c *gin.Context) {
	res, err := h.service.Profile(c.Request.Context(), c.Query("tab"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ScreenHandler) PostDetail(c *gin.Context) {
	res, err := h.service.PostDetail(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CategoryFeed answers 200 for unknown categories; the payload carries the
// not-found state.
func (h *ScreenHandler) CategoryFeed(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CategoryFeed(c.Request.Context(), c.Param("category_id")))
}

func (h *ScreenHandler) ToggleLike(c *gin.Context) {
	res, err := h.service.ToggleLike(c.Request.Context(), c.Param("view_id"), c.Param("post_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ScreenHandler) ToggleBookmark(c *gin.Context) {
	res, err := h.service.ToggleBookmark(c.Request.Context(), c.Param("view_id"), c.Param("post_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ScreenHandler) Refresh(c *gin.Context) {
	res, err := h.service.Refresh(c.Request.Context(), c.Param("view_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
