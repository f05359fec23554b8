package handler

import (
	"net/http"

	postDto "anoa.com/socialfeed/internal/modules/post/dto"
	post "anoa.com/socialfeed/internal/modules/post/service"
	"anoa.com/socialfeed/pkg/apperror"
	"anoa.com/socialfeed/pkg/response"
	"anoa.com/socialfeed/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	service post.PostService
}

func NewPostHandler(service post.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postDto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	created, err := h.service.CreatePost(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, postDto.CreatePostResponse{
		Message: post.MsgCreated,
		Post:    *created,
	})
}

func (h *PostHandler) GetPostByID(c *gin.Context) {
	found, ok := h.service.FindPost(c.Request.Context(), c.Param("post_id"))
	if !ok {
		response.ResponseError(c, apperror.NotFound("post not found"))
		return
	}

	c.JSON(http.StatusOK, found)
}
