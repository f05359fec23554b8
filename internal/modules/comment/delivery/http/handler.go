package handler

import (
	"net/http"

	"anoa.com/socialfeed/internal/modules/comment/dto"
	comment "anoa.com/socialfeed/internal/modules/comment/service"
	"anoa.com/socialfeed/pkg/response"
	"anoa.com/socialfeed/pkg/validator"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service comment.CommentService
}

func NewCommentHandler(service comment.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	postID := c.Param("post_id")
	comments := h.service.ListCommentsForPost(c.Request.Context(), postID)

	c.JSON(http.StatusOK, dto.CommentListResponse{
		PostID: postID,
		Count:  len(comments),
		Data:   dto.NewCommentResponses(comments),
	})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	created, err := h.service.AddComment(c.Request.Context(), c.Param("post_id"), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(*created))
}
