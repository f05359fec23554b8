package handler

import (
	"net/http"

	postDto "anoa.com/socialfeed/internal/modules/post/dto"
	search "anoa.com/socialfeed/internal/modules/search/service"
	"anoa.com/socialfeed/pkg/response"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searcher search.Searcher
}

func NewSearchHandler(searcher search.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	posts, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, postDto.SearchResponse{Query: query, Count: len(posts), Data: posts})
}
