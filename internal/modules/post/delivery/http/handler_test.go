package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	postDto "anoa.com/socialfeed/internal/modules/post/dto"
	"anoa.com/socialfeed/internal/modules/post/repository"
	post "anoa.com/socialfeed/internal/modules/post/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := bootstrap.SeedCatalog()
	svc := post.NewPostService(repository.NewPostRepository(catalog.Posts), catalog.Profile.AsAuthor())
	h := NewPostHandler(svc)

	r := gin.New()
	r.POST("/api/posts", h.CreatePost)
	r.GET("/api/posts/:post_id", h.GetPostByID)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePostEndpoint(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/api/posts", `{"type":"text","content":"Sketching a courtyard house"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp postDto.CreatePostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, post.MsgCreated, resp.Message)
	assert.Equal(t, "Sketching a courtyard house", resp.Post.Content.Text)
}

func TestCreatePostValidation(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"blank content", `{"type":"text","content":"   "}`, post.MsgEmptyContent},
		{"missing type", `{"content":"hi"}`, "Post type is required"},
		{"bad type", `{"type":"video","content":"hi"}`, "Post type must be one of: text, image, quote"},
		{"bad url", `{"type":"image","content":"hi","image_url":"not a url"}`, "Image URL must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/posts", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["error"])
		})
	}
}

func TestGetPostByID(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodGet, "/api/posts/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "green_building_lab")

	w = do(r, http.MethodGet, "/api/posts/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
