package comment

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/internal/modules/comment/dto"
	"anoa.com/socialfeed/internal/modules/comment/repository"
	"anoa.com/socialfeed/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() CommentService {
	catalog := bootstrap.SeedCatalog()
	return NewCommentService(repository.NewCommentRepository(catalog.Comments), catalog.Profile.AsAuthor())
}

func TestListCommentsIsSharedAcrossPosts(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first := svc.ListCommentsForPost(ctx, "1")
	require.Len(t, first, 3)
	assert.Equal(t, "sarah_designer", first[0].Author.Username)

	assert.Equal(t, first, svc.ListCommentsForPost(ctx, "6"))
	assert.Equal(t, first, svc.ListCommentsForPost(ctx, "unknown"))
}

func TestAddComment(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	c, err := svc.AddComment(ctx, "1", dto.CreateCommentRequest{Text: "  <b>Lovely</b> curves  "})
	require.NoError(t, err)
	assert.Equal(t, "Lovely curves", c.Text)
	assert.Equal(t, "evie_sharon", c.Author.Username)
	assert.Equal(t, "now", c.Timestamp)
	assert.NotEmpty(t, c.ID)

	assert.Len(t, svc.ListCommentsForPost(ctx, "1"), 3, "accepted comments are not stored")
}

func TestAddCommentRejectsBlankText(t *testing.T) {
	svc := newService()

	for _, text := range []string{"", "   ", "\n\t", "<p> </p>"} {
		c, err := svc.AddComment(context.Background(), "1", dto.CreateCommentRequest{Text: text})
		assert.Nil(t, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
		assert.Equal(t, http.StatusBadRequest, apperror.MapErrorToStatus(err))
		assert.Equal(t, MsgEmptyComment, err.Error())
	}
}
