package views

import (
	"testing"

	"github.com/serenity-space/serenity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWithComments(id uint, count int) models.Post {
	comments := make([]models.Comment, count)

	for i := range comments {
		comments[i] = models.Comment{ID: uint(i + 1), PostID: id}
	}

	return models.Post{ID: id, Comments: comments}
}

func TestRankByCommentsDescending(t *testing.T) {
	posts := []models.Post{
		postWithComments(1, 2),
		postWithComments(2, 5),
		postWithComments(3, 0),
		postWithComments(4, 3),
	}

	ranked := RankByComments(posts)

	require.Len(t, ranked, 4)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, len(ranked[i-1].Comments), len(ranked[i].Comments))
	}

	assert.Equal(t, uint(2), ranked[0].ID)
	assert.Equal(t, uint(3), ranked[3].ID)
}

func TestRankByCommentsTiesAreDeterministic(t *testing.T) {
	posts := []models.Post{
		postWithComments(9, 2),
		postWithComments(4, 2),
		postWithComments(7, 2),
	}

	first := RankByComments(posts)
	second := RankByComments(posts)

	assert.Equal(t, first, second)
	assert.Equal(t, uint(4), first[0].ID)
	assert.Equal(t, uint(7), first[1].ID)
	assert.Equal(t, uint(9), first[2].ID)
}

func TestRankByCommentsDoesNotMutateInput(t *testing.T) {
	posts := []models.Post{
		postWithComments(1, 0),
		postWithComments(2, 4),
	}

	_ = RankByComments(posts)

	assert.Equal(t, uint(1), posts[0].ID)
	assert.Equal(t, uint(2), posts[1].ID)
}
