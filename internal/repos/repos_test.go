package repos

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) {
	t.Helper()

	store, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, store.AutoMigrate(
		&models.User{},
		&models.HealthcareArea{},
		&models.Post{},
		&models.Comment{},
		&models.Video{},
		&models.ContactMessage{},
		&models.Subscriber{},
	))

	db.DB = store
	t.Cleanup(func() { db.DB = nil })
}

func seedPost(t *testing.T, title string) *models.Post {
	t.Helper()

	post := models.Post{Title: title}
	require.NoError(t, CreatePost(&post))

	return &post
}

func seedComment(t *testing.T, postID uint, body string) *models.Comment {
	t.Helper()

	comment := models.Comment{PostID: postID, Body: body, AuthorName: "Bea"}
	require.NoError(t, CreateComment(&comment))

	return &comment
}

func TestDeleteCommentUnlinksFromPost(t *testing.T) {
	setupTestStore(t)

	post := seedPost(t, "Sleep hygiene")
	first := seedComment(t, post.ID, "first")
	second := seedComment(t, post.ID, "second")

	require.NoError(t, DeleteCommentByID(first.ID))

	reloaded, err := FindPostWithComments(post.ID)
	require.NoError(t, err)

	require.Len(t, reloaded.Comments, 1)
	assert.Equal(t, second.ID, reloaded.Comments[0].ID)

	for _, comment := range reloaded.Comments {
		assert.NotEqual(t, first.ID, comment.ID)
	}

	_, err = FindCommentByID(first.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPostsSecondPageOfFifteen(t *testing.T) {
	setupTestStore(t)

	for i := 1; i <= 15; i++ {
		seedPost(t, fmt.Sprintf("post %d", i))
	}

	page, err := ListPosts(PostFilter{}, ListOptions{Skip: 10, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page, 5)

	total, err := CountPosts(PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}

func TestListPostsUnlimitedReturnsAll(t *testing.T) {
	setupTestStore(t)

	for i := 1; i <= 7; i++ {
		seedPost(t, fmt.Sprintf("post %d", i))
	}

	// Skip must be ignored without a limit
	all, err := ListPosts(PostFilter{}, ListOptions{Skip: 3, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestUpdatePostMergesOnlyProvidedFields(t *testing.T) {
	setupTestStore(t)

	post := models.Post{Title: "before", Body: "original body"}
	require.NoError(t, CreatePost(&post))

	updated, err := UpdatePostByID(post.ID, map[string]interface{}{"title": "after"})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "original body", updated.Body)
}

func TestFindPostByIDUnknownIsNotFound(t *testing.T) {
	setupTestStore(t)

	_, err := FindPostByID(9999)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Post not found", apperrors.Message(err))
}
