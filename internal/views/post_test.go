package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/serenity-space/serenity/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildPostDetailEmbedsAuthor(t *testing.T) {
	author := models.User{
		ID:                7,
		Name:              "Dr. Adams",
		Role:              models.RoleDoctor,
		ProfilePictureURL: "https://cdn.example.com/adams.png",
	}

	post := models.Post{
		ID:       3,
		Title:    "Sleep hygiene",
		AuthorID: uintPtr(7),
	}

	detail := BuildPostDetail(post, &author)

	require.NotNil(t, detail.Author.ID)
	assert.Equal(t, uint(7), *detail.Author.ID)
	assert.Equal(t, "Dr. Adams", detail.Author.Name)
	assert.Equal(t, models.RoleDoctor, detail.Author.Role)
	assert.Equal(t, "https://cdn.example.com/adams.png", detail.Author.ProfilePictureURL)
}

func TestBuildPostDetailMissingAuthorDegrades(t *testing.T) {
	post := models.Post{ID: 3, AuthorID: uintPtr(99)}

	detail := BuildPostDetail(post, nil)

	assert.Nil(t, detail.Author.ID)
	assert.Equal(t, "Unknown", detail.Author.Name)
	assert.Equal(t, "", detail.Author.ProfilePictureURL)
}

func TestBuildPostDetailNoRawReferenceField(t *testing.T) {
	post := models.Post{ID: 3, AuthorID: uintPtr(7)}

	raw, err := json.Marshal(BuildPostDetail(post, &models.User{ID: 7, Name: "A"}))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.NotContains(t, body, "authorId")
	assert.Contains(t, body, "author")
}

func TestBuildPostDetailEmptyCommentsIsEmptyArray(t *testing.T) {
	raw, err := json.Marshal(BuildPostDetail(models.Post{ID: 1}, nil))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	comments, ok := body["comments"].([]interface{})
	require.True(t, ok, "comments must serialize as an array, not null")
	assert.Empty(t, comments)
}

func TestBuildPostDetailReshapesComments(t *testing.T) {
	createdAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	post := models.Post{
		ID: 5,
		Comments: []models.Comment{
			{
				ID:         11,
				AuthorID:   uintPtr(7),
				AuthorName: "Old Name",
				Body:       "Great read",
				PostID:     5,
				CreatedAt:  createdAt,
			},
		},
	}

	detail := BuildPostDetail(post, nil)

	require.Len(t, detail.Comments, 1)
	comment := detail.Comments[0]
	assert.Equal(t, uint(11), comment.ID)
	assert.Equal(t, "Great read", comment.Body)
	assert.Equal(t, uint(5), comment.PostID)
	assert.Equal(t, createdAt, comment.CreatedAt)
	require.NotNil(t, comment.Author.ID)
	assert.Equal(t, uint(7), *comment.Author.ID)
	// the snapshot is used as-is, the user is not re-resolved
	assert.Equal(t, "Old Name", comment.Author.AuthorName)
}

func TestBuildPostListItemUsesProfilePictureKey(t *testing.T) {
	author := models.User{ID: 2, Name: "Bea", ProfilePictureURL: "pic.png"}
	post := models.Post{ID: 1, AuthorID: uintPtr(2)}

	raw, err := json.Marshal(BuildPostListItem(post, &author))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	embedded, ok := body["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pic.png", embedded["profilePicture"])
	assert.NotContains(t, embedded, "profilePictureUrl")
	assert.NotContains(t, embedded, "role")
}

func TestBuildPostListDegradesPerPost(t *testing.T) {
	posts := []models.Post{
		{ID: 1, AuthorID: uintPtr(2)},
		{ID: 2, AuthorID: uintPtr(999)},
		{ID: 3},
	}

	authors := map[uint]models.User{
		2: {ID: 2, Name: "Bea"},
	}

	items := BuildPostList(posts, authors)

	require.Len(t, items, 3)
	assert.Equal(t, "Bea", items[0].Author.Name)
	assert.Equal(t, "Unknown", items[1].Author.Name)
	assert.Nil(t, items[1].Author.ID)
	assert.Equal(t, "Unknown", items[2].Author.Name)
}

func TestAuthorIDsDeduplicatesAndSkipsNil(t *testing.T) {
	posts := []models.Post{
		{ID: 1, AuthorID: uintPtr(2)},
		{ID: 2, AuthorID: uintPtr(2)},
		{ID: 3},
		{ID: 4, AuthorID: uintPtr(5)},
	}

	assert.Equal(t, []uint{2, 5}, AuthorIDs(posts))
}
