// Package views reshapes posts and comments for API responses: the raw
// author reference is replaced by an embedded author object, and
// comments are flattened to their denormalized snapshot shape. Detail
// and listing views deliberately use different embedded-author shapes;
// both are part of the upstream API contract.
package views

import (
	"time"

	"github.com/serenity-space/serenity/internal/models"
)

// DetailAuthor is the author shape embedded in single-post detail
// responses.
type DetailAuthor struct {
	ID                *uint  `json:"id"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	Role              string `json:"role,omitempty"`
}

// ListAuthor is the author shape embedded in listing responses. Note
// the profilePicture key differs from the detail shape.
type ListAuthor struct {
	ID             *uint  `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

// CommentAuthor carries the denormalized snapshot taken when the
// comment was written; the user record is not re-resolved.
type CommentAuthor struct {
	ID         *uint  `json:"id"`
	AuthorName string `json:"authorName"`
}

type CommentView struct {
	ID        uint          `json:"id"`
	Body      string        `json:"body"`
	PostID    uint          `json:"postId"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    CommentAuthor `json:"author"`
}

// PostDetail is the /posts/full/:id response body. It carries no raw
// authorId field; the reference only appears in its resolved form.
type PostDetail struct {
	ID          uint         `json:"id"`
	Image       string       `json:"image"`
	Area        string       `json:"area"`
	AreaID      *uint        `json:"areaId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Body        string       `json:"body"`
	CreatedAt   time.Time    `json:"createdAt"`
	PostDate    time.Time    `json:"postDate"`
	Author      DetailAuthor `json:"author"`
	Comments    []CommentView `json:"comments"`
}

// PostListItem is the per-post shape inside paginated listings.
type PostListItem struct {
	ID            uint       `json:"id"`
	Image         string     `json:"image"`
	Area          string     `json:"area"`
	AreaID        *uint      `json:"areaId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Body          string     `json:"body"`
	CreatedAt     time.Time  `json:"createdAt"`
	PostDate      time.Time  `json:"postDate"`
	Author        ListAuthor `json:"author"`
	CommentsCount int        `json:"commentsCount"`
}

const unknownAuthorName = "Unknown"

// BuildPostDetail embeds the resolved author and the post's comments.
// A nil author (deleted user, dangling reference) degrades to a
// placeholder instead of failing the request.
func BuildPostDetail(post models.Post, author *models.User) PostDetail {
	detail := PostDetail{
		ID:          post.ID,
		Image:       post.Image,
		Area:        post.Area,
		AreaID:      post.AreaID,
		Title:       post.Title,
		Description: post.Description,
		Body:        post.Body,
		CreatedAt:   post.CreatedAt,
		PostDate:    post.PostDate,
		Comments:    buildComments(post.Comments),
	}

	if author != nil {
		id := author.ID
		detail.Author = DetailAuthor{
			ID:                &id,
			Name:              author.Name,
			ProfilePictureURL: author.ProfilePictureURL,
			Role:              author.Role,
		}
	} else {
		detail.Author = DetailAuthor{
			ID:                nil,
			Name:              unknownAuthorName,
			ProfilePictureURL: "",
		}
	}

	return detail
}

// BuildPostListItem is the listing counterpart of BuildPostDetail.
func BuildPostListItem(post models.Post, author *models.User) PostListItem {
	item := PostListItem{
		ID:            post.ID,
		Image:         post.Image,
		Area:          post.Area,
		AreaID:        post.AreaID,
		Title:         post.Title,
		Description:   post.Description,
		Body:          post.Body,
		CreatedAt:     post.CreatedAt,
		PostDate:      post.PostDate,
		CommentsCount: len(post.Comments),
	}

	if author != nil {
		id := author.ID
		item.Author = ListAuthor{
			ID:             &id,
			Name:           author.Name,
			ProfilePicture: author.ProfilePictureURL,
		}
	} else {
		item.Author = ListAuthor{
			ID:             nil,
			Name:           unknownAuthorName,
			ProfilePicture: "",
		}
	}

	return item
}

// BuildPostList resolves authors from the given index and shapes every
// post. Posts whose author is missing from the index degrade
// per-post; the listing itself never fails.
func BuildPostList(posts []models.Post, authors map[uint]models.User) []PostListItem {
	items := make([]PostListItem, 0, len(posts))

	for _, post := range posts {
		items = append(items, BuildPostListItem(post, lookupAuthor(post, authors)))
	}

	return items
}

// AuthorIDs collects the distinct author references of a post set for
// one batched resolution query.
func AuthorIDs(posts []models.Post) []uint {
	seen := make(map[uint]bool, len(posts))
	ids := make([]uint, 0, len(posts))

	for _, post := range posts {
		if post.AuthorID == nil || seen[*post.AuthorID] {
			continue
		}

		seen[*post.AuthorID] = true
		ids = append(ids, *post.AuthorID)
	}

	return ids
}

func lookupAuthor(post models.Post, authors map[uint]models.User) *models.User {
	if post.AuthorID == nil {
		return nil
	}

	if author, ok := authors[*post.AuthorID]; ok {
		return &author
	}

	return nil
}

func buildComments(comments []models.Comment) []CommentView {
	result := make([]CommentView, 0, len(comments))

	for _, comment := range comments {
		result = append(result, CommentView{
			ID:        comment.ID,
			Body:      comment.Body,
			PostID:    comment.PostID,
			CreatedAt: comment.CreatedAt,
			Author: CommentAuthor{
				ID:         comment.AuthorID,
				AuthorName: comment.AuthorName,
			},
		})
	}

	return result
}
