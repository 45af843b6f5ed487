package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/pagination"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/utils"
	"github.com/serenity-space/serenity/internal/views"
)

type CreatePostRequest struct {
	Image       string     `json:"image"`
	Area        string     `json:"area"`
	AreaID      *uint      `json:"areaId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Body        string     `json:"body"`
	AuthorID    *uint      `json:"authorId"`
	PostDate    *time.Time `json:"postDate"`
}

type UpdatePostRequest struct {
	Image       *string    `json:"image"`
	Area        *string    `json:"area"`
	AreaID      *uint      `json:"areaId"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Body        *string    `json:"body"`
	PostDate    *time.Time `json:"postDate"`
}

// postListEnvelope is the shared paginated-listing response. The
// limitOrTotal field doubles as the requested limit when one is set and
// the total post count otherwise.
type postListEnvelope struct {
	Page         int                  `json:"page"`
	LimitOrTotal int64                `json:"limitOrTotal"`
	TotalPages   int                  `json:"totalPages"`
	TotalPosts   int64                `json:"totalPosts"`
	Posts        []views.PostListItem `json:"posts"`
}

func buildPostEnvelope(params pagination.Params, total int64, posts []models.Post) (postListEnvelope, error) {
	authors, err := repos.FindUsersByIDs(views.AuthorIDs(posts))

	if err != nil {
		return postListEnvelope{}, err
	}

	return postListEnvelope{
		Page:         params.Page,
		LimitOrTotal: params.LimitOrTotal(total),
		TotalPages:   params.TotalPages(total),
		TotalPosts:   total,
		Posts:        views.BuildPostList(posts, authors),
	}, nil
}

// ListPosts handles GET /posts: the whole set by default, a page of it
// when limit is supplied.
func ListPosts(ctx *gin.Context) {
	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 0)

	posts, err := repos.ListPosts(repos.PostFilter{}, repos.ListOptions{
		Skip:  params.Skip(),
		Limit: params.Limit,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	total, err := repos.CountPosts(repos.PostFilter{})

	if err != nil {
		respondError(ctx, err)
		return
	}

	envelope, err := buildPostEnvelope(params, total, posts)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}

// LatestPosts handles GET /posts/latest: most recent first by postDate,
// small default page size.
func LatestPosts(ctx *gin.Context) {
	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 5)

	posts, err := repos.ListPosts(repos.PostFilter{}, repos.ListOptions{
		Sort:  "post_date DESC",
		Skip:  params.Skip(),
		Limit: params.Limit,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	total, err := repos.CountPosts(repos.PostFilter{})

	if err != nil {
		respondError(ctx, err)
		return
	}

	envelope, err := buildPostEnvelope(params, total, posts)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}

// PostsByArea handles GET /posts/area/:areaId.
func PostsByArea(ctx *gin.Context) {
	areaID, err := utils.GetIDParam(ctx, "areaId", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 0)
	filter := repos.PostFilter{AreaID: &areaID}

	posts, err := repos.ListPosts(filter, repos.ListOptions{
		Skip:  params.Skip(),
		Limit: params.Limit,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	total, err := repos.CountPosts(filter)

	if err != nil {
		respondError(ctx, err)
		return
	}

	envelope, err := buildPostEnvelope(params, total, posts)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}

// MostPopularPosts handles GET /posts/mostpopular: the full post set is
// ranked by comment count, then paginated. Without a limit the entire
// ranked set is returned.
func MostPopularPosts(ctx *gin.Context) {
	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 0)

	rankedPage(ctx, params, repos.PostFilter{})
}

// MostPopularPostsByArea handles GET /posts/area/:areaId/mostpopular.
// Unlike the global ranking this defaults to pages of 10.
func MostPopularPostsByArea(ctx *gin.Context) {
	areaID, err := utils.GetIDParam(ctx, "areaId", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 10)

	rankedPage(ctx, params, repos.PostFilter{AreaID: &areaID})
}

func rankedPage(ctx *gin.Context, params pagination.Params, filter repos.PostFilter) {
	posts, err := repos.ListPostsWithComments(filter)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ranked := views.RankByComments(posts)

	lo, hi := params.Bounds(len(ranked))

	envelope, err := buildPostEnvelope(params, int64(len(ranked)), ranked[lo:hi])

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}

// GetFullPost handles GET /posts/full/:id: the post with its author and
// comments embedded. A vanished author degrades to a placeholder.
func GetFullPost(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Post not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	post, err := repos.FindPostWithComments(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	var author *models.User

	if post.AuthorID != nil {
		author, err = repos.FindUserByID(*post.AuthorID)

		if err != nil && !apperrors.IsNotFound(err) {
			respondError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, views.BuildPostDetail(*post, author))
}

// GetPost handles GET /posts/:id, returning the raw record.
func GetPost(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Post not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	post, err := repos.FindPostWithComments(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

func CreatePost(ctx *gin.Context) {
	var req CreatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	post := models.Post{
		Image:       req.Image,
		Area:        req.Area,
		AreaID:      req.AreaID,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		AuthorID:    req.AuthorID,
	}

	if req.PostDate != nil {
		post.PostDate = *req.PostDate
	} else {
		post.PostDate = time.Now()
	}

	if post.AuthorID == nil {
		if userID, err := utils.GetCurrentUserID(ctx); err == nil {
			post.AuthorID = &userID
		}
	}

	if err := repos.CreatePost(&post); err != nil {
		log.Printf("Failed to create post: %v", err)
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

func UpdatePost(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Post not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	var req UpdatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if req.Area != nil {
		updates["area"] = *req.Area
	}

	if req.AreaID != nil {
		updates["area_id"] = *req.AreaID
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Body != nil {
		updates["body"] = *req.Body
	}

	if req.PostDate != nil {
		updates["post_date"] = *req.PostDate
	}

	post, err := repos.UpdatePostByID(id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

func DeletePost(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Post not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := repos.DeletePostByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
