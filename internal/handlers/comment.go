package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/utils"
)

type CreateCommentRequest struct {
	AuthorID uint   `json:"authorId" binding:"required"`
	Body     string `json:"body" binding:"required"`
	PostID   uint   `json:"postId" binding:"required"`
}

type UpdateCommentRequest struct {
	Body *string `json:"body"`
}

// CreateComment writes the comment with a snapshot of the author's name
// taken now; later renames do not touch existing comments.
func CreateComment(ctx *gin.Context) {
	var req CreateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	author, err := repos.FindUserByID(req.AuthorID)

	if err != nil {
		if apperrors.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Author not found"})
			return
		}

		respondError(ctx, err)
		return
	}

	if _, err := repos.FindPostByID(req.PostID); err != nil {
		respondError(ctx, err)
		return
	}

	comment := models.Comment{
		AuthorID:   &req.AuthorID,
		AuthorName: author.Name,
		Body:       req.Body,
		PostID:     req.PostID,
	}

	if err := repos.CreateComment(&comment); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// GetPostComments handles GET /comments/:postId.
func GetPostComments(ctx *gin.Context) {
	postID, err := utils.GetIDParam(ctx, "postId", "Post not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if _, err := repos.FindPostByID(postID); err != nil {
		respondError(ctx, err)
		return
	}

	comments, err := repos.ListCommentsByPost(postID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

func GetComment(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "commentId", "Comment not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	comment, err := repos.FindCommentByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

func ListComments(ctx *gin.Context) {
	comments, err := repos.ListComments()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

func UpdateComment(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "commentId", "Comment not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	var req UpdateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Body != nil {
		updates["body"] = *req.Body
	}

	comment, err := repos.UpdateCommentByID(id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

// DeleteComment removes the comment; with comments keyed by post id the
// delete also drops it from the parent post's comment list.
func DeleteComment(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "commentId", "Comment not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := repos.DeleteCommentByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
