package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/pagination"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/utils"
)

type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	AreaID      *uint  `json:"areaId"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	AreaID      *uint   `json:"areaId"`
}

// videoListEnvelope mirrors the post listing envelope, including the
// dual-purpose limitOrTotal field.
type videoListEnvelope struct {
	Page         int            `json:"page"`
	LimitOrTotal int64          `json:"limitOrTotal"`
	TotalPages   int            `json:"totalPages"`
	TotalVideos  int64          `json:"totalVideos"`
	Videos       []models.Video `json:"videos"`
}

// videoSortClause whitelists the sortable columns; anything else falls
// back to createdAt.
func videoSortClause(sortBy, sortOrder string) string {
	column := "created_at"

	if sortBy == "title" {
		column = "title"
	}

	if sortOrder == "asc" {
		return column + " ASC"
	}

	return column + " DESC"
}

func CreateVideo(ctx *gin.Context) {
	var req CreateVideoRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	video := models.Video{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		AreaID:      req.AreaID,
	}

	if err := repos.CreateVideo(&video); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, video)
}

// ListVideos handles GET /videos with pagination and sorting; the area
// reference is populated on every returned video.
func ListVideos(ctx *gin.Context) {
	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 0)

	videos, err := repos.ListVideos(repos.VideoFilter{}, repos.ListOptions{
		Sort:  videoSortClause(ctx.Query("sortBy"), ctx.Query("sortOrder")),
		Skip:  params.Skip(),
		Limit: params.Limit,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	total, err := repos.CountVideos(repos.VideoFilter{})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, videoListEnvelope{
		Page:         params.Page,
		LimitOrTotal: params.LimitOrTotal(total),
		TotalPages:   params.TotalPages(total),
		TotalVideos:  total,
		Videos:       videos,
	})
}

// VideosByArea handles GET /videos/area/:areaId: newest first, pages of
// 10 by default, plain array response.
func VideosByArea(ctx *gin.Context) {
	areaID, err := utils.GetIDParam(ctx, "areaId", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	params := pagination.Parse(ctx.Query("page"), ctx.Query("limit"), 10)

	videos, err := repos.ListVideos(repos.VideoFilter{AreaID: &areaID}, repos.ListOptions{
		Sort:  videoSortClause("", ctx.Query("sortOrder")),
		Skip:  params.Skip(),
		Limit: params.Limit,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, videos)
}

func GetVideo(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Video not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	video, err := repos.FindVideoByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

func UpdateVideo(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Video not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	var req UpdateVideoRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}

	if req.AreaID != nil {
		updates["area_id"] = *req.AreaID
	}

	video, err := repos.UpdateVideoByID(id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

func DeleteVideo(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Video not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := repos.DeleteVideoByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
