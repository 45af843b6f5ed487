package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/utils"
	"gorm.io/datatypes"
)

type CreateAreaRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BannerImage string   `json:"bannerImage"`
	Videos      []string `json:"videos"`
}

type UpdateAreaRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	BannerImage *string   `json:"bannerImage"`
	Videos      *[]string `json:"videos"`
}

func videosJSON(urls []string) (datatypes.JSON, error) {
	if urls == nil {
		urls = []string{}
	}

	raw, err := json.Marshal(urls)

	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}

func CreateArea(ctx *gin.Context) {
	var req CreateAreaRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	videos, err := videosJSON(req.Videos)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	area := models.HealthcareArea{
		Name:        req.Name,
		Description: req.Description,
		BannerImage: req.BannerImage,
		Videos:      videos,
	}

	if err := repos.CreateArea(&area); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, area)
}

func ListAreas(ctx *gin.Context) {
	areas, err := repos.ListAreas()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, areas)
}

func GetArea(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	area, err := repos.FindAreaByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, area)
}

func UpdateArea(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	var req UpdateAreaRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}

	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if req.BannerImage != nil {
		updates["banner_image"] = *req.BannerImage
	}

	if req.Videos != nil {
		videos, err := videosJSON(*req.Videos)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}

		updates["videos"] = videos
	}

	area, err := repos.UpdateAreaByID(id, updates)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, area)
}

func DeleteArea(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Healthcare area not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := repos.DeleteAreaByID(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Healthcare area deleted"})
}
