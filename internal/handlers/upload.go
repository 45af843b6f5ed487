package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serenity-space/serenity/internal/services"
	"github.com/serenity-space/serenity/internal/utils"
)

// UploadImage accepts a multipart image and stores it in the configured
// bucket; the returned URL is what callers put into image,
// profilePictureUrl or thumbnail fields.
func UploadImage(ctx *gin.Context) {
	if services.Store == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Image uploads are not configured"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	file, header, err := ctx.Request.FormFile("image")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("images/%d/%s_%s", userID, uuid.New().String(), header.Filename)

	url, err := services.Store.UploadImage(ctx.Request.Context(), key, file, header.Header.Get("Content-Type"))

	if err != nil {
		log.Printf("Failed to upload image: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
