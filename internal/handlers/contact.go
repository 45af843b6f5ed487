package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/utils"
)

type CreateContactMessageRequest struct {
	UserID    uint   `json:"userId" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Useremail string `json:"useremail" binding:"required,email"`
	Message   string `json:"message" binding:"required"`
}

func CreateContactMessage(ctx *gin.Context) {
	var req CreateContactMessageRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	message := models.ContactMessage{
		UserID:    req.UserID,
		Username:  req.Username,
		Useremail: req.Useremail,
		Message:   req.Message,
	}

	if err := repos.CreateContactMessage(&message); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

func ListContactMessages(ctx *gin.Context) {
	messages, err := repos.ListContactMessages()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

func ListContactMessagesByUser(ctx *gin.Context) {
	userID, err := utils.GetIDParam(ctx, "userId", "User not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	messages, err := repos.ListContactMessagesByUser(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

func GetContactMessage(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Contact message not found")

	if err != nil {
		respondError(ctx, err)
		return
	}

	message, err := repos.FindContactMessageByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, message)
}
