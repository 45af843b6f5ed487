package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/models"
	"github.com/serenity-space/serenity/internal/repos"
	"github.com/serenity-space/serenity/internal/services"
	"github.com/serenity-space/serenity/internal/utils"
)

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func ListSubscribers(ctx *gin.Context) {
	subscribers, err := repos.ListSubscribers()

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subscribers)
}

func Subscribe(ctx *gin.Context) {
	var req SubscribeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	existing, err := repos.FindSubscriberByEmail(req.Email)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "You are already subscribed!"})
		return
	}

	subscriber := models.Subscriber{Email: req.Email}

	if err := repos.CreateSubscriber(&subscriber); err != nil {
		respondError(ctx, err)
		return
	}

	go services.Mail.SendSubscriptionThanks(subscriber.Email)

	ctx.JSON(http.StatusOK, gin.H{"message": "Thank you for subscribing!"})
}

func DeleteSubscriber(ctx *gin.Context) {
	id, err := utils.GetIDParam(ctx, "id", "Subscriber not found!")

	if err != nil {
		respondError(ctx, err)
		return
	}

	subscriber, err := repos.DeleteSubscriberByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":           "Subscriber deleted successfully!",
		"deletedSubscriber": subscriber,
	})
}
