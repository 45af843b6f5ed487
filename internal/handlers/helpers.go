package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/apperrors"
)

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.StatusCode(err), gin.H{"message": apperrors.Message(err)})
}
