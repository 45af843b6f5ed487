package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serenity-space/serenity/internal/apperrors"
)

// GetIDParam parses a numeric path parameter. A syntactically invalid
// identifier is reported as not-found rather than as a parse fault, so
// lookups on garbage ids turn into 404s.
func GetIDParam(ctx *gin.Context, name, notFoundMessage string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)

	if err != nil || id == 0 {
		return 0, apperrors.NewNotFound(notFoundMessage)
	}

	return uint(id), nil
}
