// Package repos holds the per-entity data access layer. Store faults
// are translated into the apperrors taxonomy at this boundary; handlers
// never see raw gorm errors.
package repos

import (
	"errors"

	"github.com/serenity-space/serenity/internal/apperrors"
	"gorm.io/gorm"
)

// ListOptions carries the query shaping shared by the listing
// repositories. A Limit of 0 means no cap, in which case Skip is
// ignored.
type ListOptions struct {
	Sort  string
	Skip  int
	Limit int
}

func applyListOptions(tx *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.Sort != "" {
		tx = tx.Order(opts.Sort)
	}

	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit).Offset(opts.Skip)
	}

	return tx
}

func translate(err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(notFoundMessage)
	}

	return apperrors.NewInternal("Unexpected error", err)
}
