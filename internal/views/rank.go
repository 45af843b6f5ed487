package views

import (
	"sort"

	"github.com/serenity-space/serenity/internal/models"
)

// RankByComments orders posts by descending comment count. Ties keep
// ascending id order, so the ranking is deterministic for a given data
// snapshot. Pagination is applied by the caller after ranking.
func RankByComments(posts []models.Post) []models.Post {
	ranked := make([]models.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		if len(ranked[i].Comments) != len(ranked[j].Comments) {
			return len(ranked[i].Comments) > len(ranked[j].Comments)
		}

		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}
