package repos

import (
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
	"gorm.io/gorm"
)

// PostFilter scopes post queries. A nil AreaID means all areas.
type PostFilter struct {
	AreaID *uint
}

func (f PostFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.AreaID != nil {
		tx = tx.Where("area_id = ?", *f.AreaID)
	}

	return tx
}

func CreatePost(post *models.Post) error {
	if err := db.DB.Create(post).Error; err != nil {
		return apperrors.NewInternal("Failed to create post", err)
	}

	return nil
}

func FindPostByID(id uint) (*models.Post, error) {
	var post models.Post

	if err := db.DB.First(&post, id).Error; err != nil {
		return nil, translate(err, "Post not found")
	}

	return &post, nil
}

// FindPostWithComments populates the post's comment list, ordered by
// creation time.
func FindPostWithComments(id uint) (*models.Post, error) {
	var post models.Post

	err := db.DB.Preload("Comments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC")
	}).First(&post, id).Error

	if err != nil {
		return nil, translate(err, "Post not found")
	}

	return &post, nil
}

func ListPosts(filter PostFilter, opts ListOptions) ([]models.Post, error) {
	var posts []models.Post

	tx := applyListOptions(filter.apply(db.DB.Model(&models.Post{})), opts).Preload("Comments")

	if err := tx.Find(&posts).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve posts", err)
	}

	return posts, nil
}

// ListPostsWithComments loads the full (optionally area-scoped) post
// set with comments attached, for ranking. No query-level cap is
// applied; paging happens after ranking.
func ListPostsWithComments(filter PostFilter) ([]models.Post, error) {
	var posts []models.Post

	tx := filter.apply(db.DB.Model(&models.Post{})).Preload("Comments").Order("id ASC")

	if err := tx.Find(&posts).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve posts", err)
	}

	return posts, nil
}

func CountPosts(filter PostFilter) (int64, error) {
	var total int64

	if err := filter.apply(db.DB.Model(&models.Post{})).Count(&total).Error; err != nil {
		return 0, apperrors.NewInternal("Failed to count posts", err)
	}

	return total, nil
}

func UpdatePostByID(id uint, updates map[string]interface{}) (*models.Post, error) {
	post, err := FindPostByID(id)

	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.DB.Model(post).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternal("Failed to update post", err)
		}
	}

	return post, nil
}

func DeletePostByID(id uint) error {
	post, err := FindPostByID(id)

	if err != nil {
		return err
	}

	if err := db.DB.Delete(post).Error; err != nil {
		return apperrors.NewInternal("Failed to delete post", err)
	}

	return nil
}
