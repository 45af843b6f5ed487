package repos

import (
	"github.com/serenity-space/serenity/db"
	"github.com/serenity-space/serenity/internal/apperrors"
	"github.com/serenity-space/serenity/internal/models"
)

func CreateComment(comment *models.Comment) error {
	if err := db.DB.Create(comment).Error; err != nil {
		return apperrors.NewInternal("Failed to create comment", err)
	}

	return nil
}

func FindCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment

	if err := db.DB.First(&comment, id).Error; err != nil {
		return nil, translate(err, "Comment not found")
	}

	return &comment, nil
}

func ListComments() ([]models.Comment, error) {
	var comments []models.Comment

	if err := db.DB.Find(&comments).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve comments", err)
	}

	return comments, nil
}

// ListCommentsByPost returns the post's comment list, oldest first.
func ListCommentsByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment

	if err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, apperrors.NewInternal("Failed to retrieve comments", err)
	}

	return comments, nil
}

func UpdateCommentByID(id uint, updates map[string]interface{}) (*models.Comment, error) {
	comment, err := FindCommentByID(id)

	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.DB.Model(comment).Updates(updates).Error; err != nil {
			return nil, apperrors.NewInternal("Failed to update comment", err)
		}
	}

	return comment, nil
}

// DeleteCommentByID removes the comment row; the parent post's comment
// list is the set of rows carrying its id, so the unlink is implicit in
// the delete.
func DeleteCommentByID(id uint) error {
	comment, err := FindCommentByID(id)

	if err != nil {
		return err
	}

	if err := db.DB.Delete(comment).Error; err != nil {
		return apperrors.NewInternal("Failed to delete comment", err)
	}

	return nil
}
