package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type likeRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB, newID IDGenerator) *likeRepository {
	return &likeRepository{
		DB:    db,
		newID: newID,
	}
}

func (l *likeRepository) LikeExists(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

func (l *likeRepository) AddLikeComment(ctx context.Context, commentID, userID string) (string, error) {
	row := model.Like{
		ID:        "like-" + l.newID(),
		UserID:    userID,
		CommentID: commentID,
	}
	if err := l.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return "", translateError(err)
	}
	return row.ID, nil
}

// DeleteLikeComment is a hard delete; likes carry no history.
func (l *likeRepository) DeleteLikeComment(ctx context.Context, commentID, userID string) error {
	return l.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Like{}).Error
}

func (l *likeRepository) GetLikesCountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
