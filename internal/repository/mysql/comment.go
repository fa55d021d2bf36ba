package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, newID IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: newID,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, ac domain.AddComment, threadID, ownerID string) (domain.Comment, error) {
	row := model.Comment{
		ID:       "comment-" + c.newID(),
		Content:  ac.Content,
		Date:     time.Now().UTC(),
		Owner:    ownerID,
		ThreadID: threadID,
	}
	if err := c.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Comment{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (c *commentRepository) VerifyCommentAvailability(ctx context.Context, id string) error {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) FindCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	var row model.Comment
	err := c.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).Take(&row).Error
	if err != nil {
		return domain.Comment{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (c *commentRepository) DeleteCommentByID(ctx context.Context, id string) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentDetail, error) {
	var rows []model.CommentDetail
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, users.username, comments.date, comments.content, comments.is_deleted").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentDetail, 0, len(rows))
	for i := range rows {
		detail, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, detail)
	}
	return res, nil
}
