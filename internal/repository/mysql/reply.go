package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, newID IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: newID,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, ar domain.AddReply, commentID, ownerID string) (domain.Reply, error) {
	row := model.Reply{
		ID:        "reply-" + r.newID(),
		Content:   ar.Content,
		Date:      time.Now().UTC(),
		Owner:     ownerID,
		CommentID: commentID,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Reply{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (r *replyRepository) VerifyReplyAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
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

func (r *replyRepository) FindReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	var row model.Reply
	err := r.DB.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).Take(&row).Error
	if err != nil {
		return domain.Reply{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, id string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
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

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	var rows []model.ReplyDetail
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.content, replies.date, users.username, replies.is_deleted").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyDetail, 0, len(rows))
	for i := range rows {
		detail, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, detail)
	}
	return res, nil
}
