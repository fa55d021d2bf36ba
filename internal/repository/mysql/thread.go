package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

// mysql层只负责数据库操作
var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, newID IDGenerator) *threadRepository {
	return &threadRepository{DB: db, newID: newID}
}

func (m *threadRepository) AddNewThread(ctx context.Context, nt domain.NewThread, ownerID string) (domain.Thread, error) {
	row := model.Thread{
		ID:    "thread-" + m.newID(),
		Title: nt.Title,
		Body:  nt.Body,
		Date:  time.Now().UTC(),
		Owner: ownerID,
	}
	if err := m.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Thread{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (m *threadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *threadRepository) GetThreadDetailByThreadID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	var row model.ThreadDetail
	err := m.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.ThreadDetail{}, translateError(err)
	}

	res := row.ToDomain()
	return res, res.Validate()
}

func (m *threadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := m.DB.WithContext(ctx).Model(&model.Thread{}).Pluck("id", &ids).Error
	return ids, err
}
