package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	Date      time.Time `gorm:"type:datetime(3);not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
}

func (Reply) TableName() string {
	return "replies"
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

type ReplyDetail struct {
	ID        string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

func (m *ReplyDetail) ToDomain() (domain.ReplyDetail, error) {
	return domain.NewReplyDetail(m.ID, m.Content, m.Date, m.Username, m.IsDeleted)
}
