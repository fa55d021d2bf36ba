package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Content   string    `gorm:"type:text;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null;default:false"`
	Date      time.Time `gorm:"type:datetime(3);not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

// CommentDetail is a comment joined with its owner's username.
type CommentDetail struct {
	ID        string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

func (m *CommentDetail) ToDomain() (domain.CommentDetail, error) {
	return domain.NewCommentDetail(m.ID, m.Username, m.Date, m.Content, m.IsDeleted)
}
