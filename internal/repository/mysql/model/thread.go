package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;type:varchar(50)"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Date  time.Time `gorm:"type:datetime(3);not null"`
	Owner string    `gorm:"type:varchar(50);not null;index"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.Owner,
	}
}

// ThreadDetail is a thread joined with its owner's username.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (m *ThreadDetail) ToDomain() domain.ThreadDetail {
	return domain.ThreadDetail{
		ID:       m.ID,
		Title:    m.Title,
		Body:     m.Body,
		Date:     m.Date,
		Username: m.Username,
	}
}
