package model

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Password string `gorm:"type:text;not null"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
		Fullname: m.Fullname,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Fullname: u.Fullname,
	}
}

// All lists every table, in creation order, for AutoMigrate.
func All() []any {
	return []any{&User{}, &Thread{}, &Comment{}, &Reply{}, &Like{}}
}
