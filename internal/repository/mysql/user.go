package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

type userRepository struct {
	DB    *gorm.DB
	newID IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, newID IDGenerator) *userRepository {
	return &userRepository{
		DB:    db,
		newID: newID,
	}
}

func (m *userRepository) VerifyUserByID(ctx context.Context, id string) error {
	var count int64
	if err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	u.ID = "user-" + m.newID()
	userModel := model.NewUserFromDomain(u)

	if err := m.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		u.ID = ""
		return translateError(err)
	}
	return nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return domain.User{}, translateError(err)
	}

	return user.ToDomain(), nil
}
