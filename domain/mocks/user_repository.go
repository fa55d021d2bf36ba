package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// UserRepository is a mock type for the domain.UserRepository type
type UserRepository struct {
	mock.Mock
}

// VerifyUserByID provides a mock function with given fields: ctx, id
func (_m *UserRepository) VerifyUserByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// Insert provides a mock function with given fields: ctx, u
func (_m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := _m.Called(ctx, u)

	r0 := ret.Error(0)

	return r0
}

// GetByUsername provides a mock function with given fields: ctx, username
func (_m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := _m.Called(ctx, username)

	r0 := ret.Get(0).(domain.User)
	r1 := ret.Error(1)

	return r0, r1
}
