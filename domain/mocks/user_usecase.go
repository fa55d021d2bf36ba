package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// UserUsecase is a mock type for the domain.UserUsecase type
type UserUsecase struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, p
func (_m *UserUsecase) Register(ctx context.Context, p domain.Payload) (domain.User, error) {
	ret := _m.Called(ctx, p)

	r0 := ret.Get(0).(domain.User)
	r1 := ret.Error(1)

	return r0, r1
}

// Login provides a mock function with given fields: ctx, p
func (_m *UserUsecase) Login(ctx context.Context, p domain.Payload) (string, error) {
	ret := _m.Called(ctx, p)

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}
