package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ThreadUsecase is a mock type for the domain.ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

// AddNewThread provides a mock function with given fields: ctx, p, ownerID
func (_m *ThreadUsecase) AddNewThread(ctx context.Context, p domain.Payload, ownerID string) (domain.Thread, error) {
	ret := _m.Called(ctx, p, ownerID)

	r0 := ret.Get(0).(domain.Thread)
	r1 := ret.Error(1)

	return r0, r1
}

// GetThreadDetail provides a mock function with given fields: ctx, threadID
func (_m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, threadID)

	r0 := ret.Get(0).(domain.ThreadDetail)
	r1 := ret.Error(1)

	return r0, r1
}
