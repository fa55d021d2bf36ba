package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ThreadRepository is a mock type for the domain.ThreadRepository type
type ThreadRepository struct {
	mock.Mock
}

// AddNewThread provides a mock function with given fields: ctx, nt, ownerID
func (_m *ThreadRepository) AddNewThread(ctx context.Context, nt domain.NewThread, ownerID string) (domain.Thread, error) {
	ret := _m.Called(ctx, nt, ownerID)

	r0 := ret.Get(0).(domain.Thread)
	r1 := ret.Error(1)

	return r0, r1
}

// VerifyThreadAvailability provides a mock function with given fields: ctx, id
func (_m *ThreadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// GetThreadDetailByThreadID provides a mock function with given fields: ctx, id
func (_m *ThreadRepository) GetThreadDetailByThreadID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Get(0).(domain.ThreadDetail)
	r1 := ret.Error(1)

	return r0, r1
}

// FetchIDs provides a mock function with given fields: ctx
func (_m *ThreadRepository) FetchIDs(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	var r0 []string
	if rf, ok := ret.Get(0).([]string); ok {
		r0 = rf
	}
	r1 := ret.Error(1)

	return r0, r1
}
