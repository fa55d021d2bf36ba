package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ThreadCache is a mock type for the domain.ThreadCache type
type ThreadCache struct {
	mock.Mock
}

// GetThreadDetail provides a mock function with given fields: ctx, id
func (_m *ThreadCache) GetThreadDetail(ctx context.Context, id string) (domain.ThreadDetail, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Get(0).(domain.ThreadDetail)
	r1 := ret.Error(1)

	return r0, r1
}

// SetThreadDetail provides a mock function with given fields: ctx, td
func (_m *ThreadCache) SetThreadDetail(ctx context.Context, td *domain.ThreadDetail) error {
	ret := _m.Called(ctx, td)

	r0 := ret.Error(0)

	return r0
}
