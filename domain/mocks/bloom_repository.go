package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// BloomRepository is a mock type for the domain.BloomRepository type
type BloomRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, id
func (_m *BloomRepository) Add(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// Exists provides a mock function with given fields: ctx, id
func (_m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

// BulkAdd provides a mock function with given fields: ctx, ids
func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	ret := _m.Called(ctx, ids)

	r0 := ret.Error(0)

	return r0
}
