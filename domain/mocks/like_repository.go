package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// LikeRepository is a mock type for the domain.LikeRepository type
type LikeRepository struct {
	mock.Mock
}

// LikeExists provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) LikeExists(ctx context.Context, commentID string, userID string) (bool, error) {
	ret := _m.Called(ctx, commentID, userID)

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

// AddLikeComment provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) AddLikeComment(ctx context.Context, commentID string, userID string) (string, error) {
	ret := _m.Called(ctx, commentID, userID)

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteLikeComment provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) DeleteLikeComment(ctx context.Context, commentID string, userID string) error {
	ret := _m.Called(ctx, commentID, userID)

	r0 := ret.Error(0)

	return r0
}

// GetLikesCountByCommentID provides a mock function with given fields: ctx, commentID
func (_m *LikeRepository) GetLikesCountByCommentID(ctx context.Context, commentID string) (int64, error) {
	ret := _m.Called(ctx, commentID)

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)

	return r0, r1
}
