package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository type
type CommentRepository struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, ac, threadID, ownerID
func (_m *CommentRepository) AddComment(ctx context.Context, ac domain.AddComment, threadID string, ownerID string) (domain.Comment, error) {
	ret := _m.Called(ctx, ac, threadID, ownerID)

	r0 := ret.Get(0).(domain.Comment)
	r1 := ret.Error(1)

	return r0, r1
}

// VerifyCommentAvailability provides a mock function with given fields: ctx, id
func (_m *CommentRepository) VerifyCommentAvailability(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// FindCommentByID provides a mock function with given fields: ctx, id
func (_m *CommentRepository) FindCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Get(0).(domain.Comment)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteCommentByID provides a mock function with given fields: ctx, id
func (_m *CommentRepository) DeleteCommentByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// GetCommentsByThreadID provides a mock function with given fields: ctx, threadID
func (_m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentDetail, error) {
	ret := _m.Called(ctx, threadID)

	var r0 []domain.CommentDetail
	if rf, ok := ret.Get(0).([]domain.CommentDetail); ok {
		r0 = rf
	}
	r1 := ret.Error(1)

	return r0, r1
}
