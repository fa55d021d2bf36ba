package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// CommentUsecase is a mock type for the domain.CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, p, ownerID, threadID
func (_m *CommentUsecase) AddComment(ctx context.Context, p domain.Payload, ownerID string, threadID string) (domain.Comment, error) {
	ret := _m.Called(ctx, p, ownerID, threadID)

	r0 := ret.Get(0).(domain.Comment)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteComment provides a mock function with given fields: ctx, commentID, threadID, userID
func (_m *CommentUsecase) DeleteComment(ctx context.Context, commentID string, threadID string, userID string) error {
	ret := _m.Called(ctx, commentID, threadID, userID)

	r0 := ret.Error(0)

	return r0
}
