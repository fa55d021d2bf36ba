package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ReplyUsecase is a mock type for the domain.ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

// AddReply provides a mock function with given fields: ctx, p, threadID, commentID, ownerID
func (_m *ReplyUsecase) AddReply(ctx context.Context, p domain.Payload, threadID string, commentID string, ownerID string) (domain.Reply, error) {
	ret := _m.Called(ctx, p, threadID, commentID, ownerID)

	r0 := ret.Get(0).(domain.Reply)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteReply provides a mock function with given fields: ctx, replyID, commentID, threadID, userID
func (_m *ReplyUsecase) DeleteReply(ctx context.Context, replyID string, commentID string, threadID string, userID string) error {
	ret := _m.Called(ctx, replyID, commentID, threadID, userID)

	r0 := ret.Error(0)

	return r0
}

// GetCommentDetail provides a mock function with given fields: ctx, commentID
func (_m *ReplyUsecase) GetCommentDetail(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	ret := _m.Called(ctx, commentID)

	var r0 []domain.ReplyDetail
	if rf, ok := ret.Get(0).([]domain.ReplyDetail); ok {
		r0 = rf
	}
	r1 := ret.Error(1)

	return r0, r1
}
