package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// ReplyRepository is a mock type for the domain.ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

// AddReply provides a mock function with given fields: ctx, ar, commentID, ownerID
func (_m *ReplyRepository) AddReply(ctx context.Context, ar domain.AddReply, commentID string, ownerID string) (domain.Reply, error) {
	ret := _m.Called(ctx, ar, commentID, ownerID)

	r0 := ret.Get(0).(domain.Reply)
	r1 := ret.Error(1)

	return r0, r1
}

// VerifyReplyAvailability provides a mock function with given fields: ctx, id
func (_m *ReplyRepository) VerifyReplyAvailability(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// FindReplyByID provides a mock function with given fields: ctx, id
func (_m *ReplyRepository) FindReplyByID(ctx context.Context, id string) (domain.Reply, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Get(0).(domain.Reply)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteReplyByID provides a mock function with given fields: ctx, id
func (_m *ReplyRepository) DeleteReplyByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// GetRepliesByCommentID provides a mock function with given fields: ctx, commentID
func (_m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	ret := _m.Called(ctx, commentID)

	var r0 []domain.ReplyDetail
	if rf, ok := ret.Get(0).([]domain.ReplyDetail); ok {
		r0 = rf
	}
	r1 := ret.Error(1)

	return r0, r1
}
