package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// LikeUsecase is a mock type for the domain.LikeUsecase type
type LikeUsecase struct {
	mock.Mock
}

// LikeComment provides a mock function with given fields: ctx, threadID, commentID, userID
func (_m *LikeUsecase) LikeComment(ctx context.Context, threadID string, commentID string, userID string) error {
	ret := _m.Called(ctx, threadID, commentID, userID)

	r0 := ret.Error(0)

	return r0
}
