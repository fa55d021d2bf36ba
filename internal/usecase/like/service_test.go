package like_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/like"
)

type fixture struct {
	likes    *mocks.LikeRepository
	comments *mocks.CommentRepository
	threads  *mocks.ThreadRepository
	users    *mocks.UserRepository
}

func newFixture() fixture {
	return fixture{
		likes:    new(mocks.LikeRepository),
		comments: new(mocks.CommentRepository),
		threads:  new(mocks.ThreadRepository),
		users:    new(mocks.UserRepository),
	}
}

func (f fixture) allowAll() {
	f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil)
	f.comments.On("VerifyCommentAvailability", mock.Anything, "comment-123").Return(nil)
	f.users.On("VerifyUserByID", mock.Anything, "user-123").Return(nil)
}

func (f fixture) service() domain.LikeUsecase {
	return like.NewService(f.likes, f.comments, f.threads, f.users)
}

func TestLikeCommentAddsWhenAbsent(t *testing.T) {
	f := newFixture()
	f.allowAll()
	f.likes.On("LikeExists", mock.Anything, "comment-123", "user-123").Return(false, nil).Once()
	f.likes.On("AddLikeComment", mock.Anything, "comment-123", "user-123").Return("like-123", nil).Once()

	err := f.service().LikeComment(context.TODO(), "thread-123", "comment-123", "user-123")

	require.NoError(t, err)
	f.likes.AssertExpectations(t)
	f.likes.AssertNotCalled(t, "DeleteLikeComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeCommentRemovesWhenPresent(t *testing.T) {
	f := newFixture()
	f.allowAll()
	f.likes.On("LikeExists", mock.Anything, "comment-123", "user-123").Return(true, nil).Once()
	f.likes.On("DeleteLikeComment", mock.Anything, "comment-123", "user-123").Return(nil).Once()

	err := f.service().LikeComment(context.TODO(), "thread-123", "comment-123", "user-123")

	require.NoError(t, err)
	f.likes.AssertExpectations(t)
	f.likes.AssertNotCalled(t, "AddLikeComment", mock.Anything, mock.Anything, mock.Anything)
}

// inMemoryLikes backs the toggle with a set so two calls can be observed on the count.
type inMemoryLikes struct {
	set map[domain.Like]bool
}

func (m *inMemoryLikes) LikeExists(_ context.Context, commentID, userID string) (bool, error) {
	return m.set[domain.Like{CommentID: commentID, UserID: userID}], nil
}

func (m *inMemoryLikes) AddLikeComment(_ context.Context, commentID, userID string) (string, error) {
	k := domain.Like{CommentID: commentID, UserID: userID}
	if m.set[k] {
		return "", domain.ErrConflict
	}
	m.set[k] = true
	return "like-" + userID, nil
}

func (m *inMemoryLikes) DeleteLikeComment(_ context.Context, commentID, userID string) error {
	delete(m.set, domain.Like{CommentID: commentID, UserID: userID})
	return nil
}

func (m *inMemoryLikes) GetLikesCountByCommentID(_ context.Context, commentID string) (int64, error) {
	var n int64
	for k := range m.set {
		if k.CommentID == commentID {
			n++
		}
	}
	return n, nil
}

func TestLikeCommentToggleCount(t *testing.T) {
	f := newFixture()
	f.allowAll()
	likes := &inMemoryLikes{set: map[domain.Like]bool{{CommentID: "comment-123", UserID: "user-other"}: true}}
	svc := like.NewService(likes, f.comments, f.threads, f.users)
	ctx := context.TODO()

	before, _ := likes.GetLikesCountByCommentID(ctx, "comment-123")

	require.NoError(t, svc.LikeComment(ctx, "thread-123", "comment-123", "user-123"))
	after, _ := likes.GetLikesCountByCommentID(ctx, "comment-123")
	assert.Equal(t, before+1, after)

	require.NoError(t, svc.LikeComment(ctx, "thread-123", "comment-123", "user-123"))
	back, _ := likes.GetLikesCountByCommentID(ctx, "comment-123")
	assert.Equal(t, before, back)
}

func TestLikeCommentConcurrentInsertIsAbsorbed(t *testing.T) {
	f := newFixture()
	f.allowAll()
	f.likes.On("LikeExists", mock.Anything, "comment-123", "user-123").Return(false, nil).Once()
	f.likes.On("AddLikeComment", mock.Anything, "comment-123", "user-123").Return("", domain.ErrConflict).Once()

	err := f.service().LikeComment(context.TODO(), "thread-123", "comment-123", "user-123")

	assert.NoError(t, err)
}

func TestLikeCommentVerificationOrder(t *testing.T) {
	t.Run("thread first", func(t *testing.T) {
		f := newFixture()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-404").Return(domain.ErrNotFound).Once()

		err := f.service().LikeComment(context.TODO(), "thread-404", "comment-123", "user-123")

		assert.Equal(t, domain.CodeLikeCommentThreadNotFound, domain.ErrorCode(err))
		f.comments.AssertNotCalled(t, "VerifyCommentAvailability", mock.Anything, mock.Anything)
	})

	t.Run("then comment", func(t *testing.T) {
		f := newFixture()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		f.comments.On("VerifyCommentAvailability", mock.Anything, "comment-404").Return(domain.ErrNotFound).Once()

		err := f.service().LikeComment(context.TODO(), "thread-123", "comment-404", "user-123")

		assert.Equal(t, domain.CodeLikeCommentCommentNotFound, domain.ErrorCode(err))
		f.users.AssertNotCalled(t, "VerifyUserByID", mock.Anything, mock.Anything)
	})

	t.Run("then user", func(t *testing.T) {
		f := newFixture()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		f.comments.On("VerifyCommentAvailability", mock.Anything, "comment-123").Return(nil).Once()
		f.users.On("VerifyUserByID", mock.Anything, "user-404").Return(domain.ErrNotFound).Once()

		err := f.service().LikeComment(context.TODO(), "thread-123", "comment-123", "user-404")

		assert.Equal(t, domain.CodeLikeCommentUserNotAuthenticated, domain.ErrorCode(err))
		f.likes.AssertNotCalled(t, "LikeExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		f := newFixture()
		f.allowAll()
		boom := errors.New("db gone")
		f.likes.On("LikeExists", mock.Anything, "comment-123", "user-123").Return(false, boom).Once()

		err := f.service().LikeComment(context.TODO(), "thread-123", "comment-123", "user-123")

		assert.ErrorIs(t, err, boom)
	})
}
