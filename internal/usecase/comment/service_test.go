package comment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
)

type fixture struct {
	comments *mocks.CommentRepository
	threads  *mocks.ThreadRepository
	users    *mocks.UserRepository
}

func newFixture() fixture {
	return fixture{
		comments: new(mocks.CommentRepository),
		threads:  new(mocks.ThreadRepository),
		users:    new(mocks.UserRepository),
	}
}

func (f fixture) assertExpectations(t *testing.T) {
	f.comments.AssertExpectations(t)
	f.threads.AssertExpectations(t)
	f.users.AssertExpectations(t)
}

func TestAddComment(t *testing.T) {
	content := faker.Sentence()
	payload := domain.Payload{"content": content}

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		want := domain.Comment{ID: "comment-123", Content: content, Owner: "user-123"}
		f.users.On("VerifyUserByID", mock.Anything, "user-123").Return(nil).Once()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		f.comments.On("AddComment", mock.Anything, domain.AddComment{Content: content}, "thread-123", "user-123").
			Return(want, nil).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		got, err := svc.AddComment(context.TODO(), payload, "user-123", "thread-123")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		f.assertExpectations(t)
	})

	t.Run("invalid payload stops before any lookup", func(t *testing.T) {
		f := newFixture()
		svc := comment.NewService(f.comments, f.threads, f.users)

		_, err := svc.AddComment(context.TODO(), domain.Payload{"content": 42.0}, "user-123", "thread-123")

		assert.Equal(t, "ADD_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION", domain.ErrorCode(err))
		f.assertExpectations(t)
	})

	t.Run("unknown user is checked before the thread", func(t *testing.T) {
		f := newFixture()
		f.users.On("VerifyUserByID", mock.Anything, "user-404").Return(domain.ErrNotFound).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		_, err := svc.AddComment(context.TODO(), payload, "user-404", "thread-404")

		assert.Equal(t, domain.CodeAddCommentUserNotAllowed, domain.ErrorCode(err))
		f.threads.AssertNotCalled(t, "VerifyThreadAvailability", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("missing thread", func(t *testing.T) {
		f := newFixture()
		f.users.On("VerifyUserByID", mock.Anything, "user-123").Return(nil).Once()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-404").Return(domain.ErrNotFound).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		_, err := svc.AddComment(context.TODO(), payload, "user-123", "thread-404")

		assert.Equal(t, domain.CodeAddCommentThreadNotFound, domain.ErrorCode(err))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.assertExpectations(t)
	})

	t.Run("storage failure is not a not-found", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("connection reset")
		f.users.On("VerifyUserByID", mock.Anything, "user-123").Return(boom).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		_, err := svc.AddComment(context.TODO(), payload, "user-123", "thread-123")

		assert.Same(t, boom, err)
		f.assertExpectations(t)
	})
}

func TestDeleteComment(t *testing.T) {
	owned := domain.Comment{ID: "comment-123", Content: "a comment", Owner: "user-A"}

	t.Run("owner deletes", func(t *testing.T) {
		f := newFixture()
		f.users.On("VerifyUserByID", mock.Anything, "user-A").Return(nil).Once()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		f.comments.On("FindCommentByID", mock.Anything, "comment-123").Return(owned, nil).Once()
		f.comments.On("DeleteCommentByID", mock.Anything, "comment-123").Return(nil).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		err := svc.DeleteComment(context.TODO(), "comment-123", "thread-123", "user-A")

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("someone else is refused", func(t *testing.T) {
		f := newFixture()
		f.users.On("VerifyUserByID", mock.Anything, "user-B").Return(nil).Once()
		f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		f.comments.On("FindCommentByID", mock.Anything, "comment-123").Return(owned, nil).Once()

		svc := comment.NewService(f.comments, f.threads, f.users)
		err := svc.DeleteComment(context.TODO(), "comment-123", "thread-123", "user-B")

		assert.Equal(t, domain.CodeDeleteCommentUserNotAllowed, domain.ErrorCode(err))
		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.comments.AssertNotCalled(t, "DeleteCommentByID", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	// Every earlier failure wins over every later one.
	tests := []struct {
		name     string
		userErr  error
		threadEr error
		findErr  error
		wantCode string
	}{
		{"unknown user", domain.ErrNotFound, domain.ErrNotFound, domain.ErrNotFound, domain.CodeDeleteCommentUserNotAuthenticated},
		{"missing thread", nil, domain.ErrNotFound, domain.ErrNotFound, domain.CodeDeleteCommentThreadNotFound},
		{"missing comment", nil, nil, domain.ErrNotFound, domain.CodeDeleteCommentCommentNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.users.On("VerifyUserByID", mock.Anything, "user-B").Return(tt.userErr).Maybe()
			f.threads.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(tt.threadEr).Maybe()
			f.comments.On("FindCommentByID", mock.Anything, "comment-123").Return(domain.Comment{}, tt.findErr).Maybe()

			svc := comment.NewService(f.comments, f.threads, f.users)
			err := svc.DeleteComment(context.TODO(), "comment-123", "thread-123", "user-B")

			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
			f.comments.AssertNotCalled(t, "DeleteCommentByID", mock.Anything, mock.Anything)
		})
	}
}
