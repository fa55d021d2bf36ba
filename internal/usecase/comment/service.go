package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	userRepo    domain.UserRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(c domain.CommentRepository, t domain.ThreadRepository, u domain.UserRepository) *service {
	return &service{
		commentRepo: c,
		threadRepo:  t,
		userRepo:    u,
	}
}

// AddComment checks the user before the thread, so an unknown caller learns
// nothing about which threads exist.
func (s *service) AddComment(ctx context.Context, p domain.Payload, ownerID, threadID string) (domain.Comment, error) {
	ac, err := domain.ParseAddComment(p)
	if err != nil {
		return domain.Comment{}, err
	}

	if err := s.userRepo.VerifyUserByID(ctx, ownerID); err != nil {
		return domain.Comment{}, domain.CodeIfNotFound(err, domain.CodeAddCommentUserNotAllowed)
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.Comment{}, domain.CodeIfNotFound(err, domain.CodeAddCommentThreadNotFound)
	}

	return s.commentRepo.AddComment(ctx, ac, threadID, ownerID)
}

func (s *service) DeleteComment(ctx context.Context, commentID, threadID, userID string) error {
	if err := s.userRepo.VerifyUserByID(ctx, userID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteCommentUserNotAuthenticated)
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteCommentThreadNotFound)
	}

	c, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteCommentCommentNotFound)
	}

	if c.Owner != userID {
		logrus.Warnf("user %s tried to delete comment %s owned by %s", userID, commentID, c.Owner)
		return domain.NewError(domain.CodeDeleteCommentUserNotAllowed, domain.ErrForbidden)
	}

	if err := s.commentRepo.DeleteCommentByID(ctx, commentID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteCommentCommentNotFound)
	}
	return nil
}
