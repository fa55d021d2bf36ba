package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	userRepo    domain.UserRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(l domain.LikeRepository, c domain.CommentRepository, t domain.ThreadRepository, u domain.UserRepository) *service {
	return &service{
		likeRepo:    l,
		commentRepo: c,
		threadRepo:  t,
		userRepo:    u,
	}
}

// LikeComment removes the user's like if there is one, otherwise adds it.
func (s *service) LikeComment(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeLikeCommentThreadNotFound)
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeLikeCommentCommentNotFound)
	}
	if err := s.userRepo.VerifyUserByID(ctx, userID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeLikeCommentUserNotAuthenticated)
	}

	exists, err := s.likeRepo.LikeExists(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if exists {
		return s.likeRepo.DeleteLikeComment(ctx, commentID, userID)
	}

	_, err = s.likeRepo.AddLikeComment(ctx, commentID, userID)
	if errors.Is(err, domain.ErrConflict) {
		// a concurrent request from the same user got there first
		logrus.Infof("like on comment %s by %s already recorded", commentID, userID)
		return nil
	}
	return err
}
