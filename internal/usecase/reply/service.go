package reply

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
	userRepo    domain.UserRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(r domain.ReplyRepository, c domain.CommentRepository, t domain.ThreadRepository, u domain.UserRepository) *service {
	return &service{
		replyRepo:   r,
		commentRepo: c,
		threadRepo:  t,
		userRepo:    u,
	}
}

func (s *service) AddReply(ctx context.Context, p domain.Payload, threadID, commentID, ownerID string) (domain.Reply, error) {
	ar, err := domain.ParseAddReply(p)
	if err != nil {
		return domain.Reply{}, err
	}

	// same order as AddComment: who, then where
	if err := s.userRepo.VerifyUserByID(ctx, ownerID); err != nil {
		return domain.Reply{}, domain.CodeIfNotFound(err, domain.CodeAddReplyUserNotAllowed)
	}
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.Reply{}, domain.CodeIfNotFound(err, domain.CodeAddReplyThreadNotFound)
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return domain.Reply{}, domain.CodeIfNotFound(err, domain.CodeAddReplyCommentNotFound)
	}

	return s.replyRepo.AddReply(ctx, ar, commentID, ownerID)
}

func (s *service) DeleteReply(ctx context.Context, replyID, commentID, threadID, userID string) error {
	if err := s.userRepo.VerifyUserByID(ctx, userID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteReplyUserNotAuthenticated)
	}
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteReplyThreadNotFound)
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteReplyCommentNotFound)
	}

	r, err := s.replyRepo.FindReplyByID(ctx, replyID)
	if err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteReplyReplyNotFound)
	}
	if r.Owner != userID {
		logrus.Warnf("user %s tried to delete reply %s owned by %s", userID, replyID, r.Owner)
		return domain.NewError(domain.CodeDeleteReplyUserNotAllowed, domain.ErrForbidden)
	}

	if err := s.replyRepo.DeleteReplyByID(ctx, replyID); err != nil {
		return domain.CodeIfNotFound(err, domain.CodeDeleteReplyReplyNotFound)
	}
	return nil
}

// GetCommentDetail returns the replies of a comment, oldest first.
func (s *service) GetCommentDetail(ctx context.Context, commentID string) ([]domain.ReplyDetail, error) {
	replies, err := s.replyRepo.GetRepliesByCommentID(ctx, commentID)
	if err != nil {
		return nil, domain.NewError(domain.CodeGetCommentDetailRepliesNotFound, err)
	}
	if replies == nil {
		replies = []domain.ReplyDetail{}
	}
	return replies, nil
}
