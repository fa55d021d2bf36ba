package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// detailFanOut bounds the per-comment lookups running at once.
const detailFanOut = 8

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
	userRepo    domain.UserRepository
	replies     domain.ReplyUsecase
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, l domain.LikeRepository, u domain.UserRepository, r domain.ReplyUsecase) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		likeRepo:    l,
		userRepo:    u,
		replies:     r,
	}
}

func (s *Service) AddNewThread(ctx context.Context, p domain.Payload, ownerID string) (domain.Thread, error) {
	nt, err := domain.ParseNewThread(p)
	if err != nil {
		return domain.Thread{}, err
	}

	if err := s.userRepo.VerifyUserByID(ctx, ownerID); err != nil {
		return domain.Thread{}, domain.CodeIfNotFound(err, domain.CodeAddNewThreadUserNotAllowed)
	}

	return s.threadRepo.AddNewThread(ctx, nt, ownerID)
}

// GetThreadDetail always returns a renderable thread once the thread itself
// is found: comments, replies and like counts that fail to load come back
// empty instead of failing the request.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	td, err := s.threadRepo.GetThreadDetailByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, domain.CodeIfNotFound(err, domain.CodeGetThreadDetailThreadNotFound)
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		logrus.Warnf("failed to get comments of thread %s: %v", threadID, err)
		comments = nil
	}
	if comments == nil {
		comments = []domain.CommentDetail{}
	}

	s.fillCommentDetails(ctx, comments)
	td.Comments = comments
	return td, nil
}

/*
* Replies and like counts are independent per comment, so they are fetched
* with an errgroup. Each goroutine owns exactly one element of the slice,
* which keeps the original comment order without a merge step.
 */
func (s *Service) fillCommentDetails(ctx context.Context, comments []domain.CommentDetail) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailFanOut)

	for i := range comments {
		c := &comments[i]
		g.Go(func() error {
			replies, err := s.replies.GetCommentDetail(ctx, c.ID)
			if err != nil {
				logrus.Warnf("failed to get replies of comment %s: %v", c.ID, err)
				replies = []domain.ReplyDetail{}
			}
			c.Replies = replies

			count, err := s.likeRepo.GetLikesCountByCommentID(ctx, c.ID)
			if err != nil {
				logrus.Warnf("failed to count likes of comment %s: %v", c.ID, err)
				return nil
			}
			c.LikeCount = count
			return nil
		})
	}

	_ = g.Wait()
}
