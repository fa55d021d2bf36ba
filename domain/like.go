package domain

import "context"

// Like is a user's endorsement of a comment. A pair has at most one like.
type Like struct {
	CommentID string
	UserID    string
}

// LikeRepository represent the like's repository contract
type LikeRepository interface {
	// LikeExists reports whether userID already liked commentID.
	LikeExists(ctx context.Context, commentID, userID string) (bool, error)

	// AddLikeComment returns ErrConflict if the like already exists.
	AddLikeComment(ctx context.Context, commentID, userID string) (string, error)

	DeleteLikeComment(ctx context.Context, commentID, userID string) error

	GetLikesCountByCommentID(ctx context.Context, commentID string) (int64, error)
}

// LikeUsecase represent the like's usecases
type LikeUsecase interface {
	// LikeComment toggles userID's like on the comment.
	LikeComment(ctx context.Context, threadID, commentID, userID string) error
}
