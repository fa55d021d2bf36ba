package domain

import (
	"context"
	"time"
)

// AddComment is the payload for commenting on a thread.
type AddComment struct {
	Content string
}

func ParseAddComment(p Payload) (AddComment, error) {
	fields, err := p.stringFields("ADD_COMMENT", "content")
	if err != nil {
		return AddComment{}, err
	}
	return AddComment{Content: fields["content"]}, nil
}

// Comment is a stored comment with its owner, used for creation results and
// ownership checks.
type Comment struct {
	ID      string `validate:"required"`
	Content string `validate:"required"`
	Owner   string `validate:"required"`
}

func (c Comment) Validate() error {
	return validateRow("COMMENT", c)
}

// CommentDetail is a comment as rendered inside a thread.
type CommentDetail struct {
	ID        string    `validate:"required"`
	Username  string    `validate:"required"`
	Date      time.Time `validate:"required"`
	Content   Content
	LikeCount int64
	Replies   []ReplyDetail
}

// NewCommentDetail builds a detail from a stored row, redacting content of
// deleted comments.
func NewCommentDetail(id, username string, date time.Time, content string, isDeleted bool) (CommentDetail, error) {
	row := struct {
		ID       string    `validate:"required"`
		Username string    `validate:"required"`
		Date     time.Time `validate:"required"`
		Content  string    `validate:"required"`
	}{id, username, date, content}
	if err := validateRow("COMMENT_DETAIL", row); err != nil {
		return CommentDetail{}, err
	}

	return CommentDetail{
		ID:       id,
		Username: username,
		Date:     date,
		Content:  NewCommentContent(content, isDeleted),
		Replies:  []ReplyDetail{},
	}, nil
}

// CommentRepository represent the comment's repository contract
type CommentRepository interface {
	AddComment(ctx context.Context, ac AddComment, threadID, ownerID string) (Comment, error)

	// VerifyCommentAvailability returns ErrNotFound if the comment doesn't
	// exist or was deleted.
	VerifyCommentAvailability(ctx context.Context, id string) error

	// FindCommentByID returns ErrNotFound if the comment doesn't exist or was deleted.
	FindCommentByID(ctx context.Context, id string) (Comment, error)

	// DeleteCommentByID marks the comment deleted.
	// Returns ErrNotFound if no row matched.
	DeleteCommentByID(ctx context.Context, id string) error

	// GetCommentsByThreadID returns comments oldest first, deleted ones
	// included and redacted. Empty when the thread has none.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentDetail, error)
}

// CommentUsecase represent the comment's usecases
type CommentUsecase interface {
	AddComment(ctx context.Context, p Payload, ownerID, threadID string) (Comment, error)
	DeleteComment(ctx context.Context, commentID, threadID, userID string) error
}
