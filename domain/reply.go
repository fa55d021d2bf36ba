package domain

import (
	"context"
	"time"
)

// AddReply is the payload for replying to a comment.
type AddReply struct {
	Content string
}

func ParseAddReply(p Payload) (AddReply, error) {
	fields, err := p.stringFields("ADD_REPLY", "content")
	if err != nil {
		return AddReply{}, err
	}
	return AddReply{Content: fields["content"]}, nil
}

type Reply struct {
	ID      string `validate:"required"`
	Content string `validate:"required"`
	Owner   string `validate:"required"`
}

func (r Reply) Validate() error {
	return validateRow("REPLY", r)
}

type ReplyDetail struct {
	ID       string
	Content  Content
	Date     time.Time
	Username string
}

// NewReplyDetail builds a detail from a stored row, redacting content of
// deleted replies.
func NewReplyDetail(id, content string, date time.Time, username string, isDeleted bool) (ReplyDetail, error) {
	row := struct {
		ID       string    `validate:"required"`
		Content  string    `validate:"required"`
		Date     time.Time `validate:"required"`
		Username string    `validate:"required"`
	}{id, content, date, username}
	if err := validateRow("REPLY_DETAIL", row); err != nil {
		return ReplyDetail{}, err
	}

	return ReplyDetail{
		ID:       id,
		Content:  NewReplyContent(content, isDeleted),
		Date:     date,
		Username: username,
	}, nil
}

// ReplyRepository represent the reply's repository contract
type ReplyRepository interface {
	AddReply(ctx context.Context, ar AddReply, commentID, ownerID string) (Reply, error)

	// VerifyReplyAvailability returns ErrNotFound if the reply doesn't exist
	// or was deleted.
	VerifyReplyAvailability(ctx context.Context, id string) error

	// FindReplyByID returns ErrNotFound if the reply doesn't exist or was deleted.
	FindReplyByID(ctx context.Context, id string) (Reply, error)

	// DeleteReplyByID marks the reply deleted.
	// Returns ErrNotFound if no row matched.
	DeleteReplyByID(ctx context.Context, id string) error

	// GetRepliesByCommentID returns replies oldest first, deleted ones
	// included and redacted.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyDetail, error)
}

// ReplyUsecase represent the reply's usecases
type ReplyUsecase interface {
	AddReply(ctx context.Context, p Payload, threadID, commentID, ownerID string) (Reply, error)
	DeleteReply(ctx context.Context, replyID, commentID, threadID, userID string) error

	// GetCommentDetail returns the replies of a comment.
	GetCommentDetail(ctx context.Context, commentID string) ([]ReplyDetail, error)
}
