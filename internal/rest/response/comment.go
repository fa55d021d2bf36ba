package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(c domain.Comment) AddedComment {
	return AddedComment{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

// NewCommentDetailFromDomain renders deleted comments with their placeholder.
func NewCommentDetailFromDomain(c *domain.CommentDetail) CommentDetail {
	replies := make([]ReplyDetail, 0, len(c.Replies))
	for i := range c.Replies {
		replies = append(replies, NewReplyDetailFromDomain(&c.Replies[i]))
	}
	return CommentDetail{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.UTC().Format(DateTimeFormat),
		Content:   c.Content.String(),
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
