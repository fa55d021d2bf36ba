package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(t domain.Thread) AddedThread {
	return AddedThread{ID: t.ID, Title: t.Title, Owner: t.Owner}
}

type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(t *domain.ThreadDetail) ThreadDetail {
	comments := make([]CommentDetail, 0, len(t.Comments))
	for i := range t.Comments {
		comments = append(comments, NewCommentDetailFromDomain(&t.Comments[i]))
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.UTC().Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}
