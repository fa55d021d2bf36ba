package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(r domain.Reply) AddedReply {
	return AddedReply{ID: r.ID, Content: r.Content, Owner: r.Owner}
}

type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewReplyDetailFromDomain(r *domain.ReplyDetail) ReplyDetail {
	return ReplyDetail{
		ID:       r.ID,
		Content:  r.Content.String(),
		Date:     r.Date.UTC().Format(DateTimeFormat),
		Username: r.Username,
	}
}
