package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewAddedUser(u domain.User) AddedUser {
	return AddedUser{ID: u.ID, Username: u.Username, Fullname: u.Fullname}
}
