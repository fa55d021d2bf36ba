package model

type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	UserID    string `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uniq_likes_comment_user,priority:2"`
	CommentID string `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:uniq_likes_comment_user,priority:1"`
}

func (Like) TableName() string {
	return "likes"
}
