package request

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Payload reads the JSON body as loose key/value pairs. A body that is not a
// JSON object yields an empty payload, which the use cases reject as missing
// properties.
func Payload(c *gin.Context) domain.Payload {
	var p domain.Payload
	if err := c.ShouldBindJSON(&p); err != nil || p == nil {
		return domain.Payload{}
	}
	return p
}

type ThreadURI struct {
	ThreadID string `uri:"threadId" binding:"required"`
}

type CommentURI struct {
	ThreadID  string `uri:"threadId" binding:"required"`
	CommentID string `uri:"commentId" binding:"required"`
}

type ReplyURI struct {
	ThreadID  string `uri:"threadId" binding:"required"`
	CommentID string `uri:"commentId" binding:"required"`
	ReplyID   string `uri:"replyId" binding:"required"`
}
