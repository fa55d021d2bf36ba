package rest

import "github.com/gin-gonic/gin"

type Handlers struct {
	User    *UserHandler
	Thread  *ThreadHandler
	Comment *CommentHandler
	Reply   *ReplyHandler
	Like    *LikeHandler
}

// Register mounts the forum routes. Routes that act on behalf of a user go
// behind auth.
func (h Handlers) Register(route gin.IRouter, auth gin.HandlerFunc) {
	route.POST("/users", h.User.Register)
	route.POST("/authentications", h.User.Login)
	route.GET("/threads/:threadId", h.Thread.GetThreadByID)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.PostThread)
		authorized.POST("/threads/:threadId/comments", h.Comment.PostComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.PostReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.PutLike)
	}
}
