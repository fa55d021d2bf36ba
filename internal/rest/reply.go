package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var uri request.CommentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	r, err := h.Service.AddReply(c.Request.Context(), request.Payload(c), uri.ThreadID, uri.CommentID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{"addedReply": response.NewAddedReply(r)}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var uri request.ReplyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), uri.ReplyID, uri.CommentID, uri.ThreadID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
