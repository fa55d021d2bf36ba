package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var uri request.ThreadURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	cm, err := h.Service.AddComment(c.Request.Context(), request.Payload(c), userID, uri.ThreadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{"addedComment": response.NewAddedComment(cm)}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var uri request.CommentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	if err := h.Service.DeleteComment(c.Request.Context(), uri.CommentID, uri.ThreadID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
