package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// PutLike toggles the caller's like on a comment.
func (h *LikeHandler) PutLike(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var uri request.CommentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	if err := h.Service.LikeComment(c.Request.Context(), uri.ThreadID, uri.CommentID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
