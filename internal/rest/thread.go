package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ThreadHandler  represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread opens a thread owned by the caller.
func (h *ThreadHandler) PostThread(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	th, err := h.Service.AddNewThread(c.Request.Context(), request.Payload(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{"addedThread": response.NewAddedThread(th)}))
}

// GetThreadByID returns a thread with its comments, replies and like counts.
func (h *ThreadHandler) GetThreadByID(c *gin.Context) {
	var uri request.ThreadURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, domain.ErrBadParamInput)
		return
	}

	td, err := h.Service.GetThreadDetail(c.Request.Context(), uri.ThreadID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess(gin.H{"thread": response.NewThreadDetailFromDomain(&td)}))
}
