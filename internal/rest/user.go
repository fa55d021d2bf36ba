package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	u, err := h.Service.Register(c.Request.Context(), request.Payload(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{"addedUser": response.NewAddedUser(u)}))
}

// Login issues an access token.
func (h *UserHandler) Login(c *gin.Context) {
	token, err := h.Service.Login(c.Request.Context(), request.Payload(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{"accessToken": token}))
}
