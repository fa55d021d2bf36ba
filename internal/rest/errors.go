package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/exception"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

const serverFailureMessage = "terjadi kegagalan pada server kami"

// ResponseError represent the response error struct
type ResponseError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// respondError writes err as a fail envelope when the client caused it, and
// as a generic error envelope otherwise.
func respondError(c *gin.Context, err error) {
	err = exception.Translate(err)
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		c.JSON(code, ResponseError{Status: response.StatusError, Message: serverFailureMessage})
		return
	}
	c.JSON(code, ResponseError{Status: response.StatusFail, Message: err.Error()})
}

// getStatusCode will get the code of the error from the use cases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var ce *exception.ClientError
	if errors.As(err, &ce) {
		switch ce.Kind {
		case exception.KindInvariant:
			return http.StatusBadRequest
		case exception.KindAuthentication:
			return http.StatusUnauthorized
		case exception.KindAuthorization:
			return http.StatusForbidden
		case exception.KindNotFound:
			return http.StatusNotFound
		}
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

// currentUser returns the id the auth middleware stored, or writes a 401.
func currentUser(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	uid, ok := userID.(string)
	if !exists || !ok || uid == "" {
		respondError(c, domain.ErrUnauthorized)
		return "", false
	}
	return uid, true
}
