package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const missingAuthentication = "Missing authentication"

// TokenParser resolves an access token to the user id it was issued for.
type TokenParser interface {
	UserID(token string) (string, error)
}

// AuthMiddleware requires a bearer token and stores its user id under
// "user_id".
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.UserID(token)
		if err != nil {
			logrus.Debugf("rejected access token: %v", err)
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"error":      "Unauthorized",
		"message":    missingAuthentication,
	})
}
