package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/devconnect/internal/utils"
)

const (
	// TokenHeader is the header the web client sends its token in.
	TokenHeader = "x-auth-token"

	userIDKey = "user_id"
)

// TokenVerifier resolves a raw bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type apiError struct {
	Msg string `json:"msg"`
}

// JWTAuth accepts the token from x-auth-token or an Authorization bearer header.
func JWTAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)

		userID, err := v.VerifyToken(raw)
		if err != nil {
			msg := "Token is not valid"
			var ae *utils.AppError
			if errors.As(err, &ae) && ae.Message != "" {
				msg = ae.Message
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{Msg: msg})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if tok := strings.TrimSpace(c.GetHeader(TokenHeader)); tok != "" {
		return tok
	}
	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// UserID returns the authenticated user id, or "" on public routes.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
