package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

// SessionCookie carries the session token.
const SessionCookie = "fp_token"

const (
	userIDKey       = "user_id"
	sessionTokenKey = "session_token"
)

// AuthMiddleware rejects requests without a live session and stores the
// session owner for GetUserID.
func AuthMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(userIDKey, session.UserID)
		c.Set(sessionTokenKey, session.Token)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
	)
}

func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}

// SetUserID is used by tests to stand in for AuthMiddleware.
func SetUserID(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}
