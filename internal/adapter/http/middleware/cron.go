package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifedash/pkg/apierrors"
)

const CronSecretHeader = "X-Cron-Secret"

// CronSecretMiddleware admits requests that carry the shared cron secret.
// An empty secret closes the endpoint.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(CronSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgCronForbidden, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}
