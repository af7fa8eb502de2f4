package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/pkg/apierrors"
)

// Clock is the time source handlers evaluate scores and date ranges against.
type Clock func() time.Time

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

func respondMessage(c *gin.Context, status int, msgKey string) {
	c.JSON(status, dto.MessageResponse{Message: apierrors.GetTransErrorMsg(msgKey, middleware.GetLang(c))})
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// bindJSONWithRaw binds the body into req and also returns it as a raw field
// map, so partial updates can tell an absent field from an explicit null.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}
	return raw, nil
}
