package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/mapper"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/apierrors"
)

type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidAuthPayload)
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(c, http.StatusConflict, apierrors.MsgEmailTaken)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailRegister)
		return
	}

	respondMessage(c, http.StatusCreated, apierrors.MsgRegistered)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidAuthPayload)
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, apierrors.MsgInvalidCredentials)
		case errors.Is(err, domain.ErrEmailNotVerified):
			respondError(c, http.StatusForbidden, apierrors.MsgEmailNotVerified)
		case errors.Is(err, domain.ErrTooManyAttempts):
			respondError(c, http.StatusTooManyRequests, apierrors.MsgTooManyAttempts)
		default:
			zap.L().Error("failed to log in", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailLogin)
		}
		return
	}

	h.setSessionCookie(c, session.Token, int(h.cookie.TTL.Seconds()))
	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(middleware.SessionCookie)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		zap.L().Error("failed to log out", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailLogout)
		return
	}

	h.setSessionCookie(c, "", -1)
	respondMessage(c, http.StatusOK, apierrors.MsgLoggedOut)
}

func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondError(c, http.StatusBadRequest, apierrors.MsgTokenInvalid)
		return
	}

	if err := h.authService.Verify(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid):
			respondError(c, http.StatusBadRequest, apierrors.MsgTokenInvalid)
		case errors.Is(err, domain.ErrTokenExpired):
			respondError(c, http.StatusGone, apierrors.MsgTokenExpired)
		default:
			zap.L().Error("failed to verify email", zap.Error(err))
			respondError(c, http.StatusInternalServerError, apierrors.MsgFailVerify)
		}
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgEmailVerified)
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidAuthPayload)
		return
	}

	if err := h.authService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		zap.L().Error("failed to resend verification", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailResend)
		return
	}

	respondMessage(c, http.StatusOK, apierrors.MsgVerificationResent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, apierrors.MsgUserNotFound)
			return
		}

		zap.L().Error("failed to get current user", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailGetUser)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.cookie.Secure, true)
}
