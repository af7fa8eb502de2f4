package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/adapter/http/handlers"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/domain"
	"lifedash/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(serviceMock *authServiceMock) *gin.Engine {
	handler := handlers.NewAuthHandler(serviceMock, handlers.CookieConfig{TTL: time.Hour})

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.POST("/auth/register", handler.Register)
	group.POST("/auth/login", handler.Login)
	group.DELETE("/auth/login", handler.Logout)
	group.GET("/auth/verify", handler.Verify)
	group.POST("/auth/resend-verification", handler.ResendVerification)
	group.GET("/me", middleware.SetUserID(testUserID), handler.Me)
	return router
}

func requireMessage(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	require.Equal(t, code, rec.Code)

	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, message, got.Message)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		serviceMock := new(authServiceMock)
		serviceMock.On("Register", mock.Anything, "Rina", "rina@example.com", "s3cret-pass").
			Return(domain.User{ID: 1, Email: "rina@example.com"}, nil).Once()

		rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/register",
			`{"name":"Rina","email":"rina@example.com","password":"s3cret-pass"}`)

		requireMessage(t, rec, http.StatusCreated, "Registration successful, check your email to verify your account")
		serviceMock.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		serviceMock := new(authServiceMock)
		serviceMock.On("Register", mock.Anything, "", "rina@example.com", "s3cret-pass").
			Return(domain.User{}, domain.ErrEmailTaken).Once()

		rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/register",
			`{"email":"rina@example.com","password":"s3cret-pass"}`)

		requireAPIError(t, rec, http.StatusConflict, "Email is already registered")
		serviceMock.AssertExpectations(t)
	})

	t.Run("short password", func(t *testing.T) {
		serviceMock := new(authServiceMock)

		rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/register",
			`{"email":"rina@example.com","password":"short"}`)

		requireAPIError(t, rec, http.StatusBadRequest, "Invalid request payload")
		serviceMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	serviceMock := new(authServiceMock)
	verifiedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	serviceMock.On("Login", mock.Anything, "rina@example.com", "s3cret-pass").Return(
		domain.User{ID: 1, Email: "rina@example.com", EmailVerified: &verifiedAt, CreatedAt: verifiedAt},
		domain.Session{Token: "tok-123", UserID: 1, Email: "rina@example.com"},
		nil,
	).Once()

	rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/login",
		`{"email":"rina@example.com","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.True(t, got.EmailVerified)
	require.False(t, got.TelegramLinked)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.Equal(t, "tok-123", cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, 3600, cookie.MaxAge)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"not verified", domain.ErrEmailNotVerified, http.StatusForbidden, "Please verify your email before signing in"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts, try again later"},
		{"unexpected", errors.New("redis is down"), http.StatusInternalServerError, "Failed to sign in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			serviceMock := new(authServiceMock)
			serviceMock.On("Login", mock.Anything, "rina@example.com", "whatever").
				Return(domain.User{}, domain.Session{}, tc.err).Once()

			rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/login",
				`{"email":"rina@example.com","password":"whatever"}`)

			requireAPIError(t, rec, tc.code, tc.message)
			require.Nil(t, sessionCookie(rec))
			serviceMock.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Logout", mock.Anything, "tok-123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-123"})
	rec := httptest.NewRecorder()
	newAuthRouter(serviceMock).ServeHTTP(rec, req)

	requireMessage(t, rec, http.StatusOK, "Signed out")
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Verify(t *testing.T) {
	t.Run("verified", func(t *testing.T) {
		serviceMock := new(authServiceMock)
		serviceMock.On("Verify", mock.Anything, "abc").Return(nil).Once()

		rec := doRequest(newAuthRouter(serviceMock), http.MethodGet, "/api/auth/verify?token=abc", "")

		requireMessage(t, rec, http.StatusOK, "Email verified, you can sign in now")
		serviceMock.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {
		serviceMock := new(authServiceMock)

		rec := doRequest(newAuthRouter(serviceMock), http.MethodGet, "/api/auth/verify", "")

		requireAPIError(t, rec, http.StatusBadRequest, "Invalid verification token")
	})

	t.Run("expired", func(t *testing.T) {
		serviceMock := new(authServiceMock)
		serviceMock.On("Verify", mock.Anything, "old").Return(domain.ErrTokenExpired).Once()

		rec := doRequest(newAuthRouter(serviceMock), http.MethodGet, "/api/auth/verify?token=old", "")

		requireAPIError(t, rec, http.StatusGone, "Verification token has expired")
		serviceMock.AssertExpectations(t)
	})
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("ResendVerification", mock.Anything, "rina@example.com").Return(nil).Once()

	rec := doRequest(newAuthRouter(serviceMock), http.MethodPost, "/api/auth/resend-verification", `{"email":"rina@example.com"}`)

	requireMessage(t, rec, http.StatusOK, "If the email is registered and not verified, a new link has been sent")
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Me(t *testing.T) {
	serviceMock := new(authServiceMock)
	chatID := "123456"
	serviceMock.On("Me", mock.Anything, testUserID).
		Return(domain.User{ID: testUserID, Email: "rina@example.com", TelegramChatID: &chatID}, nil).Once()

	rec := doRequest(newAuthRouter(serviceMock), http.MethodGet, "/api/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, testUserID, got.ID)
	require.True(t, got.TelegramLinked)
	require.False(t, got.EmailVerified)
	serviceMock.AssertExpectations(t)
}
