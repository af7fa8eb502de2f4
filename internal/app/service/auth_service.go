package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
	"lifedash/pkg/telemetry"
)

const (
	defaultSessionTTL      = 7 * 24 * time.Hour
	defaultVerificationTTL = 24 * time.Hour
	passwordHashCost       = 10
)

type AuthConfig struct {
	SessionTTL      time.Duration
	VerificationTTL time.Duration
	// BaseURL is where the web client serves the /verify page.
	BaseURL string
}

type AuthService struct {
	users    ports.UserRepository
	tokens   ports.VerificationTokenRepository
	sessions ports.SessionStore
	limiter  ports.RateLimiter
	mailer   ports.Mailer
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.VerificationTokenRepository,
	sessions ports.SessionStore,
	limiter ports.RateLimiter,
	mailer ports.Mailer,
	cfg AuthConfig,
) *AuthService {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.VerificationTTL <= 0 {
		cfg.VerificationTTL = defaultVerificationTTL
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		limiter:  limiter,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for token expiry and session timestamps.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	email = normalizeEmail(email)

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.CreateUserInput{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.User{}, err
	}

	if err := s.issueVerification(ctx, user); err != nil {
		// The account exists; the user can ask for another link.
		zap.L().Error("failed to send verification email", zap.Uint64("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	email = normalizeEmail(email)

	allowed, err := s.limiter.Allow(ctx, "login:"+email)
	if err != nil {
		zap.L().Warn("login rate limiter unavailable", zap.Error(err))
	} else if !allowed {
		telemetry.LoginThrottled.Inc()
		return domain.User{}, domain.Session{}, domain.ErrTooManyAttempts
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, domain.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.Session{}, domain.ErrInvalidCredentials
	}
	if !user.Verified() {
		return domain.User{}, domain.Session{}, domain.ErrEmailNotVerified
	}

	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		return domain.User{}, domain.Session{}, err
	}

	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Verify consumes a verification token and marks its owner verified.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	record, err := s.tokens.GetToken(ctx, token)
	if err != nil {
		return err
	}

	now := s.now()
	if record.ExpiresAt.Before(now) {
		if err := s.tokens.DeleteToken(ctx, record.ID); err != nil {
			zap.L().Warn("failed to delete expired verification token", zap.Uint64("token_id", record.ID), zap.Error(err))
		}
		return domain.ErrTokenExpired
	}

	if err := s.users.MarkEmailVerified(ctx, record.UserID, now.UTC()); err != nil {
		return err
	}
	return s.tokens.DeleteToken(ctx, record.ID)
}

// ResendVerification sends a fresh link. Unknown and already verified
// addresses succeed silently so callers cannot tell which accounts exist.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if user.Verified() {
		return nil
	}

	if err := s.tokens.DeleteUserTokens(ctx, user.ID); err != nil {
		return err
	}
	if err := s.issueVerification(ctx, user); err != nil {
		zap.L().Error("failed to resend verification email", zap.Uint64("user_id", user.ID), zap.Error(err))
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, token)
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (domain.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *AuthService) issueVerification(ctx context.Context, user domain.User) error {
	token := domain.VerificationToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: s.now().Add(s.cfg.VerificationTTL).UTC(),
	}
	if err := s.tokens.CreateToken(ctx, token); err != nil {
		return err
	}

	link := strings.TrimRight(s.cfg.BaseURL, "/") + "/verify?token=" + url.QueryEscape(token.Token)
	body := fmt.Sprintf(
		"Halo,\r\n\r\nSilakan verifikasi email kamu dengan membuka tautan berikut:\r\n%s\r\n\r\nTautan berlaku %d jam.\r\n",
		link,
		int(s.cfg.VerificationTTL.Hours()),
	)
	return s.mailer.Send(ctx, user.Email, "Verifikasi Email - lifedash", body)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)
