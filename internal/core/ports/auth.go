package ports

import (
	"context"
	"time"

	"lifedash/internal/core/domain"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID uint64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	MarkEmailVerified(ctx context.Context, userID uint64, at time.Time) error
	SetTelegramChatID(ctx context.Context, userID uint64, chatID *string) error
}

type VerificationTokenRepository interface {
	CreateToken(ctx context.Context, token domain.VerificationToken) error
	GetToken(ctx context.Context, token string) (domain.VerificationToken, error)
	DeleteToken(ctx context.Context, id uint64) error
	DeleteUserTokens(ctx context.Context, userID uint64) error
}

type SessionStore interface {
	Save(ctx context.Context, session domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, domain.Session, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	Authenticate(ctx context.Context, token string) (domain.Session, error)
	Me(ctx context.Context, userID uint64) (domain.User, error)
}
