package domain

import "time"

type User struct {
	ID             uint64
	Email          string
	Name           *string
	PasswordHash   string
	EmailVerified  *time.Time
	TelegramChatID *string
	CreatedAt      time.Time
}

func (u User) Verified() bool {
	return u.EmailVerified != nil
}

type VerificationToken struct {
	ID        uint64
	UserID    uint64
	Token     string
	ExpiresAt time.Time
}

type CreateUserInput struct {
	Email        string
	Name         string
	PasswordHash string
}

// Session is the server-side state behind a session cookie.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint64    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
