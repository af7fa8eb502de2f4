package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

const userColumns = `id, email, name, password_hash, email_verified, telegram_chat_id, created_at`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID             uint64         `db:"id"`
	Email          string         `db:"email"`
	Name           sql.NullString `db:"name"`
	PasswordHash   string         `db:"password_hash"`
	EmailVerified  sql.NullTime   `db:"email_verified"`
	TelegramChatID sql.NullString `db:"telegram_chat_id"`
	CreatedAt      time.Time      `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", userID)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	return domain.User{
		ID:             row.ID,
		Email:          row.Email,
		Name:           stringPtr(row.Name),
		PasswordHash:   row.PasswordHash,
		EmailVerified:  timePtr(row.EmailVerified),
		TelegramChatID: stringPtr(row.TelegramChatID),
		CreatedAt:      row.CreatedAt,
	}, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	var name *string
	if input.Name != "" {
		name = &input.Name
	}

	result, err := r.db.ExecContext(
		ctx,
		"INSERT INTO users (email, name, password_hash) VALUES (?, ?, ?)",
		input.Email,
		nullString(name),
		input.PasswordHash,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return r.GetUserByID(ctx, uint64(id))
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID uint64, at time.Time) error {
	result, err := r.db.ExecContext(ctx, "UPDATE users SET email_verified = ? WHERE id = ?", at.UTC(), userID)
	if err != nil {
		return fmt.Errorf("verify user %d: %w", userID, err)
	}
	return requireAffected(result, domain.ErrUserNotFound)
}

func (r *UserRepository) SetTelegramChatID(ctx context.Context, userID uint64, chatID *string) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE users SET telegram_chat_id = ? WHERE id = ?", nullString(chatID), userID); err != nil {
		return fmt.Errorf("set telegram chat for user %d: %w", userID, err)
	}
	return nil
}

type VerificationTokenRepository struct {
	db *sqlx.DB
}

type verificationTokenRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}

var _ ports.VerificationTokenRepository = (*VerificationTokenRepository)(nil)

func NewVerificationTokenRepository(db *sqlx.DB) *VerificationTokenRepository {
	return &VerificationTokenRepository{db: db}
}

func (r *VerificationTokenRepository) CreateToken(ctx context.Context, token domain.VerificationToken) error {
	if _, err := r.db.ExecContext(
		ctx,
		"INSERT INTO verification_tokens (user_id, token, expires_at) VALUES (?, ?, ?)",
		token.UserID,
		token.Token,
		token.ExpiresAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert verification token: %w", err)
	}
	return nil
}

func (r *VerificationTokenRepository) GetToken(ctx context.Context, token string) (domain.VerificationToken, error) {
	var row verificationTokenRow
	if err := r.db.GetContext(
		ctx,
		&row,
		"SELECT id, user_id, token, expires_at FROM verification_tokens WHERE token = ?",
		token,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VerificationToken{}, domain.ErrTokenInvalid
		}
		return domain.VerificationToken{}, fmt.Errorf("get verification token: %w", err)
	}

	return domain.VerificationToken{
		ID:        row.ID,
		UserID:    row.UserID,
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (r *VerificationTokenRepository) DeleteToken(ctx context.Context, id uint64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM verification_tokens WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete verification token %d: %w", id, err)
	}
	return nil
}

func (r *VerificationTokenRepository) DeleteUserTokens(ctx context.Context, userID uint64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM verification_tokens WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete verification tokens of user %d: %w", userID, err)
	}
	return nil
}
