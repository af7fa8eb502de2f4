package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrTokenInvalid        = errors.New("verification token invalid")
	ErrTokenExpired        = errors.New("verification token expired")
	ErrSessionNotFound     = errors.New("session not found")
	ErrTooManyAttempts     = errors.New("too many attempts")
	ErrTelegramNotLinked   = errors.New("telegram chat not linked")
	ErrInvalidClock        = errors.New("invalid clock time")
	ErrBudgetExists        = errors.New("budget already exists")
	ErrInvalidMonth        = errors.New("invalid month")
)
