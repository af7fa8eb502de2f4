package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UserItem struct {
	ID             uint64  `json:"id"`
	Email          string  `json:"email"`
	Name           *string `json:"name,omitempty"`
	EmailVerified  bool    `json:"email_verified"`
	TelegramLinked bool    `json:"telegram_linked"`
	CreatedAt      string  `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TelegramSaveRequest struct {
	ChatID string `json:"chat_id" binding:"required,max=64"`
}

type TelegramStatusResponse struct {
	Linked bool   `json:"linked"`
	ChatID string `json:"chat_id,omitempty"`
}
