package ports

import "context"

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type TelegramSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type TelegramStatus struct {
	Linked bool
	ChatID string
}

type TelegramService interface {
	SaveChatID(ctx context.Context, userID uint64, chatID string) error
	Status(ctx context.Context, userID uint64) (TelegramStatus, error)
	Disconnect(ctx context.Context, userID uint64) error
	SendTest(ctx context.Context, userID uint64) error
}
