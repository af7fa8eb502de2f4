package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"lifedash/internal/core/domain"
	"lifedash/internal/core/ports"
)

type TelegramService struct {
	userRepository ports.UserRepository
	sender         ports.TelegramSender
}

func NewTelegramService(userRepository ports.UserRepository, sender ports.TelegramSender) *TelegramService {
	return &TelegramService{userRepository: userRepository, sender: sender}
}

func (s *TelegramService) SaveChatID(ctx context.Context, userID uint64, chatID string) error {
	chatID = strings.TrimSpace(chatID)
	return s.userRepository.SetTelegramChatID(ctx, userID, &chatID)
}

func (s *TelegramService) Status(ctx context.Context, userID uint64) (ports.TelegramStatus, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return ports.TelegramStatus{}, err
	}
	if user.TelegramChatID == nil || *user.TelegramChatID == "" {
		return ports.TelegramStatus{}, nil
	}
	return ports.TelegramStatus{Linked: true, ChatID: *user.TelegramChatID}, nil
}

func (s *TelegramService) Disconnect(ctx context.Context, userID uint64) error {
	return s.userRepository.SetTelegramChatID(ctx, userID, nil)
}

func (s *TelegramService) SendTest(ctx context.Context, userID uint64) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TelegramChatID == nil || *user.TelegramChatID == "" {
		return domain.ErrTelegramNotLinked
	}

	name := "teman"
	if user.Name != nil && *user.Name != "" {
		name = *user.Name
	}

	text := fmt.Sprintf("🔔 <b>Test Notifikasi</b>\n\nHalo %s, ini pesan percobaan dari lifedash.", html.EscapeString(name))
	return s.sender.SendMessage(ctx, *user.TelegramChatID, text)
}

var _ ports.TelegramService = (*TelegramService)(nil)
