package mapper

import (
	"time"

	"lifedash/internal/adapter/http/dto"
	"lifedash/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:             user.ID,
		Email:          user.Email,
		Name:           copyString(user.Name),
		EmailVerified:  user.Verified(),
		TelegramLinked: user.TelegramChatID != nil && *user.TelegramChatID != "",
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
