// internal/services/notification_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medlavka/storefront/internal/config"
)

// NotificationService pushes informational messages to the configured admin
// chats through the Telegram Bot API. Delivery is best effort: failures are
// logged and never propagate into the mutation that triggered them.
type NotificationService struct {
	cfg    *config.Config
	client *http.Client
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *NotificationService) NotifyAdmins(ctx context.Context, title, body string) {
	if s.cfg.Telegram.BotToken == "" || len(s.cfg.Telegram.AdminChatIDs) == 0 {
		return
	}

	text := title
	if body != "" {
		text = title + "\n\n" + body
	}

	for _, chatID := range s.cfg.Telegram.AdminChatIDs {
		if err := s.sendMessage(ctx, chatID, text); err != nil {
			logrus.WithError(err).WithField("chat_id", chatID).
				Warn("Failed to deliver admin notification")
		}
	}
}

func (s *NotificationService) sendMessage(ctx context.Context, chatID, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.cfg.Telegram.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
	}
	return nil
}
