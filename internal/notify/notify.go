// Package notify delivers rendered notification texts to messaging-platform
// recipients. Delivery is best-effort by contract: callers log failures and
// never retry or roll back.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier sends a text message to a chat.
type Notifier interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// LogNotifier writes messages to the log instead of a messaging platform.
// Used when no bot token is configured, e.g. in local development.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates new LogNotifier instance.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, chatID int64, text string) error {
	n.logger.Info("notification (dry run)",
		zap.Int64("chatId", chatID), zap.String("text", text))
	return nil
}
