package push

import (
	"context"

	"fieldwork-backend/internal/logger"
)

type logSender struct{}

// NewLogSender returns a Sender that only logs. Used when push delivery is
// disabled in configuration.
func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(ctx context.Context, deviceToken, title, body string) error {
	logger.Info("Push notification (log only)", "title", title, "body", body)
	return nil
}
