package push

import (
	"context"

	"github.com/consultbase/leadsvc/pkg/slogx"
)

// LogSender logs pushes instead of delivering them. Used in development and
// tests when no FCM credentials are configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	slogx.FromContext(ctx).Info("push (log only)",
		"token_set", msg.Token != "",
		"title", msg.Title,
		"type", msg.Data["type"],
	)
	return nil
}
