package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender delivers push notifications to employee devices.
type Sender interface {
	Send(ctx context.Context, deviceToken, title, body string) error
}

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender initializes a Firebase Cloud Messaging sender from a service
// account credentials file.
func NewFCMSender(ctx context.Context, credentialsFile string) (Sender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}
	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Send(ctx context.Context, deviceToken, title, body string) error {
	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}
