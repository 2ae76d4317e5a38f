package push

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// Data key the mobile client uses to route a tapped notification to the
// right screen.
const ClickAction = "FLUTTER_NOTIFICATION_CLICK"

// Notification is one push message addressed to a single device token.
type Notification struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// FCMNotifier delivers notifications through Firebase Cloud Messaging.
type FCMNotifier struct {
	client *messaging.Client
}

func NewFCMNotifier(ctx context.Context, app *firebase.App) (*FCMNotifier, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMNotifier{client: client}, nil
}

func (f *FCMNotifier) Send(ctx context.Context, n Notification) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token: n.Token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	})
	return err
}
