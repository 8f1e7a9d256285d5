package interfaces

import "context"

// PushNotification is one delivery to one device token.
type PushNotification struct {
	DeviceToken string
	Title       string
	Body        string
	Data        map[string]string
}

// IPushSender abstracts the fire-and-forget notification sink. Send failures
// are per-token and never abort the triggering operation.
type IPushSender interface {
	Send(ctx context.Context, n PushNotification) error
}
