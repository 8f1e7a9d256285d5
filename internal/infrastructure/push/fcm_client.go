package push

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var ErrMissingPushServerKey = errors.New("missing PUSH_SERVER_KEY")

// FCMClient delivers push notifications to single device tokens through the
// FCM HTTP endpoint. Delivery is best-effort; callers decide what to do with
// per-token failures.
type FCMClient struct {
	http      *resty.Client
	serverKey string
}

var _ interfaces.IPushSender = (*FCMClient)(nil)

func NewFCMClient(endpoint, serverKey string) (*FCMClient, error) {
	if serverKey == "" {
		return nil, ErrMissingPushServerKey
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(15 * time.Second)

	return &FCMClient{http: client, serverKey: serverKey}, nil
}

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

func (c *FCMClient) Send(ctx context.Context, n interfaces.PushNotification) error {
	var out fcmResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "key="+c.serverKey).
		SetBody(fcmMessage{
			To:           n.DeviceToken,
			Notification: fcmNotification{Title: n.Title, Body: n.Body},
			Data:         n.Data,
		}).
		SetResult(&out).
		Post("")
	if err != nil {
		return fmt.Errorf("push send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push send status %d", resp.StatusCode())
	}
	if out.Failure > 0 && out.Success == 0 {
		return errors.New("push rejected by provider")
	}
	return nil
}
