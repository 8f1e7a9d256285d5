package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var (
	ErrEmptyDeviceToken = errors.New("device token is empty")
	ErrEmptyTitle       = errors.New("notification title is empty")
)

// pushSendTimeout bounds each delivery once the triggering request has
// already returned.
const pushSendTimeout = 10 * time.Second

// NotificationDispatch reports how many tokens a fan-out was queued for.
type NotificationDispatch struct {
	Installation string
	Recipients   int
}

type INotificationUseCase interface {
	UpdateDeviceToken(ctx context.Context, email, token string) error
	SendMessageNotification(ctx context.Context, principal entities.Principal, installationRole, title, body string, data map[string]string) (NotificationDispatch, error)
}

type NotificationUseCase struct {
	users  interfaces.IUserRepository
	sender interfaces.IPushSender
	log    *zap.SugaredLogger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(users interfaces.IUserRepository, sender interfaces.IPushSender, log *zap.SugaredLogger) *NotificationUseCase {
	return &NotificationUseCase{users: users, sender: sender, log: log}
}

func (u *NotificationUseCase) UpdateDeviceToken(ctx context.Context, email, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyDeviceToken
	}
	if err := u.users.UpdateDeviceToken(ctx, email, token); err != nil {
		u.log.Errorf("[fcm][usecase] token update failed email=%s err=%v", email, err)
		return err
	}
	u.log.Infof("[fcm][usecase] token updated email=%s", email)
	return nil
}

// SendMessageNotification resolves the recipient tokens synchronously, then
// delivers in the background. The HTTP response only confirms the fan-out was
// queued; per-token failures are logged and never surfaced.
func (u *NotificationUseCase) SendMessageNotification(ctx context.Context, principal entities.Principal, installationRole, title, body string, data map[string]string) (NotificationDispatch, error) {
	if strings.TrimSpace(title) == "" {
		return NotificationDispatch{}, ErrEmptyTitle
	}

	tokens, err := u.users.DeviceTokensForInstallation(ctx, installationRole, principal.Email)
	if err != nil {
		u.log.Errorf("[fcm][usecase] token query failed installation=%s err=%v", installationRole, err)
		return NotificationDispatch{}, err
	}

	// The sender is optional: without push credentials the endpoint still
	// answers, it just delivers to nobody.
	if u.sender == nil {
		u.log.Warnf("[fcm][usecase] push sender not configured, skipping fan-out installation=%s", installationRole)
		return NotificationDispatch{Installation: installationRole}, nil
	}

	go u.deliver(tokens, installationRole, title, body, data)

	u.log.Infof("[fcm][usecase] notification queued installation=%s recipients=%d sender=%s", installationRole, len(tokens), principal.Email)
	return NotificationDispatch{Installation: installationRole, Recipients: len(tokens)}, nil
}

// deliver runs detached from the request context.
func (u *NotificationUseCase) deliver(tokens []string, installationRole, title, body string, data map[string]string) {
	for _, token := range tokens {
		ctx, cancel := context.WithTimeout(context.Background(), pushSendTimeout)
		err := u.sender.Send(ctx, interfaces.PushNotification{
			DeviceToken: token,
			Title:       title,
			Body:        body,
			Data:        data,
		})
		cancel()
		if err != nil {
			u.log.Warnf("[fcm][usecase] push delivery failed installation=%s err=%v", installationRole, err)
		}
	}
}
