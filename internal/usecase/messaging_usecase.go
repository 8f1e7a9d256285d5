package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var (
	ErrEmptyMessage         = errors.New("message body is empty")
	ErrNoInstallations      = errors.New("no installations selected")
	receivedMessagesDefault = 100
)

// SentMessage is the per-contact outcome of a send request. Everything is
// recorded 'pendiente'; actual WhatsApp delivery happens downstream.
type SentMessage struct {
	MessageID    string
	ContactID    string
	Installation string
	State        entities.MessageState
}

type IMessagingUseCase interface {
	SendToInstallations(ctx context.Context, principal entities.Principal, installations []string, body string) ([]SentMessage, error)
	ReceivedMessages(ctx context.Context, email string) ([]entities.ReceivedMessage, error)
}

type MessagingUseCase struct {
	messages interfaces.IMessageRepository
	log      *zap.SugaredLogger
}

var _ IMessagingUseCase = (*MessagingUseCase)(nil)

func NewMessagingUseCase(messages interfaces.IMessageRepository, log *zap.SugaredLogger) *MessagingUseCase {
	return &MessagingUseCase{messages: messages, log: log}
}

// SendToInstallations records one pending message per reachable contact per
// installation. Contacts the sender may not reach are filtered by the
// repository query, never here.
func (u *MessagingUseCase) SendToInstallations(ctx context.Context, principal entities.Principal, installations []string, body string) ([]SentMessage, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}
	if len(installations) == 0 {
		return nil, ErrNoInstallations
	}

	sent := []SentMessage{}
	for _, installation := range installations {
		contacts, err := u.messages.ReachableContacts(ctx, principal.Email, installation)
		if err != nil {
			u.log.Errorf("[whatsapp][usecase] contact query failed email=%s installation=%s err=%v", principal.Email, installation, err)
			return nil, err
		}

		for _, contact := range contacts {
			m := entities.Message{
				ID:               uuid.NewString(),
				SenderEmail:      principal.Email,
				ClientRole:       principal.ClientRole,
				InstallationRole: installation,
				ContactID:        contact.ID,
				Body:             body,
				State:            entities.MessageStatePending,
				SentAt:           time.Now().UTC(),
			}
			if err := u.messages.Create(ctx, m); err != nil {
				u.log.Errorf("[whatsapp][usecase] message insert failed message_id=%s err=%v", m.ID, err)
				return nil, err
			}
			sent = append(sent, SentMessage{
				MessageID:    m.ID,
				ContactID:    contact.ID,
				Installation: installation,
				State:        m.State,
			})
		}
	}

	u.log.Infof("[whatsapp][usecase] send success email=%s total=%d", principal.Email, len(sent))
	return sent, nil
}

func (u *MessagingUseCase) ReceivedMessages(ctx context.Context, email string) ([]entities.ReceivedMessage, error) {
	out, err := u.messages.ReceivedByUser(ctx, email, receivedMessagesDefault)
	if err != nil {
		u.log.Errorf("[whatsapp][usecase] received query failed email=%s err=%v", email, err)
		return nil, err
	}
	return out, nil
}
