package interfaces

import (
	"context"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// IMessageRepository persists outbound messages and reads the received-
// messages view.
type IMessageRepository interface {
	// ReachableContacts lists active contacts the account is allowed to
	// message for an installation.
	ReachableContacts(ctx context.Context, email, installationRole string) ([]entities.Contact, error)

	Create(ctx context.Context, m entities.Message) error

	ReceivedByUser(ctx context.Context, email string, limit int) ([]entities.ReceivedMessage, error)
}
