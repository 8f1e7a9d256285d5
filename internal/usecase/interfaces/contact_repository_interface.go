package interfaces

import (
	"context"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// IContactRepository reads contact reference data and the directory views
// used by the messaging module.
type IContactRepository interface {
	// ByInstallation lists active contacts of an installation the account
	// can see.
	ByInstallation(ctx context.Context, email, installationRole string) ([]entities.Contact, error)

	// PeerClients lists other tenant-side accounts sharing installations
	// with the given account.
	PeerClients(ctx context.Context, email string) ([]entities.ClientContact, error)

	// WFSAUsersForInstallation lists operator accounts assigned to an
	// installation.
	WFSAUsersForInstallation(ctx context.Context, installationRole string) ([]entities.WFSAUser, error)
}
