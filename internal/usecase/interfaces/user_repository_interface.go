package interfaces

import (
	"context"
	"errors"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// ErrAccountNotFound is returned when the permissions view has no row for
// the email.
var ErrAccountNotFound = errors.New("account not found")

// IUserRepository covers the warehouse tables this service owns about
// accounts: the permissions view, the stored identity uid, and device
// tokens.
type IUserRepository interface {
	// GetAccountByEmail reads the permissions view. Missing rows surface as
	// ErrAccountNotFound.
	GetAccountByEmail(ctx context.Context, email string) (entities.UserAccount, error)

	// UpdateStoredUID migrates the identity-provider uid for an account. The
	// predicate makes it a no-op when the stored uid already matches.
	UpdateStoredUID(ctx context.Context, email, uid string) error

	// UpdateDeviceToken stores the FCM token and refreshes ultima_sesion.
	UpdateDeviceToken(ctx context.Context, email, token string) error

	// DeviceTokensForInstallation returns the tokens of active accounts
	// scoped to the installation, excluding the sender.
	DeviceTokensForInstallation(ctx context.Context, installationRole, excludeEmail string) ([]string, error)

	// ListActiveAccounts feeds the document-store sync.
	ListActiveAccounts(ctx context.Context) ([]entities.UserProfile, error)
}
