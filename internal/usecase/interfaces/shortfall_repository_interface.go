package interfaces

import (
	"context"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// IShortfallRepository reads the PPC (positions-to-cover) fact view, scoped
// to the account's visible installations.
type IShortfallRepository interface {
	Total(ctx context.Context, email string) (int64, error)
	GroupsForUser(ctx context.Context, email string) ([]entities.ShortfallGroup, error)
	GroupsForInstallation(ctx context.Context, email, installationRole string) ([]entities.ShortfallGroup, error)
}
