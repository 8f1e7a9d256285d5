package interfaces

import (
	"context"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// IUserProfileSink is the document-store write sink for denormalized user
// profiles (admin bulk sync).
type IUserProfileSink interface {
	UpsertProfile(ctx context.Context, p entities.UserProfile) error
}
