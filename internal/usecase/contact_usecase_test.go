package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func TestContactUseCase_PeerClients(t *testing.T) {
	t.Run("non-admin may only ask about themselves", func(t *testing.T) {
		uc := NewContactUseCase(nil, testLogger())
		_, err := uc.PeerClients(context.Background(), clientPrincipal("cli@acme.cl"), "otro@acme.cl")
		if !errors.Is(err, ErrForeignContacts) {
			t.Fatalf("expected ErrForeignContacts, got %v", err)
		}
	})

	t.Run("admin may ask about anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, testLogger())

		admin := clientPrincipal("admin@wfsa.cl")
		admin.Permissions.Admin = true

		repo.EXPECT().PeerClients(gomock.Any(), "otro@acme.cl").
			Return([]entities.ClientContact{{Email: "par@acme.cl"}}, nil)

		out, err := uc.PeerClients(context.Background(), admin, "otro@acme.cl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].Email != "par@acme.cl" {
			t.Fatalf("unexpected contacts: %+v", out)
		}
	})

	t.Run("own directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo, testLogger())

		repo.EXPECT().PeerClients(gomock.Any(), "cli@acme.cl").Return([]entities.ClientContact{}, nil)

		if _, err := uc.PeerClients(context.Background(), clientPrincipal("cli@acme.cl"), "cli@acme.cl"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
