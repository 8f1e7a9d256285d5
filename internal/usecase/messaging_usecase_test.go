package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func TestMessagingUseCase_SendToInstallations(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		uc := NewMessagingUseCase(nil, testLogger())
		_, err := uc.SendToInstallations(context.Background(), clientPrincipal("cli@acme.cl"), []string{"INST-A"}, "   ")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("no installations", func(t *testing.T) {
		uc := NewMessagingUseCase(nil, testLogger())
		_, err := uc.SendToInstallations(context.Background(), clientPrincipal("cli@acme.cl"), nil, "hola")
		if !errors.Is(err, ErrNoInstallations) {
			t.Fatalf("expected ErrNoInstallations, got %v", err)
		}
	})

	t.Run("one record per reachable contact per installation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMessageRepository(ctrl)
		uc := NewMessagingUseCase(repo, testLogger())
		principal := clientPrincipal("cli@acme.cl")

		repo.EXPECT().ReachableContacts(gomock.Any(), "cli@acme.cl", "INST-A").
			Return([]entities.Contact{{ID: "c-1"}, {ID: "c-2"}}, nil)
		repo.EXPECT().ReachableContacts(gomock.Any(), "cli@acme.cl", "INST-B").
			Return([]entities.Contact{{ID: "c-3"}}, nil)

		created := []entities.Message{}
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Message{})).Times(3).DoAndReturn(
			func(_ context.Context, m entities.Message) error {
				if m.ID == "" || m.SenderEmail != "cli@acme.cl" || m.State != entities.MessageStatePending {
					t.Fatalf("unexpected message: %+v", m)
				}
				created = append(created, m)
				return nil
			},
		)

		sent, err := uc.SendToInstallations(context.Background(), principal, []string{"INST-A", "INST-B"}, "hola")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sent) != 3 || len(created) != 3 {
			t.Fatalf("expected 3 messages, got sent=%d created=%d", len(sent), len(created))
		}
		if sent[2].Installation != "INST-B" || sent[2].ContactID != "c-3" {
			t.Fatalf("unexpected last message: %+v", sent[2])
		}
	})

	t.Run("contact query error aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMessageRepository(ctrl)
		uc := NewMessagingUseCase(repo, testLogger())

		repo.EXPECT().ReachableContacts(gomock.Any(), "cli@acme.cl", "INST-A").
			Return(nil, errors.New("db"))

		if _, err := uc.SendToInstallations(context.Background(), clientPrincipal("cli@acme.cl"), []string{"INST-A"}, "hola"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMessagingUseCase_ReceivedMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMessageRepository(ctrl)
	uc := NewMessagingUseCase(repo, testLogger())

	repo.EXPECT().ReceivedByUser(gomock.Any(), "sup@wfsa.cl", 100).
		Return([]entities.ReceivedMessage{{ID: "m-1"}}, nil)

	out, err := uc.ReceivedMessages(context.Background(), "sup@wfsa.cl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "m-1" {
		t.Fatalf("unexpected messages: %+v", out)
	}
}
