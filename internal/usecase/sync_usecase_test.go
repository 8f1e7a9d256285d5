package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func TestSyncUseCase_SyncUsers(t *testing.T) {
	t.Run("per-account failures are collected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sink := mock_interfaces.NewMockIUserProfileSink(ctrl)
		uc := NewSyncUseCase(users, sink, testLogger())

		accounts := []entities.UserProfile{
			{Email: "a@acme.cl"},
			{Email: "b@acme.cl"},
			{Email: "c@acme.cl"},
		}
		users.EXPECT().ListActiveAccounts(gomock.Any()).Return(accounts, nil)
		sink.EXPECT().UpsertProfile(gomock.Any(), accounts[0]).Return(nil)
		sink.EXPECT().UpsertProfile(gomock.Any(), accounts[1]).Return(errors.New("throttled"))
		sink.EXPECT().UpsertProfile(gomock.Any(), accounts[2]).Return(nil)

		result, err := uc.SyncUsers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 3 || result.Synced != 2 || result.Errors != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if len(result.ErrorDetails) != 1 || !strings.Contains(result.ErrorDetails[0], "b@acme.cl") {
			t.Fatalf("unexpected error details: %v", result.ErrorDetails)
		}
	})

	t.Run("listing failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSyncUseCase(users, nil, testLogger())

		users.EXPECT().ListActiveAccounts(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.SyncUsers(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
