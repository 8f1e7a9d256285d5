package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestAuthUseCase_Resolve(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testLogger())
		_, err := uc.Resolve(context.Background(), "   ")
		if !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		uc := NewAuthUseCase(verifier, nil, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{}, fmt.Errorf("%w: expired", interfaces.ErrTokenRejected))

		_, err := uc.Resolve(context.Background(), "Bearer tok")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("account not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-1", Email: "cli@acme.cl"}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{}, interfaces.ErrAccountNotFound)

		_, err := uc.Resolve(context.Background(), "Bearer tok")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-1", Email: "cli@acme.cl"}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{Email: "cli@acme.cl", Active: false}, nil)

		_, err := uc.Resolve(context.Background(), "Bearer tok")
		if !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})

	t.Run("uid migration on mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-new", Email: "cli@acme.cl", EmailVerified: true}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{
				Email:      "cli@acme.cl",
				StoredUID:  "uid-old",
				FullName:   "Cliente Uno",
				ClientRole: "ACME",
				RoleID:     "CLIENTE",
				Active:     true,
			}, nil)
		users.EXPECT().UpdateStoredUID(gomock.Any(), "cli@acme.cl", "uid-new").Return(nil)

		p, err := uc.Resolve(context.Background(), "Bearer tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.UID != "uid-new" || p.FullName != "Cliente Uno" || !p.EmailVerified {
			t.Fatalf("unexpected principal: %+v", p)
		}
	})

	t.Run("no write when stored uid matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-1", Email: "cli@acme.cl"}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{Email: "cli@acme.cl", StoredUID: "uid-1", Active: true}, nil)
		// No UpdateStoredUID expectation: a matching uid performs zero writes.

		if _, err := uc.Resolve(context.Background(), "Bearer tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("migration failure does not block resolution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-new", Email: "cli@acme.cl"}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{Email: "cli@acme.cl", StoredUID: "uid-old", Active: true}, nil)
		users.EXPECT().UpdateStoredUID(gomock.Any(), "cli@acme.cl", "uid-new").Return(errors.New("db"))

		if _, err := uc.Resolve(context.Background(), "Bearer tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("raw token without bearer prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(verifier, users, testLogger())

		verifier.EXPECT().Verify(gomock.Any(), "tok").
			Return(interfaces.VerifiedIdentity{UID: "uid-1", Email: "cli@acme.cl"}, nil)
		users.EXPECT().GetAccountByEmail(gomock.Any(), "cli@acme.cl").
			Return(entities.UserAccount{Email: "cli@acme.cl", StoredUID: "uid-1", Active: true}, nil)

		if _, err := uc.Resolve(context.Background(), "tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
