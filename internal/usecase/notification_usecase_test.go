package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func TestNotificationUseCase_UpdateDeviceToken(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, testLogger())
		if err := uc.UpdateDeviceToken(context.Background(), "cli@acme.cl", "  "); !errors.Is(err, ErrEmptyDeviceToken) {
			t.Fatalf("expected ErrEmptyDeviceToken, got %v", err)
		}
	})

	t.Run("stores the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNotificationUseCase(users, nil, testLogger())

		users.EXPECT().UpdateDeviceToken(gomock.Any(), "cli@acme.cl", "tok-1").Return(nil)

		if err := uc.UpdateDeviceToken(context.Background(), "cli@acme.cl", "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_SendMessageNotification(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, testLogger())
		_, err := uc.SendMessageNotification(context.Background(), clientPrincipal("cli@acme.cl"), "INST-A", " ", "cuerpo", nil)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("queues one delivery per token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sender := mock_interfaces.NewMockIPushSender(ctrl)
		uc := NewNotificationUseCase(users, sender, testLogger())

		users.EXPECT().DeviceTokensForInstallation(gomock.Any(), "INST-A", "cli@acme.cl").
			Return([]string{"tok-1", "tok-2"}, nil)

		done := make(chan struct{}, 2)
		sender.EXPECT().Send(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PushNotification{})).Times(2).DoAndReturn(
			func(_ context.Context, n interfaces.PushNotification) error {
				if n.Title != "Nuevo mensaje" || n.Body != "cuerpo" {
					t.Errorf("unexpected notification: %+v", n)
				}
				done <- struct{}{}
				return nil
			},
		)

		dispatch, err := uc.SendMessageNotification(context.Background(), clientPrincipal("cli@acme.cl"), "INST-A", "Nuevo mensaje", "cuerpo", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dispatch.Installation != "INST-A" || dispatch.Recipients != 2 {
			t.Fatalf("unexpected dispatch: %+v", dispatch)
		}

		for i := 0; i < 2; i++ {
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("delivery %d never happened", i+1)
			}
		}
	})

	t.Run("delivery failures stay in the background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sender := mock_interfaces.NewMockIPushSender(ctrl)
		uc := NewNotificationUseCase(users, sender, testLogger())

		users.EXPECT().DeviceTokensForInstallation(gomock.Any(), "INST-A", "cli@acme.cl").
			Return([]string{"tok-1"}, nil)

		done := make(chan struct{})
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, interfaces.PushNotification) error {
				close(done)
				return errors.New("provider down")
			},
		)

		if _, err := uc.SendMessageNotification(context.Background(), clientPrincipal("cli@acme.cl"), "INST-A", "t", "b", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("delivery never attempted")
		}
	})

	t.Run("missing sender skips the fan-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNotificationUseCase(users, nil, testLogger())

		users.EXPECT().DeviceTokensForInstallation(gomock.Any(), "INST-A", "cli@acme.cl").
			Return([]string{"tok-1"}, nil)

		dispatch, err := uc.SendMessageNotification(context.Background(), clientPrincipal("cli@acme.cl"), "INST-A", "t", "b", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dispatch.Installation != "INST-A" || dispatch.Recipients != 0 {
			t.Fatalf("unexpected dispatch: %+v", dispatch)
		}
	})

	t.Run("token query error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNotificationUseCase(users, nil, testLogger())

		users.EXPECT().DeviceTokensForInstallation(gomock.Any(), "INST-A", "cli@acme.cl").
			Return(nil, errors.New("db"))

		if _, err := uc.SendMessageNotification(context.Background(), clientPrincipal("cli@acme.cl"), "INST-A", "t", "b", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
