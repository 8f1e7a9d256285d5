package usecase

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

func TestShortfallUseCase_AllInstallations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIShortfallRepository(ctrl)
	uc := NewShortfallUseCase(repo, testLogger())

	repo.EXPECT().GroupsForUser(gomock.Any(), "cli@acme.cl").Return([]entities.ShortfallGroup{
		{InstallationRole: "INST-A", Shift: "DIA", Count: 2},
		{InstallationRole: "INST-A", Shift: "NOCHE", Count: 1},
		{InstallationRole: "INST-B", Shift: "DIA", Count: 4},
	}, nil)

	out, err := uc.AllInstallations(context.Background(), "cli@acme.cl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 installations, got %d", len(out))
	}
	if out[0].Installation != "INST-A" || out[0].Total != 3 || len(out[0].Groups) != 2 {
		t.Fatalf("unexpected first group: %+v", out[0])
	}
	if out[1].Installation != "INST-B" || out[1].Total != 4 {
		t.Fatalf("unexpected second group: %+v", out[1])
	}
}

func TestShortfallUseCase_ByInstallation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIShortfallRepository(ctrl)
	uc := NewShortfallUseCase(repo, testLogger())

	repo.EXPECT().GroupsForInstallation(gomock.Any(), "cli@acme.cl", "INST-A").
		Return([]entities.ShortfallGroup{{InstallationRole: "INST-A", Count: 5}}, nil)

	out, err := uc.ByInstallation(context.Background(), "cli@acme.cl", "INST-A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Total != 5 || out.Installation != "INST-A" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
