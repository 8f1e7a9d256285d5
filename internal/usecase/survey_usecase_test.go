package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
	mock_interfaces "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces/mocks"
)

var surveyTestNow = time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)

func newSurveyUseCaseForTest(repo interfaces.ISurveyRepository) *SurveyUseCase {
	uc := NewSurveyUseCase(repo, testLogger())
	uc.now = func() time.Time { return surveyTestNow }
	return uc
}

func clientPrincipal(email string) entities.Principal {
	return entities.Principal{
		Email:      email,
		FullName:   "Cliente Uno",
		ClientRole: "ACME",
		RoleID:     "CLIENTE",
	}
}

func TestSurveyUseCase_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISurveyRepository(ctrl)
	uc := newSurveyUseCaseForTest(repo)
	principal := clientPrincipal("cli@acme.cl")

	due1 := surveyTestNow.AddDate(0, 0, 5)
	due2 := surveyTestNow.AddDate(0, 0, 2)
	rows := []entities.Survey{
		{ID: "s-1", InstallationRole: "INST-A", ClientRole: "ACME", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending, DueAt: &due1},
		{ID: "s-2", InstallationRole: "INST-A", ClientRole: "ACME", Mode: entities.SurveyModeIndividual, RecipientEmail: "otro@acme.cl", State: entities.SurveyStatePending, DueAt: &due2},
		{ID: "s-3", InstallationRole: "INST-B", ClientRole: "ACME", Mode: entities.SurveyModeShared, State: entities.SurveyStateCompleted, RespondedByEmail: "otro@acme.cl"},
	}
	repo.EXPECT().ListForUser(gomock.Any(), "cli@acme.cl", [2]string{"202504", "202502"}, false).Return(rows, nil)

	groups, err := uc.ListMine(context.Background(), principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 installations, got %d", len(groups))
	}

	instA := groups[0]
	if instA.InstallationRole != "INST-A" || instA.Total != 2 || instA.Pending != 2 || instA.Answered != 0 {
		t.Fatalf("unexpected INST-A group: %+v", instA)
	}
	if !instA.Surveys[0].CanRespond {
		t.Fatalf("shared pending survey must be respondable")
	}
	if instA.Surveys[1].CanRespond {
		t.Fatalf("individual survey addressed to someone else must not be respondable")
	}
	if instA.NextDueAt == nil || !instA.NextDueAt.Equal(due2) {
		t.Fatalf("expected earliest pending due date, got %v", instA.NextDueAt)
	}

	instB := groups[1]
	if instB.Answered != 1 || !instB.Surveys[0].CanViewAnswers {
		t.Fatalf("completed shared survey must expose its answers: %+v", instB)
	}
}

func TestSurveyUseCase_Questions(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetScoped(gomock.Any(), "s-x", "cli@acme.cl").
			Return(entities.Survey{}, interfaces.ErrSurveyNotFound)

		_, _, err := uc.Questions(context.Background(), clientPrincipal("cli@acme.cl"), "s-x")
		if !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("outside visibility scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetScoped(gomock.Any(), "s-1", "cli@acme.cl").
			Return(entities.Survey{ID: "s-1", CanView: false}, nil)

		_, _, err := uc.Questions(context.Background(), clientPrincipal("cli@acme.cl"), "s-1")
		if !errors.Is(err, ErrSurveyForbidden) {
			t.Fatalf("expected ErrSurveyForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetScoped(gomock.Any(), "s-1", "cli@acme.cl").
			Return(entities.Survey{ID: "s-1", CanView: true}, nil)
		repo.EXPECT().ActiveQuestions(gomock.Any()).
			Return([]entities.SurveyQuestion{{ID: "q-1", Order: 1}}, nil)

		s, questions, err := uc.Questions(context.Background(), clientPrincipal("cli@acme.cl"), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "s-1" || len(questions) != 1 {
			t.Fatalf("unexpected result: %+v %+v", s, questions)
		}
	})
}

func TestSurveyUseCase_Respond(t *testing.T) {
	answers := []AnswerInput{{QuestionID: "q-1", Value: "5"}}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-x").Return(entities.Survey{}, interfaces.ErrSurveyNotFound)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-x", answers)
		if !errors.Is(err, ErrSurveyNotFound) {
			t.Fatalf("expected ErrSurveyNotFound, got %v", err)
		}
	})

	t.Run("individual survey rejects non-recipients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeIndividual, RecipientEmail: "otro@acme.cl",
			State: entities.SurveyStatePending,
		}, nil)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", answers)
		if !errors.Is(err, ErrSurveyForbidden) {
			t.Fatalf("expected ErrSurveyForbidden, got %v", err)
		}
	})

	t.Run("shared survey already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStateCompleted,
			RespondedByEmail: "otro@acme.cl",
		}, nil)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", answers)
		if !errors.Is(err, ErrSurveyAlreadyAnswered) {
			t.Fatalf("expected ErrSurveyAlreadyAnswered, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		past := surveyTestNow.Add(-time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending, DueAt: &past,
		}, nil)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", answers)
		if !errors.Is(err, ErrSurveyExpired) {
			t.Fatalf("expected ErrSurveyExpired, got %v", err)
		}
	})

	t.Run("empty answer batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending,
		}, nil)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", nil)
		if !errors.Is(err, ErrNoAnswers) {
			t.Fatalf("expected ErrNoAnswers, got %v", err)
		}
	})

	t.Run("losing a concurrent claim persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending,
		}, nil)
		repo.EXPECT().CompleteWithAnswers(gomock.Any(), "s-1", gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", answers)
		if !errors.Is(err, ErrSurveyAlreadyAnswered) {
			t.Fatalf("expected ErrSurveyAlreadyAnswered, got %v", err)
		}
	})

	t.Run("success records client origin and shared timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending,
		}, nil)
		repo.EXPECT().CompleteWithAnswers(gomock.Any(), "s-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, completion entities.SurveyCompletion, batch []entities.SurveyAnswer) (bool, error) {
				if completion.ResponderEmail != "cli@acme.cl" || completion.Origin != entities.ResponseOriginClient {
					t.Fatalf("unexpected completion: %+v", completion)
				}
				if len(batch) != 2 {
					t.Fatalf("expected 2 answers, got %d", len(batch))
				}
				for _, a := range batch {
					if a.ID == "" || !a.AnsweredAt.Equal(completion.At) {
						t.Fatalf("unexpected answer row: %+v", a)
					}
				}
				return true, nil
			},
		)

		saved, err := uc.Respond(context.Background(), clientPrincipal("cli@acme.cl"), "s-1", []AnswerInput{
			{QuestionID: "q-1", Value: "5"},
			{QuestionID: "q-2", Value: "no", Comment: "detalle"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved != 2 {
			t.Fatalf("expected 2 saved answers, got %d", saved)
		}
	})
}

func TestSurveyUseCase_Answers(t *testing.T) {
	t.Run("pending survey has no answers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending,
		}, nil)

		_, _, err := uc.Answers(context.Background(), clientPrincipal("cli@acme.cl"), "s-1")
		if !errors.Is(err, ErrSurveyNotCompleted) {
			t.Fatalf("expected ErrSurveyNotCompleted, got %v", err)
		}
	})

	t.Run("operator may read individual surveys of others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		operator := entities.Principal{Email: "sup@wfsa.cl", RoleID: "SUPERVISOR_WFSA"}
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeIndividual, RecipientEmail: "cli@acme.cl",
			State: entities.SurveyStateCompleted,
		}, nil)
		repo.EXPECT().AnswersWithQuestions(gomock.Any(), "s-1").
			Return([]entities.AnsweredQuestion{{QuestionID: "q-1", Value: "5", Order: 1}}, nil)

		_, answers, err := uc.Answers(context.Background(), operator, "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(answers) != 1 {
			t.Fatalf("expected 1 answer, got %d", len(answers))
		}
	})

	t.Run("non-recipient client is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISurveyRepository(ctrl)
		uc := newSurveyUseCaseForTest(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Survey{
			ID: "s-1", Mode: entities.SurveyModeIndividual, RecipientEmail: "otro@acme.cl",
			State: entities.SurveyStateCompleted,
		}, nil)

		_, _, err := uc.Answers(context.Background(), clientPrincipal("cli@acme.cl"), "s-1")
		if !errors.Is(err, ErrSurveyForbidden) {
			t.Fatalf("expected ErrSurveyForbidden, got %v", err)
		}
	})
}
