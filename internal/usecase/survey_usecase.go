package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var (
	ErrSurveyNotFound        = errors.New("survey not found")
	ErrSurveyForbidden       = errors.New("survey not accessible by this user")
	ErrSurveyAlreadyAnswered = errors.New("survey already answered")
	ErrSurveyExpired         = errors.New("survey expired")
	ErrDuplicateResponse     = errors.New("survey already answered by this user")
	ErrSurveyNotCompleted    = errors.New("survey not answered yet")
	ErrNoAnswers             = errors.New("no answers submitted")
)

// AnswerInput is one submitted answer.
type AnswerInput struct {
	QuestionID string
	Value      string
	Comment    string
}

// SurveyListItem is a request row with the caller-specific action flags.
type SurveyListItem struct {
	Survey         entities.Survey
	CanRespond     bool
	CanViewAnswers bool
}

// InstallationSurveys groups the caller's survey requests per installation.
type InstallationSurveys struct {
	ClientRole       string
	InstallationRole string
	Total            int
	Answered         int
	Pending          int
	NextDueAt        *time.Time
	Surveys          []SurveyListItem
}

type ISurveyUseCase interface {
	ListMine(ctx context.Context, principal entities.Principal) ([]InstallationSurveys, error)
	Questions(ctx context.Context, principal entities.Principal, surveyID string) (entities.Survey, []entities.SurveyQuestion, error)
	Respond(ctx context.Context, principal entities.Principal, surveyID string, answers []AnswerInput) (int, error)
	Answers(ctx context.Context, principal entities.Principal, surveyID string) (entities.Survey, []entities.AnsweredQuestion, error)
}

type SurveyUseCase struct {
	surveys interfaces.ISurveyRepository
	now     func() time.Time
	log     *zap.SugaredLogger
}

var _ ISurveyUseCase = (*SurveyUseCase)(nil)

func NewSurveyUseCase(surveys interfaces.ISurveyRepository, log *zap.SugaredLogger) *SurveyUseCase {
	return &SurveyUseCase{surveys: surveys, now: time.Now, log: log}
}

// ListMine returns the requests of the current and previous bimonthly
// period, grouped per installation. Operator-side roles see every request;
// tenant-side roles see shared requests plus their own individual ones (the
// repository filters the latter in-query).
func (u *SurveyUseCase) ListMine(ctx context.Context, principal entities.Principal) ([]InstallationSurveys, error) {
	current, previous := entities.SurveyPeriods(u.now())
	isOperator := principal.IsWFSAOperator()

	rows, err := u.surveys.ListForUser(ctx, principal.Email, [2]string{current, previous}, isOperator)
	if err != nil {
		u.log.Errorf("[survey][usecase] list query failed email=%s err=%v", principal.Email, err)
		return nil, err
	}

	byInstallation := map[string]*InstallationSurveys{}
	order := []string{}

	for _, s := range rows {
		group, ok := byInstallation[s.InstallationRole]
		if !ok {
			group = &InstallationSurveys{
				ClientRole:       s.ClientRole,
				InstallationRole: s.InstallationRole,
				Surveys:          []SurveyListItem{},
			}
			byInstallation[s.InstallationRole] = group
			order = append(order, s.InstallationRole)
		}

		item := SurveyListItem{Survey: s}
		switch s.State {
		case entities.SurveyStatePending:
			if s.Mode == entities.SurveyModeShared {
				item.CanRespond = true
			} else {
				item.CanRespond = s.RecipientEmail == principal.Email
			}
			if s.DueAt != nil && (group.NextDueAt == nil || s.DueAt.Before(*group.NextDueAt)) {
				group.NextDueAt = s.DueAt
			}
			group.Pending++
		case entities.SurveyStateCompleted:
			item.CanViewAnswers = isOperator ||
				s.Mode == entities.SurveyModeShared ||
				s.RecipientEmail == principal.Email
			group.Answered++
		}

		group.Surveys = append(group.Surveys, item)
		group.Total++
	}

	out := make([]InstallationSurveys, 0, len(order))
	for _, key := range order {
		out = append(out, *byInstallation[key])
	}
	return out, nil
}

func (u *SurveyUseCase) Questions(ctx context.Context, principal entities.Principal, surveyID string) (entities.Survey, []entities.SurveyQuestion, error) {
	s, err := u.surveys.GetScoped(ctx, surveyID, principal.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrSurveyNotFound) {
			return entities.Survey{}, nil, ErrSurveyNotFound
		}
		u.log.Errorf("[survey][usecase] scoped load failed survey_id=%s err=%v", surveyID, err)
		return entities.Survey{}, nil, err
	}
	if !s.CanView {
		return entities.Survey{}, nil, ErrSurveyForbidden
	}

	questions, err := u.surveys.ActiveQuestions(ctx)
	if err != nil {
		u.log.Errorf("[survey][usecase] question query failed survey_id=%s err=%v", surveyID, err)
		return entities.Survey{}, nil, err
	}
	return s, questions, nil
}

// Respond runs the precondition chain in a fixed order, then claims the
// pendiente -> completada transition and writes the answer batch in one
// transaction. The losing side of a concurrent shared-survey race gets
// ErrSurveyAlreadyAnswered and persists nothing.
func (u *SurveyUseCase) Respond(ctx context.Context, principal entities.Principal, surveyID string, answers []AnswerInput) (int, error) {
	s, err := u.surveys.GetByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, interfaces.ErrSurveyNotFound) {
			return 0, ErrSurveyNotFound
		}
		u.log.Errorf("[survey][usecase] load failed survey_id=%s err=%v", surveyID, err)
		return 0, err
	}

	if s.Mode == entities.SurveyModeIndividual && s.RecipientEmail != principal.Email {
		return 0, ErrSurveyForbidden
	}
	if s.Mode == entities.SurveyModeShared && s.State == entities.SurveyStateCompleted {
		return 0, ErrSurveyAlreadyAnswered
	}

	now := u.now().UTC()
	if s.DueAt != nil && s.DueAt.Before(now) {
		return 0, ErrSurveyExpired
	}
	if s.State == entities.SurveyStateCompleted && s.RespondedByEmail == principal.Email {
		return 0, ErrDuplicateResponse
	}
	if len(answers) == 0 {
		return 0, ErrNoAnswers
	}

	origin := entities.ResponseOriginWFSA
	if principal.IsClient() {
		origin = entities.ResponseOriginClient
	}

	batch := make([]entities.SurveyAnswer, 0, len(answers))
	for _, a := range answers {
		batch = append(batch, entities.SurveyAnswer{
			ID:         uuid.NewString(),
			SurveyID:   surveyID,
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Comment:    a.Comment,
			AnsweredAt: now,
		})
	}

	completion := entities.SurveyCompletion{
		ResponderEmail: principal.Email,
		ResponderName:  principal.FullName,
		Origin:         origin,
		At:             now,
	}

	claimed, err := u.surveys.CompleteWithAnswers(ctx, surveyID, completion, batch)
	if err != nil {
		u.log.Errorf("[survey][usecase] completion failed survey_id=%s err=%v", surveyID, err)
		return 0, err
	}
	if !claimed {
		return 0, ErrSurveyAlreadyAnswered
	}

	u.log.Infof("[survey][usecase] respond success survey_id=%s responder=%s answers=%d", surveyID, principal.Email, len(batch))
	return len(batch), nil
}

func (u *SurveyUseCase) Answers(ctx context.Context, principal entities.Principal, surveyID string) (entities.Survey, []entities.AnsweredQuestion, error) {
	s, err := u.surveys.GetByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, interfaces.ErrSurveyNotFound) {
			return entities.Survey{}, nil, ErrSurveyNotFound
		}
		u.log.Errorf("[survey][usecase] load failed survey_id=%s err=%v", surveyID, err)
		return entities.Survey{}, nil, err
	}

	if !principal.IsWFSAOperator() &&
		s.Mode == entities.SurveyModeIndividual && s.RecipientEmail != principal.Email {
		return entities.Survey{}, nil, ErrSurveyForbidden
	}
	if s.State != entities.SurveyStateCompleted {
		return entities.Survey{}, nil, ErrSurveyNotCompleted
	}

	answers, err := u.surveys.AnswersWithQuestions(ctx, surveyID)
	if err != nil {
		u.log.Errorf("[survey][usecase] answer query failed survey_id=%s err=%v", surveyID, err)
		return entities.Survey{}, nil, err
	}
	return s, answers, nil
}
