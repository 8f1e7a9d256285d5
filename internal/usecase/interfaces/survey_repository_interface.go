package interfaces

import (
	"context"
	"errors"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// ErrSurveyNotFound is returned when no request row matches the id.
var ErrSurveyNotFound = errors.New("survey request not found")

// ISurveyRepository reads survey requests/questions and performs the single
// state transition this service owns.
type ISurveyRepository interface {
	// ListForUser returns the requests of the given periods on installations
	// the account can see. When includeAllIndividual is false, individual
	// requests addressed to someone else are filtered out in-query.
	ListForUser(ctx context.Context, email string, periods [2]string, includeAllIndividual bool) ([]entities.Survey, error)

	// GetByID loads a request without scoping.
	GetByID(ctx context.Context, surveyID string) (entities.Survey, error)

	// GetScoped loads a request plus the visibility join result for the
	// account (Survey.CanView).
	GetScoped(ctx context.Context, surveyID, email string) (entities.Survey, error)

	ActiveQuestions(ctx context.Context) ([]entities.SurveyQuestion, error)

	// CompleteWithAnswers claims the pendiente -> completada transition and
	// inserts the answer batch in one transaction. claimed == false means
	// the request was no longer pending at write time; nothing is persisted
	// in that case.
	CompleteWithAnswers(ctx context.Context, surveyID string, completion entities.SurveyCompletion, answers []entities.SurveyAnswer) (claimed bool, err error)

	AnswersWithQuestions(ctx context.Context, surveyID string) ([]entities.AnsweredQuestion, error)
}
