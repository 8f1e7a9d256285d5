package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/request"
	response "github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/dto/response"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/middleware"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
	"github.com/wwdiegovarela/consultas-app-cliente/pkg"
)

var errInvalidSurveyPayload = pkg.NewDomainErrorSimple("INVALID_SURVEY_INPUT", "Cuerpo de respuesta inválido", http.StatusBadRequest)

// SurveyHandler handles HTTP requests for bimonthly service surveys.

type SurveyHandler struct {
	usecase usecase.ISurveyUseCase
}

func NewSurveyHandler(uc usecase.ISurveyUseCase) *SurveyHandler {
	return &SurveyHandler{usecase: uc}
}

// ListMine groups the caller's survey requests per installation.
func (h *SurveyHandler) ListMine(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	groups, err := h.usecase.ListMine(c.Request.Context(), principal)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallationSurveys(groups))
}

// Questions returns the active questionnaire for one survey request.
func (h *SurveyHandler) Questions(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	surveyID := c.Param("encuesta_id")

	survey, questions, err := h.usecase.Questions(c.Request.Context(), principal, surveyID)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyQuestions(survey, questions))
}

// Respond stores the caller's answers and completes the request.
func (h *SurveyHandler) Respond(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	surveyID := c.Param("encuesta_id")

	var payload request.SurveyResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSurveyPayload.HTTPStatus, errInvalidSurveyPayload.ToHTTPError())
		return
	}

	answers := make([]usecase.AnswerInput, 0, len(payload.Answers))
	for _, a := range payload.Answers {
		answers = append(answers, usecase.AnswerInput{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Comment:    a.Comment,
		})
	}

	saved, err := h.usecase.Respond(c.Request.Context(), principal, surveyID, answers)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SurveyRespondResponse{
		Success:      true,
		Message:      "Encuesta respondida correctamente",
		SurveyID:     surveyID,
		AnswersSaved: saved,
	})
}

// Answers returns the stored answers of a completed survey.
func (h *SurveyHandler) Answers(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	surveyID := c.Param("encuesta_id")

	survey, answers, err := h.usecase.Answers(c.Request.Context(), principal, surveyID)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSurveyAnswers(survey, answers))
}

// mapSurveyError keeps distinct codes for every survey state but reports all
// of them as 400: the mobile client only branches on the code field.
func mapSurveyError(err error) *pkg.AppError {
	if appErr := storeUnavailable(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrSurveyNotFound):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_FOUND", "Encuesta no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSurveyForbidden):
		return pkg.NewDomainErrorSimple("SURVEY_FORBIDDEN", "Esta encuesta no está disponible para su usuario", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSurveyAlreadyAnswered):
		return pkg.NewDomainErrorSimple("SURVEY_ALREADY_ANSWERED", "Esta encuesta ya fue respondida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSurveyExpired):
		return pkg.NewDomainErrorSimple("SURVEY_EXPIRED", "La encuesta está fuera de plazo", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateResponse):
		return pkg.NewDomainErrorSimple("DUPLICATE_RESPONSE", "Ya registró una respuesta para esta encuesta", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSurveyNotCompleted):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_COMPLETED", "La encuesta aún no tiene respuestas", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoAnswers):
		return pkg.NewDomainErrorSimple("NO_ANSWERS", "Debe enviar al menos una respuesta", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Error interno al procesar la encuesta", http.StatusInternalServerError, err)
	}
}
