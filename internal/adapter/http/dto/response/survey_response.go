package response

import (
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
)

// SurveyItemResponse is one survey request with caller-specific flags.
type SurveyItemResponse struct {
	ID               string  `json:"encuesta_id"`
	Period           string  `json:"periodo"`
	Mode             string  `json:"modo"`
	State            string  `json:"estado"`
	RecipientEmail   string  `json:"email_destinatario"`
	CreatedAt        *string `json:"fecha_creacion"`
	DueAt            *string `json:"fecha_limite"`
	RespondedByEmail string  `json:"respondido_por_email"`
	RespondedByName  string  `json:"respondido_por_nombre"`
	ResponseOrigin   string  `json:"tipo_respuesta"`
	RespondedAt      *string `json:"fecha_respuesta"`
	CanRespond       bool    `json:"puede_responder"`
	CanViewAnswers   bool    `json:"puede_ver_respuestas"`
}

// SurveyInstallationResponse groups the requests of one installation.
type SurveyInstallationResponse struct {
	ClientRole       string               `json:"cliente_rol"`
	InstallationRole string               `json:"instalacion_rol"`
	InstallationName string               `json:"instalacion_nombre"`
	Total            int                  `json:"total_encuestas"`
	Answered         int                  `json:"respondidas"`
	Pending          int                  `json:"pendientes"`
	NextDueAt        *string              `json:"fecha_vencimiento_proxima"`
	Surveys          []SurveyItemResponse `json:"encuestas"`
}

// SurveyListResponse is the mis-encuestas payload.
type SurveyListResponse struct {
	Success       bool                         `json:"success"`
	Installations []SurveyInstallationResponse `json:"instalaciones"`
}

func FromInstallationSurveys(groups []usecase.InstallationSurveys) SurveyListResponse {
	installations := make([]SurveyInstallationResponse, 0, len(groups))
	for _, g := range groups {
		surveys := make([]SurveyItemResponse, 0, len(g.Surveys))
		for _, item := range g.Surveys {
			surveys = append(surveys, SurveyItemResponse{
				ID:               item.Survey.ID,
				Period:           item.Survey.Period,
				Mode:             string(item.Survey.Mode),
				State:            string(item.Survey.State),
				RecipientEmail:   item.Survey.RecipientEmail,
				CreatedAt:        isoTime(item.Survey.CreatedAt),
				DueAt:            isoTime(item.Survey.DueAt),
				RespondedByEmail: item.Survey.RespondedByEmail,
				RespondedByName:  item.Survey.RespondedByName,
				ResponseOrigin:   item.Survey.ResponseOrigin,
				RespondedAt:      isoTime(item.Survey.RespondedAt),
				CanRespond:       item.CanRespond,
				CanViewAnswers:   item.CanViewAnswers,
			})
		}
		installations = append(installations, SurveyInstallationResponse{
			ClientRole:       g.ClientRole,
			InstallationRole: g.InstallationRole,
			InstallationName: g.InstallationRole,
			Total:            g.Total,
			Answered:         g.Answered,
			Pending:          g.Pending,
			NextDueAt:        isoTime(g.NextDueAt),
			Surveys:          surveys,
		})
	}
	return SurveyListResponse{Success: true, Installations: installations}
}

// SurveyHeaderResponse is the request header attached to question and answer
// payloads.
type SurveyHeaderResponse struct {
	ID               string  `json:"encuesta_id"`
	Period           string  `json:"periodo"`
	InstallationRole string  `json:"instalacion_rol"`
	Mode             string  `json:"modo"`
	State            string  `json:"estado,omitempty"`
	DueAt            *string `json:"fecha_limite,omitempty"`
	RespondedBy      string  `json:"respondido_por,omitempty"`
	RespondedAt      *string `json:"fecha_respuesta,omitempty"`
}

// SurveyQuestionResponse is one active question.
type SurveyQuestionResponse struct {
	ID              string `json:"pregunta_id"`
	Order           int    `json:"orden"`
	Prompt          string `json:"texto_pregunta"`
	AnswerType      string `json:"tipo_respuesta"`
	RequiresComment bool   `json:"requiere_comentario"`
	Mandatory       bool   `json:"obligatoria"`
	Category        string `json:"categoria"`
}

// SurveyQuestionsResponse is the questionnaire payload.
type SurveyQuestionsResponse struct {
	Success   bool                     `json:"success"`
	Survey    SurveyHeaderResponse     `json:"encuesta"`
	Questions []SurveyQuestionResponse `json:"preguntas"`
}

func FromSurveyQuestions(s entities.Survey, questions []entities.SurveyQuestion) SurveyQuestionsResponse {
	out := make([]SurveyQuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, SurveyQuestionResponse{
			ID:              q.ID,
			Order:           q.Order,
			Prompt:          q.Prompt,
			AnswerType:      q.AnswerType,
			RequiresComment: q.RequiresComment,
			Mandatory:       q.Mandatory,
			Category:        q.Category,
		})
	}
	return SurveyQuestionsResponse{
		Success: true,
		Survey: SurveyHeaderResponse{
			ID:               s.ID,
			Period:           s.Period,
			InstallationRole: s.InstallationRole,
			Mode:             string(s.Mode),
			State:            string(s.State),
			DueAt:            isoTime(s.DueAt),
		},
		Questions: out,
	}
}

// SurveyRespondResponse confirms a stored response.
type SurveyRespondResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SurveyID     string `json:"encuesta_id"`
	AnswersSaved int    `json:"respuestas_guardadas"`
}

// SurveyAnswerResponse is one answered question for read-back.
type SurveyAnswerResponse struct {
	QuestionID string `json:"pregunta_id"`
	Prompt     string `json:"texto_pregunta"`
	AnswerType string `json:"tipo_respuesta"`
	Value      string `json:"respuesta_valor"`
	Comment    string `json:"comentario"`
	Order      int    `json:"orden"`
}

// SurveyAnswersResponse is the completed-survey read-back payload.
type SurveyAnswersResponse struct {
	Success bool                   `json:"success"`
	Survey  SurveyHeaderResponse   `json:"encuesta"`
	Answers []SurveyAnswerResponse `json:"respuestas"`
}

func FromSurveyAnswers(s entities.Survey, answers []entities.AnsweredQuestion) SurveyAnswersResponse {
	out := make([]SurveyAnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, SurveyAnswerResponse{
			QuestionID: a.QuestionID,
			Prompt:     a.Prompt,
			AnswerType: a.AnswerType,
			Value:      a.Value,
			Comment:    a.Comment,
			Order:      a.Order,
		})
	}
	return SurveyAnswersResponse{
		Success: true,
		Survey: SurveyHeaderResponse{
			ID:               s.ID,
			Period:           s.Period,
			InstallationRole: s.InstallationRole,
			Mode:             string(s.Mode),
			RespondedBy:      s.RespondedByName,
			RespondedAt:      isoTime(s.RespondedAt),
		},
		Answers: out,
	}
}
