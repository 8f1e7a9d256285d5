package request

// SurveyAnswerItem is one answered question in a survey submission.
type SurveyAnswerItem struct {
	QuestionID string `json:"pregunta_id" binding:"required"`
	Value      string `json:"respuesta_valor" binding:"required"`
	Comment    string `json:"comentario"`
}

// SurveyResponseRequest is the full answer batch for one survey request.
type SurveyResponseRequest struct {
	Answers []SurveyAnswerItem `json:"respuestas" binding:"required"`
}
