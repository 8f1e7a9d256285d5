package entities

import (
	"fmt"
	"time"
)

// SurveyMode distinguishes who may answer a survey request.
//
//   - compartida: any principal scoped to the installation; first answer wins.
//   - individual: only the addressed recipient (operators may still read it).
type SurveyMode string

const (
	SurveyModeShared     SurveyMode = "compartida"
	SurveyModeIndividual SurveyMode = "individual"
)

// SurveyState is the request lifecycle: pendiente -> completada (terminal).
// Expiry is computed against fecha_limite at request time, never stored.
type SurveyState string

const (
	SurveyStatePending   SurveyState = "pendiente"
	SurveyStateCompleted SurveyState = "completada"
)

// ResponseOrigin is the coarse tag recorded on completion.
type ResponseOrigin string

const (
	ResponseOriginClient ResponseOrigin = "cliente"
	ResponseOriginWFSA   ResponseOrigin = "wfsa"
)

// Survey is one row of encuestas_solicitudes. Created by an external
// scheduling job; this service only performs the single
// pendiente -> completada transition.
type Survey struct {
	ID               string
	Period           string
	ClientRole       string
	InstallationRole string
	Mode             SurveyMode
	RecipientEmail   string
	State            SurveyState
	CreatedAt        *time.Time
	DueAt            *time.Time
	RespondedByEmail string
	RespondedByName  string
	ResponseOrigin   string
	RespondedAt      *time.Time

	// CanView carries the visibility join result when the survey was loaded
	// scoped to a principal.
	CanView bool
}

// SurveyQuestion is externally curated reference data.
type SurveyQuestion struct {
	ID              string
	Order           int
	Prompt          string
	AnswerType      string
	RequiresComment bool
	Mandatory       bool
	Category        string
}

// SurveyAnswer is one answered question. Append-only; the whole batch of a
// response shares one timestamp.
type SurveyAnswer struct {
	ID         string
	SurveyID   string
	QuestionID string
	Value      string
	Comment    string
	AnsweredAt time.Time
}

// SurveyCompletion records who closed a survey request and when.
type SurveyCompletion struct {
	ResponderEmail string
	ResponderName  string
	Origin         ResponseOrigin
	At             time.Time
}

// AnsweredQuestion joins an answer with its question for read-back.
type AnsweredQuestion struct {
	QuestionID string
	Prompt     string
	AnswerType string
	Value      string
	Comment    string
	Order      int
}

// SurveyPeriods returns the two period keys eligible for listing: the most
// recent even-month period at or before now, and the one two months before
// it. Period keys are YYYYMM; December wraps into the previous year.
func SurveyPeriods(now time.Time) (current, previous string) {
	year, month := now.Year(), int(now.Month())

	if month%2 == 0 {
		current = periodKey(year, month)
		if month == 2 {
			previous = periodKey(year-1, 12)
		} else {
			previous = periodKey(year, month-2)
		}
		return current, previous
	}

	if month == 1 {
		return periodKey(year-1, 12), periodKey(year-1, 10)
	}

	evenMonth := month - 1
	current = periodKey(year, evenMonth)
	if evenMonth == 2 {
		previous = periodKey(year-1, 12)
	} else {
		previous = periodKey(year, evenMonth-2)
	}
	return current, previous
}

func periodKey(year, month int) string {
	return fmt.Sprintf("%04d%02d", year, month)
}
