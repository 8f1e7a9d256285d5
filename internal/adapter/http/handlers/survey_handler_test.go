package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/adapter/http/handlers/mocks"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
)

func testPrincipal() entities.Principal {
	return entities.Principal{
		UID:        "uid-1",
		Email:      "cli@acme.cl",
		FullName:   "Cliente Uno",
		ClientRole: "ACME",
		RoleID:     entities.RoleClient,
		Permissions: entities.PermissionSet{
			ViewCoverage: true,
			ViewSurveys:  true,
		},
	}
}

// withPrincipal seeds the request scope the way the auth middleware does.
func withPrincipal(p entities.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", p)
		c.Next()
	}
}

func TestSurveyHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.ISurveyUseCase) *gin.Engine {
		r := gin.New()
		r.Use(withPrincipal(testPrincipal()))
		h := NewSurveyHandler(uc)
		r.POST("/api/encuestas/:encuesta_id/responder", h.Respond)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/encuestas/s-1/responder", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("survey not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Respond(gomock.Any(), gomock.Any(), "s-x", gomock.Any()).Return(0, usecase.ErrSurveyNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/encuestas/s-x/responder", bytes.NewBufferString(`{"respuestas":[{"pregunta_id":"q-1","respuesta_valor":"5"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("expired survey", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Respond(gomock.Any(), gomock.Any(), "s-1", gomock.Any()).Return(0, usecase.ErrSurveyExpired)

		req := httptest.NewRequest(http.MethodPost, "/api/encuestas/s-1/responder", bytes.NewBufferString(`{"respuestas":[{"pregunta_id":"q-1","respuesta_valor":"5"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "SURVEY_EXPIRED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().
			Respond(gomock.Any(), gomock.Any(), "s-1", []usecase.AnswerInput{
				{QuestionID: "q-1", Value: "5"},
				{QuestionID: "q-2", Value: "no", Comment: "detalle"},
			}).
			Return(2, nil)

		body := `{"respuestas":[{"pregunta_id":"q-1","respuesta_valor":"5"},{"pregunta_id":"q-2","respuesta_valor":"no","comentario":"detalle"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/encuestas/s-1/responder", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["encuesta_id"] != "s-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if resp["respuestas_guardadas"] != float64(2) {
			t.Fatalf("expected 2 saved answers, got %v", resp["respuestas_guardadas"])
		}
	})
}

func TestSurveyHandler_Questions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden survey", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		h := NewSurveyHandler(uc)

		r := gin.New()
		r.Use(withPrincipal(testPrincipal()))
		r.GET("/api/encuestas/:encuesta_id/preguntas", h.Questions)

		uc.EXPECT().Questions(gomock.Any(), gomock.Any(), "s-1").Return(entities.Survey{}, nil, usecase.ErrSurveyForbidden)

		req := httptest.NewRequest(http.MethodGet, "/api/encuestas/s-1/preguntas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISurveyUseCase(ctrl)
		h := NewSurveyHandler(uc)

		r := gin.New()
		r.Use(withPrincipal(testPrincipal()))
		r.GET("/api/encuestas/:encuesta_id/preguntas", h.Questions)

		due := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)
		survey := entities.Survey{
			ID:               "s-1",
			Period:           "202504",
			InstallationRole: "INST-A",
			Mode:             entities.SurveyModeShared,
			State:            entities.SurveyStatePending,
			DueAt:            &due,
		}
		questions := []entities.SurveyQuestion{
			{ID: "q-1", Order: 1, Prompt: "¿Cómo evalúa el servicio?", AnswerType: "escala"},
		}
		uc.EXPECT().Questions(gomock.Any(), gomock.Any(), "s-1").Return(survey, questions, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/encuestas/s-1/preguntas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["success"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSurveyHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISurveyUseCase(ctrl)
	h := NewSurveyHandler(uc)

	r := gin.New()
	r.Use(withPrincipal(testPrincipal()))
	r.GET("/api/encuestas/mis-encuestas", h.ListMine)

	groups := []usecase.InstallationSurveys{
		{
			ClientRole:       "ACME",
			InstallationRole: "INST-A",
			Total:            2,
			Answered:         1,
			Pending:          1,
			Surveys: []usecase.SurveyListItem{
				{Survey: entities.Survey{ID: "s-1", Period: "202504", InstallationRole: "INST-A", Mode: entities.SurveyModeShared, State: entities.SurveyStatePending}, CanRespond: true},
				{Survey: entities.Survey{ID: "s-2", Period: "202502", InstallationRole: "INST-A", Mode: entities.SurveyModeShared, State: entities.SurveyStateCompleted}, CanViewAnswers: true},
			},
		},
	}
	uc.EXPECT().ListMine(gomock.Any(), gomock.Any()).Return(groups, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/encuestas/mis-encuestas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success       bool `json:"success"`
		Installations []struct {
			InstallationRole string `json:"instalacion_rol"`
			Total            int    `json:"total_encuestas"`
		} `json:"instalaciones"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if len(resp.Installations) != 1 || resp.Installations[0].InstallationRole != "INST-A" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
	if resp.Installations[0].Total != 2 {
		t.Fatalf("expected 2 surveys, got %d", resp.Installations[0].Total)
	}
}

func TestMapSurveyError(t *testing.T) {
	if got := mapSurveyError(usecase.ErrSurveyNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSurveyError(usecase.ErrSurveyForbidden); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	// State errors are all 400; the client branches on the code field.
	for _, err := range []error{
		usecase.ErrSurveyAlreadyAnswered,
		usecase.ErrSurveyExpired,
		usecase.ErrDuplicateResponse,
		usecase.ErrSurveyNotCompleted,
		usecase.ErrNoAnswers,
	} {
		if got := mapSurveyError(err); got.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, got.HTTPStatus)
		}
	}
	if got := mapSurveyError(context.DeadlineExceeded); got.HTTPStatus != http.StatusServiceUnavailable || got.Code != "UNAVAILABLE" {
		t.Fatalf("expected 503 UNAVAILABLE")
	}
	if got := mapSurveyError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
