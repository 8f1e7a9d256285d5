package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var surveyRowColumns = []string{
	"encuesta_id", "periodo", "cliente_rol", "instalacion_rol", "modo",
	"email_destinatario", "estado", "fecha_creacion", "fecha_limite",
	"respondido_por_email", "respondido_por_nombre", "tipo_respuesta", "fecha_respuesta",
}

func TestSurveyPostgresRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSurveyPostgresRepository(db, testQueryTimeout)

	created := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	due := created.AddDate(0, 0, 30)
	rows := sqlmock.NewRows(surveyRowColumns).AddRow(
		"s-1", "202504", "ACME", "INST-A", "compartida",
		"", "pendiente", created, due,
		"", "", "", nil,
	)

	mock.ExpectQuery("FROM encuestas_solicitudes s").
		WithArgs("s-1").
		WillReturnRows(rows)

	s, err := repo.GetByID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", s.ID)
	assert.Equal(t, entities.SurveyModeShared, s.Mode)
	assert.Equal(t, entities.SurveyStatePending, s.State)
	require.NotNil(t, s.DueAt)
	assert.True(t, s.DueAt.Equal(due))
	assert.Nil(t, s.RespondedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyPostgresRepository_GetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSurveyPostgresRepository(db, testQueryTimeout)

	mock.ExpectQuery("FROM encuestas_solicitudes s").
		WithArgs("s-x").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "s-x")
	assert.ErrorIs(t, err, interfaces.ErrSurveyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyPostgresRepository_ListForUserFiltersIndividual(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSurveyPostgresRepository(db, testQueryTimeout)

	// Tenant-side listings must restrict individual requests to the caller.
	mock.ExpectQuery("s.modo = 'individual' AND s.email_destinatario").
		WithArgs("cli@acme.cl", "202504", "202502").
		WillReturnRows(sqlmock.NewRows(surveyRowColumns))

	out, err := repo.ListForUser(context.Background(), "cli@acme.cl", [2]string{"202504", "202502"}, false)
	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSurveyPostgresRepository_CompleteWithAnswers(t *testing.T) {
	completion := entities.SurveyCompletion{
		ResponderEmail: "cli@acme.cl",
		ResponderName:  "Cliente Uno",
		Origin:         entities.ResponseOriginClient,
		At:             time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC),
	}
	answers := []entities.SurveyAnswer{
		{ID: "r-1", SurveyID: "s-1", QuestionID: "q-1", Value: "5", AnsweredAt: completion.At},
		{ID: "r-2", SurveyID: "s-1", QuestionID: "q-2", Value: "no", Comment: "detalle", AnsweredAt: completion.At},
	}

	t.Run("claim wins and commits", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSurveyPostgresRepository(db, testQueryTimeout)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE encuestas_solicitudes").
			WithArgs("s-1", "cli@acme.cl", "Cliente Uno", "cliente", completion.At).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO encuestas_respuestas").
			WithArgs(
				"r-1", "s-1", "q-1", "5", "", completion.At,
				"r-2", "s-1", "q-2", "no", "detalle", completion.At,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		claimed, err := repo.CompleteWithAnswers(context.Background(), "s-1", completion, answers)
		require.NoError(t, err)
		assert.True(t, claimed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost claim rolls back without inserting", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSurveyPostgresRepository(db, testQueryTimeout)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE encuestas_solicitudes").
			WithArgs("s-1", "cli@acme.cl", "Cliente Uno", "cliente", completion.At).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		claimed, err := repo.CompleteWithAnswers(context.Background(), "s-1", completion, answers)
		require.NoError(t, err)
		assert.False(t, claimed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSurveyPostgresRepository_AnswersWithQuestions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSurveyPostgresRepository(db, testQueryTimeout)

	rows := sqlmock.NewRows([]string{
		"pregunta_id", "texto_pregunta", "tipo_respuesta", "respuesta_valor", "comentario", "orden",
	}).
		AddRow("q-1", "¿Cómo evalúa el servicio?", "escala", "5", "", 1).
		AddRow("q-2", "¿Recomendaría el servicio?", "si_no", "si", "sin reparos", 2)

	mock.ExpectQuery("FROM encuestas_respuestas r").
		WithArgs("s-1").
		WillReturnRows(rows)

	out, err := repo.AnswersWithQuestions(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "q-1", out[0].QuestionID)
	assert.Equal(t, 2, out[1].Order)
	require.NoError(t, mock.ExpectationsWereMet())
}
