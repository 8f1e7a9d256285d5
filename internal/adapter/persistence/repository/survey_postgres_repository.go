package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"strings"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

const surveyColumns = `
	s.encuesta_id,
	s.periodo,
	s.cliente_rol,
	s.instalacion_rol,
	s.modo,
	COALESCE(s.email_destinatario, '') AS email_destinatario,
	s.estado,
	s.fecha_creacion,
	s.fecha_limite,
	COALESCE(s.respondido_por_email, '') AS respondido_por_email,
	COALESCE(s.respondido_por_nombre, '') AS respondido_por_nombre,
	COALESCE(s.tipo_respuesta, '') AS tipo_respuesta,
	s.fecha_respuesta`

// SurveyPostgresRepository reads survey requests/questions/answers and owns
// the single pendiente -> completada transition.
type SurveyPostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

var _ interfaces.ISurveyRepository = (*SurveyPostgresRepository)(nil)

func NewSurveyPostgresRepository(db *sql.DB, timeout time.Duration) *SurveyPostgresRepository {
	return &SurveyPostgresRepository{db: db, timeout: timeout}
}

func (r *SurveyPostgresRepository) ListForUser(ctx context.Context, email string, periods [2]string, includeAllIndividual bool) ([]entities.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		WITH mis_instalaciones AS (
		  SELECT DISTINCT cliente_rol, instalacion_rol
		  FROM usuario_instalaciones
		  WHERE email_login = $1
		    AND puede_ver = TRUE
		)
		SELECT ` + surveyColumns + `
		FROM encuestas_solicitudes s
		INNER JOIN mis_instalaciones mi
		  ON s.cliente_rol = mi.cliente_rol
		  AND s.instalacion_rol = mi.instalacion_rol
		WHERE s.periodo IN ($2, $3)`
	if !includeAllIndividual {
		query += `
		  AND (
		    s.modo = 'compartida'
		    OR (s.modo = 'individual' AND s.email_destinatario = $1)
		  )`
	}
	query += `
		ORDER BY s.instalacion_rol, s.modo, s.fecha_creacion DESC`

	rows, err := r.db.QueryContext(ctx, query, email, periods[0], periods[1])
	if err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	defer rows.Close()

	var out []entities.Survey
	for rows.Next() {
		s, err := scanSurvey(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read survey rows: %w", err)
	}
	return out, nil
}

func (r *SurveyPostgresRepository) GetByID(ctx context.Context, surveyID string) (entities.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + surveyColumns + `
		FROM encuestas_solicitudes s
		WHERE s.encuesta_id = $1
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, surveyID)
	s, err := scanSurvey(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Survey{}, interfaces.ErrSurveyNotFound
	}
	if err != nil {
		return entities.Survey{}, err
	}
	return s, nil
}

func (r *SurveyPostgresRepository) GetScoped(ctx context.Context, surveyID, email string) (entities.Survey, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + surveyColumns + `,
		  COALESCE(ui.puede_ver, FALSE) AS puede_ver
		FROM encuestas_solicitudes s
		LEFT JOIN usuario_instalaciones ui
		  ON s.cliente_rol = ui.cliente_rol
		  AND s.instalacion_rol = ui.instalacion_rol
		  AND ui.email_login = $2
		WHERE s.encuesta_id = $1
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, surveyID, email)

	var s entities.Survey
	var createdAt, dueAt, respondedAt sql.NullTime
	err := row.Scan(
		&s.ID,
		&s.Period,
		&s.ClientRole,
		&s.InstallationRole,
		&s.Mode,
		&s.RecipientEmail,
		&s.State,
		&createdAt,
		&dueAt,
		&s.RespondedByEmail,
		&s.RespondedByName,
		&s.ResponseOrigin,
		&respondedAt,
		&s.CanView,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Survey{}, interfaces.ErrSurveyNotFound
	}
	if err != nil {
		return entities.Survey{}, fmt.Errorf("failed to scan survey: %w", err)
	}
	assignSurveyTimes(&s, createdAt, dueAt, respondedAt)
	return s, nil
}

func (r *SurveyPostgresRepository) ActiveQuestions(ctx context.Context) ([]entities.SurveyQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  pregunta_id,
		  orden,
		  texto_pregunta,
		  tipo_respuesta,
		  requiere_comentario,
		  obligatoria,
		  COALESCE(categoria, '') AS categoria
		FROM encuestas_preguntas
		WHERE activa = TRUE
		ORDER BY orden ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var out []entities.SurveyQuestion
	for rows.Next() {
		var q entities.SurveyQuestion
		if err := rows.Scan(
			&q.ID,
			&q.Order,
			&q.Prompt,
			&q.AnswerType,
			&q.RequiresComment,
			&q.Mandatory,
			&q.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read question rows: %w", err)
	}
	return out, nil
}

// CompleteWithAnswers claims the pending row first, then inserts the answer
// batch, all inside one transaction. If another responder already claimed
// the request, the conditional UPDATE touches zero rows and the transaction
// is rolled back with nothing persisted.
func (r *SurveyPostgresRepository) CompleteWithAnswers(ctx context.Context, surveyID string, completion entities.SurveyCompletion, answers []entities.SurveyAnswer) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	claim := `
		UPDATE encuestas_solicitudes
		SET estado = 'completada',
		    respondido_por_email = $2,
		    respondido_por_nombre = $3,
		    tipo_respuesta = $4,
		    fecha_respuesta = $5
		WHERE encuesta_id = $1
		  AND estado = 'pendiente'
	`
	res, err := tx.ExecContext(ctx, claim,
		surveyID,
		completion.ResponderEmail,
		completion.ResponderName,
		string(completion.Origin),
		completion.At,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim survey: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	insert := `
		INSERT INTO encuestas_respuestas
		  (respuesta_id, encuesta_id, pregunta_id, respuesta_valor, comentario_adicional, fecha_respuesta)
		VALUES
	`
	placeholders := make([]string, 0, len(answers))
	args := make([]interface{}, 0, len(answers)*6)
	for i, a := range answers {
		base := i * 6
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, a.ID, a.SurveyID, a.QuestionID, a.Value, a.Comment, a.AnsweredAt)
	}
	insert += strings.Join(placeholders, ", ")

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return false, fmt.Errorf("failed to insert answers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit survey response: %w", err)
	}
	return true, nil
}

func (r *SurveyPostgresRepository) AnswersWithQuestions(ctx context.Context, surveyID string) ([]entities.AnsweredQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  r.pregunta_id,
		  p.texto_pregunta,
		  p.tipo_respuesta,
		  r.respuesta_valor,
		  COALESCE(r.comentario_adicional, '') AS comentario,
		  p.orden
		FROM encuestas_respuestas r
		INNER JOIN encuestas_preguntas p
		  ON r.pregunta_id = p.pregunta_id
		WHERE r.encuesta_id = $1
		ORDER BY p.orden ASC
	`

	rows, err := r.db.QueryContext(ctx, query, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var out []entities.AnsweredQuestion
	for rows.Next() {
		var a entities.AnsweredQuestion
		if err := rows.Scan(
			&a.QuestionID,
			&a.Prompt,
			&a.AnswerType,
			&a.Value,
			&a.Comment,
			&a.Order,
		); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read answer rows: %w", err)
	}
	return out, nil
}

func scanSurvey(scan func(dest ...interface{}) error) (entities.Survey, error) {
	var s entities.Survey
	var createdAt, dueAt, respondedAt sql.NullTime
	err := scan(
		&s.ID,
		&s.Period,
		&s.ClientRole,
		&s.InstallationRole,
		&s.Mode,
		&s.RecipientEmail,
		&s.State,
		&createdAt,
		&dueAt,
		&s.RespondedByEmail,
		&s.RespondedByName,
		&s.ResponseOrigin,
		&respondedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Survey{}, err
	}
	if err != nil {
		return entities.Survey{}, fmt.Errorf("failed to scan survey: %w", err)
	}
	assignSurveyTimes(&s, createdAt, dueAt, respondedAt)
	return s, nil
}

func assignSurveyTimes(s *entities.Survey, createdAt, dueAt, respondedAt sql.NullTime) {
	if createdAt.Valid {
		t := createdAt.Time
		s.CreatedAt = &t
	}
	if dueAt.Valid {
		t := dueAt.Time
		s.DueAt = &t
	}
	if respondedAt.Valid {
		t := respondedAt.Time
		s.RespondedAt = &t
	}
}
