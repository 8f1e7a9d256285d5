package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// MessagePostgresRepository persists outbound messages and reads the
// received-messages view.
type MessagePostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

var _ interfaces.IMessageRepository = (*MessagePostgresRepository)(nil)

func NewMessagePostgresRepository(db *sql.DB, timeout time.Duration) *MessagePostgresRepository {
	return &MessagePostgresRepository{db: db, timeout: timeout}
}

// ReachableContacts applies the puede_contactar grant, which is narrower
// than the puede_ver visibility used elsewhere.
func (r *MessagePostgresRepository) ReachableContacts(ctx context.Context, email, installationRole string) ([]entities.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT DISTINCT
		  c.contacto_id,
		  c.nombre_contacto,
		  COALESCE(c.telefono, '') AS telefono,
		  COALESCE(c.cargo, '') AS cargo,
		  COALESCE(c.email, '') AS email
		FROM contactos c
		INNER JOIN usuario_contactos uc
		  ON c.contacto_id = uc.contacto_id
		WHERE uc.email_login = $1
		  AND uc.instalacion_rol = $2
		  AND uc.puede_contactar = TRUE
		  AND c.activo = TRUE
	`

	rows, err := r.db.QueryContext(ctx, query, email, installationRole)
	if err != nil {
		return nil, fmt.Errorf("failed to query reachable contacts: %w", err)
	}
	defer rows.Close()

	var out []entities.Contact
	for rows.Next() {
		var c entities.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Position, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan reachable contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reachable contact rows: %w", err)
	}
	return out, nil
}

func (r *MessagePostgresRepository) Create(ctx context.Context, m entities.Message) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO mensajes_whatsapp
		  (mensaje_id, email_usuario, cliente_rol, instalacion_rol, contacto_id, mensaje, estado, fecha_envio)
		VALUES
		  ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.SenderEmail,
		m.ClientRole,
		m.InstallationRole,
		m.ContactID,
		m.Body,
		string(m.State),
		m.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessagePostgresRepository) ReceivedByUser(ctx context.Context, email string, limit int) ([]entities.ReceivedMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  mensaje_id,
		  remitente_email,
		  COALESCE(remitente_nombre, '') AS remitente_nombre,
		  COALESCE(remitente_cliente, '') AS remitente_cliente,
		  instalacion_rol,
		  COALESCE(instalacion_direccion, '') AS instalacion_direccion,
		  COALESCE(instalacion_comuna, '') AS instalacion_comuna,
		  mensaje,
		  estado,
		  fecha_envio,
		  fecha_lectura,
		  leido
		FROM v_mensajes_recibidos
		WHERE destinatario_email_app = $1
		ORDER BY fecha_envio DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query received messages: %w", err)
	}
	defer rows.Close()

	var out []entities.ReceivedMessage
	for rows.Next() {
		var (
			m      entities.ReceivedMessage
			sentAt sql.NullTime
			readAt sql.NullTime
		)
		if err := rows.Scan(
			&m.ID,
			&m.SenderEmail,
			&m.SenderName,
			&m.SenderClient,
			&m.InstallationRole,
			&m.InstallationAddress,
			&m.InstallationCommune,
			&m.Body,
			&m.State,
			&sentAt,
			&readAt,
			&m.Read,
		); err != nil {
			return nil, fmt.Errorf("failed to scan received message: %w", err)
		}
		if sentAt.Valid {
			t := sentAt.Time
			m.SentAt = &t
		}
		if readAt.Valid {
			t := readAt.Time
			m.ReadAt = &t
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read received message rows: %w", err)
	}
	return out, nil
}
