package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// ContactPostgresRepository reads contact reference data and the messaging
// directory views.
type ContactPostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

var _ interfaces.IContactRepository = (*ContactPostgresRepository)(nil)

func NewContactPostgresRepository(db *sql.DB, timeout time.Duration) *ContactPostgresRepository {
	return &ContactPostgresRepository{db: db, timeout: timeout}
}

func (r *ContactPostgresRepository) ByInstallation(ctx context.Context, email, installationRole string) ([]entities.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  c.contacto_id,
		  c.nombre_contacto,
		  COALESCE(c.telefono, '') AS telefono,
		  COALESCE(c.cargo, '') AS cargo,
		  COALESCE(c.email, '') AS email
		FROM usuario_instalaciones ui
		INNER JOIN instalacion_contacto ic
		  ON ui.cliente_rol = ic.cliente_rol
		  AND ui.instalacion_rol = ic.instalacion_rol
		INNER JOIN contactos c ON ic.contacto_id = c.contacto_id
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		  AND ui.instalacion_rol = $2
		  AND c.activo = TRUE
		ORDER BY c.nombre_contacto
	`

	rows, err := r.db.QueryContext(ctx, query, email, installationRole)
	if err != nil {
		return nil, fmt.Errorf("failed to query installation contacts: %w", err)
	}
	defer rows.Close()

	var out []entities.Contact
	for rows.Next() {
		var c entities.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Position, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contact rows: %w", err)
	}
	return out, nil
}

// PeerClients returns tenant-side accounts sharing at least one installation
// with the given account, excluding the account itself.
func (r *ContactPostgresRepository) PeerClients(ctx context.Context, email string) ([]entities.ClientContact, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		WITH instalaciones_usuario AS (
		  SELECT DISTINCT instalacion_rol
		  FROM usuario_instalaciones
		  WHERE email_login = $1
		)
		SELECT DISTINCT
		  u.email_login,
		  COALESCE(u.firebase_uid, '') AS firebase_uid,
		  u.nombre_completo,
		  u.rol_id,
		  COALESCE(u.cliente_rol, '') AS cliente_rol
		FROM instalaciones_usuario iu
		INNER JOIN usuario_instalaciones ui
		  ON iu.instalacion_rol = ui.instalacion_rol
		INNER JOIN v_permisos_usuarios u
		  ON ui.email_login = u.email_login
		WHERE u.rol_id = 'CLIENTE'
		  AND u.usuario_activo = TRUE
		  AND u.email_login <> $1
		ORDER BY u.nombre_completo
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query peer clients: %w", err)
	}
	defer rows.Close()

	var out []entities.ClientContact
	for rows.Next() {
		var c entities.ClientContact
		if err := rows.Scan(&c.Email, &c.UID, &c.FullName, &c.RoleID, &c.ClientRole); err != nil {
			return nil, fmt.Errorf("failed to scan peer client: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read peer client rows: %w", err)
	}
	return out, nil
}

func (r *ContactPostgresRepository) WFSAUsersForInstallation(ctx context.Context, installationRole string) ([]entities.WFSAUser, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  u.email_login,
		  COALESCE(u.firebase_uid, '') AS firebase_uid,
		  u.nombre_completo,
		  u.rol_id
		FROM instalacion_contacto ic
		INNER JOIN usuario_contactos uc
		  ON ic.contacto_id = uc.contacto_id
		  AND ic.instalacion_rol = uc.instalacion_rol
		INNER JOIN v_permisos_usuarios u
		  ON uc.email_login = u.email_login
		WHERE ic.instalacion_rol = $1
		  AND u.rol_id <> 'CLIENTE'
		  AND u.usuario_activo = TRUE
		ORDER BY u.nombre_completo
	`

	rows, err := r.db.QueryContext(ctx, query, installationRole)
	if err != nil {
		return nil, fmt.Errorf("failed to query wfsa users: %w", err)
	}
	defer rows.Close()

	var out []entities.WFSAUser
	for rows.Next() {
		var u entities.WFSAUser
		if err := rows.Scan(&u.Email, &u.UID, &u.FullName, &u.RoleID); err != nil {
			return nil, fmt.Errorf("failed to scan wfsa user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wfsa user rows: %w", err)
	}
	return out, nil
}
