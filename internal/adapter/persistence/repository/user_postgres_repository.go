package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// UserPostgresRepository reads the v_permisos_usuarios view and writes the
// two mutable columns this service owns on usuarios_app: firebase_uid and
// fcm_token/ultima_sesion.
type UserPostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(db *sql.DB, timeout time.Duration) *UserPostgresRepository {
	return &UserPostgresRepository{db: db, timeout: timeout}
}

func (r *UserPostgresRepository) GetAccountByEmail(ctx context.Context, email string) (entities.UserAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  email_login,
		  COALESCE(firebase_uid, '') AS firebase_uid,
		  nombre_completo,
		  COALESCE(cliente_rol, '') AS cliente_rol,
		  rol_id,
		  nombre_rol,
		  puede_ver_cobertura,
		  puede_ver_encuestas,
		  puede_enviar_mensajes,
		  puede_ver_empresas,
		  puede_ver_metricas_globales,
		  puede_ver_trabajadores,
		  puede_ver_mensajes_recibidos,
		  es_admin,
		  ver_todas_instalaciones,
		  usuario_activo
		FROM v_permisos_usuarios
		WHERE email_login = $1
		LIMIT 1
	`

	var a entities.UserAccount
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&a.Email,
		&a.StoredUID,
		&a.FullName,
		&a.ClientRole,
		&a.RoleID,
		&a.RoleName,
		&a.Permissions.ViewCoverage,
		&a.Permissions.ViewSurveys,
		&a.Permissions.SendMessages,
		&a.Permissions.ViewCompanies,
		&a.Permissions.ViewGlobalMetrics,
		&a.Permissions.ViewWorkers,
		&a.Permissions.ViewReceivedMessages,
		&a.Permissions.Admin,
		&a.SeesAllInstallations,
		&a.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.UserAccount{}, interfaces.ErrAccountNotFound
	}
	if err != nil {
		return entities.UserAccount{}, fmt.Errorf("failed to query account: %w", err)
	}
	return a, nil
}

// UpdateStoredUID only touches rows where the uid actually differs, so the
// repeat-login path writes nothing.
func (r *UserPostgresRepository) UpdateStoredUID(ctx context.Context, email, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE usuarios_app
		SET firebase_uid = $2
		WHERE email_login = $1
		  AND (firebase_uid IS NULL OR firebase_uid <> $2)
	`
	if _, err := r.db.ExecContext(ctx, query, email, uid); err != nil {
		return fmt.Errorf("failed to update stored uid: %w", err)
	}
	return nil
}

func (r *UserPostgresRepository) UpdateDeviceToken(ctx context.Context, email, token string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE usuarios_app
		SET fcm_token = $2,
		    ultima_sesion = CURRENT_TIMESTAMP
		WHERE email_login = $1
	`
	if _, err := r.db.ExecContext(ctx, query, email, token); err != nil {
		return fmt.Errorf("failed to update device token: %w", err)
	}
	return nil
}

func (r *UserPostgresRepository) DeviceTokensForInstallation(ctx context.Context, installationRole, excludeEmail string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT DISTINCT u.fcm_token
		FROM usuario_instalaciones ui
		INNER JOIN usuarios_app u ON ui.email_login = u.email_login
		WHERE ui.instalacion_rol = $1
		  AND u.email_login <> $2
		  AND u.usuario_activo = TRUE
		  AND u.fcm_token IS NOT NULL
		  AND u.fcm_token <> ''
	`

	rows, err := r.db.QueryContext(ctx, query, installationRole, excludeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read device token rows: %w", err)
	}
	return tokens, nil
}

func (r *UserPostgresRepository) ListActiveAccounts(ctx context.Context) ([]entities.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  email_login,
		  COALESCE(firebase_uid, '') AS firebase_uid,
		  nombre_completo,
		  COALESCE(cliente_rol, '') AS cliente_rol,
		  rol_id,
		  nombre_rol,
		  ver_todas_instalaciones,
		  usuario_activo,
		  ultima_sesion
		FROM v_permisos_usuarios
		WHERE usuario_activo = TRUE
		ORDER BY email_login
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active accounts: %w", err)
	}
	defer rows.Close()

	var out []entities.UserProfile
	for rows.Next() {
		var (
			p           entities.UserProfile
			lastSession sql.NullTime
		)
		if err := rows.Scan(
			&p.Email,
			&p.UID,
			&p.FullName,
			&p.ClientRole,
			&p.RoleID,
			&p.RoleName,
			&p.SeesAllInstallations,
			&p.Active,
			&lastSession,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if lastSession.Valid {
			t := lastSession.Time
			p.LastSession = &t
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return out, nil
}
