package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// ShortfallPostgresRepository reads the cr_ppc_dia fact view. Rows are
// grouped by installation, shift and time window; the schedule label is
// built in-query from the planned in/out times.
type ShortfallPostgresRepository struct {
	db      *sql.DB
	timeout time.Duration
}

var _ interfaces.IShortfallRepository = (*ShortfallPostgresRepository)(nil)

func NewShortfallPostgresRepository(db *sql.DB, timeout time.Duration) *ShortfallPostgresRepository {
	return &ShortfallPostgresRepository{db: db, timeout: timeout}
}

func (r *ShortfallPostgresRepository) Total(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT COUNT(*) AS total_ppc
		FROM cr_ppc_dia ppc
		INNER JOIN usuario_instalaciones ui
		  ON ppc.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
	`

	var total int64
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to query shortfall total: %w", err)
	}
	return total, nil
}

func (r *ShortfallPostgresRepository) GroupsForUser(ctx context.Context, email string) ([]entities.ShortfallGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  ppc.instalacion_rol,
		  ppc.turno,
		  COALESCE(ppc.jornada, '') AS jornada,
		  to_char(ppc.her, 'HH24:MI') AS hora_entrada,
		  to_char(ppc.hsr, 'HH24:MI') AS hora_salida,
		  to_char(ppc.her, 'HH24:MI') || ' - ' || to_char(ppc.hsr, 'HH24:MI') AS horario,
		  COUNT(*) AS cantidad_ppc
		FROM cr_ppc_dia ppc
		INNER JOIN usuario_instalaciones ui
		  ON ppc.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		GROUP BY ppc.instalacion_rol, ppc.turno, ppc.jornada, ppc.her, ppc.hsr
		ORDER BY ppc.instalacion_rol, ppc.her, ppc.hsr
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query shortfall groups: %w", err)
	}
	defer rows.Close()

	return scanShortfallGroups(rows)
}

func (r *ShortfallPostgresRepository) GroupsForInstallation(ctx context.Context, email, installationRole string) ([]entities.ShortfallGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  ppc.instalacion_rol,
		  ppc.turno,
		  COALESCE(ppc.jornada, '') AS jornada,
		  to_char(ppc.her, 'HH24:MI') AS hora_entrada,
		  to_char(ppc.hsr, 'HH24:MI') AS hora_salida,
		  to_char(ppc.her, 'HH24:MI') || ' - ' || to_char(ppc.hsr, 'HH24:MI') AS horario,
		  COUNT(*) AS cantidad_ppc
		FROM cr_ppc_dia ppc
		INNER JOIN usuario_instalaciones ui
		  ON ppc.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		  AND ppc.instalacion_rol = $2
		GROUP BY ppc.instalacion_rol, ppc.turno, ppc.jornada, ppc.her, ppc.hsr
		ORDER BY ppc.her, ppc.hsr
	`

	rows, err := r.db.QueryContext(ctx, query, email, installationRole)
	if err != nil {
		return nil, fmt.Errorf("failed to query installation shortfalls: %w", err)
	}
	defer rows.Close()

	return scanShortfallGroups(rows)
}

func scanShortfallGroups(rows *sql.Rows) ([]entities.ShortfallGroup, error) {
	var out []entities.ShortfallGroup
	for rows.Next() {
		var g entities.ShortfallGroup
		if err := rows.Scan(
			&g.InstallationRole,
			&g.Shift,
			&g.Workday,
			&g.TimeIn,
			&g.TimeOut,
			&g.Schedule,
			&g.Count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shortfall group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shortfall rows: %w", err)
	}
	return out, nil
}
