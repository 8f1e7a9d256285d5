package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// CoveragePostgresRepository reads the warehouse coverage facts. Every query
// joins usuario_instalaciones on (cliente_rol, instalacion_rol) filtered by
// email_login and puede_ver, so a row the account may not see never leaves
// the database.
type CoveragePostgresRepository struct {
	db           *sql.DB
	timeout      time.Duration
	largeTimeout time.Duration
}

var _ interfaces.ICoverageRepository = (*CoveragePostgresRepository)(nil)

func NewCoveragePostgresRepository(db *sql.DB, timeout, largeTimeout time.Duration) *CoveragePostgresRepository {
	return &CoveragePostgresRepository{db: db, timeout: timeout, largeTimeout: largeTimeout}
}

func (r *CoveragePostgresRepository) GeneralCoverage(ctx context.Context, email string) (entities.CoverageSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  COALESCE(SUM(ci.total_guardias_requeridos), 0) AS total_turnos_activos,
		  COALESCE(SUM(ci.guardias_presentes), 0) AS turnos_cubiertos,
		  COALESCE(SUM(ci.total_guardias_requeridos) - SUM(ci.guardias_presentes), 0) AS turnos_descubiertos,
		  COALESCE(ROUND(
		    100.0 * SUM(ci.guardias_presentes) / NULLIF(SUM(ci.total_guardias_requeridos), 0),
		    2
		  ), 0) AS porcentaje_cobertura_general,
		  MAX(ci.ultima_actualizacion) AS ultima_actualizacion,
		  COALESCE(array_agg(DISTINCT ci.empresa) FILTER (WHERE ci.empresa IS NOT NULL), '{}') AS empresas,
		  (
		    SELECT COUNT(*)
		    FROM cr_ppc_dia ppc
		    INNER JOIN usuario_instalaciones ui2
		      ON ppc.instalacion_rol = ui2.instalacion_rol
		    WHERE ui2.email_login = $1
		      AND ui2.puede_ver = TRUE
		  ) AS total_ppc
		FROM cobertura_instantanea_agregada ci
		INNER JOIN usuario_instalaciones ui
		  ON ci.cliente_rol = ui.cliente_rol
		  AND ci.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
	`

	var (
		s          entities.CoverageSummary
		lastUpdate sql.NullTime
		companies  pq.StringArray
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&s.TotalActiveShifts,
		&s.CoveredShifts,
		&s.UncoveredShifts,
		&s.Percentage,
		&lastUpdate,
		&companies,
		&s.TotalShortfalls,
	)
	if err != nil {
		return entities.CoverageSummary{}, fmt.Errorf("failed to query general coverage: %w", err)
	}

	if lastUpdate.Valid {
		t := lastUpdate.Time
		s.LastUpdate = &t
	}
	s.Companies = []string(companies)
	if s.Companies == nil {
		s.Companies = []string{}
	}
	return s, nil
}

func (r *CoveragePostgresRepository) CoverageByInstallation(ctx context.Context, email string, decimals int) ([]entities.InstallationCoverage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  ci.instalacion_rol,
		  ci.zona,
		  ci.cliente_rol,
		  ci.empresa,
		  SUM(ci.total_guardias_requeridos) AS total_guardias_requeridos,
		  SUM(ci.guardias_presentes) AS guardias_presentes,
		  SUM(ci.total_guardias_requeridos) - SUM(ci.guardias_presentes) AS guardias_ausentes,
		  COALESCE(ROUND(
		    100.0 * SUM(ci.guardias_presentes) / NULLIF(SUM(ci.total_guardias_requeridos), 0),
		    $2
		  ), 0) AS porcentaje_cobertura,
		  SUM(ci.turnos_cubiertos) AS turnos_cubiertos,
		  SUM(ci.turnos_descubiertos) AS turnos_descubiertos,
		  COALESCE(ppc.cantidad_ppc, 0) AS ppc,
		  faceid.nombre IS NOT NULL AS tiene_faceid,
		  faceid.numero AS faceid_numero,
		  faceid.ult_conexion AS faceid_ultima_conexion
		FROM cobertura_instantanea_agregada ci
		INNER JOIN usuario_instalaciones ui
		  ON ci.cliente_rol = ui.cliente_rol
		  AND ci.instalacion_rol = ui.instalacion_rol
		LEFT JOIN cr_equipos_faceid faceid
		  ON ci.instalacion_rol = faceid.nombre
		LEFT JOIN (
		  SELECT instalacion_rol, COUNT(*) AS cantidad_ppc
		  FROM cr_ppc_dia
		  GROUP BY instalacion_rol
		) ppc ON ci.instalacion_rol = ppc.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		GROUP BY ci.instalacion_rol, ci.zona, ci.cliente_rol, ci.empresa,
		         faceid.nombre, faceid.numero, faceid.ult_conexion, ppc.cantidad_ppc
		ORDER BY guardias_ausentes DESC, porcentaje_cobertura ASC, ci.instalacion_rol
	`

	rows, err := r.db.QueryContext(ctx, query, email, decimals)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage by installation: %w", err)
	}
	defer rows.Close()

	return scanInstallationRows(rows, false)
}

func (r *CoveragePostgresRepository) CoverageByService(ctx context.Context, email string) ([]entities.InstallationCoverage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT
		  ci.instalacion_rol,
		  ci.zona,
		  ci.cliente_rol,
		  ci.empresa,
		  ci.tipo_de_servicio,
		  SUM(ci.total_guardias_requeridos) AS total_guardias_requeridos,
		  SUM(ci.guardias_presentes) AS guardias_presentes,
		  SUM(ci.total_guardias_requeridos) - SUM(ci.guardias_presentes) AS guardias_ausentes,
		  COALESCE(ROUND(
		    100.0 * SUM(ci.guardias_presentes) / NULLIF(SUM(ci.total_guardias_requeridos), 0),
		    1
		  ), 0) AS porcentaje_cobertura,
		  SUM(ci.turnos_cubiertos) AS turnos_cubiertos,
		  SUM(ci.turnos_descubiertos) AS turnos_descubiertos,
		  COALESCE(ppc.cantidad_ppc, 0) AS ppc,
		  faceid.nombre IS NOT NULL AS tiene_faceid,
		  faceid.numero AS faceid_numero,
		  faceid.ult_conexion AS faceid_ultima_conexion
		FROM cobertura_instantanea_agregada ci
		INNER JOIN usuario_instalaciones ui
		  ON ci.cliente_rol = ui.cliente_rol
		  AND ci.instalacion_rol = ui.instalacion_rol
		LEFT JOIN cr_equipos_faceid faceid
		  ON ci.instalacion_rol = faceid.nombre
		LEFT JOIN (
		  SELECT instalacion_rol, COUNT(*) AS cantidad_ppc
		  FROM cr_ppc_dia
		  GROUP BY instalacion_rol
		) ppc ON ci.instalacion_rol = ppc.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		GROUP BY ci.instalacion_rol, ci.zona, ci.cliente_rol, ci.empresa, ci.tipo_de_servicio,
		         faceid.nombre, faceid.numero, faceid.ult_conexion, ppc.cantidad_ppc
		ORDER BY ci.instalacion_rol, ci.tipo_de_servicio, guardias_ausentes DESC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query coverage by service: %w", err)
	}
	defer rows.Close()

	return scanInstallationRows(rows, true)
}

func scanInstallationRows(rows *sql.Rows, withService bool) ([]entities.InstallationCoverage, error) {
	var out []entities.InstallationCoverage
	for rows.Next() {
		var (
			row          entities.InstallationCoverage
			zone         sql.NullString
			company      sql.NullString
			serviceType  sql.NullString
			faceIDNumber sql.NullString
			faceIDSeen   sql.NullTime
		)

		dest := []interface{}{&row.InstallationRole, &zone, &row.ClientRole, &company}
		if withService {
			dest = append(dest, &serviceType)
		}
		dest = append(dest,
			&row.RequiredGuards,
			&row.PresentGuards,
			&row.AbsentGuards,
			&row.Percentage,
			&row.CoveredShifts,
			&row.UncoveredShifts,
			&row.Shortfalls,
			&row.HasFaceID,
			&faceIDNumber,
			&faceIDSeen,
		)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan installation coverage: %w", err)
		}

		row.Zone = zone.String
		row.Company = company.String
		row.ServiceType = serviceType.String
		if faceIDNumber.Valid {
			row.FaceIDNumber = &faceIDNumber.String
		}
		if faceIDSeen.Valid {
			t := faceIDSeen.Time
			row.FaceIDLastSeen = &t
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read installation coverage rows: %w", err)
	}
	return out, nil
}

func (r *CoveragePostgresRepository) ShiftDetails(ctx context.Context, email, installationRole string) ([]entities.ShiftDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, r.largeTimeout)
	defer cancel()

	query := `
		SELECT
		  ci.instalacion_rol,
		  ci.empresa,
		  ci.turno AS codigo_turno,
		  ci.cargo,
		  to_char(ci.her, 'HH24:MI') AS hora_entrada_planificada,
		  to_char(ci.hsr, 'HH24:MI') AS hora_salida_planificada,
		  ci.rutrol AS rut_planificado,
		  ci.nombrerol AS nombre_planificado,
		  ci.rutasi AS rut_asistente,
		  TRIM(split_part(ci.relevo, ' | ', -1)) AS nombre_asistente,
		  to_char(ci.entrada, 'HH24:MI') AS hora_entrada_real,
		  to_char(ci.salida, 'HH24:MI') AS hora_salida_real,
		  ci.asistencia,
		  ci.cob AS estado_cobertura,
		  ci.tvf AS turno_extra,
		  ci.relevo,
		  ci.tipo,
		  ci.tipo_de_servicio,
		  ci.motivoppc AS motivo_incumplimiento,
		  CASE
		    WHEN ci.asistencia = 1 AND ci.entrada > ci.her THEN
		      'Retraso: ' || EXTRACT(EPOCH FROM (ci.entrada - ci.her))::int / 60 || ' minutos'
		    WHEN ci.asistencia = 1 THEN 'A tiempo'
		    ELSE NULL
		  END AS puntualidad
		FROM cobertura_instantanea ci
		INNER JOIN usuario_instalaciones ui
		  ON ci.cliente_rol = ui.cliente_rol
		  AND ci.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		  AND ($2 = '' OR ci.instalacion_rol = $2)
		ORDER BY ci.instalacion_rol, ci.turno, ci.her
	`

	rows, err := r.db.QueryContext(ctx, query, email, installationRole)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift details: %w", err)
	}
	defer rows.Close()

	var out []entities.ShiftDetail
	for rows.Next() {
		var (
			d            entities.ShiftDetail
			company      sql.NullString
			plannedIn    sql.NullString
			plannedOut   sql.NullString
			plannedRut   sql.NullString
			plannedName  sql.NullString
			attendeeRut  sql.NullString
			attendeeName sql.NullString
			actualIn     sql.NullString
			actualOut    sql.NullString
			attendance   sql.NullInt64
			covState     sql.NullString
			extraShift   sql.NullString
			relief       sql.NullString
			shiftType    sql.NullString
			serviceType  sql.NullString
			reason       sql.NullString
			punctuality  sql.NullString
		)

		if err := rows.Scan(
			&d.InstallationRole,
			&company,
			&d.ShiftCode,
			&d.Position,
			&plannedIn,
			&plannedOut,
			&plannedRut,
			&plannedName,
			&attendeeRut,
			&attendeeName,
			&actualIn,
			&actualOut,
			&attendance,
			&covState,
			&extraShift,
			&relief,
			&shiftType,
			&serviceType,
			&reason,
			&punctuality,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift detail: %w", err)
		}

		d.Company = company.String
		d.PlannedIn = plannedIn.String
		d.PlannedOut = plannedOut.String
		d.PlannedRut = plannedRut.String
		d.PlannedName = plannedName.String
		d.Attended = attendance.Int64 == 1
		d.CoverageState = covState.String
		d.Type = shiftType.String
		d.ServiceType = serviceType.String
		if d.ServiceType == "" {
			d.ServiceType = d.Type
		}
		if attendeeRut.Valid {
			d.AttendeeRut = &attendeeRut.String
		}
		if attendeeName.Valid {
			d.AttendeeName = &attendeeName.String
		}
		if actualIn.Valid {
			d.ActualIn = &actualIn.String
		}
		if actualOut.Valid {
			d.ActualOut = &actualOut.String
		}
		if extraShift.Valid {
			d.ExtraShift = &extraShift.String
		}
		if relief.Valid {
			d.Relief = &relief.String
		}
		if reason.Valid {
			d.NonComplianceReason = &reason.String
		}
		if punctuality.Valid {
			d.Punctuality = &punctuality.String
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift detail rows: %w", err)
	}
	return out, nil
}

func (r *CoveragePostgresRepository) WeeklyHistory(ctx context.Context, email string, days int) ([]entities.WeeklyCoverage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.largeTimeout)
	defer cancel()

	query := `
		SELECT
		  ah.semana,
		  ah.isoweek,
		  ah.ano,
		  MIN(ah.dia) AS fecha_inicio,
		  MAX(ah.dia) AS fecha_fin,
		  to_char(MIN(ah.dia), 'DD/MM') || ' - ' || to_char(MAX(ah.dia), 'DD/MM') AS periodo,
		  COALESCE(SUM(ah.horas_planificadas), 0) AS horas_presupuestadas,
		  COALESCE(SUM(ah.horas_entregadas), 0) AS horas_entregadas,
		  COALESCE(SUM(ah.horas_planificadas) - SUM(ah.horas_entregadas), 0) AS horas_faltantes,
		  COALESCE(ROUND(
		    100.0 * SUM(ah.horas_entregadas) / NULLIF(SUM(ah.horas_planificadas), 0),
		    2
		  ), 0) AS porcentaje_cumplimiento,
		  COUNT(*) AS total_registros,
		  COALESCE(SUM(ah.asistencia), 0) AS total_asistencias,
		  COUNT(*) - COALESCE(SUM(ah.asistencia), 0) AS total_ausencias,
		  COUNT(DISTINCT ah.instalacion_rol) AS num_instalaciones
		FROM asistencia_historica ah
		INNER JOIN usuario_instalaciones ui
		  ON ah.cliente_rol = ui.cliente_rol
		  AND ah.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		  AND ah.dia >= CURRENT_DATE - $2::int
		  AND ah.dia <= CURRENT_DATE
		GROUP BY ah.semana, ah.isoweek, ah.ano
		ORDER BY ah.ano ASC, ah.isoweek ASC
	`

	rows, err := r.db.QueryContext(ctx, query, email, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly history: %w", err)
	}
	defer rows.Close()

	var out []entities.WeeklyCoverage
	for rows.Next() {
		var (
			w         entities.WeeklyCoverage
			startDate sql.NullTime
			endDate   sql.NullTime
		)
		if err := rows.Scan(
			&w.Week,
			&w.ISOWeek,
			&w.Year,
			&startDate,
			&endDate,
			&w.PeriodLabel,
			&w.PlannedHours,
			&w.DeliveredHours,
			&w.MissingHours,
			&w.Percentage,
			&w.TotalRecords,
			&w.TotalAttendances,
			&w.TotalAbsences,
			&w.Installations,
		); err != nil {
			return nil, fmt.Errorf("failed to scan weekly history: %w", err)
		}
		if startDate.Valid {
			t := startDate.Time
			w.StartDate = &t
		}
		if endDate.Valid {
			t := endDate.Time
			w.EndDate = &t
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly history rows: %w", err)
	}
	return out, nil
}

func (r *CoveragePostgresRepository) HistoryByInstallation(ctx context.Context, email string, days int) ([]entities.InstallationWeekCoverage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.largeTimeout)
	defer cancel()

	query := `
		SELECT
		  ah.semana,
		  ah.isoweek,
		  ah.ano,
		  'Semana ' || ah.isoweek || ' - ' || ah.ano AS periodo,
		  ah.instalacion_rol,
		  ah.zona,
		  ah.empresa,
		  COALESCE(SUM(ah.horas_planificadas), 0) AS horas_presupuestadas,
		  COALESCE(SUM(ah.horas_entregadas), 0) AS horas_entregadas,
		  COALESCE(SUM(ah.horas_planificadas) - SUM(ah.horas_entregadas), 0) AS horas_faltantes,
		  COALESCE(ROUND(
		    100.0 * SUM(ah.horas_entregadas) / NULLIF(SUM(ah.horas_planificadas), 0),
		    2
		  ), 0) AS porcentaje_cumplimiento,
		  COUNT(DISTINCT ah.rutrol) AS guardias_planificados,
		  COALESCE(SUM(ah.asistencia), 0) AS asistencias_registradas,
		  COUNT(*) FILTER (WHERE ah.tvf IS NOT NULL AND ah.tvf <> '') AS cantidad_turnos_extra
		FROM asistencia_historica ah
		INNER JOIN usuario_instalaciones ui
		  ON ah.cliente_rol = ui.cliente_rol
		  AND ah.instalacion_rol = ui.instalacion_rol
		WHERE ui.email_login = $1
		  AND ui.puede_ver = TRUE
		  AND ah.dia >= CURRENT_DATE - $2::int
		  AND ah.dia <= CURRENT_DATE
		GROUP BY ah.semana, ah.isoweek, ah.ano, ah.instalacion_rol, ah.zona, ah.empresa
		ORDER BY ah.ano DESC, ah.isoweek DESC, ah.instalacion_rol
	`

	rows, err := r.db.QueryContext(ctx, query, email, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query history by installation: %w", err)
	}
	defer rows.Close()

	var out []entities.InstallationWeekCoverage
	for rows.Next() {
		var (
			w       entities.InstallationWeekCoverage
			zone    sql.NullString
			company sql.NullString
		)
		if err := rows.Scan(
			&w.Week,
			&w.ISOWeek,
			&w.Year,
			&w.PeriodLabel,
			&w.InstallationRole,
			&zone,
			&company,
			&w.PlannedHours,
			&w.DeliveredHours,
			&w.MissingHours,
			&w.Percentage,
			&w.PlannedGuards,
			&w.Attendances,
			&w.ExtraShifts,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history by installation: %w", err)
		}
		w.Zone = zone.String
		w.Company = company.String
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return out, nil
}
