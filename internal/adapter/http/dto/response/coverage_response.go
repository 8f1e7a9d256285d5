package response

import (
	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"
)

// GeneralCoverageResponse is the tenant-wide aggregate with its derived
// traffic light.
type GeneralCoverageResponse struct {
	TotalActiveShifts int64    `json:"total_turnos_activos"`
	CoveredShifts     int64    `json:"turnos_cubiertos"`
	UncoveredShifts   int64    `json:"turnos_descubiertos"`
	Percentage        float64  `json:"porcentaje_cobertura_general"`
	TrafficLight      string   `json:"estado_semaforo"`
	LastUpdate        *string  `json:"ultima_actualizacion"`
	NextUpdate        *string  `json:"proxima_actualizacion,omitempty"`
	TotalShortfalls   int64    `json:"total_ppc"`
	Companies         []string `json:"empresas"`
}

func FromGeneralCoverage(g usecase.GeneralCoverage) GeneralCoverageResponse {
	return GeneralCoverageResponse{
		TotalActiveShifts: g.Summary.TotalActiveShifts,
		CoveredShifts:     g.Summary.CoveredShifts,
		UncoveredShifts:   g.Summary.UncoveredShifts,
		Percentage:        g.Summary.Percentage,
		TrafficLight:      string(g.Light),
		LastUpdate:        isoTime(g.Summary.LastUpdate),
		NextUpdate:        isoTime(g.NextUpdate),
		TotalShortfalls:   g.Summary.TotalShortfalls,
		Companies:         g.Summary.Companies,
	}
}

// InstallationCoverageResponse is one per-installation aggregate row.
type InstallationCoverageResponse struct {
	InstallationRole string  `json:"instalacion_rol"`
	Zone             string  `json:"zona"`
	ClientRole       string  `json:"cliente_rol"`
	Company          string  `json:"empresa"`
	ServiceType      string  `json:"tipo_de_servicio,omitempty"`
	RequiredGuards   int64   `json:"total_guardias_requeridos"`
	PresentGuards    int64   `json:"guardias_presentes"`
	AbsentGuards     int64   `json:"guardias_ausentes"`
	Percentage       float64 `json:"porcentaje_cobertura"`
	TrafficLight     string  `json:"estado_semaforo"`
	CoveredShifts    int64   `json:"turnos_cubiertos"`
	UncoveredShifts  int64   `json:"turnos_descubiertos"`
	Shortfalls       int64   `json:"ppc"`
	HasFaceID        bool    `json:"tiene_faceid"`
	FaceIDNumber     *string `json:"faceid_numero"`
	FaceIDLastSeen   *string `json:"faceid_ultima_conexion"`
}

// InstallationCoverageListResponse wraps the rows with their count. The
// reduced-precision variant marks itself so the client can tell the payloads
// apart.
type InstallationCoverageListResponse struct {
	TotalInstallations int                            `json:"total_instalaciones"`
	Optimized          bool                           `json:"optimized,omitempty"`
	Installations      []InstallationCoverageResponse `json:"instalaciones"`
}

func FromInstallationCoverageItems(items []usecase.InstallationCoverageItem, withService, optimized bool) InstallationCoverageListResponse {
	out := make([]InstallationCoverageResponse, 0, len(items))
	for _, item := range items {
		row := InstallationCoverageResponse{
			InstallationRole: item.Row.InstallationRole,
			Zone:             item.Row.Zone,
			ClientRole:       item.Row.ClientRole,
			Company:          item.Row.Company,
			RequiredGuards:   item.Row.RequiredGuards,
			PresentGuards:    item.Row.PresentGuards,
			AbsentGuards:     item.Row.AbsentGuards,
			Percentage:       item.Row.Percentage,
			TrafficLight:     string(item.Light),
			CoveredShifts:    item.Row.CoveredShifts,
			UncoveredShifts:  item.Row.UncoveredShifts,
			Shortfalls:       item.Row.Shortfalls,
			HasFaceID:        item.Row.HasFaceID,
			FaceIDNumber:     item.Row.FaceIDNumber,
			FaceIDLastSeen:   isoTime(item.Row.FaceIDLastSeen),
		}
		if withService {
			row.ServiceType = item.Row.ServiceType
		}
		out = append(out, row)
	}
	return InstallationCoverageListResponse{
		TotalInstallations: len(out),
		Optimized:          optimized,
		Installations:      out,
	}
}

// ShiftResponse is one planned shift slot.
type ShiftResponse struct {
	ShiftCode           string  `json:"codigo_turno"`
	Position            string  `json:"cargo"`
	PlannedIn           string  `json:"hora_entrada_planificada"`
	PlannedOut          string  `json:"hora_salida_planificada"`
	PlannedRut          string  `json:"rut_planificado"`
	AttendeeRut         *string `json:"rut_asistente"`
	PlannedName         string  `json:"nombre_planificado,omitempty"`
	AttendeeName        *string `json:"nombre_asistente,omitempty"`
	ActualIn            *string `json:"hora_entrada_real"`
	ActualOut           *string `json:"hora_salida_real"`
	Attended            bool    `json:"asistio"`
	CoverageState       string  `json:"estado_cobertura"`
	ExtraShift          *string `json:"turno_extra"`
	Relief              *string `json:"relevo,omitempty"`
	Type                string  `json:"tipo"`
	ServiceType         string  `json:"tipo_de_servicio"`
	NonComplianceReason *string `json:"motivo_incumplimiento"`
	Punctuality         *string `json:"puntualidad"`
}

func fromShift(s entities.ShiftDetail, includeRelief bool) ShiftResponse {
	out := ShiftResponse{
		ShiftCode:           s.ShiftCode,
		Position:            s.Position,
		PlannedIn:           s.PlannedIn,
		PlannedOut:          s.PlannedOut,
		PlannedRut:          s.PlannedRut,
		AttendeeRut:         s.AttendeeRut,
		PlannedName:         s.PlannedName,
		AttendeeName:        s.AttendeeName,
		ActualIn:            s.ActualIn,
		ActualOut:           s.ActualOut,
		Attended:            s.Attended,
		CoverageState:       s.CoverageState,
		ExtraShift:          s.ExtraShift,
		Type:                s.Type,
		ServiceType:         s.ServiceType,
		NonComplianceReason: s.NonComplianceReason,
		Punctuality:         s.Punctuality,
	}
	if includeRelief {
		out.Relief = s.Relief
	}
	return out
}

// ShortfallGroupResponse is one grouped PPC window.
type ShortfallGroupResponse struct {
	Shift    string `json:"turno"`
	Workday  string `json:"jornada,omitempty"`
	TimeIn   string `json:"hora_entrada"`
	TimeOut  string `json:"hora_salida"`
	Schedule string `json:"horario"`
	Count    int64  `json:"cantidad_ppc"`
}

func fromShortfallGroups(groups []entities.ShortfallGroup, withWorkday bool) []ShortfallGroupResponse {
	out := make([]ShortfallGroupResponse, 0, len(groups))
	for _, g := range groups {
		item := ShortfallGroupResponse{
			Shift:    g.Shift,
			TimeIn:   g.TimeIn,
			TimeOut:  g.TimeOut,
			Schedule: g.Schedule,
			Count:    g.Count,
		}
		if withWorkday {
			item.Workday = g.Workday
		}
		out = append(out, item)
	}
	return out
}

// InstallationDetailResponse merges shifts and shortfalls of one
// installation.
type InstallationDetailResponse struct {
	Installation      string                   `json:"instalacion"`
	Company           string                   `json:"empresa"`
	TotalShifts       int                      `json:"total_turnos"`
	Shifts            []ShiftResponse          `json:"turnos"`
	TotalShortfalls   int64                    `json:"total_ppc"`
	ShortfallsByShift []ShortfallGroupResponse `json:"ppc_por_turno"`
}

// InstallationDetailListResponse wraps all installation details.
type InstallationDetailListResponse struct {
	TotalInstallations int                          `json:"total_instalaciones"`
	Installations      []InstallationDetailResponse `json:"instalaciones"`
}

func FromInstallationShiftDetails(details []usecase.InstallationShiftDetail) InstallationDetailListResponse {
	out := make([]InstallationDetailResponse, 0, len(details))
	for _, d := range details {
		shifts := make([]ShiftResponse, 0, len(d.Shifts))
		for _, s := range d.Shifts {
			shifts = append(shifts, fromShift(s, false))
		}
		out = append(out, InstallationDetailResponse{
			Installation:      d.Installation,
			Company:           d.Company,
			TotalShifts:       len(shifts),
			Shifts:            shifts,
			TotalShortfalls:   d.TotalShortfalls,
			ShortfallsByShift: fromShortfallGroups(d.ShortfallsByShift, true),
		})
	}
	return InstallationDetailListResponse{
		TotalInstallations: len(out),
		Installations:      out,
	}
}

// SingleInstallationDetailResponse is the pop-up detail of one installation.
type SingleInstallationDetailResponse struct {
	Installation string          `json:"instalacion"`
	Company      string          `json:"empresa"`
	TotalShifts  int             `json:"total_turnos"`
	Shifts       []ShiftResponse `json:"turnos"`
}

func FromInstallationShiftDetail(d usecase.InstallationShiftDetail) SingleInstallationDetailResponse {
	shifts := make([]ShiftResponse, 0, len(d.Shifts))
	for _, s := range d.Shifts {
		shifts = append(shifts, fromShift(s, true))
	}
	return SingleInstallationDetailResponse{
		Installation: d.Installation,
		Company:      d.Company,
		TotalShifts:  len(shifts),
		Shifts:       shifts,
	}
}

// WeeklyCoverageResponse is one historical week.
type WeeklyCoverageResponse struct {
	Week             string  `json:"semana"`
	ISOWeek          int     `json:"isoweek"`
	Year             int     `json:"ano"`
	StartDate        *string `json:"fecha_inicio"`
	EndDate          *string `json:"fecha_fin"`
	PeriodLabel      string  `json:"periodo"`
	PlannedHours     float64 `json:"horas_presupuestadas"`
	DeliveredHours   float64 `json:"horas_entregadas"`
	MissingHours     float64 `json:"horas_faltantes"`
	Percentage       float64 `json:"porcentaje_cumplimiento"`
	TrafficLight     string  `json:"estado_semaforo"`
	TotalRecords     int64   `json:"total_registros"`
	TotalAttendances int64   `json:"total_asistencias"`
	TotalAbsences    int64   `json:"total_ausencias"`
	Installations    int64   `json:"num_instalaciones"`
}

// WeeklyHistoryResponse wraps the weekly rollups.
type WeeklyHistoryResponse struct {
	DaysQueried int                      `json:"dias_consultados"`
	TotalWeeks  int                      `json:"total_semanas"`
	Weeks       []WeeklyCoverageResponse `json:"semanas"`
}

func FromWeeklyCoverageItems(items []usecase.WeeklyCoverageItem, days int) WeeklyHistoryResponse {
	weeks := make([]WeeklyCoverageResponse, 0, len(items))
	for _, item := range items {
		weeks = append(weeks, WeeklyCoverageResponse{
			Week:             item.Row.Week,
			ISOWeek:          item.Row.ISOWeek,
			Year:             item.Row.Year,
			StartDate:        isoTime(item.Row.StartDate),
			EndDate:          isoTime(item.Row.EndDate),
			PeriodLabel:      item.Row.PeriodLabel,
			PlannedHours:     item.Row.PlannedHours,
			DeliveredHours:   item.Row.DeliveredHours,
			MissingHours:     item.Row.MissingHours,
			Percentage:       item.Row.Percentage,
			TrafficLight:     string(item.Light),
			TotalRecords:     item.Row.TotalRecords,
			TotalAttendances: item.Row.TotalAttendances,
			TotalAbsences:    item.Row.TotalAbsences,
			Installations:    item.Row.Installations,
		})
	}
	return WeeklyHistoryResponse{
		DaysQueried: days,
		TotalWeeks:  len(weeks),
		Weeks:       weeks,
	}
}

// InstallationWeekResponse is one historical week of one installation.
type InstallationWeekResponse struct {
	Week             string  `json:"semana"`
	ISOWeek          int     `json:"isoweek"`
	Year             int     `json:"ano"`
	PeriodLabel      string  `json:"periodo"`
	InstallationRole string  `json:"instalacion_rol"`
	Zone             string  `json:"zona"`
	Company          string  `json:"empresa"`
	PlannedHours     float64 `json:"horas_presupuestadas"`
	DeliveredHours   float64 `json:"horas_entregadas"`
	MissingHours     float64 `json:"horas_faltantes"`
	Percentage       float64 `json:"porcentaje_cumplimiento"`
	TrafficLight     string  `json:"estado_semaforo"`
	PlannedGuards    int64   `json:"guardias_planificados"`
	Attendances      int64   `json:"asistencias_registradas"`
	ExtraShifts      int64   `json:"cantidad_turnos_extra"`
}

// InstallationHistoryResponse wraps the per-installation rollups.
type InstallationHistoryResponse struct {
	DaysQueried  int                        `json:"dias_consultados"`
	TotalRecords int                        `json:"total_registros"`
	Records      []InstallationWeekResponse `json:"datos"`
}

func FromInstallationWeekItems(items []usecase.InstallationWeekItem, days int) InstallationHistoryResponse {
	records := make([]InstallationWeekResponse, 0, len(items))
	for _, item := range items {
		records = append(records, InstallationWeekResponse{
			Week:             item.Row.Week,
			ISOWeek:          item.Row.ISOWeek,
			Year:             item.Row.Year,
			PeriodLabel:      item.Row.PeriodLabel,
			InstallationRole: item.Row.InstallationRole,
			Zone:             item.Row.Zone,
			Company:          item.Row.Company,
			PlannedHours:     item.Row.PlannedHours,
			DeliveredHours:   item.Row.DeliveredHours,
			MissingHours:     item.Row.MissingHours,
			Percentage:       item.Row.Percentage,
			TrafficLight:     string(item.Light),
			PlannedGuards:    item.Row.PlannedGuards,
			Attendances:      item.Row.Attendances,
			ExtraShifts:      item.Row.ExtraShifts,
		})
	}
	return InstallationHistoryResponse{
		DaysQueried:  days,
		TotalRecords: len(records),
		Records:      records,
	}
}
