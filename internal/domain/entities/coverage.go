package entities

import "time"

// CoverageSummary is the tenant-wide aggregate over the shifts active right
// now, already scoped to the principal's visible installations.
type CoverageSummary struct {
	TotalActiveShifts int64
	CoveredShifts     int64
	UncoveredShifts   int64
	Percentage        float64
	LastUpdate        *time.Time
	Companies         []string
	TotalShortfalls   int64
}

// InstallationCoverage is one row of the per-installation aggregate. The
// coverage fact table is refreshed upstream on a 5-minute cadence; this
// service only reads it.
type InstallationCoverage struct {
	InstallationRole string
	Zone             string
	ClientRole       string
	Company          string
	ServiceType      string
	RequiredGuards   int64
	PresentGuards    int64
	AbsentGuards     int64
	Percentage       float64
	CoveredShifts    int64
	UncoveredShifts  int64
	Shortfalls       int64
	HasFaceID        bool
	FaceIDNumber     *string
	FaceIDLastSeen   *time.Time
}

// ShiftDetail is a single planned shift slot with attendance state.
type ShiftDetail struct {
	InstallationRole    string
	Company             string
	ShiftCode           string
	Position            string
	PlannedIn           string
	PlannedOut          string
	PlannedRut          string
	PlannedName         string
	AttendeeRut         *string
	AttendeeName        *string
	ActualIn            *string
	ActualOut           *string
	Attended            bool
	CoverageState       string
	ExtraShift          *string
	Relief              *string
	Type                string
	ServiceType         string
	NonComplianceReason *string
	Punctuality         *string
}

// WeeklyCoverage is a historical rollup keyed by ISO week/year.
type WeeklyCoverage struct {
	Week             string
	ISOWeek          int
	Year             int
	StartDate        *time.Time
	EndDate          *time.Time
	PeriodLabel      string
	PlannedHours     float64
	DeliveredHours   float64
	MissingHours     float64
	Percentage       float64
	TotalRecords     int64
	TotalAttendances int64
	TotalAbsences    int64
	Installations    int64
}

// InstallationWeekCoverage is the historical rollup broken down per
// installation and week.
type InstallationWeekCoverage struct {
	Week             string
	ISOWeek          int
	Year             int
	PeriodLabel      string
	InstallationRole string
	Zone             string
	Company          string
	PlannedHours     float64
	DeliveredHours   float64
	MissingHours     float64
	Percentage       float64
	PlannedGuards    int64
	Attendances      int64
	ExtraShifts      int64
}
