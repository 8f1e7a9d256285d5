package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// factRefreshInterval is the upstream ETL cadence; proxima_actualizacion is
// derived from it.
const factRefreshInterval = 5 * time.Minute

// GeneralCoverage is the tenant-wide aggregate with its derived light.
type GeneralCoverage struct {
	Summary    entities.CoverageSummary
	Light      entities.TrafficLight
	NextUpdate *time.Time
}

// InstallationCoverageItem pairs a per-installation row with its light.
type InstallationCoverageItem struct {
	Row   entities.InstallationCoverage
	Light entities.TrafficLight
}

// InstallationShiftDetail merges shift rows and shortfall groups of one
// installation (the detalle-todas projection).
type InstallationShiftDetail struct {
	Installation      string
	Company           string
	Shifts            []entities.ShiftDetail
	TotalShortfalls   int64
	ShortfallsByShift []entities.ShortfallGroup
}

// WeeklyCoverageItem pairs a weekly rollup with its light.
type WeeklyCoverageItem struct {
	Row   entities.WeeklyCoverage
	Light entities.TrafficLight
}

// InstallationWeekItem pairs a per-installation weekly rollup with its light.
type InstallationWeekItem struct {
	Row   entities.InstallationWeekCoverage
	Light entities.TrafficLight
}

type ICoverageUseCase interface {
	General(ctx context.Context, email string) (GeneralCoverage, error)
	ByInstallation(ctx context.Context, email string, fast bool) ([]InstallationCoverageItem, error)
	ByService(ctx context.Context, email string) ([]InstallationCoverageItem, error)
	ShiftDetailAll(ctx context.Context, email string) ([]InstallationShiftDetail, error)
	ShiftDetail(ctx context.Context, email, installationRole string) (InstallationShiftDetail, error)
	WeeklyHistory(ctx context.Context, email string, days int) ([]WeeklyCoverageItem, error)
	HistoryByInstallation(ctx context.Context, email string, days int) ([]InstallationWeekItem, error)
}

type CoverageUseCase struct {
	coverage    interfaces.ICoverageRepository
	shortfalls  interfaces.IShortfallRepository
	thresholds  entities.Thresholds
	historyDays int
	log         *zap.SugaredLogger
}

var _ ICoverageUseCase = (*CoverageUseCase)(nil)

func NewCoverageUseCase(coverage interfaces.ICoverageRepository, shortfalls interfaces.IShortfallRepository, thresholds entities.Thresholds, historyDays int, log *zap.SugaredLogger) *CoverageUseCase {
	return &CoverageUseCase{
		coverage:    coverage,
		shortfalls:  shortfalls,
		thresholds:  thresholds,
		historyDays: historyDays,
		log:         log,
	}
}

// General returns the aggregate over all shifts active now. A zero required
// count is not an error: it yields percentage 0 and the GRIS light.
func (u *CoverageUseCase) General(ctx context.Context, email string) (GeneralCoverage, error) {
	summary, err := u.coverage.GeneralCoverage(ctx, email)
	if err != nil {
		u.log.Errorf("[coverage][usecase] general query failed email=%s err=%v", email, err)
		return GeneralCoverage{}, err
	}

	if summary.TotalActiveShifts == 0 {
		return GeneralCoverage{Summary: entities.CoverageSummary{Companies: []string{}}, Light: entities.LightGray}, nil
	}

	out := GeneralCoverage{
		Summary: summary,
		Light:   u.thresholds.Classify(summary.Percentage),
	}
	if summary.LastUpdate != nil {
		next := summary.LastUpdate.Add(factRefreshInterval)
		out.NextUpdate = &next
	}
	return out, nil
}

func (u *CoverageUseCase) ByInstallation(ctx context.Context, email string, fast bool) ([]InstallationCoverageItem, error) {
	decimals := 2
	if fast {
		decimals = 1
	}

	rows, err := u.coverage.CoverageByInstallation(ctx, email, decimals)
	if err != nil {
		u.log.Errorf("[coverage][usecase] by-installation query failed email=%s err=%v", email, err)
		return nil, err
	}
	return u.classifyRows(rows), nil
}

func (u *CoverageUseCase) ByService(ctx context.Context, email string) ([]InstallationCoverageItem, error) {
	rows, err := u.coverage.CoverageByService(ctx, email)
	if err != nil {
		u.log.Errorf("[coverage][usecase] by-service query failed email=%s err=%v", email, err)
		return nil, err
	}
	return u.classifyRows(rows), nil
}

func (u *CoverageUseCase) classifyRows(rows []entities.InstallationCoverage) []InstallationCoverageItem {
	items := make([]InstallationCoverageItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, InstallationCoverageItem{Row: row, Light: u.thresholds.Classify(row.Percentage)})
	}
	return items
}

// ShiftDetailAll returns shift-level rows and shortfall groups for every
// visible installation, merged per installation. Installations that only
// have shortfalls (no active shifts) still get an entry.
func (u *CoverageUseCase) ShiftDetailAll(ctx context.Context, email string) ([]InstallationShiftDetail, error) {
	shifts, err := u.coverage.ShiftDetails(ctx, email, "")
	if err != nil {
		u.log.Errorf("[coverage][usecase] shift detail query failed email=%s err=%v", email, err)
		return nil, err
	}
	groups, err := u.shortfalls.GroupsForUser(ctx, email)
	if err != nil {
		u.log.Errorf("[coverage][usecase] shortfall query failed email=%s err=%v", email, err)
		return nil, err
	}

	byInstallation := map[string]*InstallationShiftDetail{}
	order := []string{}

	detailFor := func(installation string) *InstallationShiftDetail {
		if d, ok := byInstallation[installation]; ok {
			return d
		}
		d := &InstallationShiftDetail{
			Installation:      installation,
			Shifts:            []entities.ShiftDetail{},
			ShortfallsByShift: []entities.ShortfallGroup{},
		}
		byInstallation[installation] = d
		order = append(order, installation)
		return d
	}

	for _, s := range shifts {
		d := detailFor(s.InstallationRole)
		if d.Company == "" {
			d.Company = s.Company
		}
		d.Shifts = append(d.Shifts, s)
	}
	for _, g := range groups {
		d := detailFor(g.InstallationRole)
		d.ShortfallsByShift = append(d.ShortfallsByShift, g)
		d.TotalShortfalls += g.Count
	}

	out := make([]InstallationShiftDetail, 0, len(order))
	for _, key := range order {
		out = append(out, *byInstallation[key])
	}
	return out, nil
}

func (u *CoverageUseCase) ShiftDetail(ctx context.Context, email, installationRole string) (InstallationShiftDetail, error) {
	shifts, err := u.coverage.ShiftDetails(ctx, email, installationRole)
	if err != nil {
		u.log.Errorf("[coverage][usecase] shift detail query failed email=%s installation=%s err=%v", email, installationRole, err)
		return InstallationShiftDetail{}, err
	}

	detail := InstallationShiftDetail{Installation: installationRole, Shifts: shifts}
	for _, s := range shifts {
		if s.Company != "" {
			detail.Company = s.Company
			break
		}
	}
	return detail, nil
}

func (u *CoverageUseCase) WeeklyHistory(ctx context.Context, email string, days int) ([]WeeklyCoverageItem, error) {
	if days <= 0 {
		days = u.historyDays
	}
	rows, err := u.coverage.WeeklyHistory(ctx, email, days)
	if err != nil {
		u.log.Errorf("[coverage][usecase] weekly history query failed email=%s days=%d err=%v", email, days, err)
		return nil, err
	}

	items := make([]WeeklyCoverageItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, WeeklyCoverageItem{Row: row, Light: u.thresholds.Classify(row.Percentage)})
	}
	return items, nil
}

func (u *CoverageUseCase) HistoryByInstallation(ctx context.Context, email string, days int) ([]InstallationWeekItem, error) {
	if days <= 0 {
		days = u.historyDays
	}
	rows, err := u.coverage.HistoryByInstallation(ctx, email, days)
	if err != nil {
		u.log.Errorf("[coverage][usecase] history by-installation query failed email=%s days=%d err=%v", email, days, err)
		return nil, err
	}

	items := make([]InstallationWeekItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, InstallationWeekItem{Row: row, Light: u.thresholds.Classify(row.Percentage)})
	}
	return items, nil
}
