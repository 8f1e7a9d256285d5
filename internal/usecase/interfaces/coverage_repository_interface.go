package interfaces

import (
	"context"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
)

// ICoverageRepository reads the coverage fact tables, always scoped to the
// installations the account may see. Every query joins the visibility
// relation; no method accepts a pre-built filter.
type ICoverageRepository interface {
	GeneralCoverage(ctx context.Context, email string) (entities.CoverageSummary, error)

	// CoverageByInstallation aggregates per installation; decimals selects
	// the rounding applied in-query (2 for the standard endpoint, 1 for the
	// fast variant).
	CoverageByInstallation(ctx context.Context, email string, decimals int) ([]entities.InstallationCoverage, error)

	// CoverageByService returns one row per installation and service type
	// (the v2 fast variant).
	CoverageByService(ctx context.Context, email string) ([]entities.InstallationCoverage, error)

	// ShiftDetails lists shift-level rows; installationRole == "" means all
	// visible installations.
	ShiftDetails(ctx context.Context, email, installationRole string) ([]entities.ShiftDetail, error)

	WeeklyHistory(ctx context.Context, email string, days int) ([]entities.WeeklyCoverage, error)
	HistoryByInstallation(ctx context.Context, email string, days int) ([]entities.InstallationWeekCoverage, error)
}
