package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// InstallationShortfalls groups the PPC rows of one installation.
type InstallationShortfalls struct {
	Installation string
	Total        int64
	Groups       []entities.ShortfallGroup
}

type IShortfallUseCase interface {
	Total(ctx context.Context, email string) (int64, error)
	AllInstallations(ctx context.Context, email string) ([]InstallationShortfalls, error)
	ByInstallation(ctx context.Context, email, installationRole string) (InstallationShortfalls, error)
}

type ShortfallUseCase struct {
	shortfalls interfaces.IShortfallRepository
	log        *zap.SugaredLogger
}

var _ IShortfallUseCase = (*ShortfallUseCase)(nil)

func NewShortfallUseCase(shortfalls interfaces.IShortfallRepository, log *zap.SugaredLogger) *ShortfallUseCase {
	return &ShortfallUseCase{shortfalls: shortfalls, log: log}
}

func (u *ShortfallUseCase) Total(ctx context.Context, email string) (int64, error) {
	total, err := u.shortfalls.Total(ctx, email)
	if err != nil {
		u.log.Errorf("[ppc][usecase] total query failed email=%s err=%v", email, err)
		return 0, err
	}
	return total, nil
}

func (u *ShortfallUseCase) AllInstallations(ctx context.Context, email string) ([]InstallationShortfalls, error) {
	groups, err := u.shortfalls.GroupsForUser(ctx, email)
	if err != nil {
		u.log.Errorf("[ppc][usecase] all-installations query failed email=%s err=%v", email, err)
		return nil, err
	}

	byInstallation := map[string]*InstallationShortfalls{}
	order := []string{}
	for _, g := range groups {
		d, ok := byInstallation[g.InstallationRole]
		if !ok {
			d = &InstallationShortfalls{Installation: g.InstallationRole, Groups: []entities.ShortfallGroup{}}
			byInstallation[g.InstallationRole] = d
			order = append(order, g.InstallationRole)
		}
		d.Groups = append(d.Groups, g)
		d.Total += g.Count
	}

	out := make([]InstallationShortfalls, 0, len(order))
	for _, key := range order {
		out = append(out, *byInstallation[key])
	}
	return out, nil
}

func (u *ShortfallUseCase) ByInstallation(ctx context.Context, email, installationRole string) (InstallationShortfalls, error) {
	groups, err := u.shortfalls.GroupsForInstallation(ctx, email, installationRole)
	if err != nil {
		u.log.Errorf("[ppc][usecase] by-installation query failed email=%s installation=%s err=%v", email, installationRole, err)
		return InstallationShortfalls{}, err
	}

	result := InstallationShortfalls{Installation: installationRole, Groups: groups}
	for _, g := range groups {
		result.Total += g.Count
	}
	return result, nil
}
