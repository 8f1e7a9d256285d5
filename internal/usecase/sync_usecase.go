package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// SyncResult summarizes one bulk profile sync run.
type SyncResult struct {
	Total        int
	Synced       int
	Errors       int
	ErrorDetails []string
}

type ISyncUseCase interface {
	SyncUsers(ctx context.Context) (SyncResult, error)
}

type SyncUseCase struct {
	users interfaces.IUserRepository
	sink  interfaces.IUserProfileSink
	log   *zap.SugaredLogger
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(users interfaces.IUserRepository, sink interfaces.IUserProfileSink, log *zap.SugaredLogger) *SyncUseCase {
	return &SyncUseCase{users: users, sink: sink, log: log}
}

// SyncUsers pushes every active account's profile into the document store.
// Per-account write failures are collected, not fatal: one bad row must not
// abort the run.
func (u *SyncUseCase) SyncUsers(ctx context.Context) (SyncResult, error) {
	accounts, err := u.users.ListActiveAccounts(ctx)
	if err != nil {
		u.log.Errorf("[sync][usecase] account query failed err=%v", err)
		return SyncResult{}, err
	}

	result := SyncResult{Total: len(accounts), ErrorDetails: []string{}}
	for _, account := range accounts {
		if err := u.sink.UpsertProfile(ctx, account); err != nil {
			u.log.Warnf("[sync][usecase] profile upsert failed email=%s err=%v", account.Email, err)
			result.Errors++
			result.ErrorDetails = append(result.ErrorDetails, fmt.Sprintf("%s: %v", account.Email, err))
			continue
		}
		result.Synced++
	}

	u.log.Infof("[sync][usecase] sync finished total=%d synced=%d errors=%d", result.Total, result.Synced, result.Errors)
	return result, nil
}
