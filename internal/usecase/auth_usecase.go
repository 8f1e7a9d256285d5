package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user inactive")
)

// IAuthUseCase resolves a bearer credential into a Principal. Resolution
// happens on every request; nothing is cached.

type IAuthUseCase interface {
	Resolve(ctx context.Context, authorization string) (entities.Principal, error)
}

type AuthUseCase struct {
	verifier interfaces.ITokenVerifier
	users    interfaces.IUserRepository
	log      *zap.SugaredLogger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(verifier interfaces.ITokenVerifier, users interfaces.IUserRepository, log *zap.SugaredLogger) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, users: users, log: log}
}

// Resolve verifies the credential, loads the account's permission set and
// applies the best-effort uid migration. The migration never blocks
// resolution: a failed write is logged and swallowed.
func (u *AuthUseCase) Resolve(ctx context.Context, authorization string) (entities.Principal, error) {
	token := extractBearer(authorization)
	if token == "" {
		return entities.Principal{}, ErrMissingToken
	}

	identity, err := u.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, interfaces.ErrTokenRejected) {
			u.log.Infof("[auth][usecase] token rejected err=%v", err)
			return entities.Principal{}, ErrInvalidToken
		}
		u.log.Errorf("[auth][usecase] identity verification failed err=%v", err)
		return entities.Principal{}, err
	}

	account, err := u.users.GetAccountByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, interfaces.ErrAccountNotFound) {
			u.log.Infof("[auth][usecase] no account for email=%s", identity.Email)
			return entities.Principal{}, ErrUserNotFound
		}
		u.log.Errorf("[auth][usecase] account lookup failed email=%s err=%v", identity.Email, err)
		return entities.Principal{}, err
	}

	if !account.Active {
		return entities.Principal{}, ErrUserInactive
	}

	// Claim migration: only write when the stored uid actually differs, so a
	// repeat resolution performs zero writes.
	if account.StoredUID != identity.UID {
		if err := u.users.UpdateStoredUID(ctx, identity.Email, identity.UID); err != nil {
			u.log.Warnf("[auth][usecase] uid migration failed email=%s err=%v", identity.Email, err)
		}
	}

	return entities.Principal{
		UID:                  identity.UID,
		Email:                identity.Email,
		FullName:             account.FullName,
		ClientRole:           account.ClientRole,
		RoleID:               account.RoleID,
		RoleName:             account.RoleName,
		Permissions:          account.Permissions,
		SeesAllInstallations: account.SeesAllInstallations,
		EmailVerified:        identity.EmailVerified,
	}, nil
}

func extractBearer(authorization string) string {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return ""
	}
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}
	return authorization
}
