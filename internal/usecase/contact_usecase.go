package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"
	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

// ErrForeignContacts is returned when a non-admin asks for another account's
// contact directory.
var ErrForeignContacts = errors.New("cannot view contacts of another user")

type IContactUseCase interface {
	ByInstallation(ctx context.Context, email, installationRole string) ([]entities.Contact, error)
	PeerClients(ctx context.Context, principal entities.Principal, targetEmail string) ([]entities.ClientContact, error)
	WFSAUsersForInstallation(ctx context.Context, installationRole string) ([]entities.WFSAUser, error)
}

type ContactUseCase struct {
	contacts interfaces.IContactRepository
	log      *zap.SugaredLogger
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(contacts interfaces.IContactRepository, log *zap.SugaredLogger) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, log: log}
}

func (u *ContactUseCase) ByInstallation(ctx context.Context, email, installationRole string) ([]entities.Contact, error) {
	out, err := u.contacts.ByInstallation(ctx, email, installationRole)
	if err != nil {
		u.log.Errorf("[contacts][usecase] by-installation query failed email=%s installation=%s err=%v", email, installationRole, err)
		return nil, err
	}
	return out, nil
}

// PeerClients lists tenant-side accounts sharing installations with
// targetEmail. Only the account itself or an admin may ask.
func (u *ContactUseCase) PeerClients(ctx context.Context, principal entities.Principal, targetEmail string) ([]entities.ClientContact, error) {
	if targetEmail != principal.Email && !principal.Has(entities.CapAdmin) {
		return nil, ErrForeignContacts
	}

	out, err := u.contacts.PeerClients(ctx, targetEmail)
	if err != nil {
		u.log.Errorf("[contacts][usecase] peer-clients query failed email=%s err=%v", targetEmail, err)
		return nil, err
	}
	return out, nil
}

func (u *ContactUseCase) WFSAUsersForInstallation(ctx context.Context, installationRole string) ([]entities.WFSAUser, error) {
	out, err := u.contacts.WFSAUsersForInstallation(ctx, installationRole)
	if err != nil {
		u.log.Errorf("[contacts][usecase] wfsa-users query failed installation=%s err=%v", installationRole, err)
		return nil, err
	}
	return out, nil
}
