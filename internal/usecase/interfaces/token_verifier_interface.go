package interfaces

import (
	"context"
	"errors"
)

// ErrTokenRejected marks a credential the identity provider refused
// (invalid, expired or revoked). Everything else is an infrastructure fault.
var ErrTokenRejected = errors.New("token rejected by identity provider")

// VerifiedIdentity is what the identity provider asserts about a credential.
type VerifiedIdentity struct {
	UID           string
	Email         string
	EmailVerified bool
}

// ITokenVerifier abstracts the external identity-verification collaborator.
type ITokenVerifier interface {
	Verify(ctx context.Context, idToken string) (VerifiedIdentity, error)
}
