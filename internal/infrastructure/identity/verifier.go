package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wwdiegovarela/consultas-app-cliente/internal/usecase/interfaces"
)

var ErrMissingIdentityAPIKey = errors.New("missing IDENTITY_API_KEY")

// Verifier resolves opaque bearer tokens against the identity provider's
// accounts:lookup endpoint. A rejected token is reported as
// interfaces.ErrTokenRejected so the caller can map it to 401.
type Verifier struct {
	http   *resty.Client
	apiKey string
}

var _ interfaces.ITokenVerifier = (*Verifier)(nil)

func NewVerifier(baseURL, apiKey string) (*Verifier, error) {
	if apiKey == "" {
		return nil, ErrMissingIdentityAPIKey
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)

	return &Verifier{http: client, apiKey: apiKey}, nil
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID       string `json:"localId"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"users"`
}

type lookupError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (v *Verifier) Verify(ctx context.Context, idToken string) (interfaces.VerifiedIdentity, error) {
	var ok lookupResponse
	var bad lookupError

	resp, err := v.http.R().
		SetContext(ctx).
		SetQueryParam("key", v.apiKey).
		SetBody(lookupRequest{IDToken: idToken}).
		SetResult(&ok).
		SetError(&bad).
		Post("/v1/accounts:lookup")
	if err != nil {
		return interfaces.VerifiedIdentity{}, fmt.Errorf("identity lookup: %w", err)
	}

	if resp.IsError() {
		// The provider answers 400 for expired/invalid/revoked tokens.
		if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
			return interfaces.VerifiedIdentity{}, fmt.Errorf("%w: %s", interfaces.ErrTokenRejected, bad.Error.Message)
		}
		return interfaces.VerifiedIdentity{}, fmt.Errorf("identity lookup status %d", resp.StatusCode())
	}

	if len(ok.Users) == 0 {
		return interfaces.VerifiedIdentity{}, interfaces.ErrTokenRejected
	}

	u := ok.Users[0]
	return interfaces.VerifiedIdentity{
		UID:           u.LocalID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
	}, nil
}
