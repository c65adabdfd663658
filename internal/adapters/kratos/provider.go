package kratos

// Package kratos implements the IdentityProvider port against an Ory Kratos
// instance using the native (API-flow) self-service endpoints.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ory "github.com/ory/kratos-client-go"

	apperrors "github.com/greenplate/admin-api/internal/errors"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	"github.com/greenplate/admin-api/internal/ports"
)

// ProviderConfig holds configuration for the Kratos provider.
type ProviderConfig struct {
	// PublicURL is the base URL of the Kratos public (self-service) API.
	PublicURL string
	// HTTPClient is optional; defaults to a client with a 30s timeout.
	HTTPClient *http.Client
}

// Provider implements ports.IdentityProvider using the Kratos SDK.
type Provider struct {
	client *ory.APIClient
}

var _ ports.IdentityProvider = (*Provider)(nil)

// NewProvider creates a new Kratos-backed identity provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.PublicURL == "" {
		return nil, errors.New("kratos public URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: cfg.PublicURL}}
	conf.HTTPClient = httpClient

	return &Provider{client: ory.NewAPIClient(conf)}, nil
}

// VerifyCredential runs the native login flow with the password method and
// returns the authenticated identity with its session token.
func (p *Provider) VerifyCredential(ctx context.Context, email, password string) (domainauth.Identity, error) {
	flow, resp, err := p.client.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return domainauth.Identity{}, classify(resp, err, "create login flow")
	}

	body := ory.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Method:     "password",
		Password:   password,
	}
	success, resp, err := p.client.FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		return domainauth.Identity{}, classify(resp, err, "submit login flow")
	}

	if success.SessionToken == nil || *success.SessionToken == "" {
		return domainauth.Identity{}, apperrors.Unknown("identity provider returned no session token")
	}

	return identityFromSession(&success.Session, *success.SessionToken)
}

// Resolve rehydrates a stored session token via the whoami endpoint.
func (p *Provider) Resolve(ctx context.Context, token string) (domainauth.Identity, error) {
	if token == "" {
		return domainauth.Identity{}, apperrors.InvalidCredential("session token is empty")
	}

	session, resp, err := p.client.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		return domainauth.Identity{}, classify(resp, err, "resolve session")
	}

	if session.Active != nil && !*session.Active {
		return domainauth.Identity{}, apperrors.InvalidCredential("session is not active")
	}

	return identityFromSession(session, token)
}

// Invalidate force-terminates the provider-side session for token.
func (p *Provider) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	resp, err := p.client.FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*ory.NewPerformNativeLogoutBody(token)).
		Execute()
	if err != nil {
		// An already-dead session is as good as invalidated.
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return classify(resp, err, "invalidate session")
	}
	return nil
}

// identityFromSession maps a Kratos session into the domain identity shape.
func identityFromSession(session *ory.Session, token string) (domainauth.Identity, error) {
	if session == nil || session.Identity == nil {
		return domainauth.Identity{}, apperrors.Unknown("identity provider returned no identity")
	}

	email := emailFromTraits(session.Identity.Traits)
	if email == "" {
		return domainauth.Identity{}, apperrors.Unknown("identity has no email trait")
	}

	var expiresAt time.Time
	if session.ExpiresAt != nil {
		expiresAt = *session.ExpiresAt
	}

	return domainauth.Identity{
		UserID:    session.Identity.Id,
		Email:     domainauth.NormalizeEmail(email),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// emailFromTraits extracts the email trait from the identity schema payload.
func emailFromTraits(traits interface{}) string {
	m, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := m["email"].(string)
	return email
}

// classify translates a Kratos SDK failure into the application error
// taxonomy. Callers above the port never see raw provider codes.
func classify(resp *http.Response, err error, op string) error {
	if resp == nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeServiceUnavailable, "identity provider unreachable (%s)", op)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Wrap(err, apperrors.ErrCodeAccountNotFound, "account not found")
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return apperrors.Wrap(err, apperrors.ErrCodeInvalidCredential, "credential verification failed")
	case resp.StatusCode == http.StatusTooManyRequests:
		return apperrors.Wrap(err, apperrors.ErrCodeRateLimited, "too many attempts")
	case resp.StatusCode >= http.StatusInternalServerError:
		return apperrors.Wrapf(err, apperrors.ErrCodeServiceUnavailable, "identity provider error (%s)", op)
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeUnknown, fmt.Sprintf("unexpected identity provider response (%s)", op))
	}
}
