package driven

import (
	"context"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// HeaderProvider produces a ready-to-send Authorization header value.
type HeaderProvider interface {
	// AuthorizationHeader returns the header value, e.g. "Basic ..." or "Bearer ...".
	// A fresh value is produced on every call; nothing is cached.
	AuthorizationHeader(ctx context.Context) (string, error)

	// Method reports which credential strategy the provider implements.
	Method() domain.AuthMethod
}

// CredentialResolver selects the HeaderProvider for an auth configuration.
type CredentialResolver interface {
	Resolve(cfg domain.AuthConfig) HeaderProvider
}

// ProfileAPI talks to the profile endpoints of an Azure DevOps instance.
type ProfileAPI interface {
	// SelectEndpoint decides which endpoint and response shape apply to serverURL.
	SelectEndpoint(serverURL, organization string) domain.Endpoint

	// FetchProfile issues exactly one GET against endpoint and normalises the
	// response into a UserProfile.
	FetchProfile(ctx context.Context, endpoint domain.Endpoint, authHeader string) (*domain.UserProfile, error)
}
