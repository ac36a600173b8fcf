package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/adoid/internal/connectors/azuredevops"
	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driven"
	"github.com/custodia-labs/adoid/internal/core/ports/driving"
	"github.com/custodia-labs/adoid/internal/logger"
)

// IdentityService resolves the authenticated caller against Azure DevOps.
// It holds no per-call state: every call re-extracts the organization and
// re-acquires credentials.
type IdentityService struct {
	credentials driven.CredentialResolver
	api         driven.ProfileAPI
}

// Ensure IdentityService implements the interface.
var _ driving.IdentityService = (*IdentityService)(nil)

// NewIdentityService creates a new IdentityService.
func NewIdentityService(credentials driven.CredentialResolver, api driven.ProfileAPI) *IdentityService {
	return &IdentityService{
		credentials: credentials,
		api:         api,
	}
}

// GetMe returns the profile of the caller identified by auth.
//
// The sequence is: extract organization, acquire the Authorization header,
// select the endpoint, issue one request, normalise. Any failure is passed
// through Classify.
func (s *IdentityService) GetMe(
	ctx context.Context,
	serverURL string,
	auth domain.AuthConfig,
) (*domain.UserProfile, error) {
	profile, err := s.getMe(ctx, serverURL, auth)
	if err != nil {
		logger.Debug("identity: get me failed: %v", err)
		return nil, Classify(err)
	}
	return profile, nil
}

func (s *IdentityService) getMe(
	ctx context.Context,
	serverURL string,
	auth domain.AuthConfig,
) (*domain.UserProfile, error) {
	organization, err := azuredevops.ExtractOrganization(serverURL)
	if err != nil {
		return nil, err
	}

	provider := s.credentials.Resolve(auth)
	logger.Debug("identity: organization %s, credential strategy %s", organization, provider.Method())

	header, err := provider.AuthorizationHeader(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := s.api.SelectEndpoint(serverURL, organization)
	return s.api.FetchProfile(ctx, endpoint, header)
}

// Classify maps any failure onto exactly one error kind:
//   - a 401 or 403 response becomes domain.ErrAuthentication
//   - an already classified error is returned unchanged
//   - anything else becomes domain.ErrAzureDevOps
//
// The original error stays reachable through errors.Is and errors.As.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var coded interface{ HTTPStatusCode() int }
	if errors.As(err, &coded) && azuredevops.IsAuthFailure(coded.HTTPStatusCode()) {
		return domain.NewAuthenticationError("Authentication failed", err)
	}

	if domain.KindOf(err) != nil {
		return err
	}

	return domain.NewAzureDevOpsError("Failed to get user information", err)
}
