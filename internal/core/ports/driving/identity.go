package driving

import (
	"context"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// IdentityService resolves the identity of the authenticated caller.
type IdentityService interface {
	// GetMe returns the profile of the user the credentials in auth belong to,
	// as seen by the Azure DevOps instance at serverURL.
	// Errors match exactly one of domain.ErrValidation, domain.ErrAuthentication
	// or domain.ErrAzureDevOps.
	GetMe(ctx context.Context, serverURL string, auth domain.AuthConfig) (*domain.UserProfile, error)
}
