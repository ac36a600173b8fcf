package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driven"
	"github.com/custodia-labs/adoid/internal/logger"
)

// ResourceScope is the Azure DevOps application scope for token requests.
//
//nolint:gosec // G101: Not credentials, well-known resource ID
const ResourceScope = "499b84ac-1321-427f-aa17-267ca6975798/.default"

// ErrNoToken indicates the credential provider returned no usable token.
var ErrNoToken = errors.New("auth: no token acquired for Azure DevOps")

var (
	_ driven.HeaderProvider = (*CLIStrategy)(nil)
	_ driven.HeaderProvider = (*DefaultChainStrategy)(nil)
)

// CLIStrategy acquires a bearer token from the signed-in Azure CLI.
type CLIStrategy struct {
	tokenStrategy
}

// Method returns domain.AuthMethodAzureCLI.
func (s *CLIStrategy) Method() domain.AuthMethod {
	return domain.AuthMethodAzureCLI
}

// DefaultChainStrategy acquires a bearer token from the default Azure
// credential chain.
type DefaultChainStrategy struct {
	tokenStrategy
}

// Method returns domain.AuthMethodAzureIdentity.
func (s *DefaultChainStrategy) Method() domain.AuthMethod {
	return domain.AuthMethodAzureIdentity
}

// tokenStrategy holds the acquisition logic shared by the bearer strategies.
type tokenStrategy struct {
	name          string
	newCredential CredentialFunc
}

// AuthorizationHeader acquires a token for ResourceScope and returns
// "Bearer <token>". Every failure is a domain.ErrAuthentication error.
func (s *tokenStrategy) AuthorizationHeader(ctx context.Context) (string, error) {
	tok, err := s.token(ctx)
	if err != nil {
		return "", domain.NewAuthenticationError("Failed to get authorization header", err)
	}
	return tok.Type() + " " + tok.AccessToken, nil
}

func (s *tokenStrategy) token(ctx context.Context) (*oauth2.Token, error) {
	if s.newCredential == nil {
		return nil, fmt.Errorf("%s credential is not configured", s.name)
	}

	cred, err := s.newCredential()
	if err != nil {
		return nil, err
	}

	logger.Debug("auth: requesting %s token for %s", s.name, ResourceScope)

	accessToken, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{ResourceScope}})
	if err != nil {
		return nil, err
	}

	tok := &oauth2.Token{
		AccessToken: accessToken.Token,
		TokenType:   "Bearer",
		Expiry:      accessToken.ExpiresOn,
	}
	// Only an empty token is rejected. Expiry is left to the provider.
	if tok.AccessToken == "" {
		return nil, ErrNoToken
	}
	return tok, nil
}
