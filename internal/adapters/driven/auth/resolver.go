// Package auth produces Authorization headers for Azure DevOps requests.
//
// Three strategies are available:
//   - PATStrategy: HTTP Basic with an empty user name and the token as password
//   - CLIStrategy: bearer token from the signed-in Azure CLI
//   - DefaultChainStrategy: bearer token from the default Azure credential chain
package auth

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.CredentialResolver = (*Resolver)(nil)

// CredentialFunc constructs a token credential on demand.
type CredentialFunc func() (azcore.TokenCredential, error)

// Resolver selects a credential strategy for an AuthConfig.
type Resolver struct {
	newCLICredential     CredentialFunc
	newDefaultCredential CredentialFunc
}

// NewResolver creates a resolver backed by the Azure identity library.
func NewResolver() *Resolver {
	return &Resolver{
		newCLICredential: func() (azcore.TokenCredential, error) {
			return azidentity.NewAzureCLICredential(nil)
		},
		newDefaultCredential: func() (azcore.TokenCredential, error) {
			return azidentity.NewDefaultAzureCredential(nil)
		},
	}
}

// NewResolverWithCredentials creates a resolver with custom credential
// constructors for the CLI and default chain strategies.
func NewResolverWithCredentials(cli, defaultChain CredentialFunc) *Resolver {
	return &Resolver{
		newCLICredential:     cli,
		newDefaultCredential: defaultChain,
	}
}

// Resolve returns the strategy for cfg:
//
//	method == pat and a token is set -> PATStrategy
//	method == azure-cli              -> CLIStrategy
//	anything else                    -> DefaultChainStrategy
//
// A pat method without a token falls through to the default chain.
func (r *Resolver) Resolve(cfg domain.AuthConfig) driven.HeaderProvider {
	switch {
	case cfg.Method == domain.AuthMethodPAT && cfg.PAT != "":
		return NewPATStrategy(cfg.PAT)
	case cfg.Method == domain.AuthMethodAzureCLI:
		return &CLIStrategy{tokenStrategy{name: "azure cli", newCredential: r.newCLICredential}}
	default:
		return &DefaultChainStrategy{tokenStrategy{name: "default azure", newCredential: r.newDefaultCredential}}
	}
}
