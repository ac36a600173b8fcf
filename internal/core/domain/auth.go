package domain

import "strings"

// AuthMethod identifies how credentials are acquired for a request.
type AuthMethod string

const (
	// AuthMethodPAT sends a personal access token as HTTP Basic credentials.
	AuthMethodPAT AuthMethod = "pat"
	// AuthMethodAzureCLI acquires a bearer token from the Azure CLI session.
	AuthMethodAzureCLI AuthMethod = "azure-cli"
	// AuthMethodAzureIdentity acquires a bearer token from the default
	// Azure credential chain (environment, managed identity, CLI, ...).
	AuthMethodAzureIdentity AuthMethod = "azure-identity"
)

// ParseAuthMethod maps a configured value onto an AuthMethod.
// Matching is case-insensitive; unknown or empty values select the default chain.
func ParseAuthMethod(s string) AuthMethod {
	switch AuthMethod(strings.ToLower(strings.TrimSpace(s))) {
	case AuthMethodPAT:
		return AuthMethodPAT
	case AuthMethodAzureCLI:
		return AuthMethodAzureCLI
	default:
		return AuthMethodAzureIdentity
	}
}

// AuthConfig is the credential configuration for a single call.
type AuthConfig struct {
	Method AuthMethod
	// PAT is only consulted when Method is AuthMethodPAT.
	PAT string
}
