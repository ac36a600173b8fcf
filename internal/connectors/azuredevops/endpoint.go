package azuredevops

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// Azure DevOps API constants.
const (
	// DefaultProfileBaseURL hosts the cloud profile service.
	DefaultProfileBaseURL = "https://vssps.dev.azure.com"

	profilePath           = "/_apis/profile/profiles/me"
	profileAPIVersion     = "7.1"
	connectionDataPath    = "/_apis/connectionData"
	connectionDataVersion = "5.0-preview"
)

// SelectEndpoint returns the endpoint for serverURL using the public profile service.
func SelectEndpoint(serverURL, organization string) domain.Endpoint {
	return selectEndpoint(DefaultProfileBaseURL, serverURL, organization)
}

func selectEndpoint(profileBaseURL, serverURL, organization string) domain.Endpoint {
	if IsCloud(serverURL) {
		return domain.Endpoint{
			URL: strings.TrimRight(profileBaseURL, "/") + "/" + url.PathEscape(organization) +
				profilePath + "?api-version=" + profileAPIVersion,
			Mode: domain.HostingCloud,
		}
	}
	return domain.Endpoint{
		URL:  strings.TrimRight(serverURL, "/") + connectionDataPath + "?api-version=" + connectionDataVersion,
		Mode: domain.HostingOnPremises,
	}
}
