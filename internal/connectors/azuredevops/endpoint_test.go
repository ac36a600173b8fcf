package azuredevops

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

func TestSelectEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		serverURL    string
		organization string
		expected     domain.Endpoint
	}{
		{
			name:         "cloud",
			serverURL:    "https://dev.azure.com/contoso",
			organization: "contoso",
			expected: domain.Endpoint{
				URL:  "https://vssps.dev.azure.com/contoso/_apis/profile/profiles/me?api-version=7.1",
				Mode: domain.HostingCloud,
			},
		},
		{
			name:         "legacy cloud",
			serverURL:    "https://contoso.visualstudio.com",
			organization: "contoso",
			expected: domain.Endpoint{
				URL:  "https://vssps.dev.azure.com/contoso/_apis/profile/profiles/me?api-version=7.1",
				Mode: domain.HostingCloud,
			},
		},
		{
			name:         "on-premises",
			serverURL:    "https://server.company.com/DefaultCollection",
			organization: "DefaultCollection",
			expected: domain.Endpoint{
				URL:  "https://server.company.com/DefaultCollection/_apis/connectionData?api-version=5.0-preview",
				Mode: domain.HostingOnPremises,
			},
		},
		{
			name:         "on-premises trailing slash",
			serverURL:    "https://server.company.com/DefaultCollection/",
			organization: "DefaultCollection",
			expected: domain.Endpoint{
				URL:  "https://server.company.com/DefaultCollection/_apis/connectionData?api-version=5.0-preview",
				Mode: domain.HostingOnPremises,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectEndpoint(tt.serverURL, tt.organization))
		})
	}
}

func TestClient_SelectEndpoint_CustomProfileBase(t *testing.T) {
	c := NewClient(Config{ProfileBaseURL: "http://127.0.0.1:9999/"})

	ep := c.SelectEndpoint("https://dev.azure.com/contoso", "contoso")

	assert.Equal(t, "http://127.0.0.1:9999/contoso/_apis/profile/profiles/me?api-version=7.1", ep.URL)
	assert.Equal(t, domain.HostingCloud, ep.Mode)
}
