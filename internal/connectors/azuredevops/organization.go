package azuredevops

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// Host markers shared by ExtractOrganization and IsCloud.
const (
	cloudHostMarker  = "dev.azure.com"
	legacyHostMarker = "visualstudio.com"
)

var (
	cloudOrgPattern   = regexp.MustCompile(`https?://dev\.azure\.com/([^/]+)`)
	legacyOrgPattern  = regexp.MustCompile(`https?://([^.]+)\.visualstudio\.com`)
	collectionPattern = regexp.MustCompile(`https?://[^/]+/([^/]+)`)
)

// ExtractOrganization returns the organization addressed by serverURL.
//
// Patterns are tried in order, first match wins:
//   - https://dev.azure.com/{org}
//   - https://{org}.visualstudio.com
//   - https://{host}/{collection}, where the collection stands in for the
//     organization on Azure DevOps Server
//
// A URL matching none of them yields a domain.ErrValidation error.
func ExtractOrganization(serverURL string) (string, error) {
	for _, pattern := range []*regexp.Regexp{cloudOrgPattern, legacyOrgPattern, collectionPattern} {
		if m := pattern.FindStringSubmatch(serverURL); m != nil && m[1] != "" {
			return m[1], nil
		}
	}
	return "", domain.NewValidationError("Could not extract organization from URL", nil)
}

// IsCloud reports whether serverURL addresses the cloud service.
func IsCloud(serverURL string) bool {
	return strings.Contains(serverURL, cloudHostMarker) ||
		strings.Contains(serverURL, legacyHostMarker)
}
