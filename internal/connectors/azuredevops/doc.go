// Package azuredevops provides identity lookups against Azure DevOps.
//
// This package provides:
//   - Organization extraction from a server URL
//   - Endpoint selection between the cloud profile API and the on-premises
//     connection data API
//   - Normalisation of both response shapes into a domain.UserProfile
//   - Error handling for Azure DevOps HTTP responses
//   - Rate limiting for outbound requests
//
// # Hosting Modes
//
// A server URL containing dev.azure.com or visualstudio.com addresses the
// cloud service. The profile of the caller lives on the vssps subdomain:
//   - https://vssps.dev.azure.com/{organization}/_apis/profile/profiles/me?api-version=7.1
//
// Any other URL is treated as an Azure DevOps Server collection, which has no
// profile service. The caller is read from connection data instead:
//   - {serverURL}/_apis/connectionData?api-version=5.0-preview
//
// # Sign-in Redirects
//
// Without X-TFS-FedAuthRedirect: Suppress, an unauthenticated request may be
// answered with 203 and an HTML sign-in page rather than 401. The client
// always sends the header and treats 203 as a failure.
package azuredevops
