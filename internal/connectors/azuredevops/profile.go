package azuredevops

import (
	"encoding/json"
	"errors"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// ErrMissingID indicates a profile response did not identify the user.
var ErrMissingID = errors.New("azure devops: profile response has no user id")

// ErrMissingAuthenticatedUser indicates connection data carried no authenticated user.
var ErrMissingAuthenticatedUser = errors.New("azure devops: connection data has no authenticated user")

// CloudProfile is the response of the cloud profile API.
type CloudProfile struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// ConnectionData is the response of the on-premises connection data API.
// Only the fields needed to identify the caller are decoded.
type ConnectionData struct {
	AuthenticatedUser *Identity `json:"authenticatedUser"`
}

// Identity is an Azure DevOps Server identity.
// Property bag entries stay raw and are decoded on demand, so a malformed
// entry never fails the response.
type Identity struct {
	ID                  string                     `json:"id"`
	ProviderDisplayName string                     `json:"providerDisplayName"`
	Properties          map[string]json.RawMessage `json:"properties"`
}

// PropertyValue is a typed property bag entry, e.g. {"$type": "System.String", "$value": "..."}.
type PropertyValue struct {
	Type  string `json:"$type"`
	Value any    `json:"$value"`
}

// accountProperty holds the sign-in address of an identity.
const accountProperty = "Account"

// NormalizeCloudProfile maps a cloud profile response onto a UserProfile.
func NormalizeCloudProfile(p *CloudProfile) (*domain.UserProfile, error) {
	if p == nil || p.ID == "" {
		return nil, ErrMissingID
	}
	return &domain.UserProfile{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Email:       p.EmailAddress,
	}, nil
}

// NormalizeConnectionData maps a connection data response onto a UserProfile.
// The Account property is optional; any missing level yields an empty email.
func NormalizeConnectionData(d *ConnectionData) (*domain.UserProfile, error) {
	if d == nil || d.AuthenticatedUser == nil {
		return nil, ErrMissingAuthenticatedUser
	}
	user := d.AuthenticatedUser
	if user.ID == "" {
		return nil, ErrMissingID
	}
	return &domain.UserProfile{
		ID:          user.ID,
		DisplayName: user.ProviderDisplayName,
		Email:       user.account(),
	}, nil
}

func (i *Identity) account() string {
	raw, ok := i.Properties[accountProperty]
	if !ok {
		return ""
	}
	var prop PropertyValue
	if err := json.Unmarshal(raw, &prop); err != nil {
		return ""
	}
	s, _ := prop.Value.(string)
	return s
}
