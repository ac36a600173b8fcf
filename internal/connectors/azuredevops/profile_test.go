package azuredevops

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

func TestNormalizeCloudProfile(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *domain.UserProfile
	}{
		{
			name:     "all fields",
			body:     `{"id":"1","displayName":"A","emailAddress":"a@x.com"}`,
			expected: &domain.UserProfile{ID: "1", DisplayName: "A", Email: "a@x.com"},
		},
		{
			name:     "only id",
			body:     `{"id":"1"}`,
			expected: &domain.UserProfile{ID: "1"},
		},
		{
			name:     "null optional fields",
			body:     `{"id":"1","displayName":null,"emailAddress":null,"publicAlias":"x"}`,
			expected: &domain.UserProfile{ID: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p CloudProfile
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			profile, err := NormalizeCloudProfile(&p)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}
}

func TestNormalizeCloudProfile_MissingID(t *testing.T) {
	profile, err := NormalizeCloudProfile(&CloudProfile{DisplayName: "A"})
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrMissingID)

	profile, err = NormalizeCloudProfile(nil)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestNormalizeConnectionData(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *domain.UserProfile
	}{
		{
			name: "with account property",
			body: `{"authenticatedUser":{"id":"2","providerDisplayName":"B",
				"properties":{"Account":{"$type":"System.String","$value":"b@corp.local"}}}}`,
			expected: &domain.UserProfile{ID: "2", DisplayName: "B", Email: "b@corp.local"},
		},
		{
			name:     "no properties",
			body:     `{"authenticatedUser":{"id":"2","providerDisplayName":"B"}}`,
			expected: &domain.UserProfile{ID: "2", DisplayName: "B", Email: ""},
		},
		{
			name:     "properties without account",
			body:     `{"authenticatedUser":{"id":"2","properties":{"Other":{"$value":"x"}}}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
		{
			name:     "account without value",
			body:     `{"authenticatedUser":{"id":"2","properties":{"Account":{"$type":"System.String"}}}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
		{
			name:     "account with non-string value",
			body:     `{"authenticatedUser":{"id":"2","properties":{"Account":{"$value":42}}}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
		{
			name: "non-object sibling property",
			body: `{"authenticatedUser":{"id":"2","providerDisplayName":"B","properties":{"SchemaVersion":"1.0",
				"Account":{"$type":"System.String","$value":"b@x.com"}}}}`,
			expected: &domain.UserProfile{ID: "2", DisplayName: "B", Email: "b@x.com"},
		},
		{
			name:     "account as plain string",
			body:     `{"authenticatedUser":{"id":"2","properties":{"Account":"b@x.com"}}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
		{
			name:     "account as null",
			body:     `{"authenticatedUser":{"id":"2","properties":{"Account":null}}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
		{
			name:     "extra connection data fields",
			body:     `{"authenticatedUser":{"id":"2"},"instanceId":"abc","locationServiceData":{}}`,
			expected: &domain.UserProfile{ID: "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d ConnectionData
			require.NoError(t, json.Unmarshal([]byte(tt.body), &d))

			profile, err := NormalizeConnectionData(&d)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, profile)
		})
	}
}

func TestNormalizeConnectionData_Failures(t *testing.T) {
	tests := []struct {
		name     string
		data     *ConnectionData
		expected error
	}{
		{name: "nil", data: nil, expected: ErrMissingAuthenticatedUser},
		{name: "no authenticated user", data: &ConnectionData{}, expected: ErrMissingAuthenticatedUser},
		{name: "no id", data: &ConnectionData{AuthenticatedUser: &Identity{ProviderDisplayName: "B"}}, expected: ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := NormalizeConnectionData(tt.data)
			assert.Nil(t, profile)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
