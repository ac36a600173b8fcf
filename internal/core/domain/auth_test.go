package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected AuthMethod
	}{
		{input: "pat", expected: AuthMethodPAT},
		{input: "PAT", expected: AuthMethodPAT},
		{input: " Pat ", expected: AuthMethodPAT},
		{input: "azure-cli", expected: AuthMethodAzureCLI},
		{input: "Azure-CLI", expected: AuthMethodAzureCLI},
		{input: "azure-identity", expected: AuthMethodAzureIdentity},
		{input: "managed-identity", expected: AuthMethodAzureIdentity},
		{input: "", expected: AuthMethodAzureIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAuthMethod(tt.input))
		})
	}
}
