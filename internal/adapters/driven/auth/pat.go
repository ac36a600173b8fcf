package auth

import (
	"context"
	"encoding/base64"

	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driven"
)

var _ driven.HeaderProvider = (*PATStrategy)(nil)

// PATStrategy sends a personal access token as HTTP Basic credentials.
type PATStrategy struct {
	token string
}

// NewPATStrategy creates a PAT strategy for token.
func NewPATStrategy(token string) *PATStrategy {
	return &PATStrategy{token: token}
}

// AuthorizationHeader returns "Basic base64(:token)". No network call is made.
func (s *PATStrategy) AuthorizationHeader(_ context.Context) (string, error) {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+s.token)), nil
}

// Method returns domain.AuthMethodPAT.
func (s *PATStrategy) Method() domain.AuthMethod {
	return domain.AuthMethodPAT
}
