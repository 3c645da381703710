package signer

import (
	"errors"
	"strings"
)

// Party is the immutable credential-scope prefix a Client signs against
// and a Server verifies against: region, service and request type.
// Reference: AWS SDK v4 signer internal/v4/scope.go (BuildCredentialScope),
// generalized from a fixed "aws4_request" terminator to a configurable
// RequestType.
type Party struct {
	Region      string
	Service     string
	RequestType string
}

// Validate checks that all three components are present.
func (p Party) Validate() error {
	if p.Region == "" {
		return errors.New("region is required")
	}
	if p.Service == "" {
		return errors.New("service is required")
	}
	if p.RequestType == "" {
		return errors.New("request type is required")
	}
	return nil
}

// staticScope joins the party into the static part of a credential scope:
// region/service/requestType.
func (p Party) staticScope() string {
	return strings.Join([]string{p.Region, p.Service, p.RequestType}, "/")
}

// CredentialScope joins shortDate with the party into the full
// four-element credential scope: shortDate/region/service/requestType.
func (p Party) CredentialScope(shortDate string) string {
	return shortDate + "/" + p.staticScope()
}

// Equal reports whether two parties name the same region/service/requestType.
func (p Party) Equal(other Party) bool {
	return p.Region == other.Region &&
		p.Service == other.Service &&
		p.RequestType == other.RequestType
}
