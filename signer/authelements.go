package signer

import "strings"

// Credentials is the parsed five-part credentials string:
// accessKeyId/shortDate/region/service/requestType.
// Reference: spec.md §3 "Credentials string".
type Credentials struct {
	Raw         string
	AccessKeyID string
	ShortDate   string
	Party       Party
}

// ParseCredentials splits raw on "/" into exactly five parts. Any other
// count is "Invalid credential scope".
func ParseCredentials(raw string) (Credentials, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 5 {
		return Credentials{}, errBadCredentialScope()
	}
	return Credentials{
		Raw:         raw,
		AccessKeyID: parts[0],
		ShortDate:   parts[1],
		Party: Party{
			Region:      parts[2],
			Service:     parts[3],
			RequestType: parts[4],
		},
	}, nil
}

// AuthElements is the parsed result of reading either an authorization
// header or presigned query parameters. FromHeader discriminates the
// tagged variant of spec.md §9: only query-origin elements carry
// ExpiresSeconds.
type AuthElements struct {
	Algorithm      string // raw token, e.g. "SHA256"; validity is a Verifier concern, not a Parser one
	Credentials    Credentials
	SignedHeaders  SignedHeadersList
	Signature      string
	RequestTime    string // long-date string
	Host           string
	FromHeader     bool
	ExpiresSeconds int // query mode only; meaningless when FromHeader is true
}
