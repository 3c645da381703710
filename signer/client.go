package signer

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Client signs outgoing requests under a fixed (secret, accessKeyId,
// Party) configuration. Reference: teacher's Signer/httpSigner split in
// signer.go, generalized from mutating a *http.Request in place to
// operating on plain strings/maps so the library stays transport-free
// (spec.md §9); net/http integration lives in the httpadapter package.
type Client struct {
	config ClientConfig
	keys   *keyDeriver
}

// NewClient validates config and returns a ready-to-use Client.
func NewClient(config ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid client config")
	}
	return &Client{
		config: config,
		keys:   newKeyDeriver(config.ThreadSafety, config.VendorPrefix, config.HashAlgorithm),
	}, nil
}

// SignHeaders implements spec.md §6 signHeaders: it returns extraHeaders
// augmented with the date header, "host" (taken from rawURL), and the
// authorization header. headersToSign names which headers (besides the
// mandatory "host" and date header) are folded into the signature;
// date is the signing timestamp.
func (c *Client) SignHeaders(method, rawURL string, body []byte, extraHeaders map[string][]string, headersToSign []string, date SigningTime) (map[string][]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}

	headers := cloneHeaders(extraHeaders)
	headers["host"] = []string{u.Host}
	headers[strings.ToLower(c.config.DateHeaderName)] = []string{date.LongDate()}

	required := append(append([]string{}, headersToSign...), c.config.DateHeaderName)
	signedHeaders := NewSignedHeadersList(required...)

	canonicalRequest := canonicalRequestFromParts(method, u.RequestURI(), headers, signedHeaders, body, c.config.HashAlgorithm)
	strToSign := StringToSign(canonicalRequest, date, c.config.Party, c.config.HashAlgorithm, c.config.VendorPrefix)
	key := c.keys.deriveKey(c.config.SecretKey, c.config.AccessKeyID, c.config.Party, date)
	signature := Signature(strToSign, key, c.config.HashAlgorithm)

	credentialString := c.config.AccessKeyID + "/" + c.config.Party.CredentialScope(date.ShortDate())
	authHeader := BuildAuthorizationHeader(c.config.VendorPrefix, c.config.HashAlgorithm, credentialString, signedHeaders.String(), signature)
	headers[strings.ToLower(c.config.AuthHeaderName)] = []string{authHeader}

	return headers, nil
}

// SignURL implements spec.md §6 signUrl: it returns rawURL with the six
// presigned query parameters appended. The payload used for signing is
// always the UnsignedPayload sentinel and the method is always GET
// (spec.md §4.4). The only mandatory signed header is "host"; any
// extraHeaders named in headersToSign are folded in as well.
func (c *Client) SignURL(rawURL string, date SigningTime, expiresSeconds int, extraHeaders map[string][]string, headersToSign []string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "parse url")
	}

	headers := cloneHeaders(extraHeaders)
	headers["host"] = []string{u.Host}

	signedHeaders := NewSignedHeadersList(headersToSign...)
	credentialString := c.config.AccessKeyID + "/" + c.config.Party.CredentialScope(date.ShortDate())

	// The five X-<vendor>-* parameters (everything but Signature) are
	// part of the query the signature itself covers, so they must be
	// merged into the URL's raw query — left unescaped, since
	// EncodeQuery does the only percent-encoding pass when the
	// canonical request is built — before signing.
	pairs := PresignedQueryPairs(c.config.VendorPrefix, c.config.HashAlgorithm, credentialString, date.LongDate(), expiresSeconds, signedHeaders.String())
	u.RawQuery = joinQuery(u.RawQuery, pairs...)

	canonicalRequest := canonicalRequestFromParts("GET", u.RequestURI(), headers, signedHeaders, []byte(UnsignedPayload), c.config.HashAlgorithm)
	strToSign := StringToSign(canonicalRequest, date, c.config.Party, c.config.HashAlgorithm, c.config.VendorPrefix)
	key := c.keys.deriveKey(c.config.SecretKey, c.config.AccessKeyID, c.config.Party, date)
	signature := Signature(strToSign, key, c.config.HashAlgorithm)

	u.RawQuery = joinQuery(u.RawQuery, signatureKey(c.config.VendorPrefix)+"="+signature)

	return u.String(), nil
}

// joinQuery appends literal "key=value" pairs to an existing raw query
// string, left unescaped (see PresignedQueryPairs).
func joinQuery(rawQuery string, pairs ...string) string {
	all := append([]string{}, pairs...)
	if rawQuery != "" {
		all = append([]string{rawQuery}, all...)
	}
	return strings.Join(all, "&")
}

func cloneHeaders(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in)+2)
	for k, v := range in {
		out[strings.ToLower(k)] = append([]string(nil), v...)
	}
	return out
}

// canonicalRequestFromParts splits a combined "path?query" request URI
// (as produced by (*url.URL).RequestURI) into the path and raw query
// CanonicalRequest expects.
func canonicalRequestFromParts(method, requestURI string, headers map[string][]string, signedHeaders SignedHeadersList, payload []byte, algo HashAlgorithm) string {
	path, rawQuery, _ := strings.Cut(requestURI, "?")
	return CanonicalRequest(method, path, rawQuery, headers, signedHeaders, payload, algo)
}
