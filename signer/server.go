package signer

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Server authenticates incoming requests against a fixed Party and a
// caller-supplied key lookup. Reference: there is no verifier in the
// teacher repo (it only signs); this is grounded on spec.md §4.6's
// seven-step pipeline and on the server-side parse/verify shape seen
// across the retrieval pack (e.g. jahrulnr-local-s3's Authenticate).
type Server struct {
	config ServerConfig
}

// NewServer validates config and returns a ready-to-use Server.
func NewServer(config ServerConfig) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid server config")
	}
	return &Server{config: config}, nil
}

var longDateRE = regexp.MustCompile(`^\d{8}T\d{6}Z$`)

// Authenticate runs the verification state machine of spec.md §4.6 and
// returns the request's access key ID on success, or a *AuthError on
// any failed check. serverTime is the server's current clock reading,
// taken once and never re-read (spec.md §5).
func (s *Server) Authenticate(view RequestView, body []byte, serverTime time.Time) (string, error) {
	headers := view.Headers()
	path, rawQuery, query := splitRequestURI(view.RequestURI())

	ae, err := s.extractAuthElements(view.Method(), headers, query)
	if err != nil {
		return "", err
	}

	if err := s.checkMandatorySignedHeaders(ae); err != nil {
		return "", err
	}

	algo, ok := ParseHashAlgorithm(ae.Algorithm)
	if !ok {
		return "", errBadAlgorithm()
	}

	if err := s.checkDate(ae, serverTime); err != nil {
		return "", err
	}

	if !hostsEquivalent(ae.Host, view.ServerName(), view.ServerPort(), view.Scheme()) {
		return "", errHostMismatch()
	}

	if !ae.Credentials.Party.Equal(s.config.Party) {
		return "", errWrongScope()
	}

	secret, ok := s.config.KeyLookup(ae.Credentials.AccessKeyID)
	if !ok {
		return "", errUnknownKey()
	}

	if err := s.checkSignature(ae, algo, secret, view.Method(), path, rawQuery, headers, body); err != nil {
		return "", err
	}

	return ae.Credentials.AccessKeyID, nil
}

// extractAuthElements implements spec.md §4.6 step 1: prefer the
// configured authorization header; fall back to presigned query
// parameters only for a GET carrying the signature query parameter;
// otherwise the request is unsigned.
func (s *Server) extractAuthElements(method string, headers map[string][]string, query url.Values) (*AuthElements, error) {
	if values, ok := headers[strings.ToLower(s.config.AuthHeaderName)]; ok && len(values) > 0 {
		return ParseAuthorizationHeader(values[0], s.config.VendorPrefix, s.config.DateHeaderName, headers)
	}

	if strings.ToUpper(method) == "GET" {
		if _, present := query[signatureKey(s.config.VendorPrefix)]; present {
			return ParseQueryParameters(urlValuesToMap(query), s.config.VendorPrefix, headers)
		}
	}

	return nil, errNotSigned()
}

// checkMandatorySignedHeaders implements spec.md §4.6 step 2.
func (s *Server) checkMandatorySignedHeaders(ae *AuthElements) error {
	if !ae.SignedHeaders.Contains("host") {
		return errHostNotSigned()
	}
	if ae.FromHeader && !ae.SignedHeaders.Contains(s.config.DateHeaderName) {
		return errDateNotSigned()
	}
	return nil
}

// checkDate implements spec.md §4.6 step 4.
func (s *Server) checkDate(ae *AuthElements, serverTime time.Time) error {
	if !longDateRE.MatchString(ae.RequestTime) {
		return errBadDate()
	}
	if ae.RequestTime[:8] != ae.Credentials.ShortDate {
		return errDateMismatch()
	}

	reqTime, err := ParseLongDate(ae.RequestTime)
	if err != nil {
		return errBadDate()
	}

	skew := serverTime.Sub(reqTime)
	if skew >= 0 {
		expiry := DefaultExpirySeconds
		if !ae.FromHeader {
			expiry = ae.ExpiresSeconds
		}
		if skew > time.Duration(expiry)*time.Second {
			return errOutsideWindow()
		}
		return nil
	}

	if -skew > MaxForwardSkewSeconds*time.Second {
		return errOutsideWindow()
	}
	return nil
}

// checkSignature implements spec.md §4.6 step 7: recompute the
// signature using the same Canonicalizer/Signer and compare in constant
// time. In query mode, only the X-<vendor>-Signature parameter is
// stripped before recanonicalizing — the other five X-<vendor>-*
// parameters were present in the query when the Client signed it, so
// they stay — and the payload is the UnsignedPayload sentinel; in header
// mode the actual request body is used.
func (s *Server) checkSignature(ae *AuthElements, algo HashAlgorithm, secret, method, path, rawQuery string, headers map[string][]string, body []byte) error {
	payload := body
	query := rawQuery
	if !ae.FromHeader {
		payload = []byte(UnsignedPayload)
		query = stripSignatureParam(rawQuery, s.config.VendorPrefix)
	}

	canonicalRequest := CanonicalRequest(method, path, query, headers, ae.SignedHeaders, payload, algo)

	reqTime, _ := ParseLongDate(ae.RequestTime)
	t := NewSigningTime(reqTime)
	strToSign := StringToSign(canonicalRequest, t, s.config.Party, algo, s.config.VendorPrefix)

	key := DeriveSigningKey(secret, ae.Credentials.Party.CredentialScope(ae.Credentials.ShortDate), algo, s.config.VendorPrefix)
	expected := Signature(strToSign, key, algo)

	if !constantTimeEqual(expected, ae.Signature) {
		return errSignatureMismatch()
	}
	return nil
}

func splitRequestURI(requestURI string) (path, rawQuery string, query url.Values) {
	path, rawQuery, _ = strings.Cut(requestURI, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	return path, rawQuery, query
}

func urlValuesToMap(v url.Values) map[string][]string {
	return map[string][]string(v)
}
