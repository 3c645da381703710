package signer

import (
	"regexp"
	"strconv"
	"strings"
)

// Reference: spec.md §4.5 — character classes for the four authorization
// header tokens. These are intentionally permissive (e.g. ALGO accepts
// any of A-Z0-9,); the Verifier, not the Parser, is what restricts the
// algorithm to SHA256/SHA512 (spec.md §4.6 step 3).
var (
	algoTokenRE   = regexp.MustCompile(`^[A-Z0-9,]+$`)
	credsTokenRE  = regexp.MustCompile(`^[A-Za-z0-9/_-]+$`)
	headersListRE = regexp.MustCompile(`^[a-z;-]+$`)
	hexTokenRE    = regexp.MustCompile(`^[0-9a-f]+$`)
)

// ParseAuthorizationHeader parses the value of the configured
// authorization header (not including the header name itself) per
// spec.md §4.5 "Header-mode parse".
//
// The value must split into exactly four space-separated tokens:
//
//	<vendor>-HMAC-<ALGO> Credential=<creds>, SignedHeaders=<list>, Signature=<hex>
//
// headers supplies the lowercase-keyed header map used to resolve the
// Host and date-header values bound into the result.
func ParseAuthorizationHeader(value, vendorPrefix, dateHeaderName string, headers map[string][]string) (*AuthElements, error) {
	tokens := strings.Split(value, " ")
	if len(tokens) != 4 {
		return nil, errMalformedHeader()
	}

	algoPrefix := vendorPrefix + "-HMAC-"
	if !strings.HasPrefix(tokens[0], algoPrefix) {
		return nil, errMalformedHeader()
	}
	algo := strings.TrimPrefix(tokens[0], algoPrefix)
	if !algoTokenRE.MatchString(algo) {
		return nil, errMalformedHeader()
	}

	credsToken, ok := cutSuffix(tokens[1], "Credential=", ",")
	if !ok || !credsTokenRE.MatchString(credsToken) {
		return nil, errMalformedHeader()
	}

	listToken, ok := cutSuffix(tokens[2], "SignedHeaders=", ",")
	if !ok || !headersListRE.MatchString(listToken) {
		return nil, errMalformedHeader()
	}

	sigToken, ok := strings.CutPrefix(tokens[3], "Signature=")
	if !ok || !hexTokenRE.MatchString(sigToken) {
		return nil, errMalformedHeader()
	}

	creds, err := ParseCredentials(credsToken)
	if err != nil {
		return nil, err
	}

	host, err := requiredHeader(headers, "host")
	if err != nil {
		return nil, errMissingHost()
	}

	date, err := requiredHeader(headers, strings.ToLower(dateHeaderName))
	if err != nil {
		return nil, errMissingDateHeader(dateHeaderName)
	}

	return &AuthElements{
		Algorithm:     algo,
		Credentials:   creds,
		SignedHeaders: SignedHeadersList(strings.Split(listToken, ";")),
		Signature:     sigToken,
		RequestTime:   date,
		Host:          host,
		FromHeader:    true,
	}, nil
}

// ParseQueryParameters parses presigned query parameters per spec.md
// §4.5 "Query-mode parse". values holds the request's query parameters;
// headers resolves the Host.
func ParseQueryParameters(values map[string][]string, vendorPrefix string, headers map[string][]string) (*AuthElements, error) {
	algoParam := algorithmKey(vendorPrefix)
	algoValue, err := requiredParam(values, algoParam)
	if err != nil {
		return nil, errMissingParam(algoParam)
	}

	algoPrefix := vendorPrefix + "-HMAC-"
	if !strings.HasPrefix(algoValue, algoPrefix) {
		return nil, errMalformedHeader()
	}
	algo := strings.TrimPrefix(algoValue, algoPrefix)
	if !algoTokenRE.MatchString(algo) {
		return nil, errMalformedHeader()
	}

	credsParam := credentialsKey(vendorPrefix)
	credsValue, err := requiredParam(values, credsParam)
	if err != nil {
		return nil, errMissingParam(credsParam)
	}

	dateParam := dateKey(vendorPrefix)
	dateValue, err := requiredParam(values, dateParam)
	if err != nil {
		return nil, errMissingParam(dateParam)
	}

	expiresParam := expiresKey(vendorPrefix)
	expiresValue, err := requiredParam(values, expiresParam)
	if err != nil {
		return nil, errMissingParam(expiresParam)
	}
	expiresSeconds, convErr := strconv.Atoi(expiresValue)
	if convErr != nil {
		expiresSeconds = 0
	}

	signedParam := signedHeadersKey(vendorPrefix)
	signedValue, err := requiredParam(values, signedParam)
	if err != nil {
		return nil, errMissingParam(signedParam)
	}

	sigParam := signatureKey(vendorPrefix)
	sigValue, err := requiredParam(values, sigParam)
	if err != nil {
		return nil, errMissingParam(sigParam)
	}

	creds, err := ParseCredentials(credsValue)
	if err != nil {
		return nil, err
	}

	host, err := requiredHeader(headers, "host")
	if err != nil {
		return nil, errMissingHost()
	}

	return &AuthElements{
		Algorithm:      algo,
		Credentials:    creds,
		SignedHeaders:  SignedHeadersList(strings.Split(signedValue, ";")),
		Signature:      sigValue,
		RequestTime:    dateValue,
		Host:           host,
		FromHeader:     false,
		ExpiresSeconds: expiresSeconds,
	}, nil
}

// cutSuffix trims prefix and suffix from s, reporting whether both were
// present.
func cutSuffix(s, prefix, suffix string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", false
	}
	rest, ok = strings.CutSuffix(rest, suffix)
	return rest, ok
}

func requiredHeader(headers map[string][]string, name string) (string, error) {
	values, ok := headers[strings.ToLower(name)]
	if !ok || len(values) == 0 {
		return "", errMissingHost()
	}
	return values[0], nil
}

func requiredParam(values map[string][]string, key string) (string, error) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", errMissingParam(key)
	}
	return v[0], nil
}
