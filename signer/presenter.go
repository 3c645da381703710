package signer

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildAuthorizationHeader renders the authorization header value of
// spec.md §4.4:
//
//	<vendor>-HMAC-<ALGO> Credential=<accessKeyId>/<scope>, SignedHeaders=<h1;h2;...>, Signature=<hex>
//
// Reference: teacher's builders.go BuildAuthorizationHeader, generalized
// from the fixed "AWS4-HMAC-SHA256" literal to vendorPrefix+algo.
func BuildAuthorizationHeader(vendorPrefix string, algo HashAlgorithm, credentialString, signedHeadersStr, signature string) string {
	var b strings.Builder
	b.WriteString(AlgorithmToken(vendorPrefix, algo))
	b.WriteByte(' ')
	b.WriteString("Credential=")
	b.WriteString(credentialString)
	b.WriteString(", ")
	b.WriteString("SignedHeaders=")
	b.WriteString(signedHeadersStr)
	b.WriteString(", ")
	b.WriteString("Signature=")
	b.WriteString(signature)
	return b.String()
}

// PresignedQueryPairs returns the five "key=value" query pairs, in
// literal (un-percent-escaped) form, that a presigned URL's signature
// itself covers: Algorithm, Credentials, Date, Expires, SignedHeaders.
// Signature is deliberately excluded since it cannot cover itself — it
// is the sixth parameter, appended only after the canonical request
// (built from a query string that already carries these five) has been
// signed.
//
// The pairs are left unescaped rather than run through url.Values.Encode
// because EncodeQuery performs the one-and-only percent-encoding pass
// over the raw query text (spec.md §4.1); escaping here too would
// double-encode reserved characters like the "/" in a credential scope.
// Reference: AWS SigV4 presigned URLs sign their own X-Amz-* query
// parameters the same way; the teacher repo has no presigning support to
// ground this on directly.
func PresignedQueryPairs(vendorPrefix string, algo HashAlgorithm, credentialString, longDate string, expiresSeconds int, signedHeadersStr string) []string {
	return []string{
		algorithmKey(vendorPrefix) + "=" + AlgorithmToken(vendorPrefix, algo),
		credentialsKey(vendorPrefix) + "=" + credentialString,
		dateKey(vendorPrefix) + "=" + longDate,
		expiresKey(vendorPrefix) + "=" + strconv.Itoa(expiresSeconds),
		signedHeadersKey(vendorPrefix) + "=" + signedHeadersStr,
	}
}

// stripSignatureParam removes only the X-<vendor>-Signature query
// parameter from rawQuery, returning the remainder unchanged (but
// otherwise unencoded) so a Verifier can recompute the canonical query
// the Client actually signed — which includes the other five
// X-<vendor>-* parameters, since those were present in the query before
// the signature was computed.
func stripSignatureParam(rawQuery, vendorPrefix string) string {
	if rawQuery == "" {
		return ""
	}

	sigKey := signatureKey(vendorPrefix)

	pairs := strings.Split(rawQuery, "&")
	kept := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		key := pair
		if idx := strings.IndexByte(pair, '='); idx >= 0 {
			key = pair[:idx]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if key == sigKey {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}
