package signer

import (
	"encoding/hex"
	"strings"
)

// StringToSign builds the four-line string-to-sign of spec.md §4.3:
// "<vendor>-HMAC-<ALGO>", the long date, "<shortDate>/<staticScope>",
// and the lowercase hex digest of the canonical request.
//
// Reference: teacher's builders.go BuildStringToSign, generalized from a
// hardcoded "AWS4-HMAC-SHA256" algorithm literal to vendorPrefix+algo.
func StringToSign(canonicalRequest string, t SigningTime, party Party, algo HashAlgorithm, vendorPrefix string) string {
	return strings.Join([]string{
		AlgorithmToken(vendorPrefix, algo),
		t.LongDate(),
		party.CredentialScope(t.ShortDate()),
		algo.sum([]byte(canonicalRequest)),
	}, "\n")
}

// AlgorithmToken renders "<vendor>-HMAC-<ALGO>", e.g. "EMS-HMAC-SHA256".
func AlgorithmToken(vendorPrefix string, algo HashAlgorithm) string {
	return vendorPrefix + "-HMAC-" + string(algo)
}

// Signature computes the final signature: lowercase hex of
// HMAC(algo, signingKey, stringToSign).
// Reference: teacher's builders.go BuildSignature.
func Signature(stringToSign string, signingKey []byte, algo HashAlgorithm) string {
	return hex.EncodeToString(algo.hmacSum(signingKey, []byte(stringToSign)))
}
