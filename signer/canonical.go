package signer

import "strings"

// CanonicalRequest builds the canonical request string of spec.md §4.1:
// the newline-joined concatenation of the uppercase method, the
// normalized path, the encoded/sorted query string, one canonical
// header line per signed header name, an empty line, the signed-headers
// names joined by ";", and the lowercase hex digest of the payload.
//
// Reference: teacher's builders.go BuildCanonicalString, generalized
// from a hardcoded SHA-256 payload hash (computed by the caller ahead of
// time) to taking the raw payload and a HashAlgorithm so the same
// function serves both SHA-256 and SHA-512 clients.
func CanonicalRequest(method, path, rawQuery string, headers map[string][]string, signedHeaders SignedHeadersList, payload []byte, algo HashAlgorithm) string {
	// CanonicalHeaders already terminates its last line with "\n"; joining
	// it against signedHeaders with another "\n" separator reproduces the
	// mandatory blank line (component 5) without an explicit empty entry.
	lines := []string{
		strings.ToUpper(method),
		NormalizePath(path),
		EncodeQuery(rawQuery),
		CanonicalHeaders(headers, signedHeaders),
		signedHeaders.String(),
		algo.sum(payload),
	}
	return strings.Join(lines, "\n")
}
