package signer

import (
	"sort"
	"strings"
)

const rfc3986Unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"

var rfc3986UnreservedSet [256]bool

func init() {
	for i := 0; i < len(rfc3986Unreserved); i++ {
		rfc3986UnreservedSet[rfc3986Unreserved[i]] = true
	}
}

// rfc3986Encode percent-encodes s, leaving RFC 3986 unreserved characters
// untouched and upper-casing the hex digits of everything else.
func rfc3986Encode(s string) string {
	var needsEscape bool
	for i := 0; i < len(s); i++ {
		if !rfc3986UnreservedSet[s[i]] {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if rfc3986UnreservedSet[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

// EncodeQuery implements the canonical query-string encoding of spec.md
// §4.1: split on "&", split each pair on the first "=", percent-encode
// key and value under RFC 3986 unreserved rules (after substituting "+"
// with a literal space), then sort the encoded pairs byte-wise and
// rejoin with "&". Empty input yields empty output.
//
// Compatibility quirk, preserved bit-for-bit per spec.md §9: if a key
// contains a space, the key is truncated at the first space and its
// value is discarded. This is not a standard behavior; it exists only
// to stay interoperable with signers that produce such query strings.
func EncodeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	rawPairs := strings.Split(rawQuery, "&")
	encoded := make([]string, 0, len(rawPairs))

	for _, rawPair := range rawPairs {
		key, value, hasValue := rawPair, "", false
		if idx := strings.IndexByte(rawPair, '='); idx >= 0 {
			key, value, hasValue = rawPair[:idx], rawPair[idx+1:], true
		}
		_ = hasValue

		if idx := strings.IndexByte(key, ' '); idx >= 0 {
			key = key[:idx]
			value = ""
		}

		encodedKey := rfc3986Encode(strings.ReplaceAll(key, "+", " "))
		encodedValue := rfc3986Encode(strings.ReplaceAll(value, "+", " "))
		encoded = append(encoded, encodedKey+"="+encodedValue)
	}

	sort.Strings(encoded)
	return strings.Join(encoded, "&")
}
