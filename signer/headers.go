package signer

import (
	"sort"
	"strings"
)

// SignedHeadersList is a sorted set of lowercase header names.
// Reference: spec.md §3 "Signed headers list".
type SignedHeadersList []string

// NewSignedHeadersList builds a SignedHeadersList from arbitrary-case
// names, lowercasing, deduplicating and sorting them, and forcing the
// presence of "host" (mandatory in both presentation modes).
func NewSignedHeadersList(names ...string) SignedHeadersList {
	set := make(map[string]struct{}, len(names)+1)
	set["host"] = struct{}{}
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}

	out := make(SignedHeadersList, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether name (any case) is in the list.
func (l SignedHeadersList) Contains(name string) bool {
	name = strings.ToLower(name)
	for _, n := range l {
		if n == name {
			return true
		}
	}
	return false
}

// String joins the list with ";", as it appears in SignedHeaders=... and
// in the canonical request.
func (l SignedHeadersList) String() string {
	return strings.Join(l, ";")
}

// membershipSet is the generic predicate used to decide whether a header
// name belongs to the signed set, generalizing the teacher's headers.go
// Rule/MapRule predicates (there used to decide S3 header-hoisting and
// ignored-header rules, neither of which this scheme has — there is no
// automatic header hoisting here, only the caller-supplied signed-headers
// list) down to the one predicate this scheme actually needs.
type membershipSet map[string]struct{}

func (l SignedHeadersList) membershipSet() membershipSet {
	m := make(membershipSet, len(l))
	for _, n := range l {
		m[n] = struct{}{}
	}
	return m
}

func (m membershipSet) has(name string) bool {
	_, ok := m[strings.ToLower(name)]
	return ok
}

// ParseHeaderBlock parses a raw "name:value" block, one header per line
// separated by "\n", into a lowercase-keyed, order-preserving header map.
// Reference: spec.md §4.1 "Header canonicalization" — this is the raw
// input format that paragraph describes.
func ParseHeaderBlock(raw string) map[string][]string {
	headers := make(map[string][]string)
	if raw == "" {
		return headers
	}

	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := trimASCIISpace(line[idx+1:])
		headers[name] = append(headers[name], value)
	}
	return headers
}

// trimASCIISpace trims leading/trailing ASCII whitespace only. Per
// spec.md §1 Non-goals, header-value normalization never goes beyond
// this: no internal run-collapsing, no multi-line unfolding.
func trimASCIISpace(s string) string {
	return strings.Trim(s, " \t\r\n")
}

// CanonicalHeadersFromBlock runs the literal §4.1 "Header canonicalization"
// algorithm: parse the raw "name:value" block, keep only lines whose
// lowercase name is in signedHeaders, group by name, and render through
// CanonicalHeaders.
func CanonicalHeadersFromBlock(raw string, signedHeaders SignedHeadersList) string {
	parsed := ParseHeaderBlock(raw)
	signed := signedHeaders.membershipSet()

	filtered := make(map[string][]string, len(parsed))
	for name, values := range parsed {
		if signed.has(name) {
			filtered[name] = values
		}
	}
	return CanonicalHeaders(filtered, signedHeaders)
}

// CanonicalHeaders builds the canonical header block (spec.md §4.1,
// component 4) from a header map and the list of header names to sign.
// The signed-headers line (component 6) is SignedHeadersList.String.
//
// For each name in signedHeaders, sorted ascending, the output contains
// one line "name:v1,v2,...\n" where the values are this header's values,
// each whitespace-trimmed and the whole group sorted ascending. A name
// in signedHeaders with no entry in headers yields an empty value list
// (an empty line "name:\n") — the caller is responsible for enforcing
// the invariant that every signed header actually appears (spec.md §3).
func CanonicalHeaders(headers map[string][]string, signedHeaders SignedHeadersList) string {
	var b strings.Builder
	for _, name := range signedHeaders {
		values := append([]string(nil), headers[name]...)
		for i, v := range values {
			values[i] = trimASCIISpace(v)
		}
		sort.Strings(values)

		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strings.Join(values, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
