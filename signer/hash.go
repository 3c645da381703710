package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"
)

// HashAlgorithm is one of the two digest algorithms this scheme allows.
// Reference: spec.md §4.3/§7 — the verifier restricts to SHA256/SHA512;
// the client is restricted to the same set at Validate() time (spec.md
// §9 open question, resolved).
type HashAlgorithm string

const (
	SHA256 HashAlgorithm = "SHA256"
	SHA512 HashAlgorithm = "SHA512"
)

// ParseHashAlgorithm maps an uppercased token (as it appears in an
// algorithm string like "EMS-HMAC-SHA256") to a HashAlgorithm, and
// reports whether it is one of the allowed two.
func ParseHashAlgorithm(token string) (HashAlgorithm, bool) {
	switch strings.ToUpper(token) {
	case string(SHA256):
		return SHA256, true
	case string(SHA512):
		return SHA512, true
	default:
		return "", false
	}
}

// newHash returns a fresh hash.Hash for the algorithm.
func (a HashAlgorithm) newHash() hash.Hash {
	switch a {
	case SHA512:
		return sha512.New()
	default:
		return sha256.New()
	}
}

// sum returns the lowercase hex digest of data.
func (a HashAlgorithm) sum(data []byte) string {
	h := a.newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// hmacSum computes HMAC(algorithm, key, data) and returns raw bytes.
// Reference: teacher's derivekey.go HMACSHA256, generalized to both
// algorithms instead of being hardcoded to SHA-256.
func (a HashAlgorithm) hmacSum(key, data []byte) []byte {
	h := hmac.New(a.newHash, key)
	h.Write(data)
	return h.Sum(nil)
}
