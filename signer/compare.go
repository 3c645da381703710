package signer

import "crypto/subtle"

// constantTimeEqual compares two hex signature strings in time
// independent of which byte first differs (spec.md §8 "Signature
// comparison runs in time independent of which byte first differs").
func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
