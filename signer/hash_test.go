package signer

import "testing"

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		token string
		want  HashAlgorithm
		ok    bool
	}{
		{token: "SHA256", want: SHA256, ok: true},
		{token: "sha256", want: SHA256, ok: true},
		{token: "SHA512", want: SHA512, ok: true},
		{token: "SHA123", want: "", ok: false},
		{token: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseHashAlgorithm(tt.token)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseHashAlgorithm(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHashAlgorithmSum(t *testing.T) {
	want256 := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := SHA256.sum([]byte("hello")); got != want256 {
		t.Errorf("SHA256.sum(\"hello\") = %q, want %q", got, want256)
	}
	if len(SHA512.sum([]byte("hello"))) != 128 {
		t.Errorf("expected 128 hex chars for SHA512 digest")
	}
}
