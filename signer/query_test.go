package signer

import "testing"

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "empty", query: "", expected: ""},
		{name: "single pair", query: "foo=bar", expected: "foo=bar"},
		{name: "sorts lexicographically", query: "b=2&a=1", expected: "a=1&b=2"},
		{name: "missing value", query: "foo", expected: "foo="},
		{name: "unreserved chars untouched", query: "a=abc123-_.~", expected: "a=abc123-_.~"},
		{name: "reserved chars percent-encoded", query: "a=/b c", expected: "a=%2Fb%20c"},
		{name: "plus becomes space before encoding", query: "a=b+c", expected: "a=b%20c"},
		{
			name:     "space in key truncates key and drops value",
			query:    "fo o=bar&baz=qux",
			expected: "baz=qux&fo=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeQuery(tt.query)
			if got != tt.expected {
				t.Errorf("EncodeQuery(%q) = %q, want %q", tt.query, got, tt.expected)
			}
		})
	}
}

func TestEncodeQueryOrderIndependence(t *testing.T) {
	a := EncodeQuery("foo=bar&baz=barbaz")
	b := EncodeQuery("baz=barbaz&foo=bar")
	if a != b {
		t.Errorf("EncodeQuery should be independent of input pair order: %q != %q", a, b)
	}
}

func TestRFC3986Encode(t *testing.T) {
	if got := rfc3986Encode("hello"); got != "hello" {
		t.Errorf("expected unreserved string unchanged, got %q", got)
	}
	if got := rfc3986Encode("a/b"); got != "a%2Fb" {
		t.Errorf("expected %%2F for slash, got %q", got)
	}
	if got := rfc3986Encode("a b"); got != "a%20b" {
		t.Errorf("expected %%20 for space, got %q", got)
	}
}
