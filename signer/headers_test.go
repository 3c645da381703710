package signer

import "testing"

func TestNewSignedHeadersList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "forces host", input: nil, expected: "host"},
		{name: "lowercases", input: []string{"X-Ems-Date"}, expected: "host;x-ems-date"},
		{name: "sorts", input: []string{"zebra", "alpha"}, expected: "alpha;host;zebra"},
		{name: "dedupes", input: []string{"host", "Host"}, expected: "host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSignedHeadersList(tt.input...).String()
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSignedHeadersListContains(t *testing.T) {
	l := NewSignedHeadersList("X-Ems-Date", "content-type")
	for _, name := range []string{"host", "x-ems-date", "X-EMS-DATE", "content-type"} {
		if !l.Contains(name) {
			t.Errorf("expected list to contain %q", name)
		}
	}
	if l.Contains("authorization") {
		t.Error("expected list not to contain authorization")
	}
}

func TestCanonicalHeaders(t *testing.T) {
	headers := map[string][]string{
		"host":         {"example.com"},
		"x-ems-date":   {"20230101T000000Z"},
		"content-type": {" application/json ", "text/plain"},
	}
	signed := NewSignedHeadersList("content-type", "x-ems-date")

	got := CanonicalHeaders(headers, signed)
	expected := "content-type:application/json,text/plain\n" +
		"host:example.com\n" +
		"x-ems-date:20230101T000000Z\n"

	if got != expected {
		t.Errorf("CanonicalHeaders() = %q, want %q", got, expected)
	}
}

func TestCanonicalHeadersMissingSignedHeaderYieldsEmptyValue(t *testing.T) {
	headers := map[string][]string{"host": {"example.com"}}
	signed := NewSignedHeadersList("x-missing")

	got := CanonicalHeaders(headers, signed)
	expected := "host:example.com\nx-missing:\n"
	if got != expected {
		t.Errorf("CanonicalHeaders() = %q, want %q", got, expected)
	}
}

func TestParseHeaderBlock(t *testing.T) {
	raw := "Host: example.com\nX-Ems-Date:  20230101T000000Z  \n"
	got := ParseHeaderBlock(raw)

	if got["host"][0] != "example.com" {
		t.Errorf("expected host header to be lowercased and present, got %#v", got)
	}
	if got["x-ems-date"][0] != "20230101T000000Z" {
		t.Errorf("expected trimmed date header, got %q", got["x-ems-date"][0])
	}
}

func TestTrimASCIISpaceDoesNotCollapseInternalRuns(t *testing.T) {
	got := trimASCIISpace("  a    b  ")
	if got != "a    b" {
		t.Errorf("expected only leading/trailing trim, got %q", got)
	}
}
