package signer

import "testing"

func TestCanonicalRequestScenario1(t *testing.T) {
	headers := map[string][]string{
		"content-type": {"application/x-www-form-urlencoded; charset=utf-8"},
		"host":         {"iam.amazonaws.com"},
		"x-ems-date":   {"20110909T233600Z"},
	}
	signed := NewSignedHeadersList("content-type", "x-ems-date")
	body := []byte("Action=ListUsers&Version=2010-05-08")

	got := CanonicalRequest("POST", "/", "", headers, signed, body, SHA256)

	expected := "POST\n" +
		"/\n" +
		"\n" +
		"content-type:application/x-www-form-urlencoded; charset=utf-8\n" +
		"host:iam.amazonaws.com\n" +
		"x-ems-date:20110909T233600Z\n" +
		"\n" +
		"content-type;host;x-ems-date\n" +
		SHA256.sum(body)

	if got != expected {
		t.Errorf("CanonicalRequest mismatch\ngot:\n%q\nwant:\n%q", got, expected)
	}
}

func TestCanonicalRequestEmptyQueryLine(t *testing.T) {
	signed := NewSignedHeadersList()
	got := CanonicalRequest("GET", "/", "", map[string][]string{"host": {"x"}}, signed, nil, SHA256)
	lines := splitLines(got)
	if lines[2] != "" {
		t.Errorf("expected empty canonical query line, got %q", lines[2])
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
