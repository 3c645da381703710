package signer

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

// fakeView is a minimal RequestView for exercising Server.Authenticate
// without pulling in net/http or the httpadapter package.
type fakeView struct {
	method     string
	requestURI string
	serverName string
	serverPort string
	scheme     string
	headers    map[string][]string
}

func (v *fakeView) Method() string                 { return v.method }
func (v *fakeView) RequestURI() string              { return v.requestURI }
func (v *fakeView) ServerName() string              { return v.serverName }
func (v *fakeView) ServerPort() string              { return v.serverPort }
func (v *fakeView) Scheme() string                  { return v.scheme }
func (v *fakeView) Headers() map[string][]string    { return v.headers }

func iamParty() Party {
	return Party{Region: "us-east-1", Service: "iam", RequestType: "aws4_request"}
}

func scenario1Client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(ClientConfig{
		SecretKey:   "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		AccessKeyID: "AKIDEXAMPLE",
		Party:       iamParty(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func scenario1SignedHeaders(t *testing.T) map[string][]string {
	t.Helper()
	client := scenario1Client(t)
	date := NewSigningTime(time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	body := []byte("Action=ListUsers&Version=2010-05-08")

	headers, err := client.SignHeaders(
		"POST",
		"https://iam.amazonaws.com/",
		body,
		map[string][]string{"content-type": {"application/x-www-form-urlencoded; charset=utf-8"}},
		[]string{"content-type"},
		date,
	)
	if err != nil {
		t.Fatalf("SignHeaders: %v", err)
	}
	return headers
}

// Scenario 1: header-signed POST reproduces spec.md §8's literal signature.
func TestScenario1HeaderSignedPOST(t *testing.T) {
	headers := scenario1SignedHeaders(t)

	authHeader := headers["x-ems-auth"][0]
	wantSig := "f36c21c6e16a71a6e8dc56673ad6354aeef49c577a22fd58a190b5fcf8891dbd"
	if !strings.HasSuffix(authHeader, "Signature="+wantSig) {
		t.Fatalf("authorization header %q does not end with expected signature", authHeader)
	}
}

func scenario1Server(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(ServerConfig{
		Party: iamParty(),
		KeyLookup: func(accessKeyID string) (string, bool) {
			if accessKeyID == "AKIDEXAMPLE" {
				return "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY", true
			}
			return "", false
		},
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func TestScenario1RoundTripThroughServer(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	body := []byte("Action=ListUsers&Version=2010-05-08")

	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "iam.amazonaws.com",
		scheme:     "https",
		headers:    headers,
	}

	s := scenario1Server(t)
	accessKeyID, err := s.Authenticate(view, body, time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if accessKeyID != "AKIDEXAMPLE" {
		t.Errorf("accessKeyID = %q", accessKeyID)
	}
}

// Scenario 2: presigned GET reproduces spec.md §8's literal signature.
// The Host header value is not stated explicitly in spec.md; "example.com"
// is the value that reproduces the given signature once the five
// X-EMS-* parameters are folded into the signed query (DESIGN.md
// "Resolved ambiguities").
func TestScenario2PresignedGET(t *testing.T) {
	client, err := NewClient(ClientConfig{
		SecretKey:   "very_secure",
		AccessKeyID: "th3K3y",
		Party:       Party{Region: "us-east-1", Service: "host", RequestType: "aws4_request"},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	date := NewSigningTime(time.Date(2011, 5, 11, 12, 0, 0, 0, time.UTC))
	signedURL, err := client.SignURL(
		"https://example.com/something?foo=bar&baz=barbaz",
		date,
		123456,
		nil,
		nil,
	)
	if err != nil {
		t.Fatalf("SignURL: %v", err)
	}

	u, err := url.Parse(signedURL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	gotSig := u.Query().Get("X-EMS-Signature")
	wantSig := "fbc9dbb91670e84d04ad2ae7505f4f52ab3ff9e192b8233feeae57e9022c2b67"
	if gotSig != wantSig {
		t.Errorf("signature = %q, want %q", gotSig, wantSig)
	}
}

func TestScenario2RoundTripThroughServer(t *testing.T) {
	client, err := NewClient(ClientConfig{
		SecretKey:   "very_secure",
		AccessKeyID: "th3K3y",
		Party:       Party{Region: "us-east-1", Service: "host", RequestType: "aws4_request"},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	date := NewSigningTime(time.Date(2011, 5, 11, 12, 0, 0, 0, time.UTC))
	signedURL, err := client.SignURL("https://example.com/something?foo=bar&baz=barbaz", date, 123456, nil, nil)
	if err != nil {
		t.Fatalf("SignURL: %v", err)
	}
	u, err := url.Parse(signedURL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}

	s, err := NewServer(ServerConfig{
		Party: Party{Region: "us-east-1", Service: "host", RequestType: "aws4_request"},
		KeyLookup: func(accessKeyID string) (string, bool) {
			if accessKeyID == "th3K3y" {
				return "very_secure", true
			}
			return "", false
		},
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	view := &fakeView{
		method:     "GET",
		requestURI: u.RequestURI(),
		serverName: "example.com",
		scheme:     "https",
		headers:    map[string][]string{"host": {"example.com"}},
	}

	accessKeyID, err := s.Authenticate(view, nil, date.Time.Add(1*time.Second))
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if accessKeyID != "th3K3y" {
		t.Errorf("accessKeyID = %q", accessKeyID)
	}
}

// Scenario 3: a tampered signature is rejected.
func TestScenario3TamperedSignatureRejected(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	tampered := strings.Repeat("f", 64)
	authHeader := headers["x-ems-auth"][0]
	cut := strings.LastIndex(authHeader, "Signature=")
	headers["x-ems-auth"] = []string{authHeader[:cut] + "Signature=" + tampered}

	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "iam.amazonaws.com",
		scheme:     "https",
		headers:    headers,
	}

	s := scenario1Server(t)
	_, err := s.Authenticate(view, []byte("Action=ListUsers&Version=2010-05-08"), time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "The signatures do not match" {
		t.Errorf("got %q", err.Error())
	}
}

// Scenario 4: a server clock 12 hours behind the signed time (the request
// is dated 12 hours in the future) falls outside the window.
func TestScenario4ClockSkewRejected(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "iam.amazonaws.com",
		scheme:     "https",
		headers:    headers,
	}

	s := scenario1Server(t)
	serverTime := time.Date(2011, 9, 9, 11, 36, 0, 0, time.UTC) // well before the signed time
	_, err := s.Authenticate(view, []byte("Action=ListUsers&Version=2010-05-08"), serverTime)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Request date is not within the accepted time interval." {
		t.Errorf("got %q", err.Error())
	}
}

// Scenario 5: an unsupported algorithm token is rejected by the Verifier,
// even though the Parser accepts it syntactically.
func TestScenario5WrongAlgorithmRejected(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	authHeader := headers["x-ems-auth"][0]
	headers["x-ems-auth"] = []string{strings.Replace(authHeader, "EMS-HMAC-SHA256", "EMS-HMAC-SHA123", 1)}

	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "iam.amazonaws.com",
		scheme:     "https",
		headers:    headers,
	}

	s := scenario1Server(t)
	_, err := s.Authenticate(view, []byte("Action=ListUsers&Version=2010-05-08"), time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "Only SHA256 and SHA512 hash algorithms are allowed." {
		t.Errorf("got %q", err.Error())
	}
}

// Scenario 6: the transport-observed host does not match the signed Host.
func TestScenario6HostSpoofRejected(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "example.com", // spoofed: signed Host is iam.amazonaws.com
		scheme:     "https",
		headers:    headers,
	}

	s := scenario1Server(t)
	_, err := s.Authenticate(view, []byte("Action=ListUsers&Version=2010-05-08"), time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "The host header does not match." {
		t.Errorf("got %q", err.Error())
	}
}

func TestUnsignedRequestRejected(t *testing.T) {
	view := &fakeView{
		method:     "GET",
		requestURI: "/",
		serverName: "example.com",
		scheme:     "https",
		headers:    map[string][]string{"host": {"example.com"}},
	}
	s := scenario1Server(t)
	_, err := s.Authenticate(view, nil, time.Now())
	if err == nil || err.Error() != "Request has not been signed." {
		t.Errorf("got %v", err)
	}
}

func TestUnknownAccessKeyRejected(t *testing.T) {
	headers := scenario1SignedHeaders(t)
	view := &fakeView{
		method:     "POST",
		requestURI: "/",
		serverName: "iam.amazonaws.com",
		scheme:     "https",
		headers:    headers,
	}

	s, err := NewServer(ServerConfig{
		Party:     iamParty(),
		KeyLookup: func(string) (string, bool) { return "", false },
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	_, err = s.Authenticate(view, []byte("Action=ListUsers&Version=2010-05-08"), time.Date(2011, 9, 9, 23, 36, 0, 0, time.UTC))
	if err == nil || err.Error() != "Invalid access key id" {
		t.Errorf("got %v", err)
	}
}
