// Package httpadapter adapts net/http requests to the signer package's
// transport-agnostic RequestView, and applies a Client's signing
// results back onto outgoing *http.Request values.
//
// Reference: spec.md §9 "Global $_SERVER coupling" calls for exactly
// this kind of adapter; the host/port normalization it performs is
// generalized from the teacher's (forestrie/go-sigv4) request.go
// SanitizeHostForHeader, which only ever prepared a request for
// signing and never needed to report a transport-observed server name
// back to a verifier.
package httpadapter

import (
	"net"
	"net/http"
	"strings"

	"github.com/forestrie/reqsign/signer"
)

// requestView adapts a *http.Request to signer.RequestView.
type requestView struct {
	req *http.Request
	// vhost is the transport-observed host:port the request actually
	// arrived on, independent of anything the client sent. It is what
	// ServerName/ServerPort report.
	vhost string
}

// NewRequestView wraps req for use with signer.Server.Authenticate.
//
// req.Host is NOT used to derive ServerName/ServerPort: net/http
// populates req.Host from the client-supplied Host header (or
// request-line authority per RFC 7230 §5.4), which is exactly the
// attacker-controlled value the Verifier's anti-spoofing check (spec.md
// §4.6 step 5) exists to catch — a check is a no-op if both sides of
// the comparison derive from the same field. ServerName/ServerPort
// must instead reflect the vhost the request genuinely arrived on, so
// the two are resolved as follows, in order:
//
//   - expectedHost, when given a non-empty value: the vhost this
//     handler is mounted under, supplied by the caller (e.g. the
//     routing layer that dispatched the request, or a fixed deployment
//     hostname).
//   - otherwise, the local address net/http recorded for the accepted
//     connection (http.LocalAddrContextKey on req.Context()) — which
//     listener/port accepted the request, not anything the client
//     sent.
//
// TLS state on req.TLS selects the scheme.
func NewRequestView(req *http.Request, expectedHost ...string) signer.RequestView {
	vhost := ""
	if len(expectedHost) > 0 {
		vhost = expectedHost[0]
	}
	if vhost == "" {
		vhost = localAddrHost(req)
	}
	return &requestView{req: req, vhost: vhost}
}

// localAddrHost reports the host:port net/http recorded for the
// accepted connection, or "" if the request carries no such context
// (e.g. one built with httptest.NewRequest rather than served by a
// running *http.Server).
func localAddrHost(req *http.Request) string {
	addr, ok := req.Context().Value(http.LocalAddrContextKey).(net.Addr)
	if !ok || addr == nil {
		return ""
	}
	return addr.String()
}

func (v *requestView) Method() string { return v.req.Method }

func (v *requestView) RequestURI() string { return v.req.URL.RequestURI() }

func (v *requestView) ServerName() string {
	return signer.StripPort(v.vhost)
}

func (v *requestView) ServerPort() string {
	return signer.PortOnly(v.vhost)
}

func (v *requestView) Scheme() string {
	if v.req.TLS != nil {
		return "https"
	}
	return "http"
}

func (v *requestView) Headers() map[string][]string {
	out := make(map[string][]string, len(v.req.Header)+1)
	for k, vals := range v.req.Header {
		out[strings.ToLower(k)] = vals
	}
	if _, ok := out["host"]; !ok && v.req.Host != "" {
		out["host"] = []string{v.req.Host}
	}
	return out
}

// ApplyHeaders merges headers (as returned by signer.Client.SignHeaders)
// onto req, canonicalizing each header's key and setting req.Host from
// the "host" entry so net/http sends the same Host the signature covers.
func ApplyHeaders(req *http.Request, headers map[string][]string) {
	for k, values := range headers {
		canonical := http.CanonicalHeaderKey(k)
		if strings.EqualFold(k, "host") {
			if len(values) > 0 {
				req.Host = values[0]
			}
			continue
		}
		req.Header[canonical] = values
	}
}
