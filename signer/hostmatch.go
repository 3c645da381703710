package signer

import "strings"

// StripPort removes the ":port" suffix from a host[:port] string.
// Reference: teacher's requeststring.go StripPort, unchanged.
func StripPort(hostport string) string {
	colon := strings.IndexByte(hostport, ':')
	if colon == -1 {
		return hostport
	}
	if i := strings.IndexByte(hostport, ']'); i != -1 {
		return strings.TrimPrefix(hostport[:i], "[")
	}
	return hostport[:colon]
}

// PortOnly returns the port part of a host:port string, or "" if none.
// Reference: teacher's requeststring.go PortOnly, unchanged.
func PortOnly(hostport string) string {
	colon := strings.IndexByte(hostport, ':')
	if colon == -1 {
		return ""
	}
	if i := strings.Index(hostport, "]:"); i != -1 {
		return hostport[i+len("]:"):]
	}
	if strings.Contains(hostport, "]") {
		return ""
	}
	return hostport[colon+len(":"):]
}

// IsDefaultPort reports whether port is the scheme's default (or empty).
// Reference: teacher's requeststring.go IsDefaultPort, unchanged.
func IsDefaultPort(scheme, port string) bool {
	if port == "" {
		return true
	}
	lowerScheme := strings.ToLower(scheme)
	return (lowerScheme == "http" && port == "80") ||
		(lowerScheme == "https" && port == "443")
}

// hostsEquivalent implements spec.md §4.6 step 5 / §8 boundary behavior:
// the transport-observed (serverName, serverPort, scheme) must equal the
// signed request's Host header, treating port 80 on http and port 443 on
// https as equivalent to no port at all. Any other port must match
// literally.
//
// Reference: teacher's request.go SanitizeHostForHeader, which strips a
// default port from a *http.Request before signing; here the same
// default-port-is-absent rule is applied symmetrically to compare the
// transport's view of the host against the one the client signed.
func hostsEquivalent(signedHost, serverName, serverPort, scheme string) bool {
	signedHostOnly := StripPort(signedHost)
	signedPort := PortOnly(signedHost)

	normalizedSigned := signedHostOnly
	if signedPort != "" && !IsDefaultPort(scheme, signedPort) {
		normalizedSigned = signedHostOnly + ":" + signedPort
	}

	normalizedServer := serverName
	if serverPort != "" && !IsDefaultPort(scheme, serverPort) {
		normalizedServer = serverName + ":" + serverPort
	}

	return normalizedSigned == normalizedServer
}
