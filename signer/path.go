package signer

import "strings"

// NormalizePath canonicalizes an HTTP request path per spec.md §4.1:
// "." segments are dropped, ".." segments delete themselves and the
// preceding non-empty segment, repeated "/" collapse to one, the
// leading "/" is preserved, and the path is never percent-decoded or
// percent-encoded at this stage. An empty result becomes "/".
//
// Reference: teacher's uri.go GetURIPath extracts a path from a URL but
// never renormalizes "." / ".." segments — AWS's own canonical-URI step
// assumes net/url already did that. This scheme signs a raw request URI
// that may not have gone through net/url, so normalization is explicit.
func NormalizePath(path string) string {
	leadingSlash := strings.HasPrefix(path, "/")

	rawSegments := strings.Split(path, "/")
	var stack []string
	for _, seg := range rawSegments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
		default:
			stack = append(stack, seg)
		}
	}

	joined := strings.Join(stack, "/")
	if leadingSlash {
		joined = "/" + joined
	}
	if joined == "" {
		return "/"
	}
	return joined
}
