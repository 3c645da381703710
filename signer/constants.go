package signer

// Defaults and wire-format constants for the signing scheme.
// Reference: teacher's constants.go, generalized from the fixed "AWS4"
// vendor prefix to a configurable one (spec.md §6).
const (
	// DefaultVendorPrefix is used when ClientConfig/ServerConfig.VendorPrefix is empty.
	DefaultVendorPrefix = "EMS"

	// DefaultAuthHeaderName is used when ClientConfig/ServerConfig.AuthHeaderName is empty.
	DefaultAuthHeaderName = "X-Ems-Auth"

	// DefaultDateHeaderName is used when ClientConfig/ServerConfig.DateHeaderName is empty.
	DefaultDateHeaderName = "X-Ems-Date"

	// DefaultHashAlgorithm is used when ClientConfig/ServerConfig.HashAlgorithm is empty.
	DefaultHashAlgorithm = SHA256

	// DefaultExpirySeconds is the fixed acceptance window for header-mode
	// requests (spec.md §4.6 step 4); query-mode uses the request's own
	// X-<vendor>-Expires value instead.
	DefaultExpirySeconds = 900

	// MaxForwardSkewSeconds bounds how far a request's declared time may
	// sit in the future of the server's clock, regardless of mode.
	MaxForwardSkewSeconds = 900

	// UnsignedPayload is the sentinel payload used for presigned GETs.
	UnsignedPayload = "UNSIGNED-PAYLOAD"

	// LongDateFormat is the YYYYMMDD'T'HHMMSS'Z' format used in the
	// request timestamp.
	LongDateFormat = "20060102T150405Z"

	// ShortDateFormat is the YYYYMMDD format embedded in credential scopes.
	ShortDateFormat = "20060102"
)

// queryKey builds one of the six X-<vendor>-<Name> presigned query keys.
func queryKey(vendorPrefix, name string) string {
	return "X-" + vendorPrefix + "-" + name
}

func algorithmKey(vendorPrefix string) string     { return queryKey(vendorPrefix, "Algorithm") }
func credentialsKey(vendorPrefix string) string   { return queryKey(vendorPrefix, "Credentials") }
func dateKey(vendorPrefix string) string          { return queryKey(vendorPrefix, "Date") }
func expiresKey(vendorPrefix string) string       { return queryKey(vendorPrefix, "Expires") }
func signedHeadersKey(vendorPrefix string) string { return queryKey(vendorPrefix, "SignedHeaders") }
func signatureKey(vendorPrefix string) string     { return queryKey(vendorPrefix, "Signature") }
