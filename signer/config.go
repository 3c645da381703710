package signer

import "github.com/pkg/errors"

// KeyLookup resolves an access key ID to its secret. The library never
// stores secrets itself (spec.md §9 "Secret lookup"); callers may back
// this with a map, a cache, or a remote call. Implementations may be
// called concurrently and must be safe for that.
type KeyLookup func(accessKeyID string) (secret string, ok bool)

// ClientConfig configures a Client. Reference: teacher's config.go
// Config, generalized with the vendor prefix, hash algorithm and header
// name knobs spec.md §6 calls for, and Service/Region/RequestType lifted
// into an embedded Party.
type ClientConfig struct {
	SecretKey   string
	AccessKeyID string
	Party

	// VendorPrefix namespaces header keys, query keys and the algorithm
	// token. Defaults to DefaultVendorPrefix.
	VendorPrefix string

	// HashAlgorithm selects SHA256 or SHA512. Defaults to
	// DefaultHashAlgorithm.
	HashAlgorithm HashAlgorithm

	// AuthHeaderName is the header SignHeaders populates with the
	// authorization header value. Defaults to DefaultAuthHeaderName.
	AuthHeaderName string

	// DateHeaderName is the header SignHeaders populates with the long
	// date. Defaults to DefaultDateHeaderName.
	DateHeaderName string

	// ThreadSafety selects the signing-key cache implementation: true
	// for concurrent use from multiple goroutines, false for a single
	// goroutine at a time with less locking overhead.
	ThreadSafety bool
}

// Validate checks required fields and applies defaults for omitted
// optional ones. Reference: teacher's Config.Validate, generalized to
// also default vendor prefix, algorithm and header names, and to
// restrict HashAlgorithm to the allowed set on the signing side too
// (spec.md §9 open question, resolved).
func (c *ClientConfig) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	if c.AccessKeyID == "" {
		return errors.New("access key ID is required")
	}
	if err := c.Party.Validate(); err != nil {
		return errors.WithMessage(err, "invalid party")
	}

	if c.VendorPrefix == "" {
		c.VendorPrefix = DefaultVendorPrefix
	}
	if c.HashAlgorithm == "" {
		c.HashAlgorithm = DefaultHashAlgorithm
	}
	algo, ok := ParseHashAlgorithm(string(c.HashAlgorithm))
	if !ok {
		return errors.Errorf("unsupported hash algorithm %q", c.HashAlgorithm)
	}
	c.HashAlgorithm = algo
	if c.AuthHeaderName == "" {
		c.AuthHeaderName = DefaultAuthHeaderName
	}
	if c.DateHeaderName == "" {
		c.DateHeaderName = DefaultDateHeaderName
	}
	return nil
}

// ServerConfig configures a Server.
type ServerConfig struct {
	Party
	KeyLookup KeyLookup

	VendorPrefix   string
	HashAlgorithm  HashAlgorithm
	AuthHeaderName string
	DateHeaderName string
}

// Validate checks required fields and applies defaults for omitted
// optional ones.
func (c *ServerConfig) Validate() error {
	if c.KeyLookup == nil {
		return errors.New("key lookup is required")
	}
	if err := c.Party.Validate(); err != nil {
		return errors.WithMessage(err, "invalid party")
	}

	if c.VendorPrefix == "" {
		c.VendorPrefix = DefaultVendorPrefix
	}
	if c.HashAlgorithm == "" {
		c.HashAlgorithm = DefaultHashAlgorithm
	}
	if c.AuthHeaderName == "" {
		c.AuthHeaderName = DefaultAuthHeaderName
	}
	if c.DateHeaderName == "" {
		c.DateHeaderName = DefaultDateHeaderName
	}
	return nil
}
