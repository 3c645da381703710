package signer

import (
	"strings"
	"sync"
)

// DeriveSigningKey chains an HMAC over the credential scope components to
// produce a signing key, per spec.md §4.2:
//
//	k0 = vendorPrefix || secret
//	k1 = HMAC(algo, k0, shortDate)
//	k2 = HMAC(algo, k1, region)
//	k3 = HMAC(algo, k2, service)
//	k4 = HMAC(algo, k3, requestType)
//
// fullCredentialScope is the four-part "shortDate/region/service/requestType"
// string. The result is raw bytes, never hex.
//
// Reference: teacher's derivekey.go DeriveKey, generalized from a fixed
// "AWS4" prefix and a fixed "aws4_request" terminator (itself hardcoded
// into the chain) to a configurable vendor prefix and scope.
func DeriveSigningKey(secret, fullCredentialScope string, algo HashAlgorithm, vendorPrefix string) []byte {
	segments := strings.Split(fullCredentialScope, "/")

	key := []byte(vendorPrefix + secret)
	for _, segment := range segments {
		key = algo.hmacSum(key, []byte(segment))
	}
	return key
}

// cachedKey is one entry of a signingKeyCache. day is a YYYYMMDD string;
// the cache keys on calendar day, not on exact instant.
type cachedKey struct {
	day string
	key []byte
}

// signingKeyCache caches derived keys per (vendorPrefix, algo,
// accessKeyID, credentialScope) for the day the scope's shortDate names.
// Reference: teacher's derivedkeycachethr.go/derivedkeycachenothr.go,
// generalized from a region/service-only cache key (the teacher only
// ever derives AWS4-HMAC-SHA256 keys) to one that also varies with
// vendor prefix and hash algorithm.
type signingKeyCache interface {
	get(cacheKey, accessKeyID string, day string) ([]byte, bool)
	set(cacheKey, accessKeyID string, day string, key []byte)
}

func cacheKeyFor(vendorPrefix string, algo HashAlgorithm, party Party) string {
	var b strings.Builder
	b.WriteString(vendorPrefix)
	b.WriteByte('/')
	b.WriteString(string(algo))
	b.WriteByte('/')
	b.WriteString(party.staticScope())
	return b.String()
}

// noThreadSafeCache is a plain map, usable only from one goroutine at a
// time. Reference: teacher's derivedkeycachenothr.go.
type noThreadSafeCache struct {
	values map[string]cachedKey
}

func newNoThreadSafeCache() *noThreadSafeCache {
	return &noThreadSafeCache{values: make(map[string]cachedKey)}
}

func (c *noThreadSafeCache) get(cacheKey, accessKeyID, day string) ([]byte, bool) {
	entry, ok := c.values[cacheKey+"/"+accessKeyID]
	if !ok || entry.day != day {
		return nil, false
	}
	return entry.key, true
}

func (c *noThreadSafeCache) set(cacheKey, accessKeyID, day string, key []byte) {
	c.values[cacheKey+"/"+accessKeyID] = cachedKey{day: day, key: key}
}

// threadSafeCache guards the same map with a sync.RWMutex.
// Reference: teacher's derivedkeycachethr.go.
type threadSafeCache struct {
	mu     sync.RWMutex
	values map[string]cachedKey
}

func newThreadSafeCache() *threadSafeCache {
	return &threadSafeCache{values: make(map[string]cachedKey)}
}

func (c *threadSafeCache) get(cacheKey, accessKeyID, day string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.values[cacheKey+"/"+accessKeyID]
	if !ok || entry.day != day {
		return nil, false
	}
	return entry.key, true
}

func (c *threadSafeCache) set(cacheKey, accessKeyID, day string, key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[cacheKey+"/"+accessKeyID] = cachedKey{day: day, key: key}
}

// keyDeriver derives signing keys, optionally caching them per calendar
// day. Reference: teacher's keyderivator.go SigningKeyDeriver.
type keyDeriver struct {
	cache        signingKeyCache
	vendorPrefix string
	algo         HashAlgorithm
}

func newKeyDeriver(threadSafe bool, vendorPrefix string, algo HashAlgorithm) *keyDeriver {
	var cache signingKeyCache
	if threadSafe {
		cache = newThreadSafeCache()
	} else {
		cache = newNoThreadSafeCache()
	}
	return &keyDeriver{cache: cache, vendorPrefix: vendorPrefix, algo: algo}
}

// deriveKey derives (or fetches from cache) the signing key for secret
// under the given party and time.
func (d *keyDeriver) deriveKey(secret, accessKeyID string, party Party, t SigningTime) []byte {
	cacheKey := cacheKeyFor(d.vendorPrefix, d.algo, party)
	day := t.ShortDate()

	if key, ok := d.cache.get(cacheKey, accessKeyID, day); ok {
		return key
	}

	scope := party.CredentialScope(day)
	key := DeriveSigningKey(secret, scope, d.algo, d.vendorPrefix)
	d.cache.set(cacheKey, accessKeyID, day, key)
	return key
}
