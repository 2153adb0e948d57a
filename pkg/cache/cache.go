// Package cache provides a bounded, concurrency-safe numtheory.Cache.
//
// Entries are CBOR encoded and kept in a fastcache byte store. The store is
// split into buckets, each a ring buffer of fixed-size chunks: once a bucket
// is full its oldest chunk is overwritten, so eviction is FIFO per bucket and
// the memory footprint never exceeds the configured budget.
package cache

import (
	"encoding/binary"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/fxamacker/cbor/v2"
	"github.com/prdtools/prd/internal/params"
	"github.com/prdtools/prd/pkg/math/numtheory"
)

const keyDomain = "prd/numtheory/v1"

// Cache implements numtheory.Cache.
type Cache struct {
	store *fastcache.Cache
	enc   cbor.EncMode
}

var _ numtheory.Cache = (*Cache)(nil)

// New creates a cache holding at most maxBytes of entries.
// If maxBytes <= 0, params.CacheBytes is used instead.
func New(maxBytes int) *Cache {
	if maxBytes <= 0 {
		maxBytes = params.CacheBytes
	}
	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("cache: invalid canonical cbor options: " + err.Error())
	}
	return &Cache{
		store: fastcache.New(maxBytes),
		enc:   enc,
	}
}

type entryMarshal struct {
	Totient    uint64   `cbor:"1,keyasint"`
	Carmichael uint64   `cbor:"2,keyasint"`
	Root       uint64   `cbor:"3,keyasint"`
	PhiPrimes  []uint64 `cbor:"4,keyasint"`
}

func key(n uint64) []byte {
	k := make([]byte, len(keyDomain)+8)
	copy(k, keyDomain)
	binary.BigEndian.PutUint64(k[len(keyDomain):], n)
	return k
}

// Get implements numtheory.Cache. Undecodable entries count as misses.
func (c *Cache) Get(n uint64) (numtheory.Entry, bool) {
	data, ok := c.store.HasGet(nil, key(n))
	if !ok {
		return numtheory.Entry{}, false
	}
	var em entryMarshal
	if err := cbor.Unmarshal(data, &em); err != nil {
		return numtheory.Entry{}, false
	}
	return numtheory.Entry{
		Totient:    em.Totient,
		Carmichael: em.Carmichael,
		Root:       em.Root,
		PhiPrimes:  em.PhiPrimes,
	}, true
}

// Put implements numtheory.Cache.
func (c *Cache) Put(n uint64, e numtheory.Entry) {
	data, err := c.enc.Marshal(&entryMarshal{
		Totient:    e.Totient,
		Carmichael: e.Carmichael,
		Root:       e.Root,
		PhiPrimes:  e.PhiPrimes,
	})
	if err != nil {
		return
	}
	c.store.Set(key(n), data)
}

// Stats reports the number of lookups, misses and live entries.
type Stats struct {
	Gets, Misses, Entries uint64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	var s fastcache.Stats
	c.store.UpdateStats(&s)
	return Stats{
		Gets:    s.GetCalls,
		Misses:  s.Misses,
		Entries: s.EntriesCount,
	}
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.store.Reset()
}
