package jointstate

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"sync"

	"github.com/zeebo/blake3"
)

// Fingerprint identifies a parameter snapshot by content.
type Fingerprint [32]byte

// String returns the hex encoding.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Fingerprint hashes the model names, alphabet and effective parameters
// (point-mutation slice after force, IGC slice after force). Snapshots that
// produce identical rates share a fingerprint.
func (m *Model) Fingerprint() Fingerprint {
	pmx := m.pm.Params()
	buf := make([]byte, 0, len(m.pmModel)+len(m.igcModel)+2+8*(1+len(pmx)+len(m.xIGC)))
	buf = append(buf, m.pmModel...)
	buf = append(buf, 0)
	buf = append(buf, string(m.igcModel)...)
	buf = append(buf, 0)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.alphabet))
	for _, v := range pmx {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	for _, v := range m.xIGC {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return Fingerprint(blake3.Sum256(buf))
}

type cacheKey struct {
	fp         Fingerprint
	n          int
	proportion bool
}

// Cache memoizes structured process definitions by (fingerprint, n,
// proportion). It is safe for concurrent use; callers receive deep copies.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]ProcessDefinition
	hits    int
	misses  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]ProcessDefinition)}
}

// ProcessDefinition returns the cached definition for m at n, building it on
// a miss. Two goroutines missing the same key may both build it; the first
// stored result wins.
func (c *Cache) ProcessDefinition(m *Model, n int, proportion bool) (ProcessDefinition, error) {
	key := cacheKey{fp: m.Fingerprint(), n: n, proportion: proportion}

	c.mu.RLock()
	pd, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return pd.Clone(), nil
	}

	built, err := m.StructuredProcessDefinition(n, proportion)
	if err != nil {
		return ProcessDefinition{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if pd, ok = c.entries[key]; !ok {
		pd = built
		c.entries[key] = pd
	}

	return pd.Clone(), nil
}

// Len returns the number of cached definitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Purge drops every entry built from the snapshot fingerprint fp.
func (c *Cache) Purge(fp Fingerprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.fp == fp {
			delete(c.entries, key)
		}
	}
}
