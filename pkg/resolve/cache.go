package resolve

import "github.com/aretw0/tendril/pkg/term"

// cache memoizes reference resolutions within a single top-level Resolve
// call. The key pairs the reference name with the environment fingerprint:
// the same name under two different environments must compute and cache
// independently. A cache is created when Resolve starts and discarded when
// it returns; reuse across unrelated calls would serve stale values.
type cache struct {
	entries map[cacheKey]term.Term
	hits    int
	misses  int
}

type cacheKey struct {
	ref string
	env uint64
}

func newCache() *cache {
	return &cache{entries: make(map[cacheKey]term.Term)}
}

func (c *cache) get(ref string, env *term.Env) (term.Term, bool) {
	t, ok := c.entries[cacheKey{ref: ref, env: env.Fingerprint()}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return t, ok
}

func (c *cache) put(ref string, env *term.Env, t term.Term) {
	c.entries[cacheKey{ref: ref, env: env.Fingerprint()}] = t
}
