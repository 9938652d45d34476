package resolve

// Hooks carries optional observability callbacks, invoked synchronously
// during resolution. All fields may be nil. Callbacks must not mutate the
// terms or environments they observe.
type Hooks struct {
	// OnCacheHit fires when a (ref, environment) pair is served from the
	// per-call memo cache.
	OnCacheHit func(ref string)
	// OnCacheMiss fires when a (ref, environment) pair is computed.
	OnCacheMiss func(ref string)
	// OnFuncCall fires immediately before a dependency function runs. ref
	// is the binding name, or "" for a function embedded directly in the
	// template.
	OnFuncCall func(ref string)
}

func (h Hooks) cacheHit(ref string) {
	if h.OnCacheHit != nil {
		h.OnCacheHit(ref)
	}
}

func (h Hooks) cacheMiss(ref string) {
	if h.OnCacheMiss != nil {
		h.OnCacheMiss(ref)
	}
}

func (h Hooks) funcCall(ref string) {
	if h.OnFuncCall != nil {
		h.OnFuncCall(ref)
	}
}
