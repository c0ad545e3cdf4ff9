package catalog

import "sync"

// The shared reader is an optional process-wide default for programs that
// want gettext-style package-level lookups. It is plain composition: a
// Reader constructed and installed explicitly by the host, never built
// lazily behind the caller's back.
var (
	sharedMu sync.RWMutex
	shared   *Reader
)

// SetShared installs r as the process-wide reader. Passing nil uninstalls
// it.
func SetShared(r *Reader) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	shared = r
}

// Shared returns the installed process-wide reader, or nil when none has
// been set.
func Shared() *Reader {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared
}

// Gettext looks id up in the shared reader. Without an installed reader
// it returns id unchanged, matching the empty-table fallback.
func Gettext(id string) string {
	r := Shared()
	if r == nil {
		return id
	}
	return r.Lookup(id)
}

// PGettext looks id up within context in the shared reader, with the same
// identity fallback as Gettext.
func PGettext(context, id string) string {
	r := Shared()
	if r == nil {
		return id
	}
	return r.LookupWithContext(context, id)
}
