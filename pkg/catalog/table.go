package catalog

import (
	"sort"
	"sync"
)

// Table holds the in-memory lookup maps built from one parsed catalog:
// a flat msgid map and a two-level context map for entries whose original
// string carries a context prefix. It is populated by its owning Reader
// and read-only from the outside.
type Table struct {
	flat     map[string]string
	contexts map[string]map[string]string
	count    int
	mutex    sync.RWMutex
}

// NewTable creates an empty lookup table.
func NewTable() *Table {
	return &Table{
		flat:     make(map[string]string),
		contexts: make(map[string]map[string]string),
	}
}

// Lookup returns the translation for id. An empty table or a miss returns
// id unchanged.
func (t *Table) Lookup(id string) string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if len(t.flat) == 0 {
		return id
	}
	if msg, ok := t.flat[id]; ok {
		return msg
	}
	return id
}

// LookupWithContext returns the translation for id within context. Only
// total emptiness of the context map short-circuits; an unknown context or
// a miss inside a known context falls back to id the ordinary way.
func (t *Table) LookupWithContext(context, id string) string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if len(t.contexts) == 0 {
		return id
	}
	msgs, ok := t.contexts[context]
	if !ok {
		return id
	}
	if msg, ok := msgs[id]; ok {
		return msg
	}
	return id
}

// Count returns the number of entries resolved by the most recent build,
// counting flat and contextual entries alike. Duplicate originals are not
// deduplicated in this count.
func (t *Table) Count() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.count
}

// Clear empties both maps and resets the entry counter.
func (t *Table) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.reset()
}

// Entry is one resolved catalog entry. Context is empty for flat entries.
type Entry struct {
	Context     string `json:"context,omitempty"`
	ID          string `json:"id"`
	Translation string `json:"translation"`
}

// Entries returns every entry currently held, sorted by context then id.
func (t *Table) Entries() []Entry {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	total := len(t.flat)
	for _, msgs := range t.contexts {
		total += len(msgs)
	}
	entries := make([]Entry, 0, total)
	for id, msg := range t.flat {
		entries = append(entries, Entry{ID: id, Translation: msg})
	}
	for context, msgs := range t.contexts {
		for id, msg := range msgs {
			entries = append(entries, Entry{Context: context, ID: id, Translation: msg})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Context != entries[j].Context {
			return entries[i].Context < entries[j].Context
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Contexts returns the distinct context names currently held.
func (t *Table) Contexts() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	contexts := make([]string, 0, len(t.contexts))
	for context := range t.contexts {
		contexts = append(contexts, context)
	}
	sort.Strings(contexts)
	return contexts
}

// reset drops all entries. Caller must hold the write lock.
func (t *Table) reset() {
	t.flat = make(map[string]string)
	t.contexts = make(map[string]map[string]string)
	t.count = 0
}

// insert adds a flat entry. Last write wins on duplicate ids; the counter
// still advances for every resolved string.
func (t *Table) insert(id, translation string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.flat[id] = translation
	t.count++
}

// insertContext adds a contextual entry, creating the inner map on first
// use of the context.
func (t *Table) insertContext(context, id, translation string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	msgs, ok := t.contexts[context]
	if !ok {
		msgs = make(map[string]string)
		t.contexts[context] = msgs
	}
	msgs[id] = translation
	t.count++
}
