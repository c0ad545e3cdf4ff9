package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_LookupEmpty(t *testing.T) {
	table := NewTable()

	// An empty table is indistinguishable from "no catalog loaded".
	assert.Equal(t, "anything", table.Lookup("anything"))
	assert.Equal(t, "", table.Lookup(""))
	assert.Equal(t, 0, table.Count())
}

func TestTable_InsertAndLookup(t *testing.T) {
	table := NewTable()
	table.insert("Hello", "Hallo")
	table.insert("World", "Wereld")

	assert.Equal(t, "Hallo", table.Lookup("Hello"))
	assert.Equal(t, "Wereld", table.Lookup("World"))
	assert.Equal(t, 2, table.Count())

	// Identity fallback on miss.
	assert.Equal(t, "No match", table.Lookup("No match"))
}

func TestTable_DuplicateLastWriteWins(t *testing.T) {
	table := NewTable()
	table.insert("Hello", "Hallo")
	table.insert("Hello", "Goedendag")

	assert.Equal(t, "Goedendag", table.Lookup("Hello"))

	// The counter reports resolved strings, not unique keys.
	assert.Equal(t, 2, table.Count())
}

func TestTable_ContextIsolation(t *testing.T) {
	table := NewTable()
	table.insertContext("menu", "Open", "Openen")
	table.insertContext("dialog", "Open", "Openmaken")

	assert.Equal(t, "Openen", table.LookupWithContext("menu", "Open"))
	assert.Equal(t, "Openmaken", table.LookupWithContext("dialog", "Open"))

	// Unknown context falls back to the id, never to another context's entry.
	assert.Equal(t, "Open", table.LookupWithContext("toolbar", "Open"))

	// Contextual entries are invisible to the flat lookup.
	assert.Equal(t, "Open", table.Lookup("Open"))
}

func TestTable_ContextMissInsideKnownContext(t *testing.T) {
	table := NewTable()
	table.insertContext("menu", "Open", "Openen")

	assert.Equal(t, "Close", table.LookupWithContext("menu", "Close"))
}

func TestTable_ClearIdempotent(t *testing.T) {
	table := NewTable()
	table.insert("Hello", "Hallo")
	table.insertContext("menu", "Open", "Openen")

	table.Clear()
	assert.Equal(t, 0, table.Count())
	assert.Equal(t, "Hello", table.Lookup("Hello"))
	assert.Equal(t, "Open", table.LookupWithContext("menu", "Open"))

	table.Clear()
	assert.Equal(t, 0, table.Count())
	assert.Equal(t, "anything", table.Lookup("anything"))
}

func TestTable_Entries(t *testing.T) {
	table := NewTable()
	table.insert("World", "Wereld")
	table.insert("Hello", "Hallo")
	table.insertContext("menu", "Open", "Openen")

	entries := table.Entries()
	assert.Equal(t, []Entry{
		{ID: "Hello", Translation: "Hallo"},
		{ID: "World", Translation: "Wereld"},
		{Context: "menu", ID: "Open", Translation: "Openen"},
	}, entries)
}

func TestTable_Contexts(t *testing.T) {
	table := NewTable()
	table.insertContext("menu", "Open", "Openen")
	table.insertContext("dialog", "Open", "Openmaken")

	assert.Equal(t, []string{"dialog", "menu"}, table.Contexts())
}
