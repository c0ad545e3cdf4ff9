package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnotherFoxGuy/mofilereader/pkg/catalog"
)

func TestWriteExport_JSON(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "Hello", Translation: "Hallo"},
		{Context: "menu", ID: "Open", Translation: "Openen"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, "json", entries))

	assert.Contains(t, buf.String(), `"id": "Hello"`)
	assert.Contains(t, buf.String(), `"context": "menu"`)
}

func TestWriteExport_HTML(t *testing.T) {
	entries := []catalog.Entry{
		{ID: "Hello", Translation: "Hallo"},
		{ID: "a < b", Translation: "a &lt; b stays escaped"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, "html", entries))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<td>Hallo</td>")
	// html/template escapes entry content.
	assert.Contains(t, out, "a &lt; b")
	assert.NotContains(t, out, "<td>a < b</td>")
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeExport(&buf, "xml", nil)
	assert.Error(t, err)
}
