package cmd

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnotherFoxGuy/mofilereader/pkg/codec"
	"github.com/AnotherFoxGuy/mofilereader/pkg/di"
)

// writeTestCatalog writes a two-entry .mo file (one flat, one contextual)
// and returns its path.
func writeTestCatalog(t *testing.T) string {
	t.Helper()

	entries := []struct{ msgid, msgstr string }{
		{"String English One", "Text Nederlands Een"},
		{"TEST|String|1\x04String English", "Text Nederlands Een"},
	}

	n := len(entries)
	blobStart := codec.HeaderSize + 2*n*8

	var blob bytes.Buffer
	locs := make([][2]uint32, 0, 2*n)
	for _, e := range entries {
		locs = append(locs, [2]uint32{uint32(len(e.msgid)), uint32(blobStart + blob.Len())})
		blob.WriteString(e.msgid)
		blob.WriteByte(0)
	}
	for _, e := range entries {
		locs = append(locs, [2]uint32{uint32(len(e.msgstr)), uint32(blobStart + blob.Len())})
		blob.WriteString(e.msgstr)
		blob.WriteByte(0)
	}

	buf := new(bytes.Buffer)
	header := []uint32{
		codec.MagicLittleEndian, 0, uint32(n),
		uint32(codec.HeaderSize), uint32(codec.HeaderSize + n*8), 0, 0,
	}
	_ = binary.Write(buf, binary.LittleEndian, header)
	_ = binary.Write(buf, binary.LittleEndian, locs)
	buf.Write(blob.Bytes())

	path := filepath.Join(t.TempDir(), "test.mo")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	SetContainer(di.NewContainer())

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		// Flag values persist on the shared command tree between runs.
		_ = lookupCmd.Flags().Set("context", "")
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCommand(t, "lookup", "--catalog", path, "String English One")
	require.NoError(t, err)
	assert.Equal(t, "Text Nederlands Een\n", out)
}

func TestLookupCommand_MissPrintsID(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCommand(t, "lookup", "--catalog", path, "No match")
	require.NoError(t, err)
	assert.Equal(t, "No match\n", out)
}

func TestLookupCommand_WithContext(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCommand(t, "lookup", "--catalog", path, "--context", "TEST|String|1", "String English")
	require.NoError(t, err)
	assert.Equal(t, "Text Nederlands Een\n", out)
}

func TestInfoCommand(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCommand(t, "info", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0x950412de")
	assert.Contains(t, out, "Resolved entries:         2")
	assert.Contains(t, out, "Flat entries:             1")
	assert.Contains(t, out, "Contextual entries:       1")
}

func TestRootCommand_MissingCatalogFile(t *testing.T) {
	_, err := runCommand(t, "lookup", "--catalog", filepath.Join(t.TempDir(), "nope.mo"), "x")
	assert.Error(t, err)
}
