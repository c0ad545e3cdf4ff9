package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AnotherFoxGuy/mofilereader/pkg/codec"
)

// Errors returned by Open and Read, beyond those of the codec package.
var (
	// ErrStreamUnreadable reports an I/O failure opening or reading the
	// source, as opposed to structural invalidity of its contents.
	ErrStreamUnreadable = &ReadError{"catalog stream unreadable"}

	// ErrBadContextSplit reports an original string whose context
	// separator did not split it into exactly a (context, key) pair.
	ErrBadContextSplit = &ReadError{"context separator split did not yield two parts"}
)

// ReadError represents a catalog loading error.
type ReadError struct {
	Message string
}

func (e *ReadError) Error() string {
	return e.Message
}

// Options configures a Reader.
type Options struct {
	// Encoding names the character set of the catalog's string bytes,
	// by IANA name ("ISO-8859-1", "windows-1252", ...). Empty or "UTF-8"
	// passes bytes through untouched.
	Encoding string
}

// Reader loads MO catalogs and answers translation lookups against the
// most recently loaded one. Loads are not composable: each successful
// load replaces all entries of the previous one.
//
// A Reader is a plain caller-owned value; see shared.go for the optional
// process-wide handle. Loads are exclusive, queries may run concurrently:
// header and lastErr share a lock here, the table carries its own.
type Reader struct {
	table   *Table
	options Options

	mutex   sync.RWMutex
	header  *codec.Header
	lastErr error
}

// NewReader creates a Reader with an empty table. It fails if the
// configured encoding name is not recognized.
func NewReader(options Options) (*Reader, error) {
	if _, err := resolveEncoding(options.Encoding); err != nil {
		return nil, err
	}
	return &Reader{
		table:   NewTable(),
		options: options,
	}, nil
}

// Open loads the catalog at path. A file that cannot be opened fails with
// ErrStreamUnreadable before any parsing begins.
func (r *Reader) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %v", ErrStreamUnreadable, err))
	}
	defer f.Close()

	return r.Read(f)
}

// Read parses a catalog from rs and rebuilds the lookup table from it.
// The source must support absolute seeks; string reads are addressed by
// offset and do not assume on-disk string order. On failure the table may
// be left partially populated, since it is reset before resolution begins.
func (r *Reader) Read(rs io.ReadSeeker) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	header, descriptors, err := codec.Parse(rs)
	if err != nil {
		r.lastErr = err
		return err
	}
	r.header = header

	if err := r.build(rs, descriptors); err != nil {
		r.lastErr = err
		return err
	}

	r.lastErr = nil
	return nil
}

// build resolves every descriptor to its string bytes and fills the maps.
func (r *Reader) build(rs io.ReadSeeker, descriptors []codec.PairDescriptor) error {
	decoder, err := newDecoder(r.options.Encoding)
	if err != nil {
		return err
	}

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("%w: seek to end: %v", codec.ErrMalformedStream, err)
	}

	r.table.Clear()

	for i, d := range descriptors {
		original, err := readStringAt(rs, size, d.OriginalOffset, d.OriginalLength)
		if err != nil {
			return fmt.Errorf("entry %d original: %w", i, err)
		}
		translation, err := readStringAt(rs, size, d.TranslationOffset, d.TranslationLength)
		if err != nil {
			return fmt.Errorf("entry %d translation: %w", i, err)
		}

		id, err := decoder.decode(original)
		if err != nil {
			return fmt.Errorf("entry %d original: %w", i, err)
		}
		msg, err := decoder.decode(translation)
		if err != nil {
			return fmt.Errorf("entry %d translation: %w", i, err)
		}

		if !strings.Contains(id, codec.ContextSeparator) {
			r.table.insert(id, msg)
			continue
		}

		parts := strings.Split(id, codec.ContextSeparator)
		if len(parts) != 2 {
			return fmt.Errorf("%w: entry %d split into %d parts", ErrBadContextSplit, i, len(parts))
		}
		r.table.insertContext(parts[0], parts[1], msg)
	}

	return nil
}

// readStringAt seeks to an absolute offset and reads exactly length bytes.
// The trailing NUL terminator sits past length and is never read. Offset
// and length come from the stream itself and are checked against its size
// before any buffer is allocated.
func readStringAt(rs io.ReadSeeker, size int64, offset, length uint32) ([]byte, error) {
	if int64(offset)+int64(length) > size {
		return nil, fmt.Errorf("%w: string at offset %d with length %d exceeds stream size %d",
			codec.ErrMalformedStream, offset, length, size)
	}
	if _, err := rs.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek to offset %d: %v", codec.ErrMalformedStream, offset, err)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return nil, fmt.Errorf("%w: short string read at offset %d", codec.ErrMalformedStream, offset)
	}
	return buf, nil
}

// Lookup returns the translation for id, or id itself when the table is
// empty or has no entry for it. Lookups never fail.
func (r *Reader) Lookup(id string) string {
	return r.table.Lookup(id)
}

// LookupWithContext returns the translation for id within context,
// falling back to id on any miss.
func (r *Reader) LookupWithContext(context, id string) string {
	return r.table.LookupWithContext(context, id)
}

// Count returns the number of entries resolved by the most recent load.
func (r *Reader) Count() int {
	return r.table.Count()
}

// Clear empties the lookup table, independent of parse state.
func (r *Reader) Clear() {
	r.table.Clear()
}

// Entries returns all entries of the most recent load, sorted.
func (r *Reader) Entries() []Entry {
	return r.table.Entries()
}

// Header returns the header of the most recently parsed catalog, or nil
// before any successful parse.
func (r *Reader) Header() *codec.Header {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.header
}

// LastError returns a human-readable description of the most recent
// failing operation, or the empty string if none has failed since the
// last successful load.
func (r *Reader) LastError() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.lastErr == nil {
		return ""
	}
	return r.lastErr.Error()
}

func (r *Reader) fail(err error) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastErr = err
	return err
}
