package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// MagicLittleEndian is the leading word of a little-endian MO catalog.
	MagicLittleEndian uint32 = 0x950412de

	// MagicBigEndian is MagicLittleEndian with its bytes swapped. Catalogs
	// carrying it are recognized but rejected: this reader only supports
	// little-endian files.
	MagicBigEndian uint32 = 0xde120495

	// ContextSeparator joins a disambiguation context and a message id
	// inside a single original string ("<context>\x04<key>").
	ContextSeparator = "\x04"

	// HeaderSize is the fixed size of the MO file header in bytes.
	HeaderSize = 28
)

// Errors returned by Parse. Callers match them with errors.Is; wrapped
// variants carry position detail.
var (
	ErrMalformedStream   = &FormatError{"malformed mo stream"}
	ErrMagicMismatch     = &FormatError{"unrecognized magic number"}
	ErrByteOrderReversed = &FormatError{"big-endian mo catalog is not supported"}
)

// FormatError represents a structural error in a MO byte stream.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Header summarizes the fixed 28-byte header of a MO catalog.
// The hash table it addresses is never materialized; lookups are served
// from maps built out of the descriptor tables instead.
type Header struct {
	Magic                  uint32
	FormatVersion          int32
	StringCount            int32
	OriginalTableOffset    int32
	TranslationTableOffset int32
	HashTableSize          int32
	HashTableOffset        int32
	ByteOrderReversed      bool
}

// PairDescriptor locates one original/translation string pair within the
// stream. Lengths exclude the trailing NUL terminator; offsets are absolute.
type PairDescriptor struct {
	OriginalLength    uint32
	OriginalOffset    uint32
	TranslationLength uint32
	TranslationOffset uint32
}

// Parse reads and validates the MO header, then decodes the two descriptor
// tables that follow it. Both tables are read sequentially from the current
// stream position: all original descriptors first, then all translation
// descriptors, exactly as they are laid out on disk. The declared table
// offsets in the header are recorded but not validated against the actual
// read position.
func Parse(r io.Reader) (*Header, []PairDescriptor, error) {
	var fields [7]uint32
	if err := binary.Read(r, binary.LittleEndian, &fields); err != nil {
		return nil, nil, fmt.Errorf("%w: short header read", ErrMalformedStream)
	}

	hdr := &Header{
		Magic:                  fields[0],
		FormatVersion:          int32(fields[1]),
		StringCount:            int32(fields[2]),
		OriginalTableOffset:    int32(fields[3]),
		TranslationTableOffset: int32(fields[4]),
		HashTableSize:          int32(fields[5]),
		HashTableOffset:        int32(fields[6]),
	}

	// Structural sanity before format identification.
	if hdr.Magic == 0 || hdr.StringCount <= 0 {
		return nil, nil, fmt.Errorf("%w: zero magic number or string count", ErrMalformedStream)
	}

	switch hdr.Magic {
	case MagicLittleEndian:
		// Supported byte order.
	case MagicBigEndian:
		hdr.ByteOrderReversed = true
		return hdr, nil, ErrByteOrderReversed
	default:
		return nil, nil, fmt.Errorf("%w: 0x%08x", ErrMagicMismatch, hdr.Magic)
	}

	count := int(hdr.StringCount)

	originals, err := readDescriptorTable(r, count, "original")
	if err != nil {
		return nil, nil, err
	}
	translations, err := readDescriptorTable(r, count, "translation")
	if err != nil {
		return nil, nil, err
	}

	// Zip the two passes into fully constructed descriptors.
	descriptors := make([]PairDescriptor, count)
	for i := range descriptors {
		descriptors[i] = PairDescriptor{
			OriginalLength:    originals[i].length,
			OriginalOffset:    originals[i].offset,
			TranslationLength: translations[i].length,
			TranslationOffset: translations[i].offset,
		}
	}

	return hdr, descriptors, nil
}

// stringLocation is one (length, offset) entry of a descriptor table.
type stringLocation struct {
	length uint32
	offset uint32
}

// descriptorPrealloc caps the capacity hint for descriptor slices. The
// declared string count is untrusted; memory must only grow with entries
// actually read from the stream, so a truncated hostile header cannot
// drive a multi-gigabyte allocation.
const descriptorPrealloc = 4096

func readDescriptorTable(r io.Reader, count int, table string) ([]stringLocation, error) {
	prealloc := count
	if prealloc > descriptorPrealloc {
		prealloc = descriptorPrealloc
	}
	locations := make([]stringLocation, 0, prealloc)
	for i := 0; i < count; i++ {
		var pair [2]uint32
		if err := binary.Read(r, binary.LittleEndian, &pair); err != nil {
			return nil, fmt.Errorf("%w: %s descriptor table truncated at entry %d",
				ErrMalformedStream, table, i)
		}
		locations = append(locations, stringLocation{length: pair[0], offset: pair[1]})
	}
	return locations, nil
}
