// Package codec parses the GNU gettext compiled-catalog binary format
// (".mo" files).
//
// # File Layout
//
// A MO file opens with a fixed 28-byte header of seven little-endian
// 32-bit words:
//
//	| Offset | Field                     |
//	|--------|---------------------------|
//	| 0      | magic number (0x950412de) |
//	| 4      | file format version       |
//	| 8      | number of strings (N)     |
//	| 12     | original table offset     |
//	| 16     | translation table offset  |
//	| 20     | hash table size           |
//	| 24     | hash table offset         |
//
// The header is followed by N (length, offset) descriptors for the
// original strings and then N descriptors for the translated strings;
// descriptor i of each table describes the same catalog entry. Offsets
// are absolute, lengths exclude the trailing NUL terminator.
//
// The two tables are read sequentially from byte 28 onwards rather than
// by seeking to the declared table offsets; in practice the tables always
// immediately follow the header. The on-disk hash table is deliberately
// skipped; the in-memory maps built by the catalog package replace it.
//
// # Byte Order
//
// Only little-endian catalogs are supported. A header whose magic word is
// the byte-swapped constant 0xde120495 identifies a valid big-endian
// catalog; Parse rejects it with ErrByteOrderReversed instead of
// transparently converting.
//
// # Errors
//
// Parse returns sentinel errors (ErrMalformedStream, ErrMagicMismatch,
// ErrByteOrderReversed), wrapped with position detail where useful so
// callers can match them with errors.Is.
package codec
