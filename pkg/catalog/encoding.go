package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// resolveEncoding maps a character set name to an x/text encoding. UTF-8
// (or an empty name) resolves to nil, meaning bytes pass through as-is.
// Catalogs produced with other single-byte encodings need the name set
// explicitly in Options.
func resolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported catalog encoding %q", name)
	}
	return enc, nil
}

// stringDecoder turns raw catalog bytes into Go strings.
type stringDecoder struct {
	decoder *encoding.Decoder
}

// newDecoder builds a decoder for one load pass. x/text decoders carry
// state, so each build gets a fresh one.
func newDecoder(name string) (*stringDecoder, error) {
	enc, err := resolveEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return &stringDecoder{}, nil
	}
	return &stringDecoder{decoder: enc.NewDecoder()}, nil
}

func (d *stringDecoder) decode(b []byte) (string, error) {
	if d.decoder == nil {
		return string(b), nil
	}
	out, err := d.decoder.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode catalog string: %w", err)
	}
	return string(out), nil
}
