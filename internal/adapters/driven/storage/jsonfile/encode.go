package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

// encodeSlim serialises slim as one compact JSON object in key order.
func encodeSlim(slim *domain.SlimReference, asciiOnly bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, symbol := range slim.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		entry, _ := slim.Get(symbol)

		if err := writeValue(&buf, symbol); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", symbol, err)
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, entry); err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", symbol, err)
		}
	}

	buf.WriteByte('}')

	if asciiOnly {
		return escapeNonASCII(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// writeValue appends the compact encoding of v, leaving <, > and & as-is.
func writeValue(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// escapeNonASCII rewrites every non-ASCII rune as a \uXXXX escape. The input
// is valid JSON, so such runes can only occur inside strings.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			out = appendEscape(out, hi)
			out = appendEscape(out, lo)
			continue
		}
		out = appendEscape(out, r)
	}
	return out
}

func appendEscape(out []byte, r rune) []byte {
	const hex = "0123456789abcdef"
	return append(out, '\\', 'u',
		hex[(r>>12)&0xF], hex[(r>>8)&0xF], hex[(r>>4)&0xF], hex[r&0xF])
}
