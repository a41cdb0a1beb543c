package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// EncodeDocument renders v as the on-disk document format: two-space
// indentation, struct fields in declaration order, map keys sorted, no HTML
// escaping, every non-ASCII character written as a \uXXXX escape (astral
// characters as surrogate pairs) and no trailing newline.
//
// Equal values always encode to identical bytes.
func EncodeDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// escapeNonASCII rewrites every multi-byte UTF-8 sequence as JSON \u
// escapes. Valid JSON only carries non-ASCII bytes inside strings, so the
// rewrite never touches structure.
func escapeNonASCII(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for len(src) > 0 {
		c := src[0]
		if c < utf8.RuneSelf {
			out = append(out, c)
			src = src[1:]
			continue
		}

		r, size := utf8.DecodeRune(src)
		src = src[size:]
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
	return append(out, '\\', 'u',
		hexDigits[(r>>12)&0xF],
		hexDigits[(r>>8)&0xF],
		hexDigits[(r>>4)&0xF],
		hexDigits[r&0xF],
	)
}
