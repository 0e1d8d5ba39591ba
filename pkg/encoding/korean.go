// Package encoding decodes label text files that may be UTF-8 or legacy
// Korean EUC-KR (CP949).
package encoding

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// EUCKRToUTF8 converts EUC-KR encoded bytes to UTF-8 string.
// Returns the original string if conversion fails.
func EUCKRToUTF8(data []byte) string {
	decoder := korean.EUCKR.NewDecoder()
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	return string(result)
}

// UTF8ToEUCKR converts UTF-8 string to EUC-KR encoded bytes.
// Returns the original bytes if conversion fails.
func UTF8ToEUCKR(s string) []byte {
	encoder := korean.EUCKR.NewEncoder()
	result, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return []byte(s)
	}
	return result
}

// DecodeText returns data as UTF-8. Valid UTF-8 (with or without a BOM) is
// kept; anything else is decoded as EUC-KR.
func DecodeText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}
	return EUCKRToUTF8(data)
}

// Lines decodes data and returns its non-empty lines, trimmed. Lines
// starting with '#' are comments.
func Lines(data []byte) []string {
	var out []string
	for _, line := range strings.Split(DecodeText(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
