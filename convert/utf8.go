package convert

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// RawTextToUTF8 re-expresses input as a string of single-byte characters
// following UTF-8's multi-byte rules: one byte below U+0080, two bytes
// (110xxxxx 10xxxxxx) below U+0800, three bytes (1110xxxx 10xxxxxx 10xxxxxx)
// up to U+FFFF. Code points above U+FFFF use the standard four-byte form.
// Invalid UTF-8 in input is read as U+FFFD.
func RawTextToUTF8(input string) string {
	out := make([]byte, 0, len(input))
	for _, c := range input {
		switch {
		case c < 0x80:
			out = append(out, byte(c))
		case c < 0x800:
			out = append(out, byte(c>>6)|0xc0, byte(c&0x3f)|0x80)
		case c <= 0xffff:
			out = append(out, byte(c>>12)|0xe0, byte((c>>6)&0x3f)|0x80, byte(c&0x3f)|0x80)
		default:
			out = utf8.AppendRune(out, c)
		}
	}
	return string(out)
}

// UTF8TextToBytes returns the UTF-8 encoding of input.
func UTF8TextToBytes(input string) []byte {
	return []byte(RawTextToUTF8(input))
}

// UTF8TextToHex returns the UTF-8 encoding of input as uppercase hex.
func UTF8TextToHex(input string) string {
	return BytesToHex(UTF8TextToBytes(input))
}

// BytesToUTF8Text decodes input as UTF-8. When input is not valid UTF-8 it
// falls back to reading every byte as one Latin-1 character instead of
// failing; the fallback is best effort, not validation.
func BytesToUTF8Text(input []byte) string {
	if utf8.Valid(input) {
		return string(input)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(input)
	if err != nil {
		// ISO 8859-1 maps every byte, so this is unreachable.
		return string(input)
	}
	return string(s)
}
