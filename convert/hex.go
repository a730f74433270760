package convert

import "fmt"

const hexDigits = "0123456789ABCDEF"

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ByteFromHexDigits decodes two hex digit characters (either case) into a byte.
func ByteFromHexDigits(c1, c2 byte) (byte, error) {
	hi, ok1 := nibble(c1)
	lo, ok2 := nibble(c2)
	if !ok1 || !ok2 {
		return 0, newError(KindMalformedHex, string([]byte{c1, c2}), fmt.Sprintf("unrecognized hex char in %q", []byte{c1, c2}))
	}
	return hi<<4 | lo, nil
}

// IsHexString reports whether input is an even-length string of hex digits.
// When expectedLength is nonzero the input must also be exactly that many
// characters long. The empty string is a valid hex string.
func IsHexString(input string, expectedLength int) bool {
	if len(input)%2 != 0 {
		return false
	}
	for i := 0; i < len(input); i += 2 {
		if _, err := ByteFromHexDigits(input[i], input[i+1]); err != nil {
			return false
		}
	}
	return expectedLength == 0 || len(input) == expectedLength
}

// ValidateHexString is IsHexString with a structured error naming context.
//
// Length violations (odd or different from expectedLength) report
// KindInvalidHexLength; a non-hex character reports KindMalformedHex.
func ValidateHexString(input string, expectedLength int, context string) error {
	fail := func(kind Kind) error {
		return &Error{
			Kind:    kind,
			Context: context,
			Input:   input,
			Message: fmt.Sprintf("value %s is not a hex string of size %d", input, expectedLength),
		}
	}
	if len(input)%2 != 0 {
		return fail(KindInvalidHexLength)
	}
	for i := 0; i < len(input); i += 2 {
		if _, err := ByteFromHexDigits(input[i], input[i+1]); err != nil {
			return fail(KindMalformedHex)
		}
	}
	if expectedLength != 0 && len(input) != expectedLength {
		return fail(KindInvalidHexLength)
	}
	return nil
}

// HexToBytes decodes a hex string (either case) in natural byte order.
func HexToBytes(input string) ([]byte, error) {
	return decodeHex(input, false)
}

// HexToBytesReversed decodes a hex string and returns its bytes end-to-start.
// It is used to reinterpret little-endian digests and ids.
func HexToBytesReversed(input string) ([]byte, error) {
	return decodeHex(input, true)
}

func decodeHex(input string, reversed bool) ([]byte, error) {
	if len(input)%2 != 0 {
		return nil, newError(KindOddLengthHex, input, fmt.Sprintf("hex string has unexpected size '%d'", len(input)))
	}
	out := make([]byte, len(input)/2)
	for i := 0; i < len(input); i += 2 {
		b, err := ByteFromHexDigits(input[i], input[i+1])
		if err != nil {
			return nil, err
		}
		if reversed {
			out[len(out)-1-i/2] = b
		} else {
			out[i/2] = b
		}
	}
	return out, nil
}

// BytesToHex renders input as uppercase hex, high nibble first.
func BytesToHex(input []byte) string {
	out := make([]byte, len(input)*2)
	for i, b := range input {
		out[2*i] = hexDigits[b>>4]
		out[2*i+1] = hexDigits[b&0x0f]
	}
	return string(out)
}
