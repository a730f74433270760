package convert

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// BytesToUint32s reads input as consecutive little-endian 32-bit words.
// The length of input must be a multiple of 4.
func BytesToUint32s(input []byte) ([]uint32, error) {
	if len(input)%4 != 0 {
		return nil, newError(KindUnalignedLength, strconv.Itoa(len(input)), fmt.Sprintf("byte length %d is not a multiple of 4", len(input)))
	}
	out := make([]uint32, len(input)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(input[4*i:])
	}
	return out, nil
}

// Uint32sToBytes is the inverse of BytesToUint32s.
func Uint32sToBytes(input []uint32) []byte {
	out := make([]byte, 4*len(input))
	for i, w := range input {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

// UnsignedByteToSigned returns the signed byte sharing input's bit pattern.
// input must lie in [0, 255].
func UnsignedByteToSigned(input int) (int8, error) {
	if input < 0 || input > 0xff {
		return 0, newError(KindOutOfRange, strconv.Itoa(input), fmt.Sprintf("input '%d' is out of range", input))
	}
	return int8(uint8(input)), nil
}

// SignedByteToUnsigned returns the unsigned byte sharing input's bit pattern.
// input must lie in [-128, 127].
func SignedByteToUnsigned(input int) (uint8, error) {
	if input < -128 || input > 127 {
		return 0, newError(KindOutOfRange, strconv.Itoa(input), fmt.Sprintf("input '%d' is out of range", input))
	}
	return uint8(int8(input)), nil
}

// XorBytes returns the uppercase hex of a XOR b over max(len(a), len(b))
// positions. Positions past the end of the shorter input are treated as zero,
// so the tail of the longer input is copied through unchanged.
func XorBytes(a, b []byte) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	delta := make([]byte, len(a))
	copy(delta, a)
	for i := range b {
		delta[i] ^= b[i]
	}
	return BytesToHex(delta)
}
