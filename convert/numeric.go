package convert

// IntegerToBytes writes value as width little-endian bytes. Values that do
// not fit in width bytes are truncated to their low-order bytes. A width of
// zero or less yields an empty slice.
func IntegerToBytes(value uint64, width int) []byte {
	if width <= 0 {
		return []byte{}
	}
	out := make([]byte, width)
	for i := range out {
		out[i] = byte(value & 0xff)
		value >>= 8
	}
	return out
}

// BytesToInteger reads input as a little-endian unsigned 32-bit integer.
// Bytes at index 4 and beyond fall outside 32 bits and are discarded; use
// BytesToUint64 for 64-bit identifiers.
func BytesToInteger(input []byte) uint32 {
	var value uint32
	for i, b := range input {
		if i >= 4 {
			break
		}
		value |= uint32(b) << (8 * i)
	}
	return value
}

// BytesToUint64 reads up to the first 8 bytes of input as a little-endian
// unsigned 64-bit integer.
func BytesToUint64(input []byte) uint64 {
	var value uint64
	for i, b := range input {
		if i >= 8 {
			break
		}
		value |= uint64(b) << (8 * i)
	}
	return value
}
