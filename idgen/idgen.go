// Package idgen derives deterministic numeric identifiers from raw addresses.
package idgen

import (
	"fmt"

	"xdao.co/netid/convert"
	"xdao.co/netid/network"
)

// NonceSize is the size in bytes of a mosaic nonce on the wire.
const NonceSize = 4

const mosaicIDMask = 1<<63 - 1

// MosaicID derives the mosaic id owned by rawAddress on network n:
// the first 8 bytes (little-endian) of H(le32(nonce) || rawAddress) with the
// high bit cleared, where H is n.AddressHasher().
func MosaicID(n network.Network, rawAddress []byte, nonce uint32) (uint64, error) {
	if err := network.VerifyRawAddress(n, rawAddress); err != nil {
		return 0, fmt.Errorf("idgen: owner address: %w", err)
	}
	buf := make([]byte, 0, NonceSize+len(rawAddress))
	buf = append(buf, convert.IntegerToBytes(uint64(nonce), NonceSize)...)
	buf = append(buf, rawAddress...)
	digest := n.AddressHasher().Sum(buf)
	return convert.BytesToUint64(digest[:8]) & mosaicIDMask, nil
}

// MosaicIDHex renders id as 16 uppercase hex digits, most significant first.
func MosaicIDHex(id uint64) string {
	return convert.BytesToHex(reverse(convert.IntegerToBytes(id, 8)))
}

// ParseMosaicIDHex is the inverse of MosaicIDHex.
func ParseMosaicIDHex(s string) (uint64, error) {
	if err := convert.ValidateHexString(s, 16, "mosaic id"); err != nil {
		return 0, err
	}
	b, err := convert.HexToBytesReversed(s)
	if err != nil {
		return 0, err
	}
	return convert.BytesToUint64(b), nil
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
