package network

import (
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// HashFunc is a pure function from bytes to a fixed-length digest.
type HashFunc func(data []byte) []byte

// Hasher is the hash capability a network uses for address derivation.
// Code is the multihash code naming the digest algorithm.
type Hasher struct {
	Code uint64
	Sum  HashFunc
}

// SHA3_256 is the 256-bit SHA3 hash capability.
var SHA3_256 = Hasher{
	Code: multihash.SHA3_256,
	Sum: func(data []byte) []byte {
		s := sha3.Sum256(data)
		return s[:]
	},
}

// Name returns the multihash name of the digest algorithm (e.g. "sha3-256").
func (h Hasher) Name() string {
	return multihash.Codes[h.Code]
}

// Size returns the digest length in bytes.
func (h Hasher) Size() int {
	return multihash.DefaultLengths[h.Code]
}

// Multihash returns the self-describing multihash of data.
func (h Hasher) Multihash(data []byte) (multihash.Multihash, error) {
	b, err := multihash.Encode(h.Sum(data), h.Code)
	if err != nil {
		return nil, err
	}
	return multihash.Multihash(b), nil
}

// Network is a named, identifier-tagged deployment context.
//
// Each network family fixes its own address hasher; AddressHasher always
// returns the same capability for a given network.
type Network interface {
	Name() string
	Identifier() byte
	AddressHasher() Hasher
}
