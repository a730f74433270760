package network

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

const (
	// PublicKeySize is the size in bytes of an account public key.
	PublicKeySize = 32
	// RawAddressSize is the size in bytes of a raw (undecorated) address.
	RawAddressSize = 1 + ripemd160.Size + checksumSize

	checksumSize = 3
)

// RawAddress derives the raw address of publicKey on network n:
//
//	identifier || ripemd160(H(publicKey)) || H(identifier || ripemd160(...))[:3]
//
// where H is n.AddressHasher(). Rendering the raw address as text is left to
// the caller.
func RawAddress(n Network, publicKey []byte) ([]byte, error) {
	if l := len(publicKey); l != PublicKeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, l)
	}
	h := n.AddressHasher()

	r := ripemd160.New()
	_, _ = r.Write(h.Sum(publicKey))

	out := make([]byte, 0, RawAddressSize)
	out = append(out, n.Identifier())
	out = r.Sum(out)
	return append(out, h.Sum(out)[:checksumSize]...), nil
}

// VerifyRawAddress checks that raw is a well-formed raw address for network n:
// correct size, n's identifier byte and a matching checksum.
func VerifyRawAddress(n Network, raw []byte) error {
	if l := len(raw); l != RawAddressSize {
		return fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidAddress, RawAddressSize, l)
	}
	if raw[0] != n.Identifier() {
		return fmt.Errorf("%w: identifier 0x%02X does not belong to %s", ErrInvalidAddress, raw[0], n.Name())
	}
	body := raw[:RawAddressSize-checksumSize]
	want := n.AddressHasher().Sum(body)[:checksumSize]
	if !bytes.Equal(want, raw[RawAddressSize-checksumSize:]) {
		return ErrChecksumMismatch
	}
	return nil
}
