package keys

import (
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	"xdao.co/netid/convert"
	"xdao.co/netid/network"
)

var ErrInvalidSignature = errors.New("keys: invalid signature")

// KeyPair is an Ed25519 key pair.
type KeyPair struct {
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// NewKeyPairFromSeed builds a key pair from a 32-byte private key seed.
func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if l := len(seed); l != ed25519.SeedSize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ed25519.SeedSize, l)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{private: priv, public: priv.Public().(ed25519.PublicKey)}, nil
}

// NewKeyPairFromHex builds a key pair from a 64-character hex private key.
func NewKeyPairFromHex(privateKeyHex string) (*KeyPair, error) {
	if err := convert.ValidateHexString(privateKeyHex, 2*ed25519.SeedSize, "private key"); err != nil {
		return nil, err
	}
	seed, err := convert.HexToBytes(privateKeyHex)
	if err != nil {
		return nil, err
	}
	return NewKeyPairFromSeed(seed)
}

// GenerateKeyPair returns a new random key pair read from rand.
func GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv, public: pub}, nil
}

// PublicKey returns a copy of the raw 32-byte public key.
func (kp *KeyPair) PublicKey() []byte {
	return append([]byte(nil), kp.public...)
}

// PublicKeyHex returns the public key as uppercase hex.
func (kp *KeyPair) PublicKeyHex() string {
	return convert.BytesToHex(kp.public)
}

// PrivateKeyHex returns the 32-byte private key seed as uppercase hex.
func (kp *KeyPair) PrivateKeyHex() string {
	return convert.BytesToHex(kp.private.Seed())
}

// Address returns the raw address of the key pair on network n.
func (kp *KeyPair) Address(n network.Network) ([]byte, error) {
	return network.RawAddress(n, kp.public)
}
