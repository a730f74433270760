package network

import (
	"fmt"
	"strings"

	"xdao.co/netid/convert"
)

// GenerationHashSize is the size in bytes of a Symbol generation hash.
const GenerationHashSize = 32

var _ Network = SymbolNetwork{}

// SymbolNetwork is a Symbol-family network. Its address hasher is always
// SHA3-256 and it carries a generation hash that separates the domains of
// different deployments (mainnet, testnet, private chains).
type SymbolNetwork struct {
	name           string
	identifier     byte
	generationHash string
}

// NewSymbolNetwork validates and builds a Symbol network.
//
// name must be a non-empty lowercase label ([a-z0-9-]); generationHash must be
// 64 hex characters and is stored uppercase.
func NewSymbolNetwork(name string, identifier byte, generationHash string) (SymbolNetwork, error) {
	if err := CheckName(name); err != nil {
		return SymbolNetwork{}, err
	}
	if err := convert.ValidateHexString(generationHash, 2*GenerationHashSize, "generation hash of "+name); err != nil {
		return SymbolNetwork{}, err
	}
	return SymbolNetwork{
		name:           name,
		identifier:     identifier,
		generationHash: strings.ToUpper(generationHash),
	}, nil
}

// CheckName reports whether name is usable as a network name.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	for _, c := range name {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return fmt.Errorf("%w: invalid character %q in %q", ErrInvalidName, c, name)
	}
	return nil
}

func (n SymbolNetwork) Name() string { return n.name }

func (n SymbolNetwork) Identifier() byte { return n.identifier }

// GenerationHash returns the generation hash as uppercase hex.
func (n SymbolNetwork) GenerationHash() string { return n.generationHash }

// GenerationHashBytes returns a fresh copy of the decoded generation hash.
func (n SymbolNetwork) GenerationHashBytes() []byte {
	b, err := convert.HexToBytes(n.generationHash)
	if err != nil {
		// Validated in NewSymbolNetwork.
		return nil
	}
	return b
}

// AddressHasher returns SHA3_256.
func (n SymbolNetwork) AddressHasher() Hasher { return SHA3_256 }

func (n SymbolNetwork) String() string {
	return fmt.Sprintf("%s (0x%02X)", n.name, n.identifier)
}
