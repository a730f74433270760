package network

import (
	"fmt"
	"slices"
	"sync"
)

var catalog = []struct {
	name           string
	identifier     byte
	generationHash string
}{
	{"mainnet", 0x68, "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"},
	{"testnet", 0x98, "3B5E1FA6445653C971A50687E75E6D09FB30481055E3990C84B25E9222DC1155"},
}

var builtin = sync.OnceValue(func() []SymbolNetwork {
	out := make([]SymbolNetwork, 0, len(catalog))
	for _, c := range catalog {
		n, err := NewSymbolNetwork(c.name, c.identifier, c.generationHash)
		if err != nil {
			panic(fmt.Sprintf("network: invalid built-in catalog entry %q: %v", c.name, err))
		}
		out = append(out, n)
	}
	return out
})

// List returns the built-in Symbol networks in catalog order.
//
// The slice is a fresh copy on every call; modifying it does not affect the
// catalog or other callers.
func List() []SymbolNetwork {
	return slices.Clone(builtin())
}

// ByName returns the built-in network called name.
func ByName(name string) (SymbolNetwork, error) {
	for _, n := range builtin() {
		if n.name == name {
			return n, nil
		}
	}
	return SymbolNetwork{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// ByIdentifier returns the built-in network with the given identifier byte.
func ByIdentifier(identifier byte) (SymbolNetwork, error) {
	for _, n := range builtin() {
		if n.identifier == identifier {
			return n, nil
		}
	}
	return SymbolNetwork{}, fmt.Errorf("%w: identifier 0x%02X", ErrUnknownNetwork, identifier)
}
