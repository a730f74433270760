package network

import (
	"fmt"
	"strings"

	"xdao.co/netid/cidutil"
)

// Descriptor is a flat, printable view of a network.
type Descriptor struct {
	Name           string
	Identifier     byte
	Hasher         string
	GenerationHash string // empty for networks without one

	hashCode uint64
}

// Describe returns the descriptor of n.
func Describe(n Network) Descriptor {
	h := n.AddressHasher()
	d := Descriptor{
		Name:       n.Name(),
		Identifier: n.Identifier(),
		Hasher:     h.Name(),
		hashCode:   h.Code,
	}
	if g, ok := n.(interface{ GenerationHash() string }); ok {
		d.GenerationHash = g.GenerationHash()
	}
	return d
}

// CanonicalBytes renders the descriptor as sorted key=value lines joined by LF,
// without a trailing newline. Keys with empty values are omitted.
func (d Descriptor) CanonicalBytes() []byte {
	lines := []string{}
	if d.GenerationHash != "" {
		lines = append(lines, "generation-hash="+d.GenerationHash)
	}
	lines = append(lines,
		"hasher="+d.Hasher,
		fmt.Sprintf("identifier=0x%02X", d.Identifier),
		"name="+d.Name,
	)
	return []byte(strings.Join(lines, "\n"))
}

// CID returns the CIDv1 (raw codec) of CanonicalBytes, hashed with the
// network's own address hasher.
func (d Descriptor) CID() (string, error) {
	return cidutil.CIDv1Raw(d.CanonicalBytes(), d.hashCode)
}
