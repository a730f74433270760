package netconfig

import (
	"fmt"
	"slices"

	"xdao.co/netid/network"
)

// Catalog is an immutable lookup over built-in and configured networks.
type Catalog struct {
	networks    []network.SymbolNetwork
	defaultName string
}

// Builtin returns a catalog holding only the built-in registry.
func Builtin() *Catalog {
	return &Catalog{networks: network.List()}
}

func (c *Catalog) add(n network.SymbolNetwork) error {
	for _, have := range c.networks {
		switch {
		case have.Name() == n.Name():
			return fmt.Errorf("netconfig: duplicate network name %q", n.Name())
		case have.Identifier() == n.Identifier():
			return fmt.Errorf("netconfig: network %q reuses identifier 0x%02X of %q", n.Name(), n.Identifier(), have.Name())
		case have.GenerationHash() == n.GenerationHash():
			return fmt.Errorf("netconfig: network %q reuses the generation hash of %q", n.Name(), have.Name())
		}
	}
	c.networks = append(c.networks, n)
	return nil
}

// List returns a copy of the catalog in order.
func (c *Catalog) List() []network.SymbolNetwork {
	return slices.Clone(c.networks)
}

func (c *Catalog) ByName(name string) (network.SymbolNetwork, error) {
	for _, n := range c.networks {
		if n.Name() == name {
			return n, nil
		}
	}
	return network.SymbolNetwork{}, fmt.Errorf("%w: %q", network.ErrUnknownNetwork, name)
}

func (c *Catalog) ByIdentifier(identifier byte) (network.SymbolNetwork, error) {
	for _, n := range c.networks {
		if n.Identifier() == identifier {
			return n, nil
		}
	}
	return network.SymbolNetwork{}, fmt.Errorf("%w: identifier 0x%02X", network.ErrUnknownNetwork, identifier)
}

// Default returns the configured default network, or mainnet.
func (c *Catalog) Default() (network.SymbolNetwork, error) {
	if c.defaultName != "" {
		return c.ByName(c.defaultName)
	}
	return c.ByName("mainnet")
}
