// Package netconfig loads additional networks (private or local deployments)
// from JSON and merges them with the built-in registry.
package netconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"xdao.co/netid/network"
)

// EnvConfigPath names the environment variable the CLI reads a config path from.
const EnvConfigPath = "XDAO_NETID_CONFIG"

// Config lists networks to make available next to the built-in registry.
//
// Example:
//
//	{
//	  "default": "devnet",
//	  "networks": [
//	    {"name":"devnet", "identifier":168, "generation_hash":"<64 hex chars>"}
//	  ]
//	}
//
// Identifiers are decimal bytes in [0, 255]. Names, identifiers and generation
// hashes must not collide with each other or with the built-in networks.
type Config struct {
	Default  string          `json:"default,omitempty"`
	Networks []NetworkConfig `json:"networks"`
}

type NetworkConfig struct {
	Name           string `json:"name"`
	Identifier     int    `json:"identifier"`
	GenerationHash string `json:"generation_hash"`
}

func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, errors.New("netconfig: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("netconfig: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every entry and rejects collisions.
func (c Config) Validate() error {
	_, err := c.Catalog()
	return err
}

// SymbolNetworks converts the configured entries, in order.
func (c Config) SymbolNetworks() ([]network.SymbolNetwork, error) {
	out := make([]network.SymbolNetwork, 0, len(c.Networks))
	for i, nc := range c.Networks {
		if nc.Identifier < 0 || nc.Identifier > 0xff {
			return nil, fmt.Errorf("netconfig: network %d (%q): identifier %d out of range", i, nc.Name, nc.Identifier)
		}
		n, err := network.NewSymbolNetwork(nc.Name, byte(nc.Identifier), nc.GenerationHash)
		if err != nil {
			return nil, fmt.Errorf("netconfig: network %d (%q): %w", i, nc.Name, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Catalog returns the built-in networks followed by the configured ones.
func (c Config) Catalog() (*Catalog, error) {
	configured, err := c.SymbolNetworks()
	if err != nil {
		return nil, err
	}
	cat := &Catalog{}
	for _, n := range append(network.List(), configured...) {
		if err := cat.add(n); err != nil {
			return nil, err
		}
	}
	if c.Default != "" {
		if _, err := cat.ByName(c.Default); err != nil {
			return nil, fmt.Errorf("netconfig: default: %w", err)
		}
		cat.defaultName = c.Default
	}
	return cat, nil
}
