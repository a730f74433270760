package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"xdao.co/netid/convert"
	"xdao.co/netid/network"
)

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiStringFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

type vector struct {
	PublicKey  string `json:"publicKey"`
	Network    string `json:"network"`
	RawAddress string `json:"rawAddress"`
}

// Regenerates network/testdata/address_vectors.json:
//
//	go run ./internal/tools/address_vector_gen -public-key <64hex> -out network/testdata/address_vectors.json
func main() {
	var publicKeys multiStringFlag
	outPath := flag.String("out", "", "output file (stdout if empty)")
	flag.Var(&publicKeys, "public-key", "public key as 64 hex chars (repeatable)")
	flag.Parse()

	if len(publicKeys) == 0 {
		fmt.Fprintln(os.Stderr, "usage: address_vector_gen -public-key <64hex> [-public-key ...] [-out <file>]")
		os.Exit(2)
	}

	var vectors []vector
	for _, pk := range publicKeys {
		if err := convert.ValidateHexString(pk, 2*network.PublicKeySize, "public key"); err != nil {
			fatalf("%v", err)
		}
		pub, err := convert.HexToBytes(pk)
		if err != nil {
			fatalf("decode public key: %v", err)
		}
		for _, n := range network.List() {
			raw, err := network.RawAddress(n, pub)
			if err != nil {
				fatalf("%s: %v", n.Name(), err)
			}
			vectors = append(vectors, vector{
				PublicKey:  convert.BytesToHex(pub),
				Network:    n.Name(),
				RawAddress: convert.BytesToHex(raw),
			})
		}
	}

	b, err := json.MarshalIndent(vectors, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	b = append(b, '\n')
	if *outPath == "" {
		_, _ = os.Stdout.Write(b)
		return
	}
	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
