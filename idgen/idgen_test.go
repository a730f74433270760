package idgen

import (
	"errors"
	"testing"

	"xdao.co/netid/convert"
	"xdao.co/netid/network"
)

const vectorPublicKey = "C5FB65CB902623D93DF2E682FFB13F99D50FAC24D5FF2A42F68C7CA1772FE8A0"

func rawAddressFor(t *testing.T, name string) (network.SymbolNetwork, []byte) {
	t.Helper()
	n, err := network.ByName(name)
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	pub, err := convert.HexToBytes(vectorPublicKey)
	if err != nil {
		t.Fatalf("HexToBytes: %v", err)
	}
	raw, err := network.RawAddress(n, pub)
	if err != nil {
		t.Fatalf("RawAddress: %v", err)
	}
	return n, raw
}

func TestMosaicIDVectors(t *testing.T) {
	cases := map[string]string{
		"mainnet": "50E5B4BA3FF4D8B6",
		"testnet": "048DE2DFA460F6C4",
	}
	for name, want := range cases {
		n, raw := rawAddressFor(t, name)
		id, err := MosaicID(n, raw, 0x12345678)
		if err != nil {
			t.Fatalf("MosaicID: %v", err)
		}
		if got := MosaicIDHex(id); got != want {
			t.Fatalf("%s: mosaic id mismatch: got %s want %s", name, got, want)
		}
		if id>>63 != 0 {
			t.Fatalf("high bit must be cleared")
		}
		back, err := ParseMosaicIDHex(want)
		if err != nil {
			t.Fatalf("ParseMosaicIDHex: %v", err)
		}
		if back != id {
			t.Fatalf("ParseMosaicIDHex(%s) = %#x, want %#x", want, back, id)
		}
	}
}

func TestMosaicIDDeterministic(t *testing.T) {
	n, raw := rawAddressFor(t, "mainnet")
	a, err := MosaicID(n, raw, 7)
	if err != nil {
		t.Fatalf("MosaicID: %v", err)
	}
	b, err := MosaicID(n, raw, 7)
	if err != nil {
		t.Fatalf("MosaicID: %v", err)
	}
	c, err := MosaicID(n, raw, 8)
	if err != nil {
		t.Fatalf("MosaicID: %v", err)
	}
	if a != b {
		t.Fatalf("expected deterministic id")
	}
	if a == c {
		t.Fatalf("expected different nonces to derive different ids")
	}
}

func TestMosaicIDRejectsForeignAddress(t *testing.T) {
	_, raw := rawAddressFor(t, "testnet")
	mainnet, _ := network.ByName("mainnet")
	if _, err := MosaicID(mainnet, raw, 1); !errors.Is(err, network.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestMosaicIDHex(t *testing.T) {
	if got := MosaicIDHex(0x0123456789ABCDEF); got != "0123456789ABCDEF" {
		t.Fatalf("MosaicIDHex = %s", got)
	}
	if got := MosaicIDHex(1); got != "0000000000000001" {
		t.Fatalf("MosaicIDHex(1) = %s", got)
	}
	if _, err := ParseMosaicIDHex("ABC"); !convert.IsKind(err, convert.KindInvalidHexLength) {
		t.Fatalf("expected InvalidHexLength, got %v", err)
	}
}
