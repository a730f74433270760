package keys

import (
	"bytes"
	"errors"
	"testing"

	"xdao.co/netid/convert"
	"xdao.co/netid/network"
)

// RFC 8032, section 7.1, test 1.
const (
	rfcPrivateKey = "9D61B19DEFFD5A60BA844AF492EC2CC44449C5697B326919703BAC031CAE7F60"
	rfcPublicKey  = "D75A980182B10AB7D54BFED3C964073A0EE172F3DAA62325AF021A68F707511A"
	rfcSignature  = "E5564300C360AC729086E2CC806E828A84877F1EB8E5D974D873E065224901555FB8821590A33BACC61E39701CF9B46BD25BF5F0595BBE24655141438E7A100B"
)

type deterministicReader struct{ b byte }

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

func TestNewKeyPairFromHex(t *testing.T) {
	kp, err := NewKeyPairFromHex(rfcPrivateKey)
	if err != nil {
		t.Fatalf("NewKeyPairFromHex: %v", err)
	}
	if got := kp.PublicKeyHex(); got != rfcPublicKey {
		t.Fatalf("public key mismatch: got %s want %s", got, rfcPublicKey)
	}
	if got := kp.PrivateKeyHex(); got != rfcPrivateKey {
		t.Fatalf("private key mismatch: got %s", got)
	}

	lower, err := NewKeyPairFromHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	if err != nil {
		t.Fatalf("NewKeyPairFromHex(lowercase): %v", err)
	}
	if lower.PublicKeyHex() != rfcPublicKey {
		t.Fatalf("lowercase input derived a different key")
	}
}

func TestNewKeyPairFromHexRejects(t *testing.T) {
	if _, err := NewKeyPairFromHex(rfcPrivateKey[:62]); !convert.IsKind(err, convert.KindInvalidHexLength) {
		t.Fatalf("expected InvalidHexLength, got %v", err)
	}
	if _, err := NewKeyPairFromHex("Q" + rfcPrivateKey[1:]); !convert.IsKind(err, convert.KindMalformedHex) {
		t.Fatalf("expected MalformedHex, got %v", err)
	}
	if _, err := NewKeyPairFromSeed(make([]byte, 16)); err == nil {
		t.Fatalf("expected short seed to be rejected")
	}
}

func TestPublicKeyIsCopy(t *testing.T) {
	kp, err := NewKeyPairFromHex(rfcPrivateKey)
	if err != nil {
		t.Fatalf("NewKeyPairFromHex: %v", err)
	}
	pub := kp.PublicKey()
	pub[0] ^= 0xff
	if kp.PublicKeyHex() != rfcPublicKey {
		t.Fatalf("mutating the returned public key changed the key pair")
	}
}

func TestGenerateKeyPairDeterministicReader(t *testing.T) {
	a, err := GenerateKeyPair(&deterministicReader{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := GenerateKeyPair(&deterministicReader{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if a.PublicKeyHex() != b.PublicKeyHex() {
		t.Fatalf("expected identical keys from identical randomness")
	}
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	c, err := NewKeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("NewKeyPairFromSeed: %v", err)
	}
	if c.PublicKeyHex() != a.PublicKeyHex() {
		t.Fatalf("GenerateKeyPair must read its seed from rand")
	}
}

func TestAddressMatchesNetworkDerivation(t *testing.T) {
	kp, err := NewKeyPairFromHex(rfcPrivateKey)
	if err != nil {
		t.Fatalf("NewKeyPairFromHex: %v", err)
	}
	for _, n := range network.List() {
		got, err := kp.Address(n)
		if err != nil {
			t.Fatalf("Address(%s): %v", n.Name(), err)
		}
		want, err := network.RawAddress(n, kp.PublicKey())
		if err != nil {
			t.Fatalf("RawAddress: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%s: address mismatch", n.Name())
		}
		if got[0] != n.Identifier() {
			t.Fatalf("%s: address does not start with identifier", n.Name())
		}
	}
}

func TestSignatureVector(t *testing.T) {
	kp, err := NewKeyPairFromHex(rfcPrivateKey)
	if err != nil {
		t.Fatalf("NewKeyPairFromHex: %v", err)
	}
	if got := kp.SignHex(nil); got != rfcSignature {
		t.Fatalf("signature mismatch: got %s", got)
	}
	if err := VerifyHex(rfcPublicKey, nil, rfcSignature); err != nil {
		t.Fatalf("VerifyHex: %v", err)
	}
}

func TestSignVerify(t *testing.T) {
	kp, err := NewKeyPairFromHex(rfcPrivateKey)
	if err != nil {
		t.Fatalf("NewKeyPairFromHex: %v", err)
	}
	payload, err := convert.HexToBytes("0A1B")
	if err != nil {
		t.Fatalf("HexToBytes: %v", err)
	}
	sig := kp.Sign(payload)
	const want = "31503FB23978752C73494CDD744A262BA6364A80F95B7A4D8A13CC69D7D25A0FD123360240D512F225841D4347BD3783BF9696DD762B40FEF8B280E899BEC306"
	if got := convert.BytesToHex(sig); got != want {
		t.Fatalf("signature mismatch: got %s", got)
	}
	if !kp.Verify(payload, sig) {
		t.Fatalf("signature did not verify")
	}

	tampered := append([]byte(nil), sig...)
	tampered[0] ^= 0x01
	if kp.Verify(payload, tampered) {
		t.Fatalf("tampered signature verified")
	}
	if kp.Verify([]byte{0x0A}, sig) {
		t.Fatalf("signature verified over a different payload")
	}
	if Verify(kp.PublicKey(), payload, sig[:10]) {
		t.Fatalf("short signature verified")
	}
	if err := VerifyHex(rfcPublicKey, payload, convert.BytesToHex(tampered)); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if err := VerifyHex("ABC", payload, want); !convert.IsKind(err, convert.KindOddLengthHex) {
		t.Fatalf("expected OddLengthHex, got %v", err)
	}
}
