package keys

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"

	"xdao.co/netid/convert"
)

// Sign returns the 64-byte Ed25519 signature of payload.
func (kp *KeyPair) Sign(payload []byte) []byte {
	return ed25519.Sign(kp.private, payload)
}

// SignHex returns the signature of payload as uppercase hex.
func (kp *KeyPair) SignHex(payload []byte) string {
	return convert.BytesToHex(kp.Sign(payload))
}

// Verify reports whether signature is a valid signature of payload by kp.
func (kp *KeyPair) Verify(payload, signature []byte) bool {
	return Verify(kp.public, payload, signature)
}

// Verify reports whether signature is a valid signature of payload by
// publicKey. Malformed keys or signatures verify as false.
func Verify(publicKey, payload, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), payload, signature)
}

// VerifyHex is Verify over hex-encoded public key and signature.
func VerifyHex(publicKeyHex string, payload []byte, signatureHex string) error {
	pub, err := convert.HexToBytes(publicKeyHex)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	sig, err := convert.HexToBytes(signatureHex)
	if err != nil {
		return fmt.Errorf("signature: %w", err)
	}
	if !Verify(pub, payload, sig) {
		return ErrInvalidSignature
	}
	return nil
}
