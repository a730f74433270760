package convert

import (
	"errors"
	"fmt"
	"testing"
)

func asError(err error, target **Error) bool { return errors.As(err, target) }

func TestKindSurvivesWrapping(t *testing.T) {
	_, err := HexToBytes("A")
	wrapped := fmt.Errorf("decode public key: %w", err)
	if !IsKind(wrapped, KindOddLengthHex) {
		t.Fatalf("expected wrapped OddLengthHex, got %v", wrapped)
	}
	if KindOf(wrapped) != KindOddLengthHex {
		t.Fatalf("KindOf = %q", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for foreign error")
	}
	if IsKind(nil, KindOddLengthHex) {
		t.Fatalf("nil error must not match a kind")
	}
}

func TestNilErrorString(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("unexpected nil error string %q", e.Error())
	}
}
