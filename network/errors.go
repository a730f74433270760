package network

import "errors"

var (
	ErrUnknownNetwork   = errors.New("network: unknown network")
	ErrInvalidName      = errors.New("network: invalid network name")
	ErrInvalidPublicKey = errors.New("network: invalid public key")
	ErrInvalidAddress   = errors.New("network: invalid raw address")
	ErrChecksumMismatch = errors.New("network: raw address checksum mismatch")
)

func IsUnknownNetwork(err error) bool { return errors.Is(err, ErrUnknownNetwork) }
