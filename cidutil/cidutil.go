package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1Raw returns a CIDv1 string using the "raw" multicodec and a multihash
// of data computed with the given multihash code (e.g. multihash.SHA3_256).
func CIDv1Raw(data []byte, code uint64) (string, error) {
	c, err := CIDv1RawCID(data, code)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// CIDv1RawCID returns a CIDv1 (raw codec) derived from data.
func CIDv1RawCID(data []byte, code uint64) (cid.Cid, error) {
	sum, err := multihash.Sum(data, code, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// DigestOf decodes a CID produced by CIDv1Raw and returns its multihash code
// and raw digest.
func DigestOf(s string) (uint64, []byte, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return 0, nil, err
	}
	dec, err := multihash.Decode(c.Hash())
	if err != nil {
		return 0, nil, err
	}
	return dec.Code, dec.Digest, nil
}
