// Package network describes the deployed networks of the identity layer and
// the per-network hash capability used to turn a public key into a raw address.
//
// The built-in catalog is materialized once per process and handed out as
// copies; network values are immutable and safe to share between goroutines.
package network
