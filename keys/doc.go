// Package keys provides the Ed25519 signature collaborator of the identity
// layer: key pairs created from hex, signing and verification.
//
// Keys and signatures cross the API boundary as uppercase hex produced by
// package convert. The package performs no key storage.
package keys
