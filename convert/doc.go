// Package convert provides the byte-level codec shared by the identity layer:
// hex, UTF-8 and fixed-width little-endian numeric conversions.
//
// All functions are pure and safe for concurrent use. Hex input is accepted in
// either case; hex output is always uppercase. Failures are returned as *Error
// values carrying a stable Kind.
package convert
