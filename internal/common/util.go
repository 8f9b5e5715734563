// Package common contains small helpers shared across the client.
package common

// WipeByteArray overwrites the buffer with zeros. Used for passwords so they
// do not linger in memory after use. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
