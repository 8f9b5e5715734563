package common

import "testing"

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("secreto123")
	WipeByteArray(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %v", i, b)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestWipeByteArray_Empty(t *testing.T) {
	WipeByteArray([]byte{})
}
