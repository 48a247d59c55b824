package common

// WipeByteArray overwrites every byte of buf with zero. Used to scrub
// passwords from memory once they have been handed to the API layer.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
