package machineid

import "io"

// FallbackSize is the number of entropy bytes used when no raw identifier resolves.
const FallbackSize = 16

// drawFallback fills buf with fresh random bytes from r. The result differs on
// every call and must never be reported as a stable identifier.
func drawFallback(r io.Reader, buf *[FallbackSize]byte) error {
	_, err := io.ReadFull(r, buf[:])
	return err
}
