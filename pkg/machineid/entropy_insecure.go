//go:build machineid_insecurerand

package machineid

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
	"time"
)

// defaultEntropy is the lowest tier, for targets without a usable CSPRNG.
// It is selected by the machineid_insecurerand build tag only.
func defaultEntropy() io.Reader {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(time.Now().UnixNano()))
	return rand.NewChaCha8(seed)
}
