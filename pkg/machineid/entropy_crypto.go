//go:build !machineid_insecurerand

package machineid

import (
	"crypto/rand"
	"io"
)

func defaultEntropy() io.Reader {
	return rand.Reader
}
