//go:build !linux && !darwin && !windows && !freebsd && !netbsd && !dragonfly && !openbsd

package system

var defaultPaths []string

func (p *Probe) readRaw(buf []byte) int {
	return p.readFiles(buf)
}
