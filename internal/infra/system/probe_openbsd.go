//go:build openbsd

package system

import "golang.org/x/sys/unix"

var defaultPaths = []string{"/etc/hostid"}

// sysctl is replaced in tests.
var sysctl = unix.Sysctl

// readRaw prefers the hw.uuid sysctl and falls back to the hostid file when
// the node is unavailable or its value does not fit.
func (p *Probe) readRaw(buf []byte) int {
	value, err := sysctl("hw.uuid")
	if err != nil {
		p.logger.Debug("sysctl hw.uuid failed", "err", err)
		return p.readFiles(buf)
	}
	if n := copyIfFits(buf, value); n > 0 {
		return n
	}
	p.logger.Debug("sysctl hw.uuid unusable", "length", len(value), "capacity", len(buf))
	return p.readFiles(buf)
}
