//go:build darwin

package system

import "os/exec"

var defaultPaths []string

var ioregCommand = []string{"ioreg", "-rd1", "-c", "IOPlatformExpertDevice"}

func (p *Probe) readRaw(buf []byte) int {
	out, err := exec.Command(ioregCommand[0], ioregCommand[1:]...).Output()
	if err != nil {
		p.logger.Debug("ioreg query failed", "err", err)
		return 0
	}
	value := parseIOPlatformUUID(out)
	n := copyIfFits(buf, value)
	if n == 0 {
		p.logger.Debug("IOPlatformUUID unusable", "length", len(value), "capacity", len(buf))
	}
	return n
}
