//go:build windows

package system

import "golang.org/x/sys/windows/registry"

const (
	cryptographyKey = `SOFTWARE\Microsoft\Cryptography`
	machineGUIDName = "MachineGuid"
)

var defaultPaths []string

// machineGUID is replaced in tests.
var machineGUID = readMachineGUID

// readMachineGUID reads MachineGuid from the 64-bit registry view, so 32-bit
// builds see the same value as native ones.
func readMachineGUID() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, cryptographyKey, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue(machineGUIDName)
	return value, err
}

func (p *Probe) readRaw(buf []byte) int {
	value, err := machineGUID()
	if err != nil {
		p.logger.Debug("read MachineGuid failed", "key", cryptographyKey, "err", err)
		return 0
	}
	n := copyIfFits(buf, value)
	if n == 0 {
		p.logger.Debug("MachineGuid unusable", "length", len(value), "capacity", len(buf))
	}
	return n
}
