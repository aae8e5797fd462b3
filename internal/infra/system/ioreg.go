package system

import "regexp"

// IOPlatformUUID lives on the IOPlatformExpertDevice node under the IOService plane.
var ioPlatformUUID = regexp.MustCompile(`"IOPlatformUUID"\s*=\s*"([^"]+)"`)

// parseIOPlatformUUID extracts the IOPlatformUUID property from ioreg output.
func parseIOPlatformUUID(out []byte) string {
	m := ioPlatformUUID.FindSubmatch(out)
	if len(m) < 2 {
		return ""
	}
	return string(m[1])
}
