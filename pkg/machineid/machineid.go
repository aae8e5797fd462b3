package machineid

// Generate writes the host identifier into out using the platform resolver
// and crypto/rand fallback.
func Generate(out []byte, flags Flags) (Code, error) {
	return New().Generate(out, flags)
}

// ID returns the host identifier as a UUID string.
func ID() (string, Code, error) {
	return New().ID()
}

// Hex returns the host identifier digest as upper-case hex.
func Hex() (string, Code, error) {
	return New().Hex()
}

// ProtectedID returns the UUID rendering of an identifier scoped to appID.
func ProtectedID(appID string) (string, Code, error) {
	return New(WithAppID(appID)).ID()
}
