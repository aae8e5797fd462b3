// Package machineid derives a stable, privacy-preserving identifier for the
// host it runs on.
//
// The raw platform identifier (/etc/machine-id, /etc/hostid, the hw.uuid
// sysctl, IOPlatformUUID or the MachineGuid registry value) is never returned
// as is. It is hashed to a 32-byte digest and rendered either as those raw
// bytes or as an upper-case 8-4-4-4-12 UUID string built from the first 16.
//
// When no raw identifier can be resolved the digest is computed over 16
// random bytes instead and the outcome is CodeFallback: the value is usable
// but will differ on the next call. Resolution failures are never reported
// individually; a missing file, a denied read and an absent registry key all
// lead to the same fallback.
//
//	var buf [machineid.UUIDSize + 1]byte
//	code, err := machineid.Generate(buf[:], machineid.FlagAsUUID|machineid.FlagNullTerminate)
package machineid
