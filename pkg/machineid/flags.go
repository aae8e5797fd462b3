package machineid

const (
	// HashSize is the length of the digest rendering.
	HashSize = 32
	// UUIDSize is the length of the UUID rendering, without terminator.
	UUIDSize = 36
)

// Flags selects the output rendering.
type Flags uint8

const (
	FlagDefault       Flags = 0
	FlagAsUUID        Flags = 1
	FlagNullTerminate Flags = 2
)

// Has reports whether every bit of f is set.
func (fl Flags) Has(f Flags) bool {
	return fl&f == f
}

// contentSize is the number of bytes the rendering occupies before the terminator.
func (fl Flags) contentSize() int {
	if fl.Has(FlagAsUUID) {
		return UUIDSize
	}
	return HashSize
}

// RequiredSize returns the minimum output buffer length for flags.
func RequiredSize(flags Flags) int {
	size := flags.contentSize()
	if flags.Has(FlagNullTerminate) {
		size++
	}
	return size
}
