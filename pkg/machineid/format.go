package machineid

const hexAlphabet = "0123456789ABCDEF"

// uuidGroups lists how many digest bytes each hyphen-separated group consumes.
var uuidGroups = [...]int{4, 2, 2, 2, 6}

// formatDigest renders digest into out according to flags and returns the
// number of content bytes written, terminator excluded. out must already
// satisfy RequiredSize(flags).
func formatDigest(out []byte, digest *[HashSize]byte, flags Flags) int {
	var n int
	if flags.Has(FlagAsUUID) {
		n = formatUUID(out, digest)
	} else {
		n = copy(out, digest[:])
	}
	if flags.Has(FlagNullTerminate) {
		out[n] = 0
	}
	return n
}

func formatUUID(out []byte, digest *[HashSize]byte) int {
	pos, src := 0, 0
	for i, size := range uuidGroups {
		if i > 0 {
			out[pos] = '-'
			pos++
		}
		for _, b := range digest[src : src+size] {
			out[pos] = hexAlphabet[b>>4]
			out[pos+1] = hexAlphabet[b&0x0f]
			pos += 2
		}
		src += size
	}
	return pos
}
