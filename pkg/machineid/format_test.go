package machineid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uuidPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func sequentialDigest() *[HashSize]byte {
	var digest [HashSize]byte
	for i := range digest {
		digest[i] = byte(i * 17)
	}
	return &digest
}

func TestFormatUUID(t *testing.T) {
	out := make([]byte, UUIDSize)
	n := formatDigest(out, sequentialDigest(), FlagAsUUID)

	assert.Equal(t, UUIDSize, n)
	assert.Equal(t, "00112233-4455-6677-8899-AABBCCDDEEFF", string(out))
	assert.Regexp(t, uuidPattern, string(out))
}

func TestFormatDigest(t *testing.T) {
	out := make([]byte, HashSize)
	digest := sequentialDigest()
	n := formatDigest(out, digest, FlagDefault)

	assert.Equal(t, HashSize, n)
	assert.Equal(t, digest[:], out)
}

func TestFormatNullTerminate(t *testing.T) {
	var testCases = []struct {
		description string
		flags       Flags
		size        int
	}{
		{description: "digest", flags: FlagDefault, size: HashSize},
		{description: "uuid", flags: FlagAsUUID, size: UUIDSize},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			plain := filled(testCase.size+2, 52)
			formatDigest(plain, sequentialDigest(), testCase.flags)

			terminated := filled(testCase.size+2, 52)
			formatDigest(terminated, sequentialDigest(), testCase.flags|FlagNullTerminate)

			assert.Equal(t, byte(52), plain[testCase.size])
			assert.Equal(t, byte(0), terminated[testCase.size])
			// Nothing beyond the terminator is touched.
			assert.Equal(t, byte(52), terminated[testCase.size+1])
			assert.Equal(t, plain[:testCase.size], terminated[:testCase.size])
		})
	}
}

func TestRequiredSize(t *testing.T) {
	assert.Equal(t, 32, RequiredSize(FlagDefault))
	assert.Equal(t, 33, RequiredSize(FlagNullTerminate))
	assert.Equal(t, 36, RequiredSize(FlagAsUUID))
	assert.Equal(t, 37, RequiredSize(FlagAsUUID|FlagNullTerminate))
}

func filled(size int, value byte) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = value
	}
	return buf
}
