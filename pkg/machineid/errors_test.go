package machineid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorToString(t *testing.T) {
	var testCases = []struct {
		code   Code
		expect string
	}{
		{code: CodeNone, expect: "MACHINEID_ERROR_NONE"},
		{code: CodeRNG, expect: "MACHINEID_ERROR_RNG"},
		{code: CodeNullOutputBuffer, expect: "MACHINEID_ERROR_NULL_OUTPUT_BUFFER"},
		{code: CodeFallback, expect: "MACHINEID_ERROR_FALLBACK"},
		{code: CodeHashFailure, expect: "MACHINEID_ERROR_HASH_FAILURE"},
		{code: CodeShortOutputBuffer, expect: "MACHINEID_ERROR_SHORT_OUTPUT_BUFFER"},
	}
	for _, testCase := range testCases {
		actual, ok := ErrorToString(testCase.code)
		assert.True(t, ok, testCase.expect)
		assert.Equal(t, testCase.expect, actual)
		assert.Equal(t, testCase.expect, testCase.code.String())
	}

	for _, code := range []Code{52, -1, 6} {
		actual, ok := ErrorToString(code)
		assert.False(t, ok, "code %d", code)
		assert.Empty(t, actual)
	}
	assert.Equal(t, "Code(52)", Code(52).String())
}

func TestCodeSucceeded(t *testing.T) {
	assert.True(t, CodeNone.Succeeded())
	assert.True(t, CodeFallback.Succeeded())
	assert.True(t, CodeNone.Stable())
	assert.False(t, CodeFallback.Stable())
	for _, code := range []Code{CodeRNG, CodeNullOutputBuffer, CodeHashFailure, CodeShortOutputBuffer} {
		assert.False(t, code.Succeeded(), code.String())
	}
}

func TestCodeOf(t *testing.T) {
	cause := errors.New("entropy exhausted")
	err := fmt.Errorf("startup: %w", &Error{Op: "fallback", Code: CodeRNG, Err: cause})

	assert.Equal(t, CodeRNG, CodeOf(err))
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, &Error{Code: CodeRNG})
	assert.NotErrorIs(t, err, ErrNullOutputBuffer)
	assert.Equal(t, CodeNone, CodeOf(nil))

	_, ok := ErrorToString(CodeOf(errors.New("foreign")))
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "machineid validate: MACHINEID_ERROR_NULL_OUTPUT_BUFFER", ErrNullOutputBuffer.Error())
	err := &Error{Op: "digest", Code: CodeHashFailure, Err: errors.New("boom")}
	assert.Equal(t, "machineid digest: MACHINEID_ERROR_HASH_FAILURE: boom", err.Error())
}
