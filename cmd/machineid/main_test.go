package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MACHINEID_CONFIG", "MACHINEID_FORMAT", "MACHINEID_APP_ID", "MACHINEID_DIGEST", "MACHINEID_LOG_FILE", "MACHINEID_LOG_LEVEL", "MACHINEID_DEBUG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRun(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      *regexp.Regexp
		expectCode  int
	}{
		{
			description: "uuid with prefix",
			args:        nil,
			expect:      regexp.MustCompile(`^machine id: [0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}\n$`),
		},
		{
			description: "quiet hex",
			args:        []string{"-format", "hex", "-quiet"},
			expect:      regexp.MustCompile(`^[0-9A-F]{64}\n$`),
		},
		{
			description: "app scoped blake2b",
			args:        []string{"-quiet", "-app-id", "my-app", "-digest", "blake2b"},
			expect:      regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}\n$`),
		},
		{
			description: "version",
			args:        []string{"-version"},
			expect:      regexp.MustCompile(`^machineid dev \(built unknown\)\n$`),
		},
		{
			description: "invalid format",
			args:        []string{"-format", "base64"},
			expectCode:  1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			clearEnv(t)
			var stdout, stderr bytes.Buffer
			code := run(testCase.args, &stdout, &stderr)
			assert.Equal(t, testCase.expectCode, code, stderr.String())
			if testCase.expect != nil {
				assert.Regexp(t, testCase.expect, stdout.String())
			}
		})
	}
}

func TestRunFlagOverridesInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MACHINEID_FORMAT", "bogus")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "hex", "-quiet"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{64}\n$`), stdout.String())

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-quiet"}, &stdout, &stderr))
}

func TestRunRawNullTerminated(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "raw", "-null-terminate"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Len(t, stdout.Bytes(), 33)
	assert.Equal(t, byte(0), stdout.Bytes()[32])
}

func TestRunLogFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "logs", "machineid.log")
	t.Setenv("MACHINEID_LOG_FILE", path)
	t.Setenv("MACHINEID_LOG_LEVEL", "debug")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-quiet"}, &stdout, &stderr), stderr.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "raw identifier")
}
