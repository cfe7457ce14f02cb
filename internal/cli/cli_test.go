package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodock/internal/app"
	"github.com/vk/nodock/internal/descriptor"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		exitCode   int
		outContain string
	}{
		{
			name: "positional path with defaults",
			args: []string{"job.toml"},
			want: &app.Config{DescriptorPath: "job.toml", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "all flags",
			args: []string{"-o", "out.hcl", "-f", "yaml", "--log-format", "json", "--log-level", "debug", "job.conf"},
			want: &app.Config{
				DescriptorPath: "job.conf",
				OutputPath:     "out.hcl",
				Format:         descriptor.FormatYAML,
				LogFormat:      "json",
				LogLevel:       "debug",
			},
		},
		{
			name:       "no arguments prints usage",
			args:       []string{},
			shouldExit: true,
			outContain: "Usage:",
		},
		{
			name:       "nil arguments prints usage",
			args:       nil,
			shouldExit: true,
			outContain: "Usage:",
		},
		{
			name:       "help flag",
			args:       []string{"--help"},
			shouldExit: true,
			outContain: "NODOCK_<FLAG>",
		},
		{
			name:     "error - unknown flag",
			args:     []string{"--nope", "job.toml"},
			exitCode: 2,
		},
		{
			name:     "error - too many arguments",
			args:     []string{"a.toml", "b.toml"},
			exitCode: 2,
		},
		{
			name:     "error - invalid log level",
			args:     []string{"--log-level", "trace", "job.toml"},
			exitCode: 2,
		},
		{
			name:     "error - invalid format",
			args:     []string{"--format", "json", "job.toml"},
			exitCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.exitCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tc.exitCode, exitErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			assert.Equal(t, tc.want, cfg)
			if tc.outContain != "" {
				assert.Contains(t, out.String(), tc.outContain)
			}
		})
	}
}

func TestParse_EnvironmentOverrides(t *testing.T) {
	t.Setenv("NODOCK_LOG_LEVEL", "warn")
	t.Setenv("NODOCK_OUTPUT", "/tmp/job.nomad.hcl")

	cfg, shouldExit, err := Parse([]string{"job.toml"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/job.nomad.hcl", cfg.OutputPath)
}

func TestParse_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("NODOCK_LOG_LEVEL", "warn")

	cfg, _, err := Parse([]string{"--log-level", "error", "job.toml"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}
