package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/nodock/internal/cli"
	"github.com/vk/nodock/internal/translate"
)

const webTOML = `
services = []
containers = []
volumes = []

[general]
name = "web"
count = 2
datacenters = ["dc1"]

[[ports]]
name = "http"
to = 8080
`

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeDescriptor(t, "web.toml", webTOML)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logs, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `job "web" {`)
	require.Contains(t, out.String(), `port "http" {`)
	require.NotContains(t, out.String(), "level=", "logs must not leak into the document stream")
	require.Contains(t, logs.String(), "Job spec generated.")
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	path := writeDescriptor(t, "web.toml", webTOML)
	target := filepath.Join(t.TempDir(), "web.nomad.hcl")
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"--output", target, path})

	require.NoError(t, err)
	require.Empty(t, out.String())
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(written), "count = 2")
}

func TestRun_TranslationError(t *testing.T) {
	t.Parallel()

	src := `
ports = []
services = []
containers = []

[general]
name = "web"
count = 1
datacenters = ["dc1"]

[[volumes]]
name = "data"
accessMode = "single"
`
	path := writeDescriptor(t, "web.toml", src)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	var trErr *translate.TranslationError
	require.True(t, errors.As(err, &trErr))
	require.Empty(t, out.String(), "no partial document may be printed")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(t.TempDir(), "missing.toml")})

	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read descriptor")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_NoArguments(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{})

	require.NoError(t, err)
	require.Contains(t, out.String(), "nodock [flags] DESCRIPTOR_PATH")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
