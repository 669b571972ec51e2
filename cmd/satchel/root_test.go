package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command in-process with an isolated config dir and
// returns everything written to its output streams.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "satchel")
}

func TestPlanetsCommand(t *testing.T) {
	out, err := execute(t, "planets", "175")
	require.NoError(t, err)

	assert.Contains(t, out, "Your weight on Mercury is")
	assert.Contains(t, out, "Your weight on Neptune is")
	// The earth line must round-trip the input weight.
	assert.Contains(t, out, "Your weight on Earth is 175.0")
}

func TestPlanetsCommandRejectsBadWeight(t *testing.T) {
	_, err := execute(t, "planets", "heavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid earth weight")
}

func TestShowtypeListsRegistry(t *testing.T) {
	out, err := execute(t, "showtype")
	require.NoError(t, err)

	assert.Contains(t, out, "Counter")
	assert.Contains(t, out, "Planet")
	assert.Contains(t, out, "Satchel")
}

func TestShowtypeSynopsis(t *testing.T) {
	out, err := execute(t, "showtype", "Planet")
	require.NoError(t, err)

	assert.Contains(t, out, "type Planet struct {")
	assert.Contains(t, out, "SurfaceGravity() float64")
}

func TestShowtypeUnknown(t *testing.T) {
	_, err := execute(t, "showtype", "Widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
	assert.Contains(t, err.Error(), "valid:")
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--count", "3", "--delta", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Original: [1 2 3]")
	assert.Contains(t, out, "Getter, cleared: copy len 0, satchel [11 12 13]")
	assert.Contains(t, out, "Immutable, clear attempted: structural mutation not supported")
	assert.Contains(t, out, "Immutable: [21 22 23]")
	assert.Contains(t, out, "Iterator, remove attempted: structural mutation not supported")
	assert.Contains(t, out, "Iterator: [31 32 33]")
	assert.Contains(t, out, "Lambda, not exposed: [82 84 86]")
}

func TestDemoCommandRejectsBadCount(t *testing.T) {
	_, err := execute(t, "demo", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be positive")
}
