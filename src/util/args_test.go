package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withArgs temporarily replaces os.Args for the duration of f.
func withArgs(t *testing.T, args []string, f func()) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"koopacc"}, args...)
	defer func() { os.Args = orig }()
	f()
}

func TestParseArgsDefaultsToRiscv(t *testing.T) {
	var opt Options
	var err error
	withArgs(t, []string{"-riscv", "in.c", "-o", "out.s"}, func() {
		opt, err = ParseArgs()
	})
	require.NoError(t, err)
	assert.Equal(t, Riscv, opt.Mode)
	assert.Equal(t, "in.c", opt.Src)
	assert.Equal(t, "out.s", opt.Out)
}

func TestParseArgsKoopaMode(t *testing.T) {
	var opt Options
	var err error
	withArgs(t, []string{"-koopa", "in.c", "-o", "out.koopa"}, func() {
		opt, err = ParseArgs()
	})
	require.NoError(t, err)
	assert.Equal(t, Koopa, opt.Mode)
}

func TestParseArgsAnyNonKoopaModeMeansAssembly(t *testing.T) {
	// The mode check is deliberately permissive: any mode token that
	// isn't "-koopa" is treated as "emit assembly".
	var opt Options
	var err error
	withArgs(t, []string{"-whatever", "in.c", "-o", "out.s"}, func() {
		opt, err = ParseArgs()
	})
	require.NoError(t, err)
	assert.Equal(t, Riscv, opt.Mode)
}

func TestParseArgsRequiresFourArguments(t *testing.T) {
	var err error
	withArgs(t, []string{"-riscv", "in.c"}, func() {
		_, err = ParseArgs()
	})
	assert.Error(t, err)
}

func TestParseArgsRequiresDashOFlag(t *testing.T) {
	var err error
	withArgs(t, []string{"-riscv", "in.c", "-x", "out.s"}, func() {
		_, err = ParseArgs()
	})
	assert.Error(t, err)
}
