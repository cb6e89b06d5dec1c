package main

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koopacc/src/util"
)

// helperCompile runs the full driver pipeline on src with the given mode,
// writing the artifact to a temp file and returning its contents.
func helperCompile(t *testing.T, mode util.Mode, src string) (string, int) {
	t.Helper()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.c")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte(src), 0644))

	f, err := os.OpenFile(out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()

	var wg sync.WaitGroup
	util.ListenWrite(f, &wg)
	code := run(util.Options{Mode: mode, Src: in, Out: out})
	wg.Wait()
	util.Close()

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(b), code
}

func TestRunEmitsKoopaIR(t *testing.T) {
	ir, code := helperCompile(t, util.Koopa, `int main() { return 0; }`)
	assert.Equal(t, 0, code)
	assert.Equal(t, "fun @main(): i32 {\n%entry:\n  ret 0\n}\n", ir)
}

func TestRunEmitsAssembly(t *testing.T) {
	asm, code := helperCompile(t, util.Riscv, `int main() { return 0; }`)
	assert.Equal(t, 0, code)
	assert.Contains(t, asm, ".globl main")
	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "li a0, 0")
	assert.Contains(t, asm, "ret")
}

func TestRunDanglingElseEndToEnd(t *testing.T) {
	// The else binds to the inner if: with a == 10, the inner condition
	// a > 7 holds, so control reaches "return 1"; had the else bound to
	// the outer if, the emitted control flow would differ. Both return
	// paths and the trailing "return 3" must survive into the assembly.
	asm, code := helperCompile(t, util.Riscv, `int main() {
		int a = 10;
		if (a > 5)
			if (a > 7)
				return 1;
			else
				return 2;
		return 3;
	}`)
	assert.Equal(t, 0, code)
	assert.Contains(t, asm, "li a0, 1")
	assert.Contains(t, asm, "li a0, 2")
	assert.Contains(t, asm, "li a0, 3")
	assert.Contains(t, asm, "bnez")
}

func TestRunRejectsUnsupportedFunction(t *testing.T) {
	_, code := helperCompile(t, util.Riscv, `int foo() { return 0; }`)
	assert.NotEqual(t, 0, code)
}

func TestRunRejectsUnreadableInput(t *testing.T) {
	var wg sync.WaitGroup
	util.ListenWrite(nil, &wg)
	code := run(util.Options{Mode: util.Riscv, Src: "/nonexistent/input.c"})
	wg.Wait()
	util.Close()
	assert.NotEqual(t, 0, code)
}
