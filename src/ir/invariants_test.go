package ir

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koopacc/src/frontend"
	"koopacc/src/ir/koopa"
)

// Structural invariants every lowered function must satisfy: %entry is
// laid out first, every block ends in exactly one terminator, the
// function's last block ends in a return, and every operand reference
// resolves to a definition earlier in program order (koopa.Parse rejects
// the text otherwise, so a successful parse is itself the use-after-def
// check).
func checkLoweredInvariants(t *testing.T, src string) {
	t.Helper()

	cu, err := frontend.Parse(src)
	require.NoError(t, err)
	text, diags := Lower(cu)
	require.Empty(t, diags)

	prog, err := koopa.Parse(text)
	require.NoError(t, err, "lowered IR must parse back cleanly:\n%s", text)

	for _, f := range prog.Funcs {
		require.NotEmpty(t, f.Blocks)
		assert.Equal(t, "%entry", f.Entry().Name)

		for _, b := range f.Blocks {
			term := b.Terminator()
			require.NotNil(t, term, "block %s is empty", b.Name)
			switch term.Kind() {
			case koopa.KindBranch, koopa.KindJump, koopa.KindReturn:
			default:
				t.Errorf("block %s ends in %s, not a terminator", b.Name, term.Kind())
			}
			for _, inst := range b.Insts[:len(b.Insts)-1] {
				switch inst.Kind() {
				case koopa.KindBranch, koopa.KindJump, koopa.KindReturn:
					t.Errorf("block %s has terminator %s before its end", b.Name, inst.Kind())
				}
			}
		}

		last := f.Blocks[len(f.Blocks)-1]
		assert.Equal(t, koopa.KindReturn, last.Terminator().Kind(),
			"the function must end in ret")
	}

	// Every alloc referenced by a store or load must appear in the text
	// before its first use; with incremental name resolution in the
	// parser this is implied, but the textual check keeps the property
	// visible even if the parser changes.
	allocAt := strings.Index(text, "= alloc")
	if use := strings.Index(text, "load @"); use >= 0 {
		assert.Less(t, allocAt, use)
	}
}

func TestLoweredIRStructuralInvariants(t *testing.T) {
	srcs := []string{
		`int main() { return 0; }`,
		`int main() { return -1+2; }`,
		`int main() { const int a = 3; int b = a * 2; return b; }`,
		`int main() { int a = 0; if (1) a = 1; else a = 2; return a; }`,
		`int main() { int a = 5; { int a = a + 1; return a; } }`,
		`int main() {
			int a = 10;
			if (a > 5)
				if (a > 7)
					return 1;
				else
					return 2;
			return 3;
		}`,
		`int main() { int a = 1; if (a) return 1; else return 2; }`,
		`int main() { int a = 1, b = 0; return a || b; }`,
	}
	for _, src := range srcs {
		checkLoweredInvariants(t, src)
	}
}
