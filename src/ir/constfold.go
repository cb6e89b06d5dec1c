// constfold.go implements the pure constant evaluator used for every
// ConstDef initializer. It walks the same Exp tree AST-to-IR lowering
// walks (see expr.go) but never emits anything: it either produces a
// int32 value under 32-bit two's complement wraparound, or a diagnostic.
// A variable-bound operand reports diag.NonConstInInitializer and the
// caller substitutes 0, letting the rest of the declaration still lower;
// an entirely undeclared name reports diag.UnboundName and a division or
// modulo by a folded zero reports diag.ArithDomain, both fatal.

package ir

import (
	"koopacc/src/frontend"
	"koopacc/src/util/diag"
)

// FoldConst evaluates e to a compile-time constant using st to resolve
// any identifier references. On error the returned int32 is the 0
// substitution value mandated for diag.NonConstInInitializer; callers
// that only care about ArithDomain should still treat a non-nil error as
// fatal unless they check err.Kind.Recoverable().
func FoldConst(e frontend.Exp, st *SymTab) (int32, *diag.Error) {
	switch n := e.(type) {
	case *frontend.IntLit:
		return n.Val, nil

	case *frontend.LValExp:
		v, ok := st.Lookup(n.Name)
		if !ok {
			return 0, diag.NewError(diag.UnboundName, n.Line, 0,
				"identifier %q is not declared", n.Name)
		}
		cv, ok := v.(ConstVal)
		if !ok {
			return 0, diag.NewError(diag.NonConstInInitializer, n.Line, 0,
				"identifier %q is not a compile-time constant", n.Name)
		}
		return cv.Val, nil

	case *frontend.UnaryExp:
		x, err := FoldConst(n.X, st)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return x, nil
		case "-":
			return -x, nil
		case "!":
			if x == 0 {
				return 1, nil
			}
			return 0, nil
		default:
			return 0, diag.NewError(diag.ParseFailure, n.Line, 0, "unknown unary operator %q", n.Op)
		}

	case *frontend.BinaryExp:
		l, err := FoldConst(n.L, st)
		if err != nil {
			return 0, err
		}
		r, err := FoldConst(n.R, st)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return l + r, nil
		case "-":
			return l - r, nil
		case "*":
			return l * r, nil
		case "/":
			if r == 0 {
				return 0, diag.NewError(diag.ArithDomain, n.Line, 0, "division by zero in constant expression")
			}
			return l / r, nil
		case "%":
			if r == 0 {
				return 0, diag.NewError(diag.ArithDomain, n.Line, 0, "modulo by zero in constant expression")
			}
			return l % r, nil
		case "<":
			return boolInt(l < r), nil
		case ">":
			return boolInt(l > r), nil
		case "<=":
			return boolInt(l <= r), nil
		case ">=":
			return boolInt(l >= r), nil
		case "==":
			return boolInt(l == r), nil
		case "!=":
			return boolInt(l != r), nil
		case "&&":
			return boolInt(l != 0 && r != 0), nil
		case "||":
			return boolInt(l != 0 || r != 0), nil
		default:
			return 0, diag.NewError(diag.ParseFailure, n.Line, 0, "unknown binary operator %q", n.Op)
		}

	default:
		return 0, diag.NewError(diag.ParseFailure, 0, 0, "unsupported constant expression node %T", e)
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
