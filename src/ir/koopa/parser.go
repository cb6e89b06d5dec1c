// parser.go reads the textual IR ir.Lower produces back into the graph
// types above. The textual format is simple and entirely under this
// repository's control (unlike a source-language grammar, nothing here
// needs to tolerate hand-written input), so rather than building another
// participle grammar this is a small two-pass line scanner: pass one
// collects every basic block's name so forward branch/jump targets
// resolve, pass two walks each block's instructions in order, resolving
// every operand reference against a name-to-Value map built
// incrementally -- safe because the IR is SSA and a use always appears
// after its definition in program order.
package koopa

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses the textual IR in text into a Program.
func Parse(text string) (*Program, error) {
	lines := strings.Split(text, "\n")
	prog := &Program{}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}
		if !strings.HasPrefix(line, "fun @") {
			return nil, fmt.Errorf("line %d: expected function definition, got %q", i+1, line)
		}
		f, next, err := parseFunction(lines, i)
		if err != nil {
			return nil, err
		}
		prog.Funcs = append(prog.Funcs, f)
		i = next
	}
	return prog, nil
}

// parseFunction parses one "fun @name(): type { ... }" definition
// starting at lines[start], returning the index just past its closing
// brace.
func parseFunction(lines []string, start int) (*Function, int, error) {
	header := strings.TrimSpace(lines[start])
	name, retType, err := parseFunctionHeader(header)
	if err != nil {
		return nil, 0, fmt.Errorf("line %d: %w", start+1, err)
	}

	end := start + 1
	for end < len(lines) && strings.TrimSpace(lines[end]) != "}" {
		end++
	}
	if end >= len(lines) {
		return nil, 0, fmt.Errorf("line %d: function %q is missing a closing brace", start+1, name)
	}
	body := lines[start+1 : end]

	f := &Function{Name: name, RetType: retType}

	type span struct {
		name       string
		lineStart  int
		lineEnd    int
	}
	var spans []span
	for idx, l := range body {
		t := strings.TrimSpace(l)
		if isLabelLine(t) {
			spans = append(spans, span{name: strings.TrimSuffix(t, ":"), lineStart: idx + 1})
		}
	}
	for k := range spans {
		if k+1 < len(spans) {
			spans[k].lineEnd = spans[k+1].lineStart - 1
		} else {
			spans[k].lineEnd = len(body)
		}
	}

	blocks := make(map[string]*BasicBlock, len(spans))
	for _, sp := range spans {
		b := &BasicBlock{Name: sp.name}
		f.Blocks = append(f.Blocks, b)
		blocks[sp.name] = b
	}

	vals := make(map[string]Value)
	for bi, sp := range spans {
		b := f.Blocks[bi]
		for idx := sp.lineStart; idx < sp.lineEnd; idx++ {
			t := strings.TrimSpace(body[idx])
			if t == "" {
				continue
			}
			inst, err := parseInst(t, vals, blocks)
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: %w", start+2+idx, err)
			}
			b.Insts = append(b.Insts, inst)
			if n := inst.Name(); n != "" {
				vals[n] = inst
			}
		}
	}

	return f, end + 1, nil
}

// isLabelLine reports whether t is a bare "%name:" or "name:" label line,
// as opposed to an instruction that happens to contain a colon nowhere
// (none do in this grammar, but the check is kept explicit rather than
// assumed).
func isLabelLine(t string) bool {
	return strings.HasSuffix(t, ":") && !strings.ContainsAny(t, " ,")
}

// parseFunctionHeader parses "fun @name(): type {" into its name and
// return type.
func parseFunctionHeader(header string) (name, retType string, err error) {
	if !strings.HasSuffix(header, "{") {
		return "", "", fmt.Errorf("malformed function header %q", header)
	}
	rest := strings.TrimSuffix(strings.TrimSpace(header), "{")
	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "fun @")
	paren := strings.Index(rest, "(")
	if paren < 0 {
		return "", "", fmt.Errorf("malformed function header %q", header)
	}
	name = rest[:paren]
	after := rest[paren:]
	colon := strings.Index(after, ":")
	if colon < 0 {
		return "", "", fmt.Errorf("malformed function header %q", header)
	}
	retType = strings.TrimSpace(after[colon+1:])
	return name, retType, nil
}

// parseOperand resolves a single operand token: either an integer literal
// or a reference to a previously defined value.
func parseOperand(tok string, vals map[string]Value) (Operand, error) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "@") || strings.HasPrefix(tok, "%") {
		v, ok := vals[tok]
		if !ok {
			return nil, fmt.Errorf("unresolved reference %q", tok)
		}
		return &Ref{Target: v}, nil
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid operand %q: %w", tok, err)
	}
	return &Integer{Val: int32(n)}, nil
}

// binaryMnemonics is every Koopa binary instruction mnemonic this
// compiler emits.
var binaryMnemonics = map[string]bool{
	"add": true, "sub": true, "mul": true, "div": true, "mod": true,
	"lt": true, "gt": true, "le": true, "ge": true, "eq": true, "ne": true,
	"and": true, "or": true,
}

// parseInst parses one instruction line.
func parseInst(line string, vals map[string]Value, blocks map[string]*BasicBlock) (Value, error) {
	if eq := strings.Index(line, " = "); eq >= 0 {
		name := strings.TrimSpace(line[:eq])
		rhs := strings.TrimSpace(line[eq+3:])
		fields := strings.SplitN(rhs, " ", 2)
		switch fields[0] {
		case "alloc":
			return &Alloc{ValName: name}, nil
		case "load":
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed load %q", line)
			}
			src, ok := vals[strings.TrimSpace(fields[1])]
			if !ok {
				return nil, fmt.Errorf("load: unresolved reference %q", fields[1])
			}
			return &Load{ValName: name, Src: src}, nil
		default:
			if !binaryMnemonics[fields[0]] {
				return nil, fmt.Errorf("unknown instruction %q", fields[0])
			}
			if len(fields) < 2 {
				return nil, fmt.Errorf("malformed binary instruction %q", line)
			}
			operands := strings.SplitN(fields[1], ",", 2)
			if len(operands) != 2 {
				return nil, fmt.Errorf("binary instruction %q needs two operands", line)
			}
			l, err := parseOperand(operands[0], vals)
			if err != nil {
				return nil, err
			}
			r, err := parseOperand(operands[1], vals)
			if err != nil {
				return nil, err
			}
			return &Binary{ValName: name, Op: fields[0], L: l, R: r}, nil
		}
	}

	fields := strings.SplitN(line, " ", 2)
	switch fields[0] {
	case "store":
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed store %q", line)
		}
		operands := strings.SplitN(fields[1], ",", 2)
		if len(operands) != 2 {
			return nil, fmt.Errorf("store %q needs two operands", line)
		}
		val, err := parseOperand(operands[0], vals)
		if err != nil {
			return nil, err
		}
		dest, ok := vals[strings.TrimSpace(operands[1])]
		if !ok {
			return nil, fmt.Errorf("store: unresolved reference %q", operands[1])
		}
		return &Store{Val: val, Dest: dest}, nil

	case "br":
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed br %q", line)
		}
		operands := strings.SplitN(fields[1], ",", 3)
		if len(operands) != 3 {
			return nil, fmt.Errorf("br %q needs three operands", line)
		}
		cond, err := parseOperand(operands[0], vals)
		if err != nil {
			return nil, err
		}
		trueB, ok := blocks[strings.TrimSpace(operands[1])]
		if !ok {
			return nil, fmt.Errorf("br: unresolved block %q", operands[1])
		}
		falseB, ok := blocks[strings.TrimSpace(operands[2])]
		if !ok {
			return nil, fmt.Errorf("br: unresolved block %q", operands[2])
		}
		return &Branch{Cond: cond, True: trueB, False: falseB}, nil

	case "jump":
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed jump %q", line)
		}
		target, ok := blocks[strings.TrimSpace(fields[1])]
		if !ok {
			return nil, fmt.Errorf("jump: unresolved block %q", fields[1])
		}
		return &Jump{Target: target}, nil

	case "ret":
		if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
			return nil, fmt.Errorf("malformed ret %q: a bare, valueless ret is not part of the grammar", line)
		}
		if strings.TrimSpace(fields[1]) == "undef" {
			return &Return{Undef: true}, nil
		}
		v, err := parseOperand(fields[1], vals)
		if err != nil {
			return nil, err
		}
		return &Return{Val: v}, nil

	default:
		return nil, fmt.Errorf("unknown instruction %q", line)
	}
}
