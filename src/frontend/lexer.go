// This lexer is based on, and copied from, Rob Pike's talk on Go scanners.
// Link to the talk on YouTube: https://www.youtube.com/watch?v=HxaD_trXwRE
// Link to presentation slides: https://talks.golang.org/2011/lex.slide#1
//
// The lexer uses state functions stateFunc to define the lexer state. States
// allow the lexer to treat the same runes differently depending on context.
// State transitions happen in the current state on the appearance of key
// runes. The lexer uses Go's 'rune' type, which enables native UTF-8 support
// for the source being scanned.
//
// Definition and lexWrapper adapt the scanner to participle/v2's
// lexer.Definition/lexer.Lexer interfaces, so the concurrent
// state-function scanner does the character-level work while participle
// drives grammar-level parsing.

package frontend

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// stateFunc defines the state of the lexer.
type stateFunc func(*lex) stateFunc

// itemType differentiates the different tokens scanned by the lexer.
type itemType int

// item contains a lexeme scanned by the lexer and its position in the
// source stream.
type item struct {
	typ  itemType
	val  string
	line int
	pos  int
}

// lex is a lexical scanner that traverses a source stream character by
// character and emits item tokens. Named lex, not lexer, because lexer is
// the name of the imported participle package; the lexWrapper adapter
// below reads this scanner's channel output.
type lex struct {
	input       string
	start       int
	pos         int
	width       int
	line        int
	startOnLine int
	state       stateFunc
	items       chan item
}

// ---------------------
// ----- Constants -----
// ---------------------

const eof = 0

// Token kinds. itemEOF and itemError are sentinels; the rest are the
// concrete tokens of the language grammar.
const (
	itemEOF itemType = iota
	itemError

	IDENT
	INTCONST

	KwConst
	KwInt
	KwVoid
	KwIf
	KwElse
	KwReturn

	Plus
	Minus
	Not
	Mul
	Div
	Mod
	Lt
	Gt
	Le
	Ge
	Eq
	Neq
	And
	Or
	Assign
	Semi
	Comma
	LParen
	RParen
	LBrace
	RBrace
)

// keywords maps reserved words to their token kind.
var keywords = map[string]itemType{
	"const":  KwConst,
	"int":    KwInt,
	"void":   KwVoid,
	"if":     KwIf,
	"else":   KwElse,
	"return": KwReturn,
}

// symbolNames names every token kind for participle's Symbols() table, in
// the same order as the itemType constants above.
var symbolNames = []string{
	"EOF",
	"Error",
	"Ident",
	"IntConst",
	"const",
	"int",
	"void",
	"if",
	"else",
	"return",
	"+",
	"-",
	"!",
	"*",
	"/",
	"%",
	"<",
	">",
	"<=",
	">=",
	"==",
	"!=",
	"&&",
	"||",
	"=",
	";",
	",",
	"(",
	")",
	"{",
	"}",
}

// ---------------------------
// ----- Lexer functions -----
// ---------------------------

// newLex creates and returns a pointer to a new lexical scanner.
func newLex(src string) *lex {
	return &lex{
		input:       src,
		line:        1,
		startOnLine: 1,
		state:       lexGlobal,
		items:       make(chan item, 2),
	}
}

// run drives the state machine, emitting tokens on l.items until the
// state machine terminates.
func (l *lex) run() {
	defer close(l.items)
	for state := l.state; state != nil; {
		state = state(l)
	}
}

// emit sends an item of type typ back to the caller.
func (l *lex) emit(typ itemType) {
	l.items <- item{
		typ:  typ,
		val:  l.input[l.start:l.pos],
		line: l.line,
		pos:  l.startOnLine,
	}
	l.startOnLine += len(l.input[l.start:l.pos])
	l.start = l.pos
}

func (l *lex) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lex) ignore() {
	l.startOnLine += len(l.input[l.start:l.pos])
	l.start = l.pos
}

func (l *lex) backup() {
	if l.pos > l.start {
		l.pos -= l.width
	}
}

func (l *lex) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// errorf emits an error token and terminates the scan.
func (l *lex) errorf(format string, args ...interface{}) stateFunc {
	l.items <- item{
		typ:  itemError,
		val:  fmt.Sprintf(format, args...),
		line: l.line,
		pos:  l.startOnLine,
	}
	return nil
}

// ----------------------------------------
// ----- participle lexer.Definition  -----
// ----------------------------------------

// Definition adapts the state-function scanner to participle/v2's
// lexer.Definition interface.
type Definition struct{}

// NewDefinition returns the lexer.Definition used to build the parser.
func NewDefinition() *Definition {
	return &Definition{}
}

// Symbols returns every token kind this lexer can produce, keyed by name.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	m := make(map[string]lexer.TokenType, len(symbolNames))
	for i, name := range symbolNames {
		if i == int(itemEOF) {
			m[name] = lexer.EOF
			continue
		}
		m[name] = lexer.TokenType(i)
	}
	return m
}

// Lex reads all of r and returns a lexer.Lexer that scans it.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return nil, err
	}
	l := newLex(sb.String())
	go l.run()
	return &lexWrapper{l: l, filename: filename}, nil
}

// lexWrapper implements participle/v2's lexer.Lexer over a *lex.
type lexWrapper struct {
	l        *lex
	filename string
}

// Next returns the next participle token, translating itemEOF/itemError
// into their participle equivalents.
func (w *lexWrapper) Next() (lexer.Token, error) {
	i, ok := <-w.l.items
	if !ok || i.typ == itemEOF {
		return lexer.Token{Type: lexer.EOF}, nil
	}
	if i.typ == itemError {
		return lexer.Token{}, fmt.Errorf("%s:%d:%d: %s", w.filename, i.line, i.pos, i.val)
	}
	return lexer.Token{
		Type:  lexer.TokenType(i.typ),
		Value: i.val,
		Pos: lexer.Position{
			Filename: w.filename,
			Line:     i.line,
			Column:   i.pos,
		},
	}, nil
}
