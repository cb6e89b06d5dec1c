// counter.go provides named label generation for control-flow lowering.
// Lowering is single-threaded and every label belongs to exactly one
// function's then/else/end chain, so labels come from a plain struct
// that a lowering context owns and threads through explicitly -- no
// global, guarded counter is needed.

package util

import "fmt"

// Label identifies a category of generated label.
type Label int

// Categories of labels the IR lowerer emits.
const (
	LabelThen Label = iota
	LabelElse
	LabelEnd
	labelCount
)

// labelPrefixes stores the string literal prefixes for labels of each kind.
var labelPrefixes = [labelCount]string{
	"%then",
	"%else",
	"%end",
}

// Counter hands out sequentially numbered labels per Label kind. The zero
// value is ready to use. A Counter is owned by a single lowering context;
// it is not safe for concurrent use, matching the sequential pipeline the
// rest of this package assumes.
type Counter struct {
	indices [labelCount]int
}

// Next returns the next label of kind typ and advances its counter.
// Numbering is 1-based: the first if statement's labels are %then1,
// %else1, %end1.
func (c *Counter) Next(typ Label) string {
	if typ < 0 || typ >= labelCount {
		return "%label_error"
	}
	c.indices[typ]++
	return fmt.Sprintf("%s%d", labelPrefixes[typ], c.indices[typ])
}

// ShadowName builds the IR name a surface-level variable name is lowered
// under: always "@<name>_<k>", where k is the 1-based shadow index of
// this declaration (the first declaration of any given name gets k=1,
// never a bare, unsuffixed name).
func ShadowName(name string, idx int) string {
	return fmt.Sprintf("@%s_%d", name, idx)
}
