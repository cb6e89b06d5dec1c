package koopa

// Program is a whole compiled unit: the functions it defines, in source
// order. This language allows only a single user function, so Funcs
// holds exactly one entry in practice, but the type does not hard-code
// that assumption.
type Program struct {
	Funcs []*Function
}

// Func looks up a function by name, or returns nil if it isn't defined.
func (p *Program) Func(name string) *Function {
	for _, f := range p.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}
