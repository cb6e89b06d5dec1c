// stack.go provides a linked list stack that holds arbitrary data. The
// bottom element is the first entry pushed onto the stack, the top is the
// most recent. The stack does not store <nil> values.
//
// This backs the symbol table's scope stack (ir.SymTab): pushing and
// popping a frame brackets exactly one Block's lowering, as required by
// the symbol table's scoping rule.

package util

// StackElement holds data in the Stack linked list.
type StackElement struct {
	E    interface{}   // Data held by stack entry.
	next *StackElement // Pointer to next entry following this StackElement.
}

// Stack is a linked list stack. The zero value is an empty, ready to use
// stack. Stack is not synchronised: lowering is single-threaded, so any
// locking overhead would bring nothing but cost.
type Stack struct {
	size   int           // Number of entries in the stack.
	bottom *StackElement // The first element to be added to the stack.
	top    *StackElement // The last element to be added to the stack.
}

// Push adds a new element to the top of the stack.
func (s *Stack) Push(e interface{}) {
	if e == nil {
		return
	}
	se := &StackElement{E: e}
	if s.size == 0 {
		s.bottom = se
		s.top = se
	} else {
		s.top.next = se
		s.top = se
	}
	s.size++
}

// Pop removes and returns the last inserted element on the stack.
// If no element has been added <nil> is returned.
func (s *Stack) Pop() interface{} {
	if s.size == 0 {
		return nil
	}
	if s.size == 1 {
		e := s.bottom
		s.bottom = nil
		s.top = nil
		s.size--
		return e.E
	}

	prev := s.bottom
	for prev.next != s.top {
		prev = prev.next
	}
	e := s.top
	s.top = prev
	s.top.next = nil
	s.size--
	return e.E
}

// Peek works just like Pop, but it does not remove the element from the stack.
func (s *Stack) Peek() interface{} {
	if s.size == 0 {
		return nil
	}
	return s.top.E
}

// Size returns the number of elements in the stack.
func (s *Stack) Size() int {
	return s.size
}

// Each calls f with every element on the stack, top (innermost) first.
// f returning false stops the iteration early.
func (s *Stack) Each(f func(e interface{}) bool) {
	for e := s.top; e != nil; e = s.prevOf(e) {
		if !f(e.E) {
			return
		}
	}
}

// prevOf returns the element pushed immediately before e, or <nil> if e is
// the bottom of the stack. The stack is singly linked bottom-to-top, so
// this walks from the bottom; Each is only ever called on small scope
// stacks, so the O(n^2) worst case is never a concern in practice.
func (s *Stack) prevOf(e *StackElement) *StackElement {
	if e == s.bottom {
		return nil
	}
	prev := s.bottom
	for prev.next != e {
		prev = prev.next
	}
	return prev
}
