// Package query implements the path language used to extract a sub-value
// from a parsed document: a parser that turns a pattern string into an
// ordered sequence of navigation steps, and a navigator that folds those
// steps over a document tree.
package query

import (
	"strconv"
	"strings"
)

// Step is one atomic navigation operation: a table field access or an
// array index access.
type Step interface {
	// writePath appends the step's textual form to a rendered path.
	// first is true when the step opens the path.
	writePath(b *strings.Builder, first bool)
}

// Field selects a table entry by key.
type Field struct {
	Name string
}

// Index selects an array element by zero-based position.
type Index struct {
	I int
}

func (f Field) writePath(b *strings.Builder, first bool) {
	if !first {
		b.WriteByte('.')
	}
	if isBareKey(f.Name) {
		b.WriteString(f.Name)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(f.Name); i++ {
		c := f.Name[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}

func (x Index) writePath(b *strings.Builder, _ bool) {
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(x.I))
	b.WriteByte(']')
}

// Pattern is a parsed path: an ordered sequence of steps. A pattern with
// zero steps denotes the whole document. Patterns are only produced by
// Parse and are immutable afterwards.
type Pattern struct {
	steps []Step
}

// Steps returns the navigation steps in source order.
func (p Pattern) Steps() []Step {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	return steps
}

// Len returns the number of steps.
func (p Pattern) Len() int { return len(p.steps) }

// String renders the pattern back into path syntax. Field names that
// fall outside the bare-key character set come out quoted.
func (p Pattern) String() string {
	var b strings.Builder
	for i, s := range p.steps {
		s.writePath(&b, i == 0)
	}
	return b.String()
}

// prefix returns the pattern made of the first n steps.
func (p Pattern) prefix(n int) Pattern {
	return Pattern{steps: p.steps[:n]}
}

func isBareKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isBareKeyByte(s[i]) {
			return false
		}
	}
	return true
}
