package query

import (
	"fmt"

	"github.com/oakwood-commons/tq/pkg/document"
)

// KeyNotFoundError reports a Field step whose key is absent from the
// current table. Path holds the steps successfully applied before the
// failing one.
type KeyNotFoundError struct {
	Key  string
	Path Pattern
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("at %s: key %q not found", pathRef(e.Path), e.Key)
}

// IndexOutOfBoundsError reports an Index step whose position is outside
// the current array.
type IndexOutOfBoundsError struct {
	Index  int
	Length int
	Path   Pattern
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("at %s: index %d out of bounds (length %d)", pathRef(e.Path), e.Index, e.Length)
}

// TypeMismatchError reports a step applied to the wrong container kind:
// a Field step on a non-table, or an Index step on a non-array.
type TypeMismatchError struct {
	Expected document.Kind
	Found    document.Kind
	Path     Pattern
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("at %s: expected %s, found %s", pathRef(e.Path), e.Expected, e.Found)
}

func pathRef(p Pattern) string {
	if p.Len() == 0 {
		return "document root"
	}
	return fmt.Sprintf("%q", p.String())
}

// Extract folds the pattern's steps over root and returns a reference to
// the selected sub-value. The document is never copied or mutated: the
// result shares the lifetime of root. Navigation fails fast on the first
// step that does not match the document's shape, and every failure
// carries the path prefix that was applied successfully.
func Extract(root *document.Value, p Pattern) (*document.Value, error) {
	cur := root
	for i, step := range p.steps {
		switch s := step.(type) {
		case Field:
			if cur.Kind() != document.KindTable {
				return nil, &TypeMismatchError{
					Expected: document.KindTable,
					Found:    cur.Kind(),
					Path:     p.prefix(i),
				}
			}
			next, ok := cur.Get(s.Name)
			if !ok {
				return nil, &KeyNotFoundError{Key: s.Name, Path: p.prefix(i)}
			}
			cur = next
		case Index:
			if cur.Kind() != document.KindArray {
				return nil, &TypeMismatchError{
					Expected: document.KindArray,
					Found:    cur.Kind(),
					Path:     p.prefix(i),
				}
			}
			if s.I < 0 || s.I >= cur.Len() {
				return nil, &IndexOutOfBoundsError{
					Index:  s.I,
					Length: cur.Len(),
					Path:   p.prefix(i),
				}
			}
			cur = cur.At(s.I)
		}
	}
	return cur, nil
}

// ExtractPattern parses pattern and applies it to root in one call. This
// is the operation the CLI layer consumes; the error is either a
// *ParseError or one of the navigation error types.
func ExtractPattern(root *document.Value, pattern string) (*document.Value, error) {
	p, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Extract(root, p)
}
