package query

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseErrorKind classifies what made a pattern unparseable.
type ParseErrorKind int

const (
	// ErrUnterminatedQuote marks a quoted key with no closing '"'.
	ErrUnterminatedQuote ParseErrorKind = iota
	// ErrUnterminatedIndex marks a '[' with no matching ']'.
	ErrUnterminatedIndex
	// ErrEmptyKey marks a missing identifier, as in "a..b" or "a.".
	ErrEmptyKey
	// ErrInvalidIndex marks a bracket whose contents are not digits.
	ErrInvalidIndex
	// ErrNegativeIndex marks a bracketed negative index, which the path
	// language does not support.
	ErrNegativeIndex
	// ErrUnexpectedChar marks a byte that fits no production, such as a
	// space inside a bare key.
	ErrUnexpectedChar
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrUnterminatedQuote:
		return "unterminated quoted key"
	case ErrUnterminatedIndex:
		return "unterminated index"
	case ErrEmptyKey:
		return "empty key"
	case ErrInvalidIndex:
		return "invalid index"
	case ErrNegativeIndex:
		return "negative index not supported"
	case ErrUnexpectedChar:
		return "unexpected character"
	default:
		return "invalid pattern"
	}
}

// ParseError reports a syntactically invalid pattern. Offset is the byte
// position of the offending input in the original pattern string.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pattern at byte %d: %s", e.Offset, e.Kind)
}

// Parse converts a pattern string into a Pattern. Surrounding whitespace
// is trimmed; an empty pattern is valid and selects the whole document.
// Parse is a pure function: it never reads the document and has no side
// effects. Malformed input fails with a *ParseError; there is no partial
// recovery.
func Parse(text string) (Pattern, error) {
	p := &parser{src: text}
	p.pos = len(text) - len(strings.TrimLeft(text, " \t\r\n"))
	p.end = len(strings.TrimRight(text, " \t\r\n"))
	if p.pos >= p.end {
		return Pattern{}, nil
	}

	var steps []Step
	for {
		field, err := p.field()
		if err != nil {
			return Pattern{}, err
		}
		steps = append(steps, field)
		for p.pos < p.end && p.src[p.pos] == '[' {
			index, err := p.index()
			if err != nil {
				return Pattern{}, err
			}
			steps = append(steps, index)
		}
		if p.pos >= p.end {
			return Pattern{steps: steps}, nil
		}
		if p.src[p.pos] != '.' {
			return Pattern{}, &ParseError{Kind: ErrUnexpectedChar, Offset: p.pos}
		}
		p.pos++
	}
}

type parser struct {
	src string
	pos int
	end int
}

// field parses one identifier, either bare or double-quoted. Quoted keys
// take their contents literally, with backslash escaping the next byte.
func (p *parser) field() (Field, error) {
	if p.pos >= p.end {
		return Field{}, &ParseError{Kind: ErrEmptyKey, Offset: p.pos}
	}
	if p.src[p.pos] == '"' {
		return p.quotedField()
	}
	start := p.pos
	for p.pos < p.end && isBareKeyByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if p.pos < p.end && p.src[p.pos] != '.' && p.src[p.pos] != '[' {
			return Field{}, &ParseError{Kind: ErrUnexpectedChar, Offset: p.pos}
		}
		return Field{}, &ParseError{Kind: ErrEmptyKey, Offset: p.pos}
	}
	return Field{Name: p.src[start:p.pos]}, nil
}

func (p *parser) quotedField() (Field, error) {
	start := p.pos
	p.pos++ // opening quote
	var name []byte
	for p.pos < p.end {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= p.end {
				return Field{}, &ParseError{Kind: ErrUnterminatedQuote, Offset: start}
			}
			p.pos++
			name = append(name, p.src[p.pos])
		case '"':
			p.pos++
			return Field{Name: string(name)}, nil
		default:
			name = append(name, c)
		}
		p.pos++
	}
	return Field{}, &ParseError{Kind: ErrUnterminatedQuote, Offset: start}
}

// index parses one bracketed array index.
func (p *parser) index() (Index, error) {
	open := p.pos
	p.pos++ // '['
	digitsStart := p.pos
	negative := false
	if p.pos < p.end && p.src[p.pos] == '-' {
		negative = true
		p.pos++
	}
	for p.pos < p.end && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.pos >= p.end {
		return Index{}, &ParseError{Kind: ErrUnterminatedIndex, Offset: open}
	}
	if p.src[p.pos] != ']' {
		return Index{}, &ParseError{Kind: ErrInvalidIndex, Offset: p.pos}
	}
	digits := p.src[digitsStart:p.pos]
	if digits == "" || digits == "-" {
		return Index{}, &ParseError{Kind: ErrInvalidIndex, Offset: digitsStart}
	}
	if negative {
		return Index{}, &ParseError{Kind: ErrNegativeIndex, Offset: digitsStart}
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return Index{}, &ParseError{Kind: ErrInvalidIndex, Offset: digitsStart}
	}
	p.pos++ // ']'
	return Index{I: i}, nil
}
