// Package highlight adds ANSI color to rendered TOML, JSON, and YAML
// text. Enablement is the caller's decision; when the color package has
// colors disabled every function returns its input unchanged.
package highlight

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	keyColor     = color.New(color.FgCyan).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgMagenta).SprintFunc()
	boolColor    = color.New(color.FgYellow).SprintFunc()
	sectionColor = color.New(color.FgCyan, color.Bold).SprintFunc()
)

var (
	tomlSection = regexp.MustCompile(`^\s*\[{1,2}[^\]]*\]{1,2}\s*$`)
	numberToken = regexp.MustCompile(`^-?(\d+(\.\d+)?([eE][+-]?\d+)?|inf|nan)$`)
	boolToken   = regexp.MustCompile(`^(true|false)$`)
)

// Colorize highlights rendered output line by line. lang is the output
// format name ("toml", "json", "yaml"); unknown names pass through.
func Colorize(text, lang string) string {
	if color.NoColor {
		return text
	}
	switch strings.ToLower(lang) {
	case "toml":
		return colorizeLines(text, "=", tomlSection)
	case "yaml":
		return colorizeLines(text, ":", nil)
	case "json":
		return colorizeJSON(text)
	default:
		return text
	}
}

// colorizeLines handles the key/value formats. Each line is either a
// section header, a "key SEP value" pair, a bare list item, or a bare
// value.
func colorizeLines(text, sep string, section *regexp.Regexp) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if section != nil && section.MatchString(line) {
			lines[i] = sectionColor(line)
			continue
		}
		key, rest, found := splitKey(line, sep)
		if found {
			lines[i] = keyColor(key) + sep + colorizeValue(rest)
			continue
		}
		lines[i] = colorizeValue(line)
	}
	return strings.Join(lines, "\n")
}

// splitKey finds the first separator outside of quotes. YAML sequence
// markers and indentation stay with the key side untouched.
func splitKey(line, sep string) (key, rest string, found bool) {
	inQuote := byte(0)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuote != 0:
			if c == '\\' && inQuote == '"' {
				i++
			} else if c == inQuote {
				inQuote = 0
			}
		case c == '"' || c == '\'':
			inQuote = c
		case c == sep[0]:
			return line[:i], line[i+1:], true
		}
	}
	return "", "", false
}

// colorizeValue colors the scalar tokens in a value fragment, leaving
// punctuation alone.
func colorizeValue(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"' || c == '\'':
			j := closeQuote(s, i)
			b.WriteString(stringColor(s[i:j]))
			i = j
		case isTokenByte(c):
			j := i
			for j < len(s) && isTokenByte(s[j]) {
				j++
			}
			b.WriteString(colorToken(s[i:j]))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func colorToken(tok string) string {
	switch {
	case boolToken.MatchString(tok):
		return boolColor(tok)
	case numberToken.MatchString(tok):
		return numberColor(tok)
	default:
		return tok
	}
}

func closeQuote(s string, start int) int {
	q := s[start]
	for i := start + 1; i < len(s); i++ {
		if s[i] == '\\' && q == '"' {
			i++
			continue
		}
		if s[i] == q {
			return i + 1
		}
	}
	return len(s)
}

func isTokenByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '-' || c == '+' || c == '_'
}

// colorizeJSON walks the text byte-wise because keys and string values
// share the same quoting; a string followed by a colon is a key.
func colorizeJSON(text string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '"':
			j := closeQuote(text, i)
			if isJSONKey(text, j) {
				b.WriteString(keyColor(text[i:j]))
			} else {
				b.WriteString(stringColor(text[i:j]))
			}
			i = j
		case isTokenByte(c):
			j := i
			for j < len(text) && isTokenByte(text[j]) {
				j++
			}
			b.WriteString(colorToken(text[i:j]))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func isJSONKey(text string, after int) bool {
	for i := after; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}
