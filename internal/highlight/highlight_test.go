package highlight

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func forceColor(t *testing.T, on bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !on
	t.Cleanup(func() { color.NoColor = prev })
}

func TestColorizeDisabledPassthrough(t *testing.T) {
	forceColor(t, false)
	in := "a = 1\n"
	require.Equal(t, in, Colorize(in, "toml"))
}

func TestColorizeTOML(t *testing.T) {
	forceColor(t, true)
	out := Colorize("[server]\nhost = \"localhost\"\nport = 8080\nok = true\n", "toml")
	require.Contains(t, out, "\x1b[")
	require.Contains(t, stripANSI(out), "[server]")
	require.Contains(t, stripANSI(out), "host = \"localhost\"")
}

func TestColorizeJSONKeyVsString(t *testing.T) {
	forceColor(t, true)
	out := Colorize(`{"name": "tq", "n": 3}`, "json")
	// key cyan, string value green
	require.Contains(t, out, "\x1b[36m\"name\"")
	require.Contains(t, out, "\x1b[32m\"tq\"")
	require.Contains(t, out, "\x1b[35m3")
}

func TestColorizeYAML(t *testing.T) {
	forceColor(t, true)
	out := Colorize("name: tq\ncount: 3\n", "yaml")
	require.Contains(t, out, "\x1b[36mname")
	require.Equal(t, "name: tq\ncount: 3\n", stripANSI(out))
}

func TestColorizeUnknownLangPassthrough(t *testing.T) {
	forceColor(t, true)
	in := "whatever = 1"
	require.Equal(t, in, Colorize(in, "csv"))
}

func TestQuotedSeparatorStaysInKey(t *testing.T) {
	forceColor(t, true)
	out := Colorize("\"a=b\" = 1\n", "toml")
	require.Equal(t, "\"a=b\" = 1\n", stripANSI(out))
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
