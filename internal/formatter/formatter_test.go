package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/tq/pkg/document"
)

func sampleTable() *document.Value {
	server := document.NewTable()
	server.Set("host", document.String("localhost"))
	server.Set("port", document.Integer(8080))

	root := document.NewTable()
	root.Set("title", document.String("example"))
	root.Set("server", server)
	return root
}

func TestParseOutput(t *testing.T) {
	out, err := ParseOutput(" JSON ")
	require.NoError(t, err)
	require.Equal(t, OutputJSON, out)

	_, err = ParseOutput("xml")
	require.Error(t, err)
}

func TestRenderTOMLTable(t *testing.T) {
	got, err := Render(sampleTable(), OutputTOML, false)
	require.NoError(t, err)
	require.Contains(t, got, "title = 'example'")
	require.Contains(t, got, "[server]")
	require.Contains(t, got, "port = 8080")
}

func TestRenderTOMLScalarRoot(t *testing.T) {
	got, err := Render(document.String("hi \"there\""), OutputTOML, false)
	require.NoError(t, err)
	require.Equal(t, "\"hi \\\"there\\\"\"\n", got)

	got, err = Render(document.Float(3), OutputTOML, false)
	require.NoError(t, err)
	require.Equal(t, "3.0\n", got)
}

func TestRenderTOMLArrayRoot(t *testing.T) {
	arr := document.NewArray()
	arr.Append(document.Integer(10))
	arr.Append(document.Integer(20))

	got, err := Render(arr, OutputTOML, false)
	require.NoError(t, err)
	require.Equal(t, "[10, 20]\n", got)

	got, err = Render(arr, OutputTOML, true)
	require.NoError(t, err)
	require.Equal(t, "[\n  10,\n  20,\n]\n", got)
}

func TestRenderTOMLDatetimeRoot(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got, err := Render(document.Datetime(ts), OutputTOML, false)
	require.NoError(t, err)
	require.Equal(t, "2024-05-01T12:00:00Z\n", got)
}

func TestRenderJSONKeepsOrder(t *testing.T) {
	root := document.NewTable()
	root.Set("zebra", document.Integer(1))
	root.Set("apple", document.Boolean(false))

	got, err := Render(root, OutputJSON, false)
	require.NoError(t, err)
	require.Equal(t, "{\"zebra\":1,\"apple\":false}\n", got)
}

func TestRenderJSONPretty(t *testing.T) {
	root := document.NewTable()
	root.Set("a", document.Integer(1))

	got, err := Render(root, OutputJSON, true)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}\n", got)
}

func TestRenderYAMLKeepsOrder(t *testing.T) {
	got, err := Render(sampleTable(), OutputYAML, false)
	require.NoError(t, err)
	require.Equal(t, "title: example\nserver:\n  host: localhost\n  port: 8080\n", got)
}

func TestRenderYAMLScalarRoot(t *testing.T) {
	got, err := Render(document.Integer(42), OutputYAML, false)
	require.NoError(t, err)
	require.Equal(t, "42\n", got)
}

func TestRenderUnknownOutput(t *testing.T) {
	_, err := Render(sampleTable(), Output("csv"), false)
	require.Error(t, err)
}
