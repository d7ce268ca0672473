package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/oakwood-commons/tq/pkg/document"
)

// renderJSON leans on document.Value's MarshalJSON, which keeps table
// keys in document order.
func renderJSON(v *document.Value, pretty bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("encode JSON: %w", err)
	}
	return ensureTrailingNewline(string(b)), nil
}
