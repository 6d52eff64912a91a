package ml

import (
	"fmt"
	"strings"
)

// SchemaString renders the human-readable description of a trained model:
// feature columns with their dtypes, then the label-to-index mapping in
// encoder order.
func SchemaString(cols, dtypes, classes []string) string {
	var b strings.Builder

	b.WriteString("Input: ")
	for i, col := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (%s)", col, dtypes[i])
	}

	b.WriteString(" Output: ")
	for i, class := range classes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", class, i)
	}

	return b.String()
}
