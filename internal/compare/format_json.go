package compare

import (
	"strings"

	json "github.com/goccy/go-json"
)

// JSONFormatter writes the comparison set as one newline-terminated JSON
// document, indented unless Compact is set. HTML characters are not escaped.
type JSONFormatter struct {
	Compact bool
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if !jf.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(compSet); err != nil {
		return "", err
	}
	return sb.String(), nil
}
