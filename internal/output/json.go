package output

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter emits the report as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(r *Report) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
