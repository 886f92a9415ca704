package output

import (
	"encoding/json"
)

// JSONFormatter formats results as JSON Lines (one JSON object per result).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonResult is the JSON serialization format for a result.
type jsonResult struct {
	Type    string `json:"type"`
	File    string `json:"file,omitempty"`
	Style   string `json:"style,omitempty"`
	Name    string `json:"name,omitempty"`
	Length  int    `json:"length"`
	Literal string `json:"literal,omitempty"`
	Comment string `json:"comment,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (f *JSONFormatter) Format(buf []byte, r Result, multi bool) []byte {
	jr := jsonResult{
		Type: "literal",
		File: r.Path,
	}
	if r.Err != nil {
		jr.Type = "error"
		jr.Error = r.Err.Error()
	} else {
		jr.Style = r.Style.String()
		jr.Name = r.Name
		jr.Length = r.Length
		jr.Literal = r.Literal
		jr.Comment = r.Comment
	}

	data, _ := json.Marshal(jr)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	return buf
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
