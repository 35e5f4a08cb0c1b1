package output

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter serializes the result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report.Result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
