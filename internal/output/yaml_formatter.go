package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the result as YAML, matching the input file conventions.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	return yaml.Marshal(report.Result)
}
