package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Output is the structure written by WriteJSON and WriteYAML.
type Output struct {
	Valid        bool      `json:"valid" yaml:"valid"`
	Messages     []Message `json:"messages" yaml:"messages"`
	FatalCount   int       `json:"fatal_count" yaml:"fatal_count"`
	ErrorCount   int       `json:"error_count" yaml:"error_count"`
	WarningCount int       `json:"warning_count" yaml:"warning_count"`
	UsageCount   int       `json:"usage_count" yaml:"usage_count"`
}

func (r *Report) output() Output {
	out := Output{
		Valid:        r.IsValid(),
		Messages:     r.Messages,
		FatalCount:   r.FatalCount(),
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
		UsageCount:   r.UsageCount(),
	}
	if out.Messages == nil {
		out.Messages = []Message{}
	}
	return out
}

// WriteJSON writes the report in JSON format to w.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.output())
}

// WriteYAML writes the report in YAML format to w.
func (r *Report) WriteYAML(w io.Writer) error {
	b, err := yaml.Marshal(r.output())
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Write writes the report to w in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		r.WriteText(w)
		return nil
	}
}
