// Package output renders emitted values in the selected output format.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

const indent = 2

// ErrUnknownFormat is returned by New for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Emitter writes values to the output stream. Flush must be called once after the last Emit.
type Emitter interface {
	Emit(v any) error
	Flush() error
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatYAML}
}

// New returns an Emitter writing format to w.
func New(w io.Writer, format string) (Emitter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return &jsonEmitter{w: w}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		return &yamlEmitter{enc: enc}, nil
	case FormatTable, "":
		return &tableEmitter{w: w}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
}

// jsonEmitter writes each value as its own JSON document, so a paged listing is a stream
// of one document per page (as read by jq), not a single array.
type jsonEmitter struct {
	w io.Writer
}

func (e *jsonEmitter) Emit(v any) error {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := e.w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (e *jsonEmitter) Flush() error { return nil }

// yamlEmitter writes one YAML document per value. Values go through JSON first so that SDK
// structs, which carry no yaml tags, render with the same keys as the json format.
type yamlEmitter struct {
	enc *yaml.Encoder
}

func (e *yamlEmitter) Emit(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}
	blockStyle(&node)

	if err := e.enc.Encode(&node); err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}
	return nil
}

func (e *yamlEmitter) Flush() error {
	return e.enc.Close()
}

// blockStyle drops the flow and quoting styles carried over from the JSON source. Strings that
// would read back as another type are still quoted by the encoder.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
