package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the input file format: a list of records under "particles".
// A bare top-level list is accepted too. JSON documents parse as YAML.
type Document struct {
	Particles []Fields `yaml:"particles" json:"particles"`
}

// ReadFields decodes the records of a YAML or JSON document.
func ReadFields(r io.Reader) ([]Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse particle document: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		var records []Fields
		if err := root.Content[0].Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode particle records: %w", err)
		}
		return records, nil

	case yaml.MappingNode:
		var doc Document
		if err := root.Content[0].Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode particle document: %w", err)
		}
		return doc.Particles, nil

	default:
		return nil, errors.New("particle document must be a list or a mapping with a particles key")
	}
}

// CompileFile reads the particle document at path and compiles every record
// in it.
func (c *Compiler) CompileFile(ctx context.Context, path string) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open particle document: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadFields(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c.CompileAll(ctx, records)
}

// WriteDatabase writes db as indented JSON.
func WriteDatabase(w io.Writer, db Database) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("failed to write particle database: %w", err)
	}
	return nil
}
