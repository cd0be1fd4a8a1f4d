// Package document reads resume documents (JSON or YAML) used to seed an editing
// session or to render a resume.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-cli/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath picks the decoder from the file extension; anything that is not
// .yaml/.yml is treated as JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses, normalizes and validates a resume document.
func Decode(r io.Reader, format string) (model.Resume, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return model.Resume{}, err
	}
	switch format {
	case FormatYAML:
		// YAML goes through the JSON decoder so both formats share field names,
		// null education slots and the unknown-field check.
		var raw any
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return model.Resume{}, fmt.Errorf("parse yaml: %w", err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
		if b, err = json.Marshal(raw); err != nil {
			return model.Resume{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON, "":
	default:
		return model.Resume{}, fmt.Errorf("unknown document format: %s", format)
	}

	var doc model.Resume
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return model.Resume{}, fmt.Errorf("parse %s: %w", formatName(format), err)
	}
	Normalize(&doc)
	if err := Validate(doc); err != nil {
		return model.Resume{}, err
	}
	return doc, nil
}

func formatName(format string) string {
	if format == "" {
		return FormatJSON
	}
	return format
}

// Load reads a document from path; "-" reads from stdin.
func Load(path string, stdin io.Reader) (model.Resume, error) {
	if path == "-" {
		return Decode(stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		return model.Resume{}, err
	}
	defer f.Close()
	doc, err := Decode(f, FormatForPath(path))
	if err != nil {
		return model.Resume{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Normalize fills in form types omitted by hand-written documents.
func Normalize(r *model.Resume) {
	for _, f := range model.FormTypes() {
		entries := r.Section(f)
		for i := range entries {
			if strings.TrimSpace(string(entries[i].FormType)) == "" {
				entries[i].FormType = f
			}
		}
	}
}
