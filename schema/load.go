// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed data/mapping.schema.json
var embeddedSchemaFS embed.FS

// Load parses a mapping-schema document from YAML or JSON bytes.
// The raw document is validated against the embedded meta-schema before
// decoding; any violation is reported as a *FormatError.
func Load(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("document is not valid YAML or JSON: %s", err)}
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("failed to decode document: %s", err)}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses a mapping-schema document from a file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Load(data)
}

// validateDocument validates the decoded document against the embedded
// meta-schema.
func validateDocument(raw any) error {
	schemaData, err := embeddedSchemaFS.ReadFile("data/mapping.schema.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded meta-schema: %w", err)
	}

	docData, err := json.Marshal(raw)
	if err != nil {
		return &FormatError{Reason: fmt.Sprintf("document is not representable as JSON: %s", err)}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(docData),
	)
	if err != nil {
		return &FormatError{Reason: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return &FormatError{Reason: formatNumbered(msgs)}
}

// formatNumbered formats validation messages as a single numbered list.
func formatNumbered(msgs []string) string {
	if len(msgs) == 1 {
		return msgs[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d violations:\n", len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
