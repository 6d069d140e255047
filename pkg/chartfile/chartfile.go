// pkg/chartfile/chartfile.go

// Package chartfile reads and writes size-chart documents used for catalog
// imports. Documents are schema-validated before anything touches the store.
package chartfile

import (
	"encoding/json"
	"os"

	"fitting-engine/internal/common/validation"
)

// Load reads and validates a size-chart document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Validate the raw sizes array before decoding: once decoded into
	// structs, absent bounds are indistinguishable from explicit zeros.
	var raw struct {
		Version     string          `json:"version"`
		LastUpdated string          `json:"lastUpdated"`
		Sizes       json.RawMessage `json:"sizes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.Sizes) == 0 {
		raw.Sizes = json.RawMessage("[]")
	}
	if err := validation.ValidateSizeChart(raw.Sizes); err != nil {
		return nil, err
	}

	doc := Document{Version: raw.Version, LastUpdated: raw.LastUpdated}
	if err := json.Unmarshal(raw.Sizes, &doc.Sizes); err != nil {
		return nil, err
	}
	return &doc, nil
}

func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
