package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse decodes manifest JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &doc, nil
}

// Read reads and decodes the manifest at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DetectKind reads the manifest at path and returns its pack kind.
func DetectKind(path string) (Kind, error) {
	doc, err := Read(path)
	if err != nil {
		return "", err
	}
	kind, ok := doc.Kind()
	if !ok {
		return "", fmt.Errorf("manifest %s has no data or resources module", path)
	}
	return kind, nil
}
