package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeManifests parses a request body into an ordered batch of
// manifests. JSON bodies may contain a single object or an array of
// objects; YAML bodies may contain one or more documents separated by the
// standard --- marker. An empty or unparseable body fails with
// ErrMalformedContent.
func DecodeManifests(body []byte, ct ContentType) ([]Manifest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty or whitespace-only body", ErrMalformedContent)
	}

	if ct == ContentJSON {
		return decodeJSONManifests(trimmed)
	}
	return decodeYAMLManifests(trimmed)
}

func decodeJSONManifests(body []byte) ([]Manifest, error) {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedContent, err)
	}

	switch v := parsed.(type) {
	case map[string]any:
		return []Manifest{Manifest(v)}, nil
	case []any:
		manifests := make([]Manifest, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: JSON array element is not an object", ErrMalformedContent)
			}
			manifests = append(manifests, Manifest(obj))
		}
		if len(manifests) == 0 {
			return nil, fmt.Errorf("%w: empty JSON array", ErrMalformedContent)
		}
		return manifests, nil
	default:
		return nil, fmt.Errorf("%w: JSON body must be an object or an array of objects", ErrMalformedContent)
	}
}

func decodeYAMLManifests(body []byte) ([]Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(body))
	var manifests []Manifest
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: invalid YAML: %v", ErrMalformedContent, err)
		}
		if doc == nil {
			continue
		}
		manifests = append(manifests, Manifest(doc))
	}
	if len(manifests) == 0 {
		return nil, fmt.Errorf("%w: YAML content is empty after parsing", ErrMalformedContent)
	}
	return manifests, nil
}

// EncodeDocuments serializes a batch of response items in the requested
// encoding: a JSON array, or a ---separated YAML multi-document stream.
// Both encodings carry identical logical content.
func EncodeDocuments(items []any, ct ContentType) ([]byte, error) {
	if ct == ContentJSON {
		out, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON response: %w", err)
		}
		return out, nil
	}

	var b strings.Builder
	b.WriteString("---\n")
	for _, item := range items {
		doc, err := yaml.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML response: %w", err)
		}
		b.Write(doc)
		b.WriteString("\n---\n")
	}
	out := strings.TrimSuffix(b.String(), "\n---\n")
	return []byte(strings.TrimSpace(out)), nil
}

// EncodeDocument serializes a single document for storage in the
// requested encoding.
func EncodeDocument(v any, ct ContentType) (string, error) {
	if ct == ContentJSON {
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode document: %w", err)
		}
		return string(out), nil
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(out), nil
}

// DecodeDocument parses a stored document back into a generic mapping.
// Stored documents are decoded with the YAML parser regardless of the
// encoding they were written in: JSON is a subset of YAML, so documents
// written by JSON requests and YAML requests both parse here.
func DecodeDocument(content string) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}
	return doc, nil
}
