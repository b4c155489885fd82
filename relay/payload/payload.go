package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field is the top-level key whose value is forwarded downstream
const Field = "data"

var (
	// ErrMissingField is returned when the document has no top-level data field
	ErrMissingField = errors.New("missing field: " + Field)
	// ErrInvalidJSON is returned when the body is not UTF-8 encoded JSON
	ErrInvalidJSON = errors.New("body is not valid JSON")
)

// Document is an inbound JSON object with lazily decoded members
type Document map[string]json.RawMessage

// Parse decodes an inbound body. Any valid JSON value is accepted; only
// objects can carry the data field. Bodies must be UTF-8.
func Parse(body []byte) (Document, error) {
	if !utf8.Valid(body) || !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		// Valid JSON that is not an object (array, string, number...)
		return Document{}, nil
	}
	return doc, nil
}

// get returns the raw value of a top-level field
func (d Document) get(field string) (json.RawMessage, bool) {
	raw, ok := d[field]
	return raw, ok
}

// Extract returns the data field of body as flattened text.
// The value is compacted as it appears in the source document, whatever
// its JSON type, so strings keep their quotes. The result is whitespace trimmed.
func Extract(body []byte) (string, error) {
	doc, err := Parse(body)
	if err != nil {
		return "", err
	}
	raw, ok := doc.get(Field)
	if !ok {
		return "", ErrMissingField
	}
	text, err := stringify(raw)
	if err != nil {
		return "", fmt.Errorf("stringifying %s: %w", Field, err)
	}
	return text, nil
}

// stringify flattens a raw JSON value to text
func stringify(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", fmt.Errorf("compacting value: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
