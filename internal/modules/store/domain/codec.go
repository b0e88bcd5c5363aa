package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes the whole document with every collection present.
func Encode(doc Document) ([]byte, error) {
	payload, err := json.Marshal(doc.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return payload, nil
}

// Decode merges a persisted payload over defaults. A top-level collection that
// is missing or null keeps its default; one that is present, even as [], wins.
func Decode(raw []byte, defaults Document) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	if fields == nil {
		return Document{}, fmt.Errorf("decode document: payload is null")
	}
	doc := defaults
	decoders := []error{
		decodeCollection(fields, "tasks", &doc.Tasks),
		decodeCollection(fields, "notes", &doc.Notes),
		decodeCollection(fields, "documents", &doc.Documents),
		decodeCollection(fields, "quickNotes", &doc.QuickNotes),
		decodeCollection(fields, "events", &doc.Events),
		decodeCollection(fields, "goals", &doc.Goals),
		decodeCollection(fields, "activityLog", &doc.ActivityLog),
	}
	for _, err := range decoders {
		if err != nil {
			return Document{}, err
		}
	}
	return doc, nil
}

// decodeCollection replaces *dst only when key carries a non-null value. It
// decodes into a fresh slice so default elements never leak into parsed ones.
func decodeCollection[T any](fields map[string]json.RawMessage, key string, dst *[]T) error {
	value, ok := fields[key]
	if !ok || isNull(value) {
		return nil
	}
	out := []T{}
	if err := json.Unmarshal(value, &out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	*dst = out
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
