// Package jsonx provides deterministic JSON encoding for payloads that get
// signed: object keys sorted lexicographically at every nesting level, arrays
// in caller order, compact separators, no HTML escaping. Two structurally
// equal values always serialize to identical bytes.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalCanonical serializes a JSON-like value (map[string]any, []any,
// primitives) into its canonical form. Map keys of any nesting level come out
// sorted; insertion order never leaks into the output.
func MarshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("could not canonicalize value: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// CanonicalizeJSON re-encodes raw JSON into its canonical form. Numeric
// literals pass through unmodified, so large integers survive the round trip.
func CanonicalizeJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not parse payload: %w", err)
	}
	return MarshalCanonical(v)
}
