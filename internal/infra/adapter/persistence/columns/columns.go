// Package columns converts entity fields to and from their stored column form.
// Both SQL adapters store author and keyword lists as JSON arrays.
package columns

import (
	"encoding/json"
	"fmt"
)

// EncodeList serialises a string list as a JSON array. A nil list is stored as [].
func EncodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

// DecodeList parses a stored JSON array. Empty input yields an empty list.
func DecodeList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
