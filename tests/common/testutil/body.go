//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMap converts a request DTO to its JSON object form and applies edits, so tests can
// send payloads the typed DTO cannot express (missing or malformed fields).
func BodyMap(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

// Field sets key to value. A nil value removes the key.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
