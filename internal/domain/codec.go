package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalTasksJSON encodes tasks as a JSON array indented by two spaces.
// Non-ASCII and HTML characters are written literally.
// A nil slice encodes as [].
func MarshalTasksJSON(tasks []*Task) ([]byte, error) {
	if tasks == nil {
		tasks = []*Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return buf.Bytes(), nil
}
