package lake

import (
	"bytes"
	"encoding/json"
)

// EncodeLines marshals each item as one JSON object per line, LF-joined,
// with no trailing newline. An empty slice encodes to an empty body.
func EncodeLines[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	for i, item := range items {
		if i > 0 {
			buf.WriteByte('\n')
		}
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// SplitLines splits an NDJSON body into its lines, tolerating a trailing
// newline and CRLF endings from foreign writers. Empty lines are dropped.
func SplitLines(body []byte) [][]byte {
	if len(body) == 0 {
		return nil
	}
	raw := bytes.Split(body, []byte{'\n'})
	lines := make([][]byte, 0, len(raw))
	for _, l := range raw {
		l = bytes.TrimSuffix(l, []byte{'\r'})
		if len(bytes.TrimSpace(l)) == 0 {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
