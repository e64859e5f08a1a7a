package lake

import (
	"testing"
)

type row struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestEncodeLines(t *testing.T) {
	t.Run("two_rows_lf_joined_no_trailing", func(t *testing.T) {
		body, err := EncodeLines([]row{{A: "x", B: 1}, {A: "y", B: 2}})
		if err != nil {
			t.Fatalf("EncodeLines: %v", err)
		}
		want := `{"a":"x","b":1}` + "\n" + `{"a":"y","b":2}`
		if string(body) != want {
			t.Errorf("body = %q, want %q", body, want)
		}
	})

	t.Run("empty_slice_empty_body", func(t *testing.T) {
		body, err := EncodeLines([]row{})
		if err != nil {
			t.Fatalf("EncodeLines: %v", err)
		}
		if len(body) != 0 {
			t.Errorf("body = %q, want empty", body)
		}
	})
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"plain", "{\"a\":1}\n{\"a\":2}", 2},
		{"trailing_newline", "{\"a\":1}\n{\"a\":2}\n", 2},
		{"crlf", "{\"a\":1}\r\n{\"a\":2}", 2},
		{"blank_interior_line", "{\"a\":1}\n\n{\"a\":2}", 2},
		{"empty", "", 0},
		{"single", "{\"a\":1}", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(SplitLines([]byte(tt.body))); got != tt.want {
				t.Errorf("lines = %d, want %d", got, tt.want)
			}
		})
	}
}
