package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("compact", func(t *testing.T) {
		got := JSONToString(payload{Name: "test"})
		if got != `{"name":"test"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("indented", func(t *testing.T) {
		got := JSONToString(payload{Name: "test"}, true)
		if !strings.Contains(got, "\n  ") {
			t.Errorf("expected indented output, got %q", got)
		}
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		got := JSONToString(make(chan int))
		if !strings.Contains(got, "error") {
			t.Errorf("expected error string, got %q", got)
		}
	})
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length unchanged",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long string truncated",
			input:  "hello world",
			maxLen: 5,
			want:   "hello... (truncated, total: 11 chars)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	if v == nil || *v != 42 {
		t.Errorf("Ptr(42) = %v", v)
	}

	s := Ptr("x")
	if s == nil || *s != "x" {
		t.Errorf("Ptr(\"x\") = %v", s)
	}
}
