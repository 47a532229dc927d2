package normalize

import (
	"encoding/json"
	"testing"
)

const arrayHint = `{ "type": "array" }`

func TestExpectsArray(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want bool
	}{
		{
			name: "empty hint",
			hint: "",
			want: false,
		},
		{
			name: "plain array hint",
			hint: `{"type":"array"}`,
			want: true,
		},
		{
			name: "array hint with extra whitespace",
			hint: `{"type":   "array"}`,
			want: true,
		},
		{
			name: "upper case keyword and value",
			hint: `{ "TYPE" : "ARRAY" }`,
			want: true,
		},
		{
			name: "object hint",
			hint: `{"type":"object","properties":{"name":{"type":"string"}}}`,
			want: false,
		},
		{
			name: "nested array items only",
			hint: `{"type":"object","properties":{"tags":{"type":"array"}}}`,
			want: false,
		},
		{
			name: "type list containing array",
			hint: `{"type":["array","null"]}`,
			want: true,
		},
		{
			name: "type list without array",
			hint: `{"type":["object","null"]}`,
			want: false,
		},
		{
			name: "oneOf composition is not a top-level declaration",
			hint: `{"oneOf":[{"type":"array"},{"type":"object"}]}`,
			want: false,
		},
		{
			name: "malformed hint falls back to substring",
			hint: `{"type": "array", "items": {`,
			want: true,
		},
		{
			name: "malformed hint with spread-out marker",
			hint: `{ "type" :
				"array"`,
			want: true,
		},
		{
			name: "malformed hint without marker",
			hint: `{"type": "object", "properties": {`,
			want: false,
		},
		{
			name: "non-JSON prose hint",
			hint: "return a list of tasks",
			want: false,
		},
		{
			name: "top-level array document",
			hint: `[{"type":"array"}]`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectsArray(tt.hint); got != tt.want {
				t.Errorf("ExpectsArray(%q) = %v, want %v", tt.hint, got, tt.want)
			}
		})
	}
}

func TestNormalizePassthrough(t *testing.T) {
	tests := []struct {
		name    string
		content string
		hint    string
	}{
		{
			name:    "no hint",
			content: `{ "a": 1 }`,
			hint:    "",
		},
		{
			name:    "object hint leaves malformed content alone",
			content: `{"a":1},{"a":2}]`,
			hint:    `{"type":"object"}`,
		},
		{
			name:    "already an array",
			content: `[{ "t": 1 }, { "t": 2 }]`,
			hint:    arrayHint,
		},
		{
			name:    "leading bracket is trusted even when invalid overall",
			content: `[{"broken": }`,
			hint:    arrayHint,
		},
		{
			name:    "array with surrounding whitespace",
			content: "\n  [1, 2, 3]\n",
			hint:    arrayHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.content, tt.hint); got != tt.content {
				t.Errorf("Normalize() = %q, want input unchanged %q", got, tt.content)
			}
		})
	}
}

func TestNormalizeRepairs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single object is wrapped once",
			content: `{ "title": "Only task" }`,
			want:    `[{ "title": "Only task" }]`,
		},
		{
			name:    "object with surrounding whitespace keeps original content",
			content: "\n{ \"a\": 1 }\n",
			want:    "[\n{ \"a\": 1 }\n]",
		},
		{
			name:    "missing opening bracket gets prepend only",
			content: "{ \"title\": \"A\" },\n{ \"title\": \"B\" }\n]",
			want:    "[{ \"title\": \"A\" },\n{ \"title\": \"B\" }\n]",
		},
		{
			name:    "no brackets at all gets both",
			content: `{"a":1},{"a":2}`,
			want:    `[{"a":1},{"a":2}]`,
		},
		{
			name:    "empty content",
			content: "",
			want:    "[]",
		},
		{
			name:    "scalar content is bracketed",
			content: "42",
			want:    "[42]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.content, arrayHint); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

// The repaired text must parse as a JSON array with the expected elements for
// the malformation patterns DeepSeek actually produces.
func TestNormalizeProducesParseableArrays(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
	}{
		{
			name:    "comma-joined objects with trailing bracket",
			content: "{ \"title\": \"Get prescription\" },\n{ \"title\": \"Go shopping\" }\n]",
			wantLen: 2,
		},
		{
			name:    "single bare object",
			content: `{ "title": "Only task" }`,
			wantLen: 1,
		},
		{
			name:    "well-formed array",
			content: `[{ "t": 1 }, { "t": 2 }]`,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.content, arrayHint)

			var parsed []map[string]any
			if err := json.Unmarshal([]byte(got), &parsed); err != nil {
				t.Fatalf("normalized output %q is not a valid JSON array: %v", got, err)
			}
			if len(parsed) != tt.wantLen {
				t.Errorf("normalized array has %d elements, want %d", len(parsed), tt.wantLen)
			}
		})
	}
}

func TestNormalizeSingleObjectFieldSurvives(t *testing.T) {
	got := Normalize(`{ "title": "Only task" }`, arrayHint)

	var parsed []map[string]any
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("normalized output %q is not a valid JSON array: %v", got, err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected a single element, got %d", len(parsed))
	}
	if parsed[0]["title"] != "Only task" {
		t.Errorf("title = %v, want %q", parsed[0]["title"], "Only task")
	}
}

func TestNormalizeIsIdempotentOnRepairedOutput(t *testing.T) {
	inputs := []string{
		`{ "title": "Only task" }`,
		"{ \"a\": 1 },\n{ \"a\": 2 }\n]",
		`[1, 2, 3]`,
	}

	for _, input := range inputs {
		once := Normalize(input, arrayHint)
		twice := Normalize(once, arrayHint)
		if once != twice {
			t.Errorf("Normalize is not idempotent: %q -> %q -> %q", input, once, twice)
		}
	}
}

func TestNormalizePtr(t *testing.T) {
	if got := NormalizePtr(nil, arrayHint); got != nil {
		t.Errorf("NormalizePtr(nil) = %v, want nil", got)
	}

	content := `{ "a": 1 }`
	got := NormalizePtr(&content, arrayHint)
	if got == nil {
		t.Fatal("NormalizePtr returned nil for present content")
	}
	if *got != `[{ "a": 1 }]` {
		t.Errorf("NormalizePtr = %q, want %q", *got, `[{ "a": 1 }]`)
	}

	// The hint must not matter for absence propagation.
	if got := NormalizePtr(nil, ""); got != nil {
		t.Errorf("NormalizePtr(nil, no hint) = %v, want nil", got)
	}
}
