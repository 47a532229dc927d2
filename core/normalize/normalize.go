package normalize

import (
	"encoding/json"
	"strings"
	"unicode"
)

// arrayTypeMarker is the normalized form of the schema fragment that signals
// a top-level array expectation. Used by the substring fallback when the hint
// is not parseable JSON.
const arrayTypeMarker = `"type":"array"`

// ExpectsArray reports whether schemaHint declares that the model output
// should be a top-level JSON array.
//
// When the hint parses as a JSON object, the top-level "type" keyword is
// inspected structurally: a string value "array", or a type list containing
// "array", counts. Both the keyword and the value are matched
// case-insensitively. Composite keywords (oneOf, anyOf, ...) are deliberately
// not descended into: without a clear top-level declaration no mutation is
// performed.
//
// When the hint is not parseable JSON it may still carry the caller's intent,
// so the check falls back to a whitespace-stripped, lower-cased substring
// match for `"type":"array"`.
//
// An empty hint means no shape expectation.
func ExpectsArray(schemaHint string) bool {
	if schemaHint == "" {
		return false
	}

	var doc any
	if err := json.Unmarshal([]byte(schemaHint), &doc); err == nil {
		obj, ok := doc.(map[string]any)
		if !ok {
			return false
		}
		for key, value := range obj {
			if !strings.EqualFold(key, "type") {
				continue
			}
			switch t := value.(type) {
			case string:
				return strings.EqualFold(t, "array")
			case []any:
				for _, entry := range t {
					if s, ok := entry.(string); ok && strings.EqualFold(s, "array") {
						return true
					}
				}
			}
		}
		return false
	}

	return strings.Contains(stripWhitespace(strings.ToLower(schemaHint)), arrayTypeMarker)
}

// Normalize repairs content when schemaHint expects a top-level JSON array.
//
// Without an array expectation the input is returned byte-for-byte unchanged,
// no matter how malformed it looks. With one, a sequence of shape checks runs
// in order, first match wins:
//
//  1. content already starts with "[": trusted as an array, returned as-is.
//  2. content is delimited by "{" and "}": a single object, wrapped in one
//     bracket pair.
//  3. content parses as a JSON object: wrapped. Parse failures are
//     swallowed; the parse is exploratory.
//  4. content ends with "]" but has no opening bracket: the opening bracket
//     is prepended (the classic comma-joined list with a stray trailing "]").
//  5. Fallback: force both brackets into place.
//
// Shape inspection runs on the whitespace-trimmed content, but the returned
// string is always built from the original untrimmed input so interior
// formatting survives.
//
// The fallback forces bracket presence only. It does not insert missing
// separators between concatenated objects; callers that parse the result
// strictly own any residual malformation. Normalize never returns an error
// and the output is not guaranteed to be valid JSON.
func Normalize(content, schemaHint string) string {
	if !ExpectsArray(schemaHint) {
		return content
	}

	trimmed := strings.TrimSpace(content)

	// Already an array. The leading bracket is trusted; no deep validation.
	if strings.HasPrefix(trimmed, "[") {
		return content
	}

	// Single JSON object, wrap it.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return "[" + content + "]"
	}

	// Exploratory parse: anything that decodes to an object gets wrapped.
	var probe any
	if err := json.Unmarshal([]byte(trimmed), &probe); err == nil {
		if _, isObject := probe.(map[string]any); isObject {
			return "[" + content + "]"
		}
	}

	// Trailing "]" with no opening "[": prepend only, a closing bracket is
	// already present.
	if strings.HasSuffix(trimmed, "]") {
		return "[" + content
	}

	// Best-effort fallback: ensure both brackets exist.
	repaired := content
	if !strings.HasPrefix(trimmed, "[") {
		repaired = "[" + repaired
	}
	if !strings.HasSuffix(strings.TrimSpace(repaired), "]") {
		repaired += "]"
	}
	return repaired
}

// NormalizePtr is Normalize lifted over optional content: nil in, nil out.
// Providers surface a missing assistant message as a nil content pointer and
// that absence must propagate untouched.
func NormalizePtr(content *string, schemaHint string) *string {
	if content == nil {
		return nil
	}
	out := Normalize(*content, schemaHint)
	return &out
}

// stripWhitespace removes every Unicode whitespace character from s.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
