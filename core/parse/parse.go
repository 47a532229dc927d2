package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs attempts to parse a string into the specified type T.
// For primitive types (string, bool, int, uint, float), it performs direct
// conversion. For complex types (structs, maps, slices), it strips any
// wrapping markdown code fence and attempts JSON unmarshaling. If
// unmarshaling fails, it repairs the JSON string using jsonrepair and
// retries.
//
// Example usage:
//
//	type Task struct {
//	    Title string `json:"title"`
//	}
//
//	// Parse a valid JSON string
//	task, err := ParseStringAs[Task](`{"title":"Go shopping"}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	task, err := ParseStringAs[Task](`{title: 'Go shopping'}`)
//
//	// Parse primitive types
//	num, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		// For string type, return content as-is via reflection
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		// For structs, slices, maps, and other complex types, use JSON unmarshaling
		content = StripCodeFence(content)

		err := json.Unmarshal([]byte(content), &result)
		if err != nil {
			// If JSON unmarshaling fails, attempt to repair the JSON and retry
			repairedJSON, repairErr := jsonrepair.JSONRepair(content)
			if repairErr != nil {
				return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}

			err = json.Unmarshal([]byte(repairedJSON), &result)
			if err != nil {
				return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
			}
		}
		return result, nil
	}
}

// StripCodeFence removes a single markdown code fence wrapping s, such as the
// ```json ... ``` block many models emit around JSON output even in JSON
// Mode. Text that is not fully fenced is returned unchanged, modulo outer
// whitespace trimming on fenced input only.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return s
	}

	inner := strings.TrimSuffix(trimmed, "```")
	inner = strings.TrimPrefix(inner, "```")

	// Drop the info string (e.g. "json") on the opening fence line
	if newline := strings.IndexByte(inner, '\n'); newline >= 0 {
		firstLine := strings.TrimSpace(inner[:newline])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]\"") {
			inner = inner[newline+1:]
		}
	}

	return strings.TrimSpace(inner)
}
