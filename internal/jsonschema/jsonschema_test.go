package jsonschema

import (
	"encoding/json"
	"strings"
	"testing"
)

type address struct {
	Street string `json:"street"`
	City   string `json:"city" jsonschema:"description=City name,required"`
}

type person struct {
	Name    string   `json:"name" jsonschema:"description=Full name,required"`
	Age     int      `json:"age"`
	Score   float64  `json:"score"`
	Tags    []string `json:"tags"`
	Home    address  `json:"home"`
	Ignored string   `json:"-"`
	private string   //nolint:unused // exercised via reflection skip
}

type treeNode struct {
	Value    string      `json:"value"`
	Children []*treeNode `json:"children"`
}

func TestGenerateJSONSchemaStruct(t *testing.T) {
	schema := GenerateJSONSchema[person]()

	if schema.Type != "object" {
		t.Fatalf("type = %q, want object", schema.Type)
	}

	name, ok := schema.Properties["name"]
	if !ok {
		t.Fatal("missing name property")
	}
	if name.Type != "string" || name.Description != "Full name" {
		t.Errorf("name schema = %+v", name)
	}

	if got := schema.Properties["age"]; got == nil || got.Type != "integer" {
		t.Errorf("age schema = %+v", got)
	}
	if got := schema.Properties["score"]; got == nil || got.Type != "number" {
		t.Errorf("score schema = %+v", got)
	}

	tags := schema.Properties["tags"]
	if tags == nil || tags.Type != "array" || tags.Items == nil || tags.Items.Type != "string" {
		t.Errorf("tags schema = %+v", tags)
	}

	home := schema.Properties["home"]
	if home == nil || home.Type != "object" {
		t.Fatalf("home schema = %+v", home)
	}
	if len(home.Required) != 1 || home.Required[0] != "city" {
		t.Errorf("home required = %v", home.Required)
	}

	if _, exists := schema.Properties["Ignored"]; exists {
		t.Error("json:\"-\" field must be excluded")
	}
	if _, exists := schema.Properties["private"]; exists {
		t.Error("unexported field must be excluded")
	}

	if len(schema.Required) != 1 || schema.Required[0] != "name" {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGenerateJSONSchemaSliceRoot(t *testing.T) {
	schema := GenerateJSONSchema[[]person]()

	if schema.Type != "array" {
		t.Fatalf("type = %q, want array", schema.Type)
	}
	if schema.Items == nil || schema.Items.Type != "object" {
		t.Errorf("items = %+v", schema.Items)
	}

	// The serialized form is what reaches the prompt and the normalizer.
	encoded, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(encoded), `"type":"array"`) {
		t.Errorf("serialized schema missing array marker: %s", encoded)
	}
}

func TestGenerateJSONSchemaPrimitives(t *testing.T) {
	if got := GenerateJSONSchema[string](); got.Type != "string" {
		t.Errorf("string schema = %+v", got)
	}
	if got := GenerateJSONSchema[bool](); got.Type != "boolean" {
		t.Errorf("bool schema = %+v", got)
	}
	if got := GenerateJSONSchema[map[string]int](); got.Type != "object" {
		t.Errorf("map schema = %+v", got)
	}
}

func TestGenerateJSONSchemaRecursiveType(t *testing.T) {
	schema := GenerateJSONSchema[treeNode]()

	if schema.Ref == "" {
		t.Fatalf("expected root $ref for recursive type, got %+v", schema)
	}
	def, ok := schema.Defs["treeNode"]
	if !ok {
		t.Fatalf("missing $defs entry, defs = %v", schema.Defs)
	}
	children := def.Properties["children"]
	if children == nil || children.Type != "array" || children.Items == nil || children.Items.Ref == "" {
		t.Errorf("children schema = %+v", children)
	}

	// Must serialize without infinite recursion.
	if _, err := json.Marshal(schema); err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
}

func TestEnumTag(t *testing.T) {
	type job struct {
		Priority string `json:"priority" jsonschema:"enum=low,enum=medium,enum=high"`
	}

	schema := GenerateJSONSchema[job]()
	priority := schema.Properties["priority"]
	if priority == nil || len(priority.Enum) != 3 {
		t.Fatalf("priority schema = %+v", priority)
	}
	if priority.Enum[0] != "low" || priority.Enum[2] != "high" {
		t.Errorf("enum values = %v", priority.Enum)
	}
}
