package jsonschema

import (
	"reflect"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments
// and responses. It follows the JSON Schema standard, supporting various
// types, properties, and validation rules.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether properties not defined in Properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// Ref is used for JSON Schema references to avoid infinite recursion
	Ref string `json:"$ref,omitempty"`
	// Defs contains reusable schema definitions
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// GenerateJSONSchema generates a JSON schema for the Go type T using
// reflection. Struct fields use their json tag names; jsonschema struct tags
// supply descriptions, required markers and enums, e.g.:
//
//	type Task struct {
//	    Title string `json:"title" jsonschema:"description=Short task title,required"`
//	}
//
// Recursive struct types are emitted once under $defs and referenced via
// $ref afterwards.
func GenerateJSONSchema[T any]() *Schema {
	t := reflect.TypeFor[T]()
	ctx := &schemaContext{
		visited: make(map[reflect.Type]string),
		defs:    make(map[string]*Schema),
	}

	schema := generateSchema(t, ctx)

	if len(ctx.defs) > 0 {
		schema.Defs = ctx.defs
	}
	return schema
}

// schemaContext tracks visited types during generation to handle recursion
type schemaContext struct {
	visited map[reflect.Type]string
	defs    map[string]*Schema
}

func generateSchema(t reflect.Type, ctx *schemaContext) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generateSchema(t.Elem(), ctx)

	case reflect.Struct:
		return generateStructSchema(t, ctx)

	case reflect.Slice, reflect.Array:
		return &Schema{
			Type:  "array",
			Items: generateSchema(t.Elem(), ctx),
		}

	case reflect.Map:
		return &Schema{
			Type:                 "object",
			AdditionalProperties: generateSchema(t.Elem(), ctx),
		}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	default:
		// interfaces and anything else: accept any JSON value
		return &Schema{}
	}
}

func generateStructSchema(t reflect.Type, ctx *schemaContext) *Schema {
	// Already being generated: emit a reference instead of recursing forever
	if defName, seen := ctx.visited[t]; seen {
		return &Schema{Ref: "#/$defs/" + defName}
	}

	recursive := hasRecursiveFields(t)
	defName := t.Name()
	if recursive && defName != "" {
		ctx.visited[t] = defName
	}

	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		fieldSchema := generateSchema(field.Type, ctx)
		applyFieldTags(field, name, fieldSchema, schema)
		schema.Properties[name] = fieldSchema
	}

	if recursive && defName != "" {
		ctx.defs[defName] = schema
		return &Schema{Ref: "#/$defs/" + defName}
	}
	return schema
}

// fieldName resolves the JSON property name for a struct field, honoring the
// json tag. Returns "" for fields excluded with json:"-".
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// applyFieldTags parses the jsonschema struct tag and applies its options to
// the field schema (description, enum) and the parent (required).
func applyFieldTags(field reflect.StructField, name string, fieldSchema *Schema, parent *Schema) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return
	}

	for _, option := range strings.Split(tag, ",") {
		switch {
		case option == "required":
			parent.Required = append(parent.Required, name)
		case strings.HasPrefix(option, "description="):
			fieldSchema.Description = strings.TrimPrefix(option, "description=")
		case strings.HasPrefix(option, "enum="):
			fieldSchema.Enum = append(fieldSchema.Enum, strings.TrimPrefix(option, "enum="))
		}
	}
}

// hasRecursiveFields reports whether t (directly or transitively) contains a
// field referencing t itself.
func hasRecursiveFields(t reflect.Type) bool {
	return checkRecursion(t, t, make(map[reflect.Type]bool))
}

func checkRecursion(root, current reflect.Type, seen map[reflect.Type]bool) bool {
	current = derefType(current)
	if current.Kind() != reflect.Struct {
		return false
	}
	if seen[current] {
		return false
	}
	seen[current] = true

	for i := 0; i < current.NumField(); i++ {
		fieldType := derefType(current.Field(i).Type)
		switch fieldType.Kind() {
		case reflect.Struct:
			if fieldType == root {
				return true
			}
			if checkRecursion(root, fieldType, seen) {
				return true
			}
		case reflect.Slice, reflect.Array, reflect.Map:
			elem := derefType(fieldType.Elem())
			if elem == root {
				return true
			}
			if checkRecursion(root, elem, seen) {
				return true
			}
		}
	}
	return false
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
