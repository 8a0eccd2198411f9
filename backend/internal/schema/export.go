// Package schema derives a machine-readable description of every record
// definition for the /schema endpoint, consumed by the generic DB viewer.
// The export is computed reflectively from the same tagged structs the
// validator checks, so schema and validation share one source of truth.
package schema

import (
	"reflect"
	"strconv"
	"strings"

	"telebuddy/backend/internal/models"
)

type FieldSchema struct {
	Type        string       `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`
	Default     any          `json:"default,omitempty"`
	Enum        []string     `json:"enum,omitempty"`
	Minimum     *float64     `json:"minimum,omitempty"`
	Items       *FieldSchema `json:"items,omitempty"`
	Ref         string       `json:"$ref,omitempty"`
}

type ModelSchema struct {
	Title      string                 `json:"title"`
	Type       string                 `json:"type"`
	Properties map[string]FieldSchema `json:"properties"`
	Required   []string               `json:"required,omitempty"`
}

// Export builds the schema map for every registered record definition.
// Pure function of the definitions; safe to call per request.
func Export() map[string]ModelSchema {
	out := make(map[string]ModelSchema, len(models.All))
	for _, def := range models.All {
		out[def.Name] = exportModel(def.Name, reflect.TypeOf(def.Prototype))
	}
	return out
}

func exportModel(name string, t reflect.Type) ModelSchema {
	ms := ModelSchema{
		Title:      name,
		Type:       "object",
		Properties: make(map[string]FieldSchema, t.NumField()),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonName := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if jsonName == "" || jsonName == "-" {
			continue
		}

		fs := fieldSchema(field.Type)
		fs.Description = field.Tag.Get("description")

		validateTag := field.Tag.Get("validate")
		for _, rule := range strings.Split(validateTag, ",") {
			switch {
			case rule == "required":
				ms.Required = append(ms.Required, jsonName)
			case strings.HasPrefix(rule, "oneof="):
				fs.Enum = strings.Fields(strings.TrimPrefix(rule, "oneof="))
			case strings.HasPrefix(rule, "gte="):
				if min, err := strconv.ParseFloat(strings.TrimPrefix(rule, "gte="), 64); err == nil {
					fs.Minimum = &min
				}
			}
		}

		if defTag, ok := field.Tag.Lookup("default"); ok {
			fs.Default = parseDefault(field.Type, defTag)
		}

		ms.Properties[jsonName] = fs
	}
	return ms
}

func fieldSchema(t reflect.Type) FieldSchema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return FieldSchema{Type: "string"}
	case reflect.Bool:
		return FieldSchema{Type: "boolean"}
	case reflect.Int, reflect.Int32, reflect.Int64:
		return FieldSchema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return FieldSchema{Type: "number"}
	case reflect.Slice:
		items := itemSchema(t.Elem())
		return FieldSchema{Type: "array", Items: &items}
	case reflect.Struct:
		return FieldSchema{Ref: "#/" + t.Name()}
	default:
		return FieldSchema{Type: "object"}
	}
}

func itemSchema(t reflect.Type) FieldSchema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		return FieldSchema{Ref: "#/" + t.Name()}
	}
	return fieldSchema(t)
}

func parseDefault(t reflect.Type, raw string) any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err == nil {
			return v
		}
	case reflect.Int, reflect.Int32, reflect.Int64:
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v
		}
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v
		}
	case reflect.Slice:
		if raw == "[]" {
			return []any{}
		}
	}
	return raw
}
