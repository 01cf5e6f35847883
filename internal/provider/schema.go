package provider

// Type is a JSON value type understood by every backend.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Property is a named field of an object schema.
type Property struct {
	Name   string
	Schema Schema
}

// Schema describes the JSON shape a structured call must return. It is shared
// by all backends so call sites never depend on which one serves them.
type Schema struct {
	Type        Type
	Description string
	Properties  []Property
	Items       *Schema
}

// String returns a string schema.
func String(description string) Schema {
	return Schema{Type: TypeString, Description: description}
}

// Number returns a number schema.
func Number(description string) Schema {
	return Schema{Type: TypeNumber, Description: description}
}

// Integer returns an integer schema.
func Integer(description string) Schema {
	return Schema{Type: TypeInteger, Description: description}
}

// Array returns an array schema with the given element schema.
func Array(items Schema) Schema {
	return Schema{Type: TypeArray, Items: &items}
}

// Object returns an object schema. Property order is preserved and every
// property is required.
func Object(props ...Property) Schema {
	return Schema{Type: TypeObject, Properties: props}
}

// Field is shorthand for a Property literal.
func Field(name string, s Schema) Property {
	return Property{Name: name, Schema: s}
}

// Required lists the property names of an object schema.
func (s Schema) Required() []string {
	if len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = p.Name
	}
	return names
}

// PropertiesMap renders the object properties as JSON Schema.
func (s Schema) PropertiesMap() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for _, p := range s.Properties {
		props[p.Name] = p.Schema.JSONSchema()
	}
	return props
}

// JSONSchema renders the schema as a JSON Schema document.
func (s Schema) JSONSchema() map[string]any {
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	switch s.Type {
	case TypeObject:
		out["properties"] = s.PropertiesMap()
		if req := s.Required(); len(req) > 0 {
			out["required"] = req
		}
	case TypeArray:
		if s.Items != nil {
			out["items"] = s.Items.JSONSchema()
		}
	}
	return out
}
