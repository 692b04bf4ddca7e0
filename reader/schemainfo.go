package reader

import (
	"fmt"

	"github.com/vegasq/colcat/schema"
)

// SchemaInfo describes one leaf column of a schema tree in a flat,
// display-friendly form.
type SchemaInfo struct {
	// Name is the dot-separated path to the column, for example
	// "address.city" or "tags.element".
	Name string `json:"name"`
	// Type is the full type string of the column.
	Type string `json:"type"`
	// Kind is the column's kind name, for example "bigint" or "list".
	Kind string `json:"kind"`
	// Repeated is true when the column sits inside a list or map, so a
	// single row can carry any number of its values.
	Repeated bool `json:"repeated"`
}

// ExtractSchemaInfo flattens a schema tree into per-column entries.
// Nested fields use dot notation, list elements keep the list's name
// with an "element" suffix and map entries split into "key" and
// "value" columns.
func ExtractSchemaInfo(t *schema.Type) []SchemaInfo {
	var infos []SchemaInfo
	walkSchema(t, "", false, &infos)
	return infos
}

func walkSchema(t *schema.Type, name string, repeated bool, infos *[]SchemaInfo) {
	switch t.Kind {
	case schema.Struct:
		for i, child := range t.Children {
			walkSchema(child, joinPath(name, t.FieldNames[i]), repeated, infos)
		}
	case schema.List:
		walkSchema(t.Children[0], joinPath(name, "element"), true, infos)
	case schema.Map:
		walkSchema(t.Children[0], joinPath(name, "key"), true, infos)
		walkSchema(t.Children[1], joinPath(name, "value"), true, infos)
	case schema.Union:
		for i, child := range t.Children {
			walkSchema(child, joinPath(name, fmt.Sprintf("%d", i)), repeated, infos)
		}
	default:
		*infos = append(*infos, SchemaInfo{
			Name:     name,
			Type:     t.String(),
			Kind:     t.Kind.String(),
			Repeated: repeated,
		})
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
