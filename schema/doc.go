// Package schema describes the shape of columnar data as a tree of types.
//
// A Type is an immutable description of one schema node: a kind (boolean,
// bigint, decimal, list, struct, ...), child types for the nested kinds,
// and field names for structs. Type trees are built once per dataset and
// shared read-only by everything that consumes them.
//
// # Building Types
//
// Construct types directly:
//
//	t := schema.NewStruct(
//	    schema.Field{Name: "id", Type: schema.NewPrimitive(schema.Long)},
//	    schema.Field{Name: "tags", Type: schema.NewList(schema.NewPrimitive(schema.String))},
//	)
//
// Or parse the compact text notation:
//
//	t, err := schema.Parse("struct<id:bigint,tags:list<string>>")
//
// Type.String renders the same notation back, so Parse and String round
// trip.
package schema
