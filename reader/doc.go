// Package reader loads column-major fixture files into schema trees and
// decoded vector batches.
//
// A fixture is a JSON document carrying a schema description and one
// value array per top-level column:
//
//	{
//	  "schema": "struct<id:bigint,tags:list<string>>",
//	  "columns": [
//	    [1, 2],
//	    [["a", "b"], null]
//	  ]
//	}
//
// Values are written in the natural JSON shape for their type: numbers
// for the integer, floating point and date kinds, strings for text,
// base64 strings for binary, "12.34" strings for decimals,
// [seconds, nanos] pairs for timestamps, arrays for lists, arrays of
// [key, value] pairs for maps, [tag, value] pairs for unions and
// objects for structs. JSON null marks a null row at any nesting depth.
//
// # Basic Usage
//
//	table, err := reader.ReadFile("data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// table.Schema, table.Rows and table.Batch describe one decoded
//	// slice of the dataset.
//
// The package uses github.com/segmentio/encoding/json for decoding.
package reader
