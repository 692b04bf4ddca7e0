package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vegasq/colcat/output"
	"github.com/vegasq/colcat/reader"
)

var (
	formatFlag = flag.String("f", "jsonl", "Output format: jsonl, csv")
	limitFlag  = flag.Int("limit", 0, "Limit number of rows (0 = unlimited)")
	schemaFlag = flag.Bool("schema", false, "Show schema information instead of data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to print columnar data files as text.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv data.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -limit 10 data.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --schema data.json\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing data file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	table, err := reader.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *schemaFlag {
		if err := printSchema(os.Stdout, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printData(os.Stdout, table, *formatFlag, *limitFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// printData renders the table's rows in the requested format, keeping
// only the first limit rows when limit is positive.
func printData(w io.Writer, table *reader.Table, format string, limit int) error {
	if limit > 0 && table.Rows > limit {
		trimmed := *table
		trimmed.Rows = limit
		table = &trimmed
	}

	var formatter output.Formatter
	switch format {
	case "json", "jsonl":
		formatter = output.NewJSONLFormatter(w)
	case "csv":
		formatter = output.NewCSVFormatter(w)
	default:
		return fmt.Errorf("unsupported format %q (supported: jsonl, csv)", format)
	}
	return formatter.Format(table)
}

// printSchema renders the table's column listing.
func printSchema(w io.Writer, table *reader.Table) error {
	return output.NewSchemaFormatter(w).Format(table)
}
