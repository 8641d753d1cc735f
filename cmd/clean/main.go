// Command clean applies the safe cleaning transform to a CSV file and writes
// the result to a new CSV.
//
// Safe means non-destructive: string cells are trimmed, the configured empty
// markers ("", "na", "n/a", "null", "none", "-") become missing values, and
// exact duplicate rows are optionally dropped. Nothing is imputed, reordered,
// or reinterpreted.
package main

import (
	"flag"
	"log"
	"os"

	"inspector/internal/cleaning"
	"inspector/internal/datasource/csvfile"
	"inspector/internal/writer"
)

func main() {
	var (
		flagIn       = flag.String("in", "", "Input CSV path")
		flagOut      = flag.String("out", "", "Output CSV path")
		flagDedup    = flag.Bool("dedup", true, "Drop exact duplicate rows (first occurrence wins)")
		flagComma    = flag.String("comma", ",", "CSV field delimiter (single character)")
		flagEncoding = flag.String("encoding", "", "Source encoding: utf8 (default), latin1, windows-1252")
	)
	flag.Parse()

	if *flagIn == "" || *flagOut == "" {
		fatalf("both -in and -out are required")
	}

	comma := ','
	if r := []rune(*flagComma); len(r) == 1 {
		comma = r[0]
	}

	t, err := csvfile.Load(*flagIn, csvfile.Options{Comma: comma, Encoding: *flagEncoding})
	if err != nil {
		fatalf("load csv: %v", err)
	}

	cleaned, sum := cleaning.Apply(t, cleaning.Options{RemoveDuplicates: *flagDedup})
	if err := writer.WriteCSVFile(*flagOut, cleaned); err != nil {
		fatalf("write cleaned csv: %v", err)
	}

	log.Printf("%s -> %s: rows=%d trimmed=%d normalized=%d dropped_rows=%d",
		*flagIn, *flagOut, cleaned.RowCount(), sum.CellsTrimmed, sum.CellsNormalized, sum.RowsDropped)
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}
