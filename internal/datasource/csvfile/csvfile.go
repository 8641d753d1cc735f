// Package csvfile loads a CSV file into the tabular model.
//
// The loader is an external collaborator of the inspection engine: it is
// best-effort in the same way sampling is: misaligned records are skipped
// rather than failing the load, because one bad row must not block a health
// inspection of the other million.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"inspector/internal/table"
)

// Options controls CSV reading.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// Encoding selects the source character set: "", "utf8", "latin1",
	// or "windows-1252". Non-UTF8 inputs are transformed while reading.
	Encoding string

	// LazyQuotes tolerates bare quotes inside fields.
	LazyQuotes bool
}

// Load opens and reads path.
func Load(path string, opt Options) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f, opt)
}

// Read parses CSV from r. The first record is the header; empty fields
// become missing cells, consistent with how the engine defines missingness.
func Read(r io.Reader, opt Options) (*table.Table, error) {
	dec, err := decoderFor(opt.Encoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec.NewDecoder())
	}

	comma := opt.Comma
	if comma == 0 {
		comma = ','
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1 // misaligned rows are skipped below
	cr.LazyQuotes = opt.LazyQuotes

	header, err := cr.Read()
	if err == io.EOF {
		return &table.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]table.Column, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		cols[i].Name = strings.TrimSpace(h)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if len(rec) != len(header) {
			continue
		}
		for i, v := range rec {
			if v == "" {
				cols[i].Cells = append(cols[i].Cells, table.Missing())
				continue
			}
			cols[i].Cells = append(cols[i].Cells, table.String(v))
		}
	}

	return table.New(cols)
}

func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
