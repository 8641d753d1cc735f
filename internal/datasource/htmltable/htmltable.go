// Package htmltable extracts an HTML <table> element into the tabular model,
// so datasets published as web pages can be inspected without a CSV export.
package htmltable

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"inspector/internal/table"
)

// Read parses HTML from r and extracts the first table matched by selector
// (pass "table" for the first table in the document).
//
// Header names come from the first row's <th> cells, falling back to its
// <td> cells when the table has no header row. Rows with a different cell
// count than the header are skipped, DOM order is preserved, and empty cells
// become missing.
func Read(r io.Reader, selector string) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("no element matches selector %q", selector)
	}

	trs := sel.Find("tr")
	if trs.Length() == 0 {
		return &table.Table{}, nil
	}

	var cols []table.Column
	headerDone := false

	trs.Each(func(_ int, tr *goquery.Selection) {
		if !headerDone {
			cells := tr.Find("th")
			if cells.Length() == 0 {
				cells = tr.Find("td")
			}
			cells.Each(func(_ int, c *goquery.Selection) {
				cols = append(cols, table.Column{Name: cellText(c)})
			})
			headerDone = true
			return
		}

		tds := tr.Find("td")
		if tds.Length() != len(cols) {
			return
		}
		tds.Each(func(i int, c *goquery.Selection) {
			v := cellText(c)
			if v == "" {
				cols[i].Cells = append(cols[i].Cells, table.Missing())
				return
			}
			cols[i].Cells = append(cols[i].Cells, table.String(v))
		})
	})

	return table.New(cols)
}

func cellText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
