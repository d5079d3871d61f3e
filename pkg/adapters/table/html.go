package table

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/aretw0/notegen/pkg/core"
)

// HTMLReader reads the note table out of a web page.
type HTMLReader struct {
	// Table is the zero-based index of the <table> element, in document order.
	Table int
}

// NewHTMLReader creates a reader for the table at the given index.
func NewHTMLReader(table int) *HTMLReader {
	return &HTMLReader{Table: table}
}

func (h *HTMLReader) Parse(r io.Reader) ([]core.NoteRow, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid html: %v", core.ErrAcquisition, err)
	}

	tables := findElements(doc, "table")
	if h.Table < 0 || h.Table >= len(tables) {
		return nil, fmt.Errorf("%w: page has %d tables, want index %d", core.ErrAcquisition, len(tables), h.Table)
	}

	var records [][]string
	for _, tr := range tableRows(tables[h.Table]) {
		var cells []string
		header := true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
				continue
			}
			if c.Data == "td" {
				header = false
			}
			cells = append(cells, textContent(c))
		}
		if len(cells) == 0 || header {
			continue
		}
		records = append(records, cells)
	}

	return parseRecords(records)
}

// findElements returns every element named tag in document order.
func findElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return found
}

// tableRows returns the <tr> elements of table, skipping rows of nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "table":
				continue
			case "tr":
				rows = append(rows, c)
			default:
				traverse(c)
			}
		}
	}
	traverse(table)
	return rows
}

// textContent joins the text below n and collapses whitespace, so markup such
// as C<sub>4</sub> reads as "C4".
func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
