package order

import (
	"fmt"
)

// Page geometry in millimetres (A4 portrait).
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	TopMargin    = 20.0
	BottomMargin = 270.0

	marginX = 14.0
	indentX = 18.0
)

// Options controls the wording of the document.
type Options struct {
	Title          string
	CurrencySymbol string
	DateLayout     string
}

func DefaultOptions() Options {
	return Options{
		Title:          "SUPPLIER ORDER - PubStock Manager",
		CurrencySymbol: "£",
		DateLayout:     "02/01/2006",
	}
}

// Line is a piece of text placed at a baseline position on a page.
type Line struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
	Text string  `json:"text"`
}

type Page struct {
	Lines []Line `json:"lines"`
}

// Document is the laid out order, ready to be rendered.
type Document struct {
	Pages []Page `json:"pages"`
}

// cursor places lines top to bottom and opens a new page once it passes the bottom margin.
type cursor struct {
	doc Document
	y   float64
}

func (c *cursor) write(x, size float64, text string, advance float64) {
	if c.y > BottomMargin {
		c.doc.Pages = append(c.doc.Pages, Page{})
		c.y = TopMargin
	}
	page := &c.doc.Pages[len(c.doc.Pages)-1]
	page.Lines = append(page.Lines, Line{X: x, Y: c.y, Size: size, Text: text})
	c.y += advance
}

// Layout lays o out on fixed-size pages. Page breaks are checked before every
// line, so an item may be split across two pages.
func (o Order) Layout(opts Options) Document {
	c := &cursor{doc: Document{Pages: []Page{{}}}, y: TopMargin}

	c.write(marginX, 16, opts.Title, 10)
	c.write(marginX, 10, "Generated on: "+o.GeneratedAt.Format(opts.DateLayout), 10)

	for _, it := range o.Items {
		name := it.Name
		if name == "" {
			name = "Unknown product"
		}
		category := it.Category
		if category == "" {
			category = "N/A"
		}

		c.write(marginX, 12, fmt.Sprintf("%d. %s", it.Seq, name), 6)
		c.write(indentX, 10, "Category: "+category, 5)
		c.write(indentX, 10, fmt.Sprintf("Current: %d | Minimum: %d | Order: %d units", it.Current, it.Minimum, it.ToOrder), 5)
		if it.EstimatedCost.Valid {
			c.write(indentX, 10, fmt.Sprintf("Estimated cost: %s%s", opts.CurrencySymbol, it.EstimatedCost.Decimal.StringFixed(2)), 5)
		}
		c.y += 4
	}
	return c.doc
}
