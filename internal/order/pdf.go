package order

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const fontFamily = "Helvetica"

// WritePDF renders doc with the PDF core fonts. Text is converted to
// Windows-1252, the encoding those fonts use; other runes become '?'.
func WritePDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			text, err := enc.String(line.Text)
			if err != nil {
				return fmt.Errorf("encoding %q: %w", line.Text, err)
			}
			pdf.SetFont(fontFamily, "", line.Size)
			pdf.Text(line.X, line.Y, text)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
