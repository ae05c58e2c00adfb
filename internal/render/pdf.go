package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ImageToPDF wraps one generated PNG into a single-page PDF sized exactly to
// the template canvas, for print-ready export.
func ImageToPDF(pngData []byte, widthPx int, heightPx int) ([]byte, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, widthPx, heightPx)
	}

	w := float64(widthPx)
	h := float64(heightPx)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("image", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("image", 0, 0, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}

	return buf.Bytes(), nil
}
