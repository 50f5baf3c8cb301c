// Package printing provides infrastructure implementations that turn a
// laid-out label sheet into a PDF document.
//
// This package contains:
// - SheetRenderer interface for replaying a labeling.Sheet onto a PDF
// - FPDFRenderer, the default implementation drawing with go-pdf/fpdf
// - ChromedpRenderer, printing an HTML rendition of the sheet via headless Chrome
//
// Example usage:
//
//	renderer := NewFPDFRenderer(&FPDFConfig{Compress: true})
//	sheet := labeling.StandardGeometry().Layout(records, floorStock)
//
//	result, err := renderer.Render(ctx, sheet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Generated PDF: %d bytes, %d pages\n", len(result.PDFData), result.PageCount)
package printing
