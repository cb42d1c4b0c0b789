package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/ports/secondary"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 7.0
	pdfLabelWidth = 30.0
	pdfPhotoWidth = 60.0
)

// PDFRenderer implements secondary.ReportRenderer with an A4 PDF document.
type PDFRenderer struct {
	title  string
	logger *slog.Logger
}

// NewPDFRenderer creates a PDF renderer whose documents carry title as heading.
// Skipped photos are reported to logger.
func NewPDFRenderer(title string, logger *slog.Logger) *PDFRenderer {
	return &PDFRenderer{title: title, logger: logger}
}

// Format returns "pdf".
func (r *PDFRenderer) Format() string { return "pdf" }

// Render writes snap as a PDF at dest.
func (r *PDFRenderer) Render(ctx context.Context, snap *snapshot.Snapshot, dest string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("rounds", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 10, tr(r.title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range [][2]string{
		{labelDate, snap.Date},
		{labelLeader, snap.Identification.Leader},
		{labelMachine, snap.Identification.Machine},
		{labelShift, snap.Identification.Shift},
		{labelRoute, snap.Identification.Route},
	} {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentWidth-pdfLabelWidth, pdfLineHeight, tr(orNone(row[1])), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if len(snap.Items) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(contentWidth, pdfLineHeight, tr(noItemsText), "", 1, "L", false, 0, "")
	}

	for _, item := range snap.Items {
		pdf.SetFillColor(230, 230, 230)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentWidth, pdfLineHeight+1, tr(item.Title), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		if !item.Observation.Recorded {
			pdf.SetFont("Helvetica", "I", 11)
		}
		pdf.MultiCell(contentWidth, pdfLineHeight, tr(item.Observation.String()), "LRB", "L", false)

		if embeddablePhoto(r.logger, item) {
			r.placePhoto(pdf, item)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("failed to compose pdf: %w", err)
	}

	return writeFile(dest, pdf.OutputFileAndClose)
}

// placePhoto registers the photo before drawing it. fpdf rejects some valid images (interlaced
// or 16-bit PNGs); those are logged and skipped instead of failing the document.
func (r *PDFRenderer) placePhoto(pdf *fpdf.Fpdf, item snapshot.Item) {
	if pdf.Err() {
		return
	}
	opts := fpdf.ImageOptions{ReadDpi: true}
	pdf.RegisterImageOptions(item.PhotoPath, opts)
	if err := pdf.Error(); err != nil {
		r.logger.Warn("photo skipped", "item", item.Title, "path", item.PhotoPath, "error", err)
		pdf.ClearError()
		return
	}
	pdf.Ln(2)
	pdf.ImageOptions(item.PhotoPath, pdf.GetX(), pdf.GetY(), pdfPhotoWidth, 0, true, opts, 0, "")
}

// Ensure PDFRenderer implements the interface.
var _ secondary.ReportRenderer = (*PDFRenderer)(nil)
