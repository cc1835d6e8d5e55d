package document

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/go-pdf/fpdf"

	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// Renderer converts trip parameters, a narrative plan, and an optional cover
// image into a paginated document. It is a stateless transform.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a new Renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// Render produces the document in the requested format. The cover image is
// optional; pass nil for none.
func (r *Renderer) Render(params trip.Parameters, narrative plan.TripPlan, cover []byte, format Format) (*Document, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatMarkdown:
		data = r.renderMarkdown(params, narrative)
	case FormatPDF, "":
		format = FormatPDF
		data, err = r.renderPDF(params, narrative, cover)
	default:
		return nil, types.NewError(types.RENDER_FAILED, fmt.Sprintf("unknown document format %q", format))
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Data:        data,
		Format:      format,
		destination: params.Destination,
	}, nil
}

// renderPDF lays out the title, optional cover image, details block, and the
// classified narrative blocks.
func (r *Renderer) renderPDF(params trip.Parameters, narrative plan.TripPlan, cover []byte) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Plan: "+params.Destination, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, tr("Trip Plan: "+params.Destination), "", "L", false)
	pdf.Ln(2)

	// Cover image, when present and decodable
	if len(cover) > 0 {
		if imgType := detectImageType(cover); imgType != "" {
			name := "cover"
			opts := fpdf.ImageOptions{ImageType: imgType}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(cover))
			pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), 170, 0, true, opts, 0, "")
			pdf.Ln(4)
		} else {
			r.logger.Warn("cover image format not recognized, skipping")
		}
	}

	// Details block
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range detailLines(params) {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}
	pdf.Ln(4)

	// Narrative blocks
	for _, block := range ClassifyLines(narrative.String()) {
		switch block.Kind {
		case BlockHeading:
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 8, tr(block.Text), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		case BlockBullet:
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, 6, tr("- "+block.Text), "", "L", false)
		case BlockParagraph:
			pdf.MultiCell(0, 6, tr(block.Text), "", "L", false)
		case BlockSpacer:
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, types.WrapError(types.RENDER_FAILED, "write PDF", err)
	}
	return buf.Bytes(), nil
}

// renderMarkdown emits the same title and details block followed by the
// narrative text unchanged.
func (r *Renderer) renderMarkdown(params trip.Parameters, narrative plan.TripPlan) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Trip Plan: %s\n\n", params.Destination)
	for _, line := range detailLines(params) {
		fmt.Fprintf(&b, "%s  \n", line)
	}
	b.WriteString("\n")
	b.WriteString(narrative.String())
	b.WriteString("\n")
	return b.Bytes()
}

// detailLines renders the trip-parameters details block.
func detailLines(params trip.Parameters) []string {
	lines := []string{
		"Departure: " + params.DepartureCity,
		"Dates: " + params.DateRange(),
	}
	if params.DurationNights != nil {
		lines = append(lines, fmt.Sprintf("Duration: %d nights", *params.DurationNights))
	}
	lines = append(lines, fmt.Sprintf("Travelers: %d", params.Travelers))
	if params.Budget != "" {
		lines = append(lines, "Budget: "+params.Budget)
	}
	return lines
}

// detectImageType sniffs PNG and JPEG signatures; fpdf needs the type named
// explicitly when registering from a reader.
func detectImageType(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(data) >= 3 && bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return "JPG"
	default:
		return ""
	}
}
