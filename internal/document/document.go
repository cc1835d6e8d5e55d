package document

import (
	"regexp"
	"strings"
)

// Format selects the export format.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
)

// MIME types of the exportable formats.
const (
	MIMETypePDF      = "application/pdf"
	MIMETypeMarkdown = "text/markdown"
)

// Document is a rendered, downloadable trip itinerary.
type Document struct {
	Data        []byte
	Format      Format
	destination string
}

// MIMEType returns the document MIME type.
func (d *Document) MIMEType() string {
	if d.Format == FormatMarkdown {
		return MIMETypeMarkdown
	}
	return MIMETypePDF
}

// Filename derives a safe download filename from the destination.
func (d *Document) Filename() string {
	return "trip-plan-" + slugify(d.destination) + "." + string(d.Format)
}

var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases the destination and collapses everything that is not
// a letter or digit into single hyphens.
func slugify(s string) string {
	slug := nonSlugPattern.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "itinerary"
	}
	return slug
}
