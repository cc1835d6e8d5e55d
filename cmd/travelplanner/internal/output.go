package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText is human-readable text output
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output
	FormatJSON OutputFormat = "json"
)

// Formatter interface defines methods for formatting command output
type Formatter interface {
	// PrintSuccess prints a success message
	PrintSuccess(message string) error
	// PrintTable prints a table with headers and rows
	PrintTable(headers []string, rows [][]string) error
	// PrintJSON prints arbitrary data as JSON
	PrintJSON(data interface{}) error
}

// NewFormatter returns a formatter for the given output format.
func NewFormatter(format OutputFormat, w io.Writer) Formatter {
	if format == FormatJSON {
		return NewJSONFormatter(w)
	}
	return NewTextFormatter(w)
}

// TextFormatter implements Formatter for human-readable text output
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new TextFormatter writing to the given writer
func NewTextFormatter(w io.Writer) *TextFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &TextFormatter{writer: w}
}

// PrintSuccess prints a success message with a checkmark prefix
func (f *TextFormatter) PrintSuccess(message string) error {
	_, err := fmt.Fprintf(f.writer, "✓ %s\n", message)
	return err
}

// PrintTable prints a table using text/tabwriter for aligned columns
func (f *TextFormatter) PrintTable(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(f.writer, 0, 4, 2, ' ', 0)

	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// PrintJSON prints data as indented JSON even in text mode
func (f *TextFormatter) PrintJSON(data interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// JSONFormatter implements Formatter for structured JSON output
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSONFormatter writing to the given writer
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

// PrintSuccess prints a success message as a JSON object
func (f *JSONFormatter) PrintSuccess(message string) error {
	return f.PrintJSON(map[string]string{"status": "ok", "message": message})
}

// PrintTable prints rows as an array of objects keyed by header
func (f *JSONFormatter) PrintTable(headers []string, rows [][]string) error {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				obj[h] = row[i]
			}
		}
		out = append(out, obj)
	}
	return f.PrintJSON(out)
}

// PrintJSON prints data as indented JSON
func (f *JSONFormatter) PrintJSON(data interface{}) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
