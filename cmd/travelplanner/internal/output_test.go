package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter_PrintTable(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf)

	err := f.PrintTable(
		[]string{"Field", "Value"},
		[][]string{{"Destination", "Lisbon"}, {"Travelers", "2"}},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Destination")
	assert.Contains(t, out, "Lisbon")
	assert.Contains(t, out, "Travelers")
}

func TestTextFormatter_PrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	f := NewTextFormatter(&buf)

	require.NoError(t, f.PrintSuccess("done"))
	assert.Contains(t, buf.String(), "done")
}

func TestJSONFormatter_PrintTable(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	err := f.PrintTable(
		[]string{"name", "url"},
		[][]string{{"Hotel A", "https://example.com"}},
	)
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Hotel A", rows[0]["name"])
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, nil))
	assert.IsType(t, &TextFormatter{}, NewFormatter(FormatText, nil))
}
