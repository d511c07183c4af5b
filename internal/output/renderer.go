package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"log-analyzer/internal/export"
	"log-analyzer/internal/model"
)

// Renderer writes records to an output stream.
type Renderer interface {
	Render(rec model.LogRecord) error
}

// TextRenderer prints "<timestamp> <message>" lines. Styling is dropped
// when w is not a terminal.
type TextRenderer struct {
	w         io.Writer
	timestamp lipgloss.Style
	message   lipgloss.Style
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	lr := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w:         w,
		timestamp: lr.NewStyle().Foreground(lipgloss.Color("39")).Faint(true), // cyan
		message:   lr.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (r *TextRenderer) Render(rec model.LogRecord) error {
	ts := r.timestamp.Render(export.FormatTimestamp(rec))
	_, err := fmt.Fprintf(r.w, "%s %s\n", ts, r.message.Render(rec.Message))
	return err
}

// JSONRenderer prints one JSON object per record.
type JSONRenderer struct {
	enc *json.Encoder
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(rec model.LogRecord) error {
	return r.enc.Encode(rec)
}

// New picks a renderer by format name ("text" or "json").
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

// RenderTable renders every record in order.
func RenderTable(r Renderer, table model.LogTable) error {
	for _, rec := range table {
		if err := r.Render(rec); err != nil {
			return err
		}
	}
	return nil
}
