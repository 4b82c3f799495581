package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted command output. It supports both JSON and
// human-readable modes; the journal core never prints, so all user-facing
// messaging flows through here.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// NewPrinter creates a Printer. When jsonMode is true all output is
// structured JSON; when isTTY is false the styles render as plain text.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{}
	if isTTY {
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		styles.Bold = lipgloss.NewStyle().Bold(true)
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		styles.Muted = lipgloss.NewStyle().Faint(true)
		styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		styles.Value = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Success outputs a success result: JSON mode emits the data object,
// human mode prints the "message" key or key/value pairs.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), val))
	}
	return nil
}

// Error outputs an error: JSON mode emits {"error": ..., "code": N} to the
// main writer, human mode writes a styled message to stderr.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		payload, _ := json.Marshal(map[string]any{
			"error": exitErr.Message,
			"code":  exitErr.Code,
		})
		mustWrite(p.w.Write(payload))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning: JSON mode emits {"warning": ...}, human mode
// writes a styled message to stderr.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a trailing newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes any value as indented JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// writeJSON encodes data as JSON and writes it.
func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Section renders a section header with underline.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", len([]rune(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(underline)))
}

// KeyValue renders a "Key: Value" pair with styles applied.
func (p *Printer) KeyValue(key string, value string) {
	styledKey := p.styles.Key.Render(key + ":")
	styledValue := p.styles.Value.Render(value)
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", styledKey, styledValue))
}

// IsTTY checks if a writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// mustWrite panics if a write to stdout/stderr or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
