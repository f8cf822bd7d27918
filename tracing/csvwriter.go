package tracing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter is a Tracer that appends one row per prefetch decision to
// a CSV file, buffering rows and flushing either on demand or when
// the process exits.
type CSVWriter struct {
	path string
	file *os.File
	w    *csv.Writer

	decisions  []Decision
	bufferSize int
}

// NewCSVWriter creates a CSVWriter. If path is empty, a name is
// derived at Init time from a fresh xid so concurrent runs never
// collide on the same file.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the backing CSV file, registering a flush-and-close on
// process exit. It must be called before the first Trace.
func (w *CSVWriter) Init() error {
	if w.path == "" {
		w.path = "dcpt_trace_" + xid.New().String()
	}

	filename := w.path + ".csv"
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("tracing: %s already exists", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("tracing: creating %s: %w", filename, err)
	}

	w.file = file
	w.w = csv.NewWriter(file)

	if err := w.w.Write([]string{"AdapterID", "PC", "Addr", "EntryCreated", "Candidates", "Issued"}); err != nil {
		return fmt.Errorf("tracing: writing %s header: %w", filename, err)
	}

	atexit.Register(func() {
		w.Flush()
		w.file.Close()
	})

	return nil
}

// Trace implements Tracer.
func (w *CSVWriter) Trace(d Decision) {
	w.decisions = append(w.decisions, d)
	if len(w.decisions) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes every buffered decision to the CSV file.
func (w *CSVWriter) Flush() {
	for _, d := range w.decisions {
		w.w.Write([]string{
			d.AdapterID,
			strconv.FormatUint(d.PC, 16),
			strconv.FormatUint(d.Addr, 16),
			strconv.FormatBool(d.EntryCreated),
			formatAddrList(d.Candidates),
			formatAddrList(d.Issued),
		})
	}

	w.decisions = nil
	w.w.Flush()
}

// formatAddrList renders a slice of addresses as a single
// semicolon-separated CSV field, so each Decision still occupies one
// row despite Candidates/Issued being variable-length.
func formatAddrList(addrs []uint64) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = "0x" + strconv.FormatUint(a, 16)
	}

	return strings.Join(parts, ";")
}
