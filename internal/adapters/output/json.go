// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"profilex/internal/core/domain"
)

// JSONWriter persiste el RunReport como JSON indentado, un archivo por
// run con timestamp en el nombre.
type JSONWriter struct {
	dir string

	// LastPath guarda la ruta del ultimo archivo escrito.
	LastPath string
}

// NewJSONWriter crea el writer. dir vacio escribe en el directorio actual.
func NewJSONWriter(dir string) *JSONWriter {
	if dir == "" {
		dir = "."
	}
	return &JSONWriter{dir: dir}
}

// Write serializa el reporte a <dir>/run_<timestamp>.json.
func (j *JSONWriter) Write(report *domain.RunReport) error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(j.dir, fmt.Sprintf("run_%s.json", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	j.LastPath = path
	return nil
}
