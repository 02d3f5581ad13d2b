// internal/core/domain/run_report.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExecutionResult es el resultado de un adapter ejecutado. Se produce
// exactamente uno por adapter elegible, exito o fallo, y es inmutable una
// vez creado.
type ExecutionResult struct {
	// Success indica si la accion de plataforma se completo
	Success bool

	// Platform nombre de la integracion que produjo el resultado
	Platform string

	// Message descripcion legible del desenlace
	Message string

	// Details datos opcionales especificos del adapter
	Details map[string]any

	// Duration tiempo de ejecucion del adapter
	Duration time.Duration

	// Timestamp momento en que se registro el resultado
	Timestamp time.Time
}

// NewSuccess construye un resultado exitoso.
func NewSuccess(platform, message string) ExecutionResult {
	return ExecutionResult{
		Success:   true,
		Platform:  platform,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewFailure construye un resultado fallido. Fallos de precondicion y
// faults inesperados usan la misma forma: el orquestador nunca necesita
// distinguirlos por tipo.
func NewFailure(platform, message string) ExecutionResult {
	return ExecutionResult{
		Success:   false,
		Platform:  platform,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithDetails retorna una copia del resultado con detalles adjuntos.
func (r ExecutionResult) WithDetails(details map[string]any) ExecutionResult {
	r.Details = details
	return r
}

// RunReport es la secuencia ordenada de resultados de una invocacion del
// orquestador. Adapters no configurados, no registrados o deshabilitados
// nunca aparecen en Results; se cuentan aparte en Metadata.
type RunReport struct {
	// ID identificador unico de la ejecucion
	ID string

	// Results resultados por adapter elegible, en orden de configuracion
	Results []ExecutionResult

	// Metadata contadores y tiempos de la ejecucion
	Metadata RunMetadata
}

// RunMetadata contiene informacion sobre la ejecucion.
type RunMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Eligible adapters habilitados y resueltos (= len(Results) al final)
	Eligible int

	// Succeeded resultados con Success=true
	Succeeded int

	// SkippedDisabled entradas configuradas pero con enabled=false
	SkippedDisabled int

	// SkippedUnknown entradas que nombran plataformas no registradas
	SkippedUnknown int

	// Available plataformas registradas al momento de la ejecucion
	Available []string

	// Version version de profilex
	Version string
}

// NewRunReport crea un reporte vacio con ID unico.
func NewRunReport() *RunReport {
	return &RunReport{
		ID:      uuid.NewString(),
		Results: []ExecutionResult{},
		Metadata: RunMetadata{
			StartTime: time.Now(),
		},
	}
}

// Append registra el resultado de un adapter elegible.
func (r *RunReport) Append(res ExecutionResult) {
	r.Results = append(r.Results, res)
}

// Finalize cierra el reporte y calcula contadores finales.
func (r *RunReport) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Eligible = len(r.Results)
	succeeded := 0
	for _, res := range r.Results {
		if res.Success {
			succeeded++
		}
	}
	r.Metadata.Succeeded = succeeded
}

// Empty indica si ningun adapter fue elegible.
func (r *RunReport) Empty() bool {
	return len(r.Results) == 0
}

// Summary retorna el resumen "N/M succeeded" de la ejecucion.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%d/%d succeeded", r.Metadata.Succeeded, r.Metadata.Eligible)
}
