// internal/core/ports/collaborators.go
package ports

import (
	"context"

	"profilex/internal/core/domain"
)

// Colaboradores externos al core: el orquestador no los invoca, pero el
// cmd los encadena alrededor suyo. Se definen aqui como fronteras de
// interfaz para que el wiring no dependa de implementaciones concretas.

// ProfileValidator verifica la integridad estructural del perfil antes de
// que corran los pipelines de generacion.
type ProfileValidator interface {
	// Validate retorna la lista de problemas encontrados; vacia = valido.
	Validate(profile *domain.Profile) []string
}

// Generator produce un artefacto legible (README, CV) desde el perfil.
type Generator interface {
	// Name identifica el artefacto que produce (ej: "readme", "cv")
	Name() string

	// Generate renderiza y escribe el artefacto; retorna la ruta escrita.
	Generate(ctx context.Context, profile *domain.Profile) (string, error)
}

// ReportWriter persiste o presenta un RunReport terminado.
type ReportWriter interface {
	Write(report *domain.RunReport) error
}
