// internal/core/ports/integration.go
package ports

import (
	"context"

	"profilex/internal/core/domain"
	"profilex/internal/platform/logx"
)

// Integration es el port primario para todas las integraciones de
// plataforma en profilex. Cualquier adapter (linkedin, mastodon, ...)
// debe implementar esta interfaz.
//
// Contrato de dos fases: ValidateConfig primero, Execute despues.
// Execute nunca lanza panic ni retorna error para precondiciones
// fallidas (deshabilitado, credencial ausente): esos desenlaces son
// resultados ordinarios con Success=false. Un panic que escape del
// adapter es un fault inesperado que el orquestador aisla.
type Integration interface {
	// Name retorna el identificador estable de la plataforma (ej: "linkedin")
	Name() string

	// IsEnabled deriva de config.enabled; puro, sin efectos
	IsEnabled() bool

	// ValidateConfig verifica las precondiciones para ejecutar (credencial
	// en el entorno, flags de opt-in). Idempotente y sin efectos: puede
	// invocarse antes de Execute sin consecuencias.
	ValidateConfig() bool

	// Execute realiza la accion de plataforma y retorna su resultado.
	// El contexto lleva el timeout por adapter y la cancelacion del run.
	Execute(ctx context.Context) domain.ExecutionResult
}

// Factory construye una instancia de Integration para un run a partir de
// (config, profile). Las instancias no sobreviven al run: estado cero
// entre invocaciones del orquestador.
type Factory func(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) (Integration, error)

// IntegrationMetadata describe una integracion registrada, para
// diagnostico y salida de ayuda.
type IntegrationMetadata struct {
	Name        string
	Description string
	Version     string

	// RequiresAuth indica si el adapter lee una credencial del entorno
	RequiresAuth bool

	// CredentialEnv nombre de la variable de entorno con la credencial
	// (solo el adapter la lee; el orquestador jamas la toca)
	CredentialEnv string
}
