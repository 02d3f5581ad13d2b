// internal/platform/registry/integration_registry.go
package registry

import (
	"sync"

	"profilex/internal/core/ports"
	"profilex/internal/platform/logx"
)

// IntegrationRegistry gestiona el catalogo nombre -> factory de
// integraciones. Patron Registry + Factory para desacoplar la creacion de
// adapters del codigo de aplicacion.
//
// Ciclo de vida: vacio al arrancar el proceso, poblado una vez por los
// init() de los packages de adapters (antes de cualquier run del
// orquestador), leido muchas veces, nunca desmontado. El camino de
// lectura es seguro para lecturas concurrentes; el registro tardio se
// serializa con el mismo lock.
type IntegrationRegistry struct {
	mu        sync.RWMutex
	factories map[string]ports.Factory
	metadata  map[string]ports.IntegrationMetadata
	order     []string // orden de primer registro, estable dentro del proceso
	logger    logx.Logger
}

// globalRegistry es la instancia global del registry.
var globalRegistry *IntegrationRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *IntegrationRegistry {
	once.Do(func() {
		globalRegistry = NewIntegrationRegistry(logx.New())
	})
	return globalRegistry
}

// NewIntegrationRegistry crea un registry vacio.
func NewIntegrationRegistry(logger logx.Logger) *IntegrationRegistry {
	return &IntegrationRegistry{
		factories: make(map[string]ports.Factory),
		metadata:  make(map[string]ports.IntegrationMetadata),
		logger:    logger.With("component", "integration-registry"),
	}
}

// Register enlaza name -> factory. Re-registrar el mismo nombre reemplaza
// el binding anterior (gana el ultimo registro): comportamiento
// documentado, no accidental. Se emite un diagnostico, nunca un error.
// Nombres o factories vacios se ignoran con un warning.
func (r *IntegrationRegistry) Register(name string, factory ports.Factory, meta ports.IntegrationMetadata) {
	if name == "" || factory == nil {
		r.logger.Warn("ignoring invalid registration", "name", name, "factory_nil", factory == nil)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		r.logger.Info("integration re-registered, previous binding replaced", "name", name)
	} else {
		r.order = append(r.order, name)
		r.logger.Info("integration registered", "name", name, "requires_auth", meta.RequiresAuth)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
}

// Resolve retorna la factory para name. La ausencia es un desenlace
// normal y esperado, no un error: el segundo retorno la distingue.
func (r *IntegrationRegistry) Resolve(name string) (ports.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names retorna los nombres registrados en orden de primer registro,
// sin duplicados. Orden estable dentro de un proceso.
func (r *IntegrationRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Metadata retorna el metadata de una integracion.
func (r *IntegrationRegistry) Metadata(name string) (ports.IntegrationMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.metadata[name]
	return meta, ok
}

// IsRegistered verifica si una integracion esta registrada.
func (r *IntegrationRegistry) IsRegistered(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// Clear elimina todos los bindings (util para tests).
func (r *IntegrationRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ports.Factory)
	r.metadata = make(map[string]ports.IntegrationMetadata)
	r.order = nil
}
