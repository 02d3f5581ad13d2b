// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"profilex/internal/core/domain"
	"profilex/internal/core/ports"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/registry"
)

// Orchestrator coordina una ejecucion de integraciones: lee la
// configuracion del perfil, resuelve cada plataforma contra el registry,
// ejecuta los adapters elegibles con aislamiento de fallos y agrega los
// resultados en un RunReport.
//
// Maquina de estados por run: Loading -> Resolving -> Executing ->
// Reporting -> Done. El run siempre completa: un adapter que falla, hace
// panic o se cuelga jamas aborta a los demas.
type Orchestrator struct {
	registry *registry.IntegrationRegistry
	logger   logx.Logger

	maxWorkers     int
	defaultTimeout time.Duration
}

// OrchestratorOptions configura el orchestrator.
type OrchestratorOptions struct {
	Registry   *registry.IntegrationRegistry
	Logger     logx.Logger
	MaxWorkers int

	// DefaultTimeout aplica a las integraciones que no configuran el suyo.
	DefaultTimeout time.Duration
}

// NewOrchestrator crea una nueva instancia del orchestrator.
func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	if opts.Registry == nil {
		opts.Registry = registry.Global()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 4
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = domain.DefaultIntegrationTimeout
	}

	return &Orchestrator{
		registry:       opts.Registry,
		logger:         opts.Logger.With("component", "orchestrator"),
		maxWorkers:     opts.MaxWorkers,
		defaultTimeout: opts.DefaultTimeout,
	}
}

// pendingRun es una entrada resuelta y habilitada, con su slot de reporte
// pre-asignado para que el orden de terminacion no afecte al reporte.
type pendingRun struct {
	slot        int
	name        string
	integration ports.Integration
	timeout     time.Duration
}

// Run ejecuta todas las integraciones elegibles del perfil y retorna el
// reporte. Nunca retorna error: "nada configurado" es un reporte vacio y
// los fallos por adapter son entradas del reporte.
func (o *Orchestrator) Run(ctx context.Context, profile *domain.Profile) *domain.RunReport {
	report := domain.NewRunReport()
	report.Metadata.Available = o.registry.Names()

	// Loading
	configs := profile.Integrations()
	if len(configs) == 0 {
		o.logger.Info("no integrations configured")
		report.Finalize()
		return report
	}

	// Orden de configuracion: los objetos JSON no conservan orden, asi
	// que el orden canonico es lexicografico por nombre de plataforma.
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	o.logger.Info("running integrations",
		"configured", len(names),
		"available", len(report.Metadata.Available),
		"workers", o.maxWorkers,
	)

	// Resolving + filtrado por enablement
	pending := o.resolve(names, configs, profile, report)

	// Executing
	results := o.execute(ctx, pending)

	// Reporting
	for _, res := range results {
		report.Append(res)
	}
	report.Finalize()

	o.logger.Info("integrations finished",
		"eligible", report.Metadata.Eligible,
		"succeeded", report.Metadata.Succeeded,
		"skipped_disabled", report.Metadata.SkippedDisabled,
		"skipped_unknown", report.Metadata.SkippedUnknown,
		"duration_ms", report.Metadata.Duration.Milliseconds(),
	)

	return report
}

// resolve consulta el registry por cada nombre configurado e instancia los
// adapters habilitados. Nombres no registrados y entradas deshabilitadas
// se excluyen del reporte y se cuentan aparte.
func (o *Orchestrator) resolve(
	names []string,
	configs map[string]domain.IntegrationConfig,
	profile *domain.Profile,
	report *domain.RunReport,
) []pendingRun {
	pending := make([]pendingRun, 0, len(names))

	for _, name := range names {
		cfg := configs[name]

		factory, ok := o.registry.Resolve(name)
		if !ok {
			o.logger.Warn("integration not registered, skipping", "name", name)
			report.Metadata.SkippedUnknown++
			continue
		}

		if !cfg.Enabled {
			o.logger.Info("integration disabled, skipping", "name", name)
			report.Metadata.SkippedDisabled++
			continue
		}

		integ, err := factory(cfg, profile, o.logger)
		if err != nil {
			// La entrada ya era elegible (resuelta y habilitada): un
			// constructor roto produce un resultado fallido, no un skip.
			o.logger.Warn("integration build failed", "name", name, "error", err.Error())
			pending = append(pending, pendingRun{
				slot:    len(pending),
				name:    name,
				timeout: cfg.Timeout,
			})
			continue
		}

		pending = append(pending, pendingRun{
			slot:        len(pending),
			name:        name,
			integration: integ,
			timeout:     cfg.Timeout,
		})
	}

	return pending
}

// execute corre los adapters elegibles con un semaforo de workers. Cada
// resultado se escribe en su slot pre-asignado: el reporte conserva el
// orden de configuracion sin importar el orden de terminacion.
func (o *Orchestrator) execute(ctx context.Context, pending []pendingRun) []domain.ExecutionResult {
	results := make([]domain.ExecutionResult, len(pending))
	sem := make(chan struct{}, o.maxWorkers)
	var wg sync.WaitGroup

	for _, p := range pending {
		wg.Add(1)
		go func(p pendingRun) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[p.slot] = o.executeOne(ctx, p)
		}(p)
	}

	wg.Wait()
	return results
}

// executeOne ejecuta un adapter dentro de la frontera de aislamiento:
// timeout por adapter y recuperacion de panics. Cualquier fault que escape
// del adapter se convierte en un ExecutionResult fallido con el texto del
// fault; el orquestador nunca aborta por un adapter.
func (o *Orchestrator) executeOne(ctx context.Context, p pendingRun) domain.ExecutionResult {
	if p.integration == nil {
		return domain.NewFailure(p.name, "integration could not be constructed")
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = o.defaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	o.logger.Debug("executing integration", "name", p.name, "timeout", timeout.String())

	start := time.Now()
	done := make(chan domain.ExecutionResult, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- domain.NewFailure(p.name, fmt.Sprintf("unexpected fault: %v", rec))
			}
		}()
		done <- p.integration.Execute(runCtx)
	}()

	var res domain.ExecutionResult
	select {
	case res = <-done:
	case <-runCtx.Done():
		if ctx.Err() != nil {
			res = domain.NewFailure(p.name, "run cancelled before completion")
		} else {
			res = domain.NewFailure(p.name, fmt.Sprintf("execution timed out after %s", timeout))
		}
	}

	res.Duration = time.Since(start)
	if res.Platform == "" {
		res.Platform = p.name
	}

	if res.Success {
		o.logger.Info("integration succeeded", "name", p.name, "message", res.Message)
	} else {
		o.logger.Warn("integration failed", "name", p.name, "message", res.Message)
	}

	return res
}
