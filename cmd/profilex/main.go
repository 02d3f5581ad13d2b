// cmd/profilex/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profilex/internal/adapters/output"
	"profilex/internal/core/domain"
	"profilex/internal/core/ports"
	"profilex/internal/core/usecases"
	"profilex/internal/generators/cv"
	"profilex/internal/generators/readme"
	"profilex/internal/platform/config"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/registry"
	"profilex/internal/platform/ui"
	"profilex/internal/validators"

	// Import integrations for auto-registration via init()
	_ "profilex/internal/integrations/linkedin"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]
	switch command {
	case "-h", "--help", "help":
		printUsage()
		return
	case "-v", "--version", "version":
		fmt.Printf("profilex %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}
	if cfg.PrintVersion {
		fmt.Printf("profilex %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	logger := logx.New()
	presenter := ui.NewPTermPresenter()

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	var exitCode int
	switch command {
	case "validate":
		exitCode = runValidate(cfg, presenter, logger)
	case "generate-readme":
		exitCode = runGenerateReadme(ctx, cfg, presenter, logger)
	case "generate-cv":
		exitCode = runGenerateCV(ctx, cfg, presenter, logger)
	case "run-integrations":
		exitCode = runIntegrations(ctx, cfg, presenter, logger)
	case "list-integrations":
		exitCode = runListIntegrations(presenter)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		exitCode = 2
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println("profilex - profile as code automation")
	fmt.Println("\nUsage: profilex <command> [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  validate            Validate the profile document")
	fmt.Println("  generate-readme     Generate README.md from the profile")
	fmt.Println("  generate-cv         Generate the CV (LaTeX + PDF) from the profile")
	fmt.Println("  run-integrations    Run the configured platform integrations")
	fmt.Println("  list-integrations   List registered integrations")
	fmt.Println("  version             Print version and exit")
	fmt.Println("\nExample:")
	fmt.Println("  profilex run-integrations --profile profile.json")
}

// loadProfile carga y parsea el perfil, mostrando el error al usuario.
func loadProfile(cfg config.Config, presenter *ui.PTermPresenter, logger logx.Logger) (*domain.Profile, bool) {
	profile, err := domain.LoadProfile(cfg.ProfilePath)
	if err != nil {
		logger.Err(err, "phase", "load-profile", "path", cfg.ProfilePath)
		presenter.Error(fmt.Sprintf("Cannot load profile %s: %v", cfg.ProfilePath, err))
		return nil, false
	}
	return profile, true
}

func runValidate(cfg config.Config, presenter *ui.PTermPresenter, logger logx.Logger) int {
	presenter.Header("profilex - Profile Validation")

	profile, ok := loadProfile(cfg, presenter, logger)
	if !ok {
		return 1
	}

	problems := validators.NewStructuralValidator().Validate(profile)
	presenter.ValidationProblems(problems)
	if len(problems) > 0 {
		return 1
	}
	return 0
}

func runGenerateReadme(ctx context.Context, cfg config.Config, presenter *ui.PTermPresenter, logger logx.Logger) int {
	presenter.Header("profilex - README Generation")

	profile, ok := loadProfile(cfg, presenter, logger)
	if !ok {
		return 1
	}

	gen := readme.New(readme.Options{
		TemplatesDir: cfg.ReadmeTemplatesDir,
		OutputPath:   cfg.ReadmePath,
		Logger:       logger,
	})

	path, err := gen.Generate(ctx, profile)
	if err != nil {
		logger.Err(err, "phase", "generate-readme")
		presenter.Error(fmt.Sprintf("README generation failed: %v", err))
		return 1
	}

	presenter.Success("README generated: " + path)
	return 0
}

func runGenerateCV(ctx context.Context, cfg config.Config, presenter *ui.PTermPresenter, logger logx.Logger) int {
	presenter.Header("profilex - CV Generation")

	profile, ok := loadProfile(cfg, presenter, logger)
	if !ok {
		return 1
	}

	gen := cv.New(cv.Options{
		TemplatesDir: cfg.CVTemplatesDir,
		OutputDir:    cfg.OutputDir,
		Compile:      cfg.CompilePDF,
		Logger:       logger,
	})

	path, err := gen.Generate(ctx, profile)
	if err != nil {
		logger.Err(err, "phase", "generate-cv")
		presenter.Error(fmt.Sprintf("CV generation failed: %v", err))
		return 1
	}

	presenter.Success("CV generated: " + path)
	return 0
}

func runIntegrations(ctx context.Context, cfg config.Config, presenter *ui.PTermPresenter, logger logx.Logger) int {
	presenter.Header("profilex - Integration Run")

	profile, ok := loadProfile(cfg, presenter, logger)
	if !ok {
		return 1
	}

	// Overrides por entorno: PROFILEX_INTEGRATIONS_<NAME>_ENABLED/_TIMEOUT
	for name, ovr := range config.IntegrationOverrides() {
		profile.OverrideIntegration(name, ovr.Enabled, ovr.Timeout)
		logger.Debug("integration override applied", "name", name)
	}

	orch := usecases.NewOrchestrator(usecases.OrchestratorOptions{
		Registry:       registry.Global(),
		Logger:         logger,
		MaxWorkers:     cfg.Workers,
		DefaultTimeout: time.Duration(cfg.TimeoutS) * time.Second,
	})

	start := time.Now()
	report := orch.Run(ctx, profile)
	report.Metadata.Version = version

	logger.Info("integration run finished",
		"elapsed_ms", time.Since(start).Milliseconds(),
		"summary", report.Summary(),
	)

	// El reporte JSON siempre se escribe; la tabla es opcional.
	writer := output.NewJSONWriter(cfg.ReportsDir)
	if err := writer.Write(report); err != nil {
		logger.Err(err, "phase", "write-report")
		presenter.Warning(fmt.Sprintf("Could not persist run report: %v", err))
	} else {
		logger.Info("run report written", "path", writer.LastPath)
	}

	switch {
	case cfg.TableDisabled:
		fmt.Println(report.Summary())
	case cfg.PlainOutput:
		if err := output.OutputTable(os.Stdout, report); err != nil {
			logger.Err(err, "phase", "output-table")
		}
	default:
		presenter.RunSummary(report)
	}

	if report.Metadata.Succeeded < report.Metadata.Eligible {
		return 1
	}
	return 0
}

func runListIntegrations(presenter *ui.PTermPresenter) int {
	presenter.Header("profilex - Registered Integrations")

	reg := registry.Global()
	metas := make([]ports.IntegrationMetadata, 0)
	for _, name := range reg.Names() {
		if meta, ok := reg.Metadata(name); ok {
			metas = append(metas, meta)
		}
	}
	presenter.IntegrationList(metas)
	return 0
}

// rootContextWithSignals crea el contexto raiz cancelable por SIGINT y
// SIGTERM para apagado limpio.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
