// internal/platform/ui/pterm_presenter.go

// Package ui renderiza la salida de terminal de profilex con pterm:
// headers, paneles y tablas con color. Es presentacion pura; ninguna
// logica de dominio vive aqui.
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"profilex/internal/core/domain"
	"profilex/internal/core/ports"
)

// PTermPresenter renderiza los comandos de profilex en terminal.
type PTermPresenter struct{}

// NewPTermPresenter crea el presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Header muestra el banner principal del comando.
func (p *PTermPresenter) Header(title string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println(title)
	pterm.Println()
}

// RunSummary muestra el panel de resumen de un run de integraciones y la
// tabla de resultados por plataforma.
func (p *PTermPresenter) RunSummary(report *domain.RunReport) {
	bg := pterm.BgGreen
	title := "Integrations Completed"
	if report.Metadata.Succeeded < report.Metadata.Eligible {
		bg = pterm.BgYellow
		title = "Integrations Completed with Failures"
	}

	pterm.Println()
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(bg)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println(title)
	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Summary").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4)

	content := fmt.Sprintf("Run ID: %s\n", pterm.Gray(report.ID))
	content += fmt.Sprintf("Duration: %s\n", pterm.Cyan(formatDuration(report.Metadata.Duration)))
	content += fmt.Sprintf("Result: %s\n", pterm.Green(report.Summary()))
	content += fmt.Sprintf("Skipped: %d disabled, %d unknown",
		report.Metadata.SkippedDisabled,
		report.Metadata.SkippedUnknown,
	)
	panel.Println(content)

	if report.Empty() {
		pterm.Info.Println("No integrations were eligible to run.")
		return
	}

	tableData := pterm.TableData{
		{"Platform", "Status", "Duration", "Message"},
	}
	for _, res := range report.Results {
		status := pterm.Red("✗ failed")
		if res.Success {
			status = pterm.Green("✓ ok")
		}
		tableData = append(tableData, []string{
			res.Platform,
			status,
			formatDuration(res.Duration),
			res.Message,
		})
	}

	pterm.Println()
	pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData).
		Render()
	pterm.Println()
}

// IntegrationList muestra la tabla de integraciones registradas.
func (p *PTermPresenter) IntegrationList(metas []ports.IntegrationMetadata) {
	if len(metas) == 0 {
		pterm.Info.Println("No integrations registered.")
		return
	}

	tableData := pterm.TableData{
		{"Name", "Version", "Auth", "Description"},
	}
	for _, meta := range metas {
		auth := pterm.Gray("none")
		if meta.RequiresAuth {
			auth = pterm.Yellow(meta.CredentialEnv)
		}
		tableData = append(tableData, []string{
			meta.Name,
			meta.Version,
			auth,
			meta.Description,
		})
	}

	pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(tableData).
		Render()
}

// ValidationProblems muestra el resultado de la validacion del perfil.
func (p *PTermPresenter) ValidationProblems(problems []string) {
	if len(problems) == 0 {
		pterm.Success.Println("Profile is valid.")
		return
	}

	pterm.Error.Printf("Profile has %d problem(s):\n", len(problems))
	for i, problem := range problems {
		pterm.Printf("  %d. %s\n", i+1, problem)
	}
}

// Info muestra un mensaje informativo.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning muestra una advertencia.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error muestra un error.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Success muestra una confirmacion.
func (p *PTermPresenter) Success(msg string) {
	pterm.Success.Println(msg)
}

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
