// Package cv genera el CV en LaTeX desde el perfil y lo compila a PDF
// con pdflatex. Los templates usan delimitadores << >> para no chocar con
// la sintaxis de LaTeX, y todo texto del perfil pasa por latexEscape.
package cv

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"profilex/internal/core/domain"
	"profilex/internal/platform/errors"
	"profilex/internal/platform/logx"
)

// Secciones del CV, en orden de documento.
var sectionNames = []string{"header", "about", "experience", "education", "skills", "projects"}

const (
	mainTexName = "cv.tex"
	finalPDF    = "cv.pdf"

	// pdflatex retorna exit != 0 por warnings; el timeout si es fatal.
	compileTimeout = 30 * time.Second
)

// Generator produce el CV. Si Compile esta activo tambien invoca pdflatex.
type Generator struct {
	templatesDir string
	outputDir    string
	compile      bool
	logger       logx.Logger

	// runPDFLaTeX permite inyectar el compilador en tests
	runPDFLaTeX func(ctx context.Context, texPath, outputDir string) error
}

// Options configura el generador de CV.
type Options struct {
	// TemplatesDir contiene cv.tex.tmpl y sections/<name>.tex.tmpl. Los
	// archivos ausentes caen al template embebido correspondiente.
	TemplatesDir string

	// OutputDir recibe los .tex generados y el PDF. Default: assets/generated.
	OutputDir string

	// Compile controla si se invoca pdflatex tras generar los .tex.
	Compile bool

	Logger logx.Logger
}

// New crea el generador.
func New(opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join("assets", "generated")
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	g := &Generator{
		templatesDir: opts.TemplatesDir,
		outputDir:    opts.OutputDir,
		compile:      opts.Compile,
		logger:       opts.Logger.With("generator", "cv"),
	}
	g.runPDFLaTeX = g.pdflatex
	return g
}

// Name identifica el artefacto.
func (g *Generator) Name() string {
	return "cv"
}

// Generate renderiza las secciones y el documento principal, y compila a
// PDF si esta habilitado. Retorna la ruta del PDF, o la del .tex cuando no
// se compila.
func (g *Generator) Generate(ctx context.Context, profile *domain.Profile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sectionsDir := filepath.Join(g.outputDir, "sections")
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", sectionsDir)
	}

	data := templateData(profile)

	for _, name := range sectionNames {
		content, err := g.render("sections/"+name+".tex.tmpl", builtinSections[name], data)
		if err != nil {
			return "", errors.Wrapf(err, "failed to render %s section", name)
		}
		path := filepath.Join(sectionsDir, name+"_generated.tex")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", path)
		}
		g.logger.Debug("section generated", "section", name, "path", path)
	}

	main, err := g.render("cv.tex.tmpl", builtinMain, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to render main cv template")
	}
	texPath := filepath.Join(g.outputDir, mainTexName)
	if err := os.WriteFile(texPath, []byte(main), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", texPath)
	}
	g.logger.Info("cv latex generated", "path", texPath)

	if !g.compile {
		return texPath, nil
	}

	if err := g.runPDFLaTeX(ctx, texPath, g.outputDir); err != nil {
		return "", errors.Wrap(err, "pdf compilation failed")
	}

	pdfPath := filepath.Join(g.outputDir, finalPDF)
	g.logger.Info("cv pdf generated", "path", pdfPath)
	return pdfPath, nil
}

// render compila y ejecuta un template: el archivo del directorio de
// templates si existe, el embebido si no.
func (g *Generator) render(relPath, builtin string, data cvData) (string, error) {
	text := builtin
	if g.templatesDir != "" {
		path := filepath.Join(g.templatesDir, filepath.FromSlash(relPath))
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(raw)
		case !os.IsNotExist(err):
			return "", errors.Wrapf(err, "failed to read template %s", path)
		}
	}

	tmpl, err := template.New(relPath).
		Delims("<<", ">>").
		Funcs(template.FuncMap{"latex": latexEscape, "field": Field}).
		Parse(text)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// pdflatex compila el documento en dos pasadas (la segunda resuelve
// referencias) y renombra el resultado a cv.pdf. Un exit code != 0 con PDF
// producido se tolera: LaTeX retorna error por simples warnings.
func (g *Generator) pdflatex(ctx context.Context, texPath, outputDir string) error {
	runCtx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	produced := filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(texPath), ".tex")+".pdf")

	for pass := 1; pass <= 2; pass++ {
		g.logger.Debug("running pdflatex", "pass", pass)

		cmd := exec.CommandContext(runCtx, "pdflatex",
			"-interaction=nonstopmode",
			"-output-directory="+outputDir,
			texPath,
		)
		out, err := cmd.CombinedOutput()

		if runCtx.Err() != nil {
			return errors.Wrap(errors.ErrTimeout, "pdflatex timed out")
		}
		if err != nil {
			if _, statErr := os.Stat(produced); statErr != nil {
				g.logger.Err(err, "pdflatex failed", "pass", pass, "output_tail", tail(string(out), 1000))
				return errors.Wrapf(err, "pdflatex failed on pass %d", pass)
			}
			// exit != 0 pero el PDF existe: warnings
		}
	}

	if _, err := os.Stat(produced); err != nil {
		return errors.Errorf("pdflatex produced no output: %s missing", produced)
	}

	final := filepath.Join(outputDir, finalPDF)
	if produced == final {
		return nil
	}
	if err := os.Remove(final); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to replace %s", final)
	}
	if err := os.Rename(produced, final); err != nil {
		return errors.Wrapf(err, "failed to rename %s", produced)
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
