// Package readme genera el README.md del perfil con text/template. El
// template recibe el documento completo del perfil bajo .Profile y puede
// usar el filtro monospace para titulos con la fuente unicode monoespaciada.
package readme

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"profilex/internal/core/domain"
	"profilex/internal/platform/errors"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/monotext"
)

const templateName = "template.md.tmpl"

// defaultTemplate se usa cuando el directorio de templates no trae uno
// propio. Cubre las secciones tipicas de un README de perfil.
const defaultTemplate = `# {{ monospace .Name }}

{{- with lookup .Profile "profile.title" }}
**{{ . }}**
{{- end }}

{{- with lookup .Profile "profile.about" }}

{{ . }}
{{- end }}

{{- with lookup .Profile "profile.contact.github" }}

- GitHub: [{{ . }}](https://github.com/{{ . }})
{{- end }}
{{- with lookup .Profile "profile.contact.email" }}
- Email: {{ . }}
{{- end }}

{{- with .Experience }}

## {{ monospace "Experience" }}
{{ range . }}
### {{ index . "role" }} — {{ index . "company" }}
{{- with index . "period" }}
*{{ . }}*
{{- end }}
{{- with index . "description" }}

{{ . }}
{{- end }}
{{ end }}
{{- end }}

{{- with .Projects }}

## {{ monospace "Projects" }}
{{ range . }}
- **{{ index . "name" }}**{{ with index . "description" }}: {{ . }}{{ end }}
{{- end }}
{{- end }}

{{- with .Version }}

---
*Profile version {{ . }}*
{{- end }}
`

// Generator renderiza README.md desde el perfil.
type Generator struct {
	templatesDir string
	outputPath   string
	logger       logx.Logger
}

// Options configura el generador de README.
type Options struct {
	// TemplatesDir es el directorio con template.md.tmpl. Si no existe se
	// usa el template embebido por defecto.
	TemplatesDir string

	// OutputPath es la ruta del README generado. Default: README.md.
	OutputPath string

	Logger logx.Logger
}

// New crea el generador.
func New(opts Options) *Generator {
	if opts.OutputPath == "" {
		opts.OutputPath = "README.md"
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Generator{
		templatesDir: opts.TemplatesDir,
		outputPath:   opts.OutputPath,
		logger:       opts.Logger.With("generator", "readme"),
	}
}

// Name identifica el artefacto.
func (g *Generator) Name() string {
	return "readme"
}

// Generate renderiza el template y escribe el README. El filtro monospace
// respeta metadata.style.useMonospaceFont: cuando esta apagado el filtro
// es identidad, igual que apagarlo en el perfil original.
func (g *Generator) Generate(ctx context.Context, profile *domain.Profile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, err := g.load(profile)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	data := templateData(profile)
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render readme template")
	}

	if dir := filepath.Dir(g.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "failed to create output dir %s", dir)
		}
	}
	if err := os.WriteFile(g.outputPath, []byte(buf.String()), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", g.outputPath)
	}

	g.logger.Info("readme generated", "path", g.outputPath)
	return g.outputPath, nil
}

// load compila el template del directorio configurado, o el embebido si
// no hay directorio o el archivo no existe.
func (g *Generator) load(profile *domain.Profile) (*template.Template, error) {
	funcs := template.FuncMap{
		"monospace": monotext.ConvertIf(profile.UseMonospace()),
		"lookup":    lookupPath,
	}

	if g.templatesDir != "" {
		path := filepath.Join(g.templatesDir, templateName)
		if raw, err := os.ReadFile(path); err == nil {
			tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(raw))
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse template %s", path)
			}
			return tmpl, nil
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read template %s", path)
		}
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(defaultTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse builtin readme template")
	}
	return tmpl, nil
}

// readmeData es el contexto de render: accesores tipados para lo comun y
// el documento crudo bajo Profile para templates que quieran mas.
type readmeData struct {
	Name       string
	Version    string
	GitHub     string
	Profile    map[string]any
	Experience []any
	Projects   []any
}

func templateData(profile *domain.Profile) readmeData {
	doc := profile.Document()
	return readmeData{
		Name:       profile.Name(),
		Version:    profile.Version(),
		GitHub:     profile.GitHub(),
		Profile:    doc,
		Experience: listSection(doc, "experience"),
		Projects:   listSection(doc, "projects"),
	}
}

func listSection(doc map[string]any, key string) []any {
	items, _ := doc[key].([]any)
	return items
}

// lookupPath navega el documento por una ruta con puntos y retorna "" si
// cualquier segmento falta. Pensado para {{ with lookup ... }}.
func lookupPath(doc map[string]any, path string) string {
	current := any(doc)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}
	s, _ := current.(string)
	return s
}
