// internal/platform/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Config agrupa toda la configuracion de profilex. Precedencia:
// defaults -> ENV (PROFILEX_*) -> flags.
type Config struct {
	// IO
	ProfilePath string
	OutputDir   string
	ReadmePath  string
	ReportsDir  string

	// Templates
	ReadmeTemplatesDir string
	CVTemplatesDir     string

	// Ejecucion
	Workers  int
	TimeoutS int // segundos, timeout por integracion (0 = default)

	// Outputs
	TableDisabled bool
	PlainOutput   bool
	CompilePDF    bool

	PrintVersion bool
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		ProfilePath: "profile.json",
		OutputDir:   "assets/generated",
		ReadmePath:  "README.md",
		ReportsDir:  "assets/reports",

		ReadmeTemplatesDir: "templates/readme",
		CVTemplatesDir:     "templates/cv",

		Workers:  4,
		TimeoutS: 30,

		TableDisabled: false,
		CompilePDF:    true,
	}
}

// Load inicializa la configuración: ENV -> defaults, luego FLAGS (flags
// tienen prioridad). args son los argumentos despues del subcomando.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	loadFromEnv(&cfg)

	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}

	normalize(&cfg)
	return cfg, nil
}

// loadFromEnv carga configuración desde variables de entorno.
func loadFromEnv(cfg *Config) {
	lookup := func(key string, target *string) {
		if v := strings.TrimSpace(getenv("PROFILEX_" + key)); v != "" {
			*target = v
		}
	}

	lookup("PROFILE", &cfg.ProfilePath)
	lookup("OUTPUT_DIR", &cfg.OutputDir)
	lookup("README_PATH", &cfg.ReadmePath)
	lookup("REPORTS_DIR", &cfg.ReportsDir)
	lookup("README_TEMPLATES", &cfg.ReadmeTemplatesDir)
	lookup("CV_TEMPLATES", &cfg.CVTemplatesDir)

	if v := getenv("PROFILEX_WORKERS"); v != "" {
		cfg.Workers = parseInt(v, cfg.Workers)
	}
	if v := getenv("PROFILEX_TIMEOUT"); v != "" {
		cfg.TimeoutS = parseInt(v, cfg.TimeoutS)
	}
	if v := getenv("PROFILEX_NO_TABLE"); v != "" {
		cfg.TableDisabled = parseBool(v)
	}
	if v := getenv("PROFILEX_PLAIN"); v != "" {
		cfg.PlainOutput = parseBool(v)
	}
	if v := getenv("PROFILEX_COMPILE_PDF"); v != "" {
		cfg.CompilePDF = parseBool(v)
	}
}

// loadFromFlags parsea los flags del subcomando.
func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("profilex", pflag.ContinueOnError)

	fs.StringVar(&cfg.ProfilePath, "profile", cfg.ProfilePath, "Ruta del archivo de perfil (JSON o YAML)")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directorio de salida para artefactos generados")
	fs.StringVar(&cfg.ReadmePath, "readme", cfg.ReadmePath, "Ruta del README generado")
	fs.StringVar(&cfg.ReportsDir, "reports", cfg.ReportsDir, "Directorio de reportes de ejecucion")
	fs.StringVar(&cfg.ReadmeTemplatesDir, "readme-templates", cfg.ReadmeTemplatesDir, "Directorio de templates del README")
	fs.StringVar(&cfg.CVTemplatesDir, "cv-templates", cfg.CVTemplatesDir, "Directorio de templates del CV")

	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrencia máxima de integraciones")
	fs.IntVar(&cfg.TimeoutS, "timeout", cfg.TimeoutS, "Timeout por integracion en segundos (0 = default)")

	fs.BoolVar(&cfg.TableDisabled, "no-table", cfg.TableDisabled, "Desactivar salida en tabla (JSON siempre se genera)")
	fs.BoolVar(&cfg.PlainOutput, "plain", cfg.PlainOutput, "Tabla plana sin color, apta para logs de CI")
	fs.BoolVar(&cfg.CompilePDF, "pdf", cfg.CompilePDF, "Compilar el CV a PDF con pdflatex")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")

	return fs.Parse(args)
}

// IntegrationOverride son los ajustes por integracion tomados del entorno.
// Punteros nil significan "sin override".
type IntegrationOverride struct {
	Enabled *bool
	Timeout *time.Duration
}

// IntegrationOverrides lee los overrides por integracion del entorno.
// Formato: PROFILEX_INTEGRATIONS_LINKEDIN_ENABLED=true
//          PROFILEX_INTEGRATIONS_LINKEDIN_TIMEOUT=60   (segundos)
func IntegrationOverrides() map[string]IntegrationOverride {
	const prefix = "PROFILEX_INTEGRATIONS_"

	out := make(map[string]IntegrationOverride)
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}
		rest := strings.TrimPrefix(key, prefix)

		var name, field string
		switch {
		case strings.HasSuffix(rest, "_ENABLED"):
			name, field = strings.TrimSuffix(rest, "_ENABLED"), "enabled"
		case strings.HasSuffix(rest, "_TIMEOUT"):
			name, field = strings.TrimSuffix(rest, "_TIMEOUT"), "timeout"
		default:
			continue
		}
		if name == "" {
			continue
		}
		name = strings.ToLower(name)

		ovr := out[name]
		switch field {
		case "enabled":
			b := parseBool(value)
			ovr.Enabled = &b
		case "timeout":
			if secs := parseInt(value, -1); secs >= 0 {
				d := time.Duration(secs) * time.Second
				ovr.Timeout = &d
			}
		}
		out[name] = ovr
	}
	return out
}

func normalize(c *Config) {
	c.ProfilePath = strings.TrimSpace(c.ProfilePath)
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.TimeoutS < 0 {
		c.TimeoutS = 0
	}
}

func getenv(key string) string {
	return os.Getenv(key)
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
