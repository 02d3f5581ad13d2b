// internal/core/domain/profile.go
package domain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"profilex/internal/platform/errors"
)

// Profile representa el registro estructurado del perfil (profile.json o
// profile.yaml). El documento es de forma arbitraria: el core solo conoce
// el sub-mapa `integrations` y unos pocos campos transversales que los
// adapters pueden leer (nombre, version, handle de github). Todo lo demas
// pertenece a los generadores.
type Profile struct {
	doc map[string]any
}

// IntegrationConfig es la configuracion por plataforma dentro del perfil.
// Siempre soporta `enabled` (default false); el resto de claves son
// especificas de cada adapter y viajan en Custom sin interpretar.
type IntegrationConfig struct {
	Enabled bool
	Timeout time.Duration
	Custom  map[string]any
}

// DefaultIntegrationTimeout es el presupuesto de ejecucion por adapter
// cuando el perfil no especifica `timeout`.
const DefaultIntegrationTimeout = 30 * time.Second

// LoadProfile carga el perfil desde disco. El formato se decide por
// extension: .yaml/.yml via yaml.v3, cualquier otra cosa como JSON.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrProfileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "reading profile %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseProfileYAML(data)
	default:
		return ParseProfileJSON(data)
	}
}

// ParseProfileJSON parsea un perfil en formato JSON.
func ParseProfileJSON(data []byte) (*Profile, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrProfileInvalid, err.Error())
	}
	return &Profile{doc: doc}, nil
}

// ParseProfileYAML parsea un perfil en formato YAML.
func ParseProfileYAML(data []byte) (*Profile, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrProfileInvalid, err.Error())
	}
	return &Profile{doc: doc}, nil
}

// NewProfile construye un perfil desde un documento ya parseado (tests,
// embedding hosts).
func NewProfile(doc map[string]any) *Profile {
	if doc == nil {
		doc = map[string]any{}
	}
	return &Profile{doc: doc}
}

// Document retorna el documento completo. Los adapters lo reciben por
// referencia y deben tratarlo como read-only.
func (p *Profile) Document() map[string]any {
	return p.doc
}

// Name retorna el nombre visible del perfil (profile.name).
func (p *Profile) Name() string {
	return p.lookupString("profile", "name")
}

// Version retorna la version del perfil (metadata.version).
func (p *Profile) Version() string {
	return p.lookupString("metadata", "version")
}

// GitHub retorna el handle publico de github (profile.contact.github).
func (p *Profile) GitHub() string {
	return p.lookupString("profile", "contact", "github")
}

// UseMonospace indica si los generadores aplican la fuente monospace
// (metadata.style.useMonospaceFont, default true).
func (p *Profile) UseMonospace() bool {
	v, ok := p.lookup("metadata", "style", "useMonospaceFont")
	if !ok {
		return true
	}
	b, ok := v.(bool)
	if !ok {
		return true
	}
	return b
}

// Integrations retorna el sub-mapa `integrations` como configuraciones
// tipadas. Un mapa vacio (clave ausente, vacia o malformada) es un
// resultado normal: "nada configurado" es valido.
func (p *Profile) Integrations() map[string]IntegrationConfig {
	out := make(map[string]IntegrationConfig)

	raw, ok := p.lookup("integrations")
	if !ok {
		return out
	}
	entries, ok := raw.(map[string]any)
	if !ok {
		return out
	}

	for name, v := range entries {
		cfg := IntegrationConfig{
			Timeout: DefaultIntegrationTimeout,
			Custom:  make(map[string]any),
		}
		settings, ok := v.(map[string]any)
		if !ok {
			// entrada malformada: queda deshabilitada pero visible
			out[name] = cfg
			continue
		}
		for key, val := range settings {
			switch key {
			case "enabled":
				if b, ok := val.(bool); ok {
					cfg.Enabled = b
				}
			case "timeout":
				if d := parseTimeout(val); d > 0 {
					cfg.Timeout = d
				}
			default:
				cfg.Custom[key] = val
			}
		}
		out[name] = cfg
	}
	return out
}

// OverrideIntegration ajusta enabled y/o timeout de una entrada de
// `integrations`, creando la entrada si no existe. Es el punto de entrada
// de los overrides por entorno (PROFILEX_INTEGRATIONS_<NAME>_*); los
// punteros nil dejan el valor del perfil intacto.
func (p *Profile) OverrideIntegration(name string, enabled *bool, timeout *time.Duration) {
	if name == "" || (enabled == nil && timeout == nil) {
		return
	}

	entries, ok := p.doc["integrations"].(map[string]any)
	if !ok {
		entries = make(map[string]any)
		p.doc["integrations"] = entries
	}
	entry, ok := entries[name].(map[string]any)
	if !ok {
		entry = make(map[string]any)
		entries[name] = entry
	}

	if enabled != nil {
		entry["enabled"] = *enabled
	}
	if timeout != nil {
		entry["timeout"] = timeout.String()
	}
}

func parseTimeout(v any) time.Duration {
	switch t := v.(type) {
	case string:
		if d, err := time.ParseDuration(t); err == nil {
			return d
		}
	case float64:
		return time.Duration(t) * time.Second
	case int:
		return time.Duration(t) * time.Second
	}
	return 0
}

// lookup navega el documento por claves anidadas.
func (p *Profile) lookup(keys ...string) (any, bool) {
	var cur any = p.doc
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (p *Profile) lookupString(keys ...string) string {
	v, ok := p.lookup(keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
