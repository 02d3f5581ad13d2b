// Package validators contains structural validation for profile documents.
// La validacion retorna la lista completa de problemas encontrados, no solo
// el primero, para que el usuario corrija todo en una pasada.
package validators

import (
	"fmt"
	"strings"

	"profilex/internal/core/domain"
)

// StructuralValidator verifica la forma del documento de perfil: campos
// requeridos presentes y secciones con el tipo esperado.
type StructuralValidator struct{}

// NewStructuralValidator crea el validador.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{}
}

// Validate retorna los problemas estructurales del perfil. Un slice vacio
// significa perfil valido.
func (v *StructuralValidator) Validate(profile *domain.Profile) []string {
	var problems []string

	doc := profile.Document()

	prof, ok := section(doc, "profile")
	if !ok {
		problems = append(problems, "missing required section: profile")
	} else {
		if name, _ := prof["name"].(string); strings.TrimSpace(name) == "" {
			problems = append(problems, "profile.name is required and must be a non-empty string")
		}
		if contact, present := prof["contact"]; present {
			if _, ok := contact.(map[string]any); !ok {
				problems = append(problems, "profile.contact must be an object")
			}
		}
	}

	if meta, present := doc["metadata"]; present {
		m, ok := meta.(map[string]any)
		if !ok {
			problems = append(problems, "metadata must be an object")
		} else if version, present := m["version"]; present {
			if s, ok := version.(string); !ok || strings.TrimSpace(s) == "" {
				problems = append(problems, "metadata.version must be a non-empty string")
			}
		}
	}

	problems = append(problems, v.validateIntegrations(doc)...)
	problems = append(problems, v.validateLists(doc)...)

	return problems
}

// validateIntegrations verifica que cada entrada bajo integrations sea un
// objeto. Una entrada mal formada no es fatal para la ejecucion (se trata
// como deshabilitada) pero si es un problema de validacion.
func (v *StructuralValidator) validateIntegrations(doc map[string]any) []string {
	raw, present := doc["integrations"]
	if !present {
		return nil
	}

	integrations, ok := raw.(map[string]any)
	if !ok {
		return []string{"integrations must be an object keyed by platform name"}
	}

	var problems []string
	for name, entry := range integrations {
		cfg, ok := entry.(map[string]any)
		if !ok {
			problems = append(problems, fmt.Sprintf("integrations.%s must be an object", name))
			continue
		}
		if enabled, present := cfg["enabled"]; present {
			if _, ok := enabled.(bool); !ok {
				problems = append(problems, fmt.Sprintf("integrations.%s.enabled must be a boolean", name))
			}
		}
	}
	return problems
}

// validateLists verifica las secciones de lista del perfil (experience,
// education, skills, projects) cuando estan presentes.
func (v *StructuralValidator) validateLists(doc map[string]any) []string {
	var problems []string
	for _, key := range []string{"experience", "education", "projects"} {
		raw, present := doc[key]
		if !present {
			continue
		}
		items, ok := raw.([]any)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s must be a list", key))
			continue
		}
		for idx, item := range items {
			if _, ok := item.(map[string]any); !ok {
				problems = append(problems, fmt.Sprintf("%s[%d] must be an object", key, idx))
			}
		}
	}

	if raw, present := doc["skills"]; present {
		switch raw.(type) {
		case []any, map[string]any:
		default:
			problems = append(problems, "skills must be a list or an object of categories")
		}
	}

	return problems
}

func section(doc map[string]any, key string) (map[string]any, bool) {
	raw, present := doc[key]
	if !present {
		return nil, false
	}
	m, ok := raw.(map[string]any)
	return m, ok
}
