package cv

import (
	"strings"

	"profilex/internal/core/domain"
)

// latexReplacer escapa los caracteres especiales de LaTeX. La barra
// invertida va primero en la lista pero strings.Replacer no re-escanea lo
// reemplazado, asi que el orden no introduce dobles escapes.
var latexReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\^{}`,
)

// latexEscape escapa texto del perfil para interpolarlo en LaTeX.
func latexEscape(text string) string {
	return latexReplacer.Replace(text)
}

// cvData es el contexto de render de los templates del CV.
type cvData struct {
	Name       string
	Title      string
	About      string
	Email      string
	GitHub     string
	Version    string
	Experience []map[string]any
	Education  []map[string]any
	Projects   []map[string]any
	Skills     map[string][]string
}

func templateData(profile *domain.Profile) cvData {
	doc := profile.Document()
	return cvData{
		Name:       profile.Name(),
		Title:      stringAt(doc, "profile", "title"),
		About:      stringAt(doc, "profile", "about"),
		Email:      stringAt(doc, "profile", "contact", "email"),
		GitHub:     profile.GitHub(),
		Version:    profile.Version(),
		Experience: mapList(doc, "experience"),
		Education:  mapList(doc, "education"),
		Projects:   mapList(doc, "projects"),
		Skills:     skillCategories(doc),
	}
}

func stringAt(doc map[string]any, path ...string) string {
	current := any(doc)
	for _, key := range path {
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

func mapList(doc map[string]any, key string) []map[string]any {
	raw, _ := doc[key].([]any)
	items := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// skillCategories acepta skills como objeto de categorias o como lista
// plana; la lista plana se agrupa bajo la categoria "skills".
func skillCategories(doc map[string]any) map[string][]string {
	switch raw := doc["skills"].(type) {
	case map[string]any:
		out := make(map[string][]string, len(raw))
		for category, items := range raw {
			out[category] = stringList(items)
		}
		return out
	case []any:
		return map[string][]string{"skills": stringList(raw)}
	default:
		return nil
	}
}

func stringList(raw any) []string {
	items, _ := raw.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Field lee una clave string de una entrada de lista ya escapada para
// LaTeX. Es el helper que usan los templates embebidos.
func Field(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return latexEscape(s)
}
