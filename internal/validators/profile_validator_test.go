// internal/validators/profile_validator_test.go
package validators

import (
	"testing"

	"profilex/internal/core/domain"
	"profilex/internal/testutil"
)

func validDoc() map[string]any {
	return map[string]any{
		"profile": map[string]any{
			"name":    "Ada Lovelace",
			"contact": map[string]any{"github": "ada"},
		},
		"metadata": map[string]any{"version": "1.0.0"},
		"integrations": map[string]any{
			"linkedin": map[string]any{"enabled": true},
		},
		"experience": []any{
			map[string]any{"company": "Analytical Engines Ltd"},
		},
		"skills": map[string]any{
			"languages": []any{"Go", "Python"},
		},
	}
}

func TestValidate_ValidProfile(t *testing.T) {
	problems := NewStructuralValidator().Validate(domain.NewProfile(validDoc()))
	testutil.AssertEqual(t, len(problems), 0, "valid profile has no problems")
}

func TestValidate_MissingProfileSection(t *testing.T) {
	doc := validDoc()
	delete(doc, "profile")

	problems := NewStructuralValidator().Validate(domain.NewProfile(doc))

	testutil.AssertEqual(t, len(problems), 1, "one problem")
	testutil.AssertContains(t, problems[0], "profile", "names the section")
}

func TestValidate_EmptyName(t *testing.T) {
	doc := validDoc()
	doc["profile"].(map[string]any)["name"] = "   "

	problems := NewStructuralValidator().Validate(domain.NewProfile(doc))

	testutil.AssertEqual(t, len(problems), 1, "one problem")
	testutil.AssertContains(t, problems[0], "profile.name", "names the field")
}

func TestValidate_BadIntegrationEntries(t *testing.T) {
	doc := validDoc()
	doc["integrations"] = map[string]any{
		"linkedin": "yes please",
		"github":   map[string]any{"enabled": "true"},
	}

	problems := NewStructuralValidator().Validate(domain.NewProfile(doc))

	testutil.AssertEqual(t, len(problems), 2, "both entries flagged")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	doc := map[string]any{
		"profile":    map[string]any{},
		"metadata":   map[string]any{"version": 2},
		"experience": "not a list",
	}

	problems := NewStructuralValidator().Validate(domain.NewProfile(doc))

	testutil.AssertEqual(t, len(problems), 3, "all problems collected in one pass")
}

func TestValidate_ListItemShape(t *testing.T) {
	doc := validDoc()
	doc["projects"] = []any{"just a string"}

	problems := NewStructuralValidator().Validate(domain.NewProfile(doc))

	testutil.AssertEqual(t, len(problems), 1, "one problem")
	testutil.AssertContains(t, problems[0], "projects[0]", "indexes the bad item")
}
