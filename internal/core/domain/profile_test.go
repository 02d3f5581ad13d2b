// internal/core/domain/profile_test.go
package domain

import (
	"testing"
	"time"

	"profilex/internal/platform/errors"
)

const sampleJSON = `{
	"metadata": {"version": "2.1.0", "style": {"useMonospaceFont": false}},
	"profile": {
		"name": "Angel Maldonado",
		"contact": {"github": "anmaldo"}
	},
	"integrations": {
		"linkedin": {"enabled": true, "postOnUpdate": true},
		"mastodon": {"enabled": false}
	}
}`

const sampleYAML = `
metadata:
  version: "2.1.0"
profile:
  name: Angel Maldonado
integrations:
  linkedin:
    enabled: true
    timeout: 10s
`

func TestParseProfileJSON(t *testing.T) {
	p, err := ParseProfileJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.Name(); got != "Angel Maldonado" {
		t.Errorf("Name() = %q", got)
	}
	if got := p.Version(); got != "2.1.0" {
		t.Errorf("Version() = %q", got)
	}
	if got := p.GitHub(); got != "anmaldo" {
		t.Errorf("GitHub() = %q", got)
	}
	if p.UseMonospace() {
		t.Error("UseMonospace() should honor explicit false")
	}
}

func TestParseProfileJSON_Invalid(t *testing.T) {
	_, err := ParseProfileJSON([]byte("{not json"))
	if !errors.Is(err, errors.ErrProfileInvalid) {
		t.Errorf("expected ErrProfileInvalid, got %v", err)
	}
}

func TestParseProfileYAML(t *testing.T) {
	p, err := ParseProfileYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfgs := p.Integrations()
	li, ok := cfgs["linkedin"]
	if !ok {
		t.Fatal("linkedin config missing")
	}
	if !li.Enabled {
		t.Error("linkedin should be enabled")
	}
	if li.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", li.Timeout)
	}
}

func TestIntegrations(t *testing.T) {
	p, err := ParseProfileJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfgs := p.Integrations()
	if len(cfgs) != 2 {
		t.Fatalf("expected 2 configs, got %d", len(cfgs))
	}

	li := cfgs["linkedin"]
	if !li.Enabled {
		t.Error("linkedin should be enabled")
	}
	if li.Timeout != DefaultIntegrationTimeout {
		t.Errorf("default timeout expected, got %v", li.Timeout)
	}
	if v, ok := li.Custom["postOnUpdate"].(bool); !ok || !v {
		t.Error("postOnUpdate should land in Custom")
	}
	if _, ok := li.Custom["enabled"]; ok {
		t.Error("enabled should not leak into Custom")
	}

	if cfgs["mastodon"].Enabled {
		t.Error("mastodon should be disabled")
	}
}

func TestIntegrations_AbsentOrMalformed(t *testing.T) {
	p := NewProfile(map[string]any{"profile": map[string]any{"name": "x"}})
	if len(p.Integrations()) != 0 {
		t.Error("absent integrations should yield empty map")
	}

	p = NewProfile(map[string]any{"integrations": "oops"})
	if len(p.Integrations()) != 0 {
		t.Error("non-map integrations should yield empty map")
	}

	// entrada con settings malformados queda deshabilitada
	p = NewProfile(map[string]any{"integrations": map[string]any{"linkedin": 42}})
	cfgs := p.Integrations()
	if cfg, ok := cfgs["linkedin"]; !ok || cfg.Enabled {
		t.Error("malformed entry should be present but disabled")
	}
}

func TestUseMonospace_Default(t *testing.T) {
	p := NewProfile(map[string]any{})
	if !p.UseMonospace() {
		t.Error("UseMonospace should default to true")
	}
}
