// internal/platform/registry/integration_registry_test.go
package registry

import (
	"testing"

	"profilex/internal/core/domain"
	"profilex/internal/core/ports"
	"profilex/internal/platform/logx"
	"profilex/internal/testutil"
)

func mockFactory(name string) ports.Factory {
	return func(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) (ports.Integration, error) {
		return &testutil.MockIntegration{PlatformName: name, Enabled: cfg.Enabled, ConfigValid: true}, nil
	}
}

func TestIntegrationRegistry_Register(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	reg.Register("linkedin", mockFactory("linkedin"), ports.IntegrationMetadata{Name: "linkedin"})

	testutil.AssertTrue(t, reg.IsRegistered("linkedin"), "linkedin should be registered")

	_, ok := reg.Resolve("linkedin")
	testutil.AssertTrue(t, ok, "resolve should find linkedin")
}

func TestIntegrationRegistry_Resolve_Absent(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	f, ok := reg.Resolve("unknown-platform")
	testutil.AssertFalse(t, ok, "absence is a normal outcome, ok must be false")
	testutil.AssertNil(t, f, "factory for unknown name should be nil")
}

func TestIntegrationRegistry_LastWins(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	first := func(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) (ports.Integration, error) {
		return &testutil.MockIntegration{PlatformName: "first"}, nil
	}
	second := func(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) (ports.Integration, error) {
		return &testutil.MockIntegration{PlatformName: "second"}, nil
	}

	reg.Register("linkedin", first, ports.IntegrationMetadata{Name: "linkedin"})
	reg.Register("linkedin", second, ports.IntegrationMetadata{Name: "linkedin"})

	f, ok := reg.Resolve("linkedin")
	testutil.AssertTrue(t, ok, "linkedin should resolve")

	integ, err := f(domain.IntegrationConfig{}, domain.NewProfile(nil), logx.NewSilent())
	testutil.AssertNoError(t, err, "factory should build")
	testutil.AssertEqual(t, integ.Name(), "second", "last registration must win")
}

func TestIntegrationRegistry_Names_StableNoDuplicates(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	reg.Register("linkedin", mockFactory("linkedin"), ports.IntegrationMetadata{})
	reg.Register("mastodon", mockFactory("mastodon"), ports.IntegrationMetadata{})
	reg.Register("linkedin", mockFactory("linkedin"), ports.IntegrationMetadata{}) // re-registro

	names := reg.Names()
	testutil.AssertEqual(t, len(names), 2, "Names must not contain duplicates")
	testutil.AssertEqual(t, names[0], "linkedin", "first-seen position preserved")
	testutil.AssertEqual(t, names[1], "mastodon", "registration order preserved")
}

func TestIntegrationRegistry_InvalidRegistration(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	reg.Register("", mockFactory("x"), ports.IntegrationMetadata{})
	reg.Register("nilfactory", nil, ports.IntegrationMetadata{})

	testutil.AssertEqual(t, len(reg.Names()), 0, "invalid registrations must be ignored")
}

func TestIntegrationRegistry_Metadata(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())

	reg.Register("linkedin", mockFactory("linkedin"), ports.IntegrationMetadata{
		Name:          "linkedin",
		RequiresAuth:  true,
		CredentialEnv: "LINKEDIN_ACCESS_TOKEN",
	})

	meta, ok := reg.Metadata("linkedin")
	testutil.AssertTrue(t, ok, "metadata should exist")
	testutil.AssertTrue(t, meta.RequiresAuth, "metadata should round-trip")
	testutil.AssertEqual(t, meta.CredentialEnv, "LINKEDIN_ACCESS_TOKEN", "credential env recorded")

	_, ok = reg.Metadata("absent")
	testutil.AssertFalse(t, ok, "metadata for absent name should miss")
}

func TestIntegrationRegistry_Clear(t *testing.T) {
	reg := NewIntegrationRegistry(logx.NewSilent())
	reg.Register("linkedin", mockFactory("linkedin"), ports.IntegrationMetadata{})

	reg.Clear()

	testutil.AssertFalse(t, reg.IsRegistered("linkedin"), "clear should drop bindings")
	testutil.AssertEqual(t, len(reg.Names()), 0, "clear should drop order")
}

func TestGlobal_Singleton(t *testing.T) {
	if Global() != Global() {
		t.Error("Global must return the same instance")
	}
}
