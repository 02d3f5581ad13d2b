// internal/integrations/linkedin/linkedin_test.go
package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profilex/internal/core/domain"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/registry"
	"profilex/internal/testutil"
)

func testProfile() *domain.Profile {
	return domain.NewProfile(map[string]any{
		"profile": map[string]any{
			"name": "Ada Lovelace",
			"contact": map[string]any{
				"github": "ada",
			},
		},
		"metadata": map[string]any{
			"version": "2.1.0",
		},
	})
}

func testIntegration(t *testing.T, cfg domain.IntegrationConfig, env map[string]string) *Integration {
	t.Helper()
	i := New(cfg, testProfile(), logx.NewSilent())
	i.lookupEnv = func(key string) string { return env[key] }
	return i
}

func enabledConfig(custom map[string]any) domain.IntegrationConfig {
	if custom == nil {
		custom = map[string]any{}
	}
	if _, ok := custom["postOnUpdate"]; !ok {
		custom["postOnUpdate"] = true
	}
	return domain.IntegrationConfig{
		Enabled: true,
		Timeout: 5 * time.Second,
		Custom:  custom,
	}
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name   string
		env    map[string]string
		custom map[string]any
		want   bool
	}{
		{
			name:   "token and opt-in present",
			env:    map[string]string{TokenEnv: "tok"},
			custom: map[string]any{"postOnUpdate": true},
			want:   true,
		},
		{
			name:   "missing token",
			env:    map[string]string{},
			custom: map[string]any{"postOnUpdate": true},
			want:   false,
		},
		{
			name:   "opt-out",
			env:    map[string]string{TokenEnv: "tok"},
			custom: map[string]any{"postOnUpdate": false},
			want:   false,
		},
		{
			name:   "opt-in absent defaults to false",
			env:    map[string]string{TokenEnv: "tok"},
			custom: map[string]any{},
			want:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i := testIntegration(t, domain.IntegrationConfig{Enabled: true, Custom: tc.custom}, tc.env)
			testutil.AssertEqual(t, i.ValidateConfig(), tc.want, tc.name)
		})
	}
}

func TestExecute_Disabled(t *testing.T) {
	i := testIntegration(t, domain.IntegrationConfig{Enabled: false}, nil)

	res := i.Execute(context.Background())

	testutil.AssertFalse(t, res.Success, "disabled adapter fails")
	testutil.AssertContains(t, res.Message, "disabled", "reason names enablement")
}

func TestExecute_MissingToken(t *testing.T) {
	i := testIntegration(t, enabledConfig(nil), map[string]string{})

	res := i.Execute(context.Background())

	testutil.AssertFalse(t, res.Success, "missing credential fails")
	testutil.AssertContains(t, res.Message, TokenEnv, "reason names the env var")
}

func TestExecute_PostOnUpdateOff(t *testing.T) {
	i := testIntegration(t,
		domain.IntegrationConfig{Enabled: true, Custom: map[string]any{"postOnUpdate": false}},
		map[string]string{TokenEnv: "tok"},
	)

	res := i.Execute(context.Background())

	testutil.AssertFalse(t, res.Success, "opt-out fails")
	testutil.AssertContains(t, res.Message, "postOnUpdate", "reason names the flag")
}

func TestExecute_DryRun(t *testing.T) {
	i := testIntegration(t, enabledConfig(nil), map[string]string{TokenEnv: DryRunToken})

	res := i.Execute(context.Background())

	testutil.AssertTrue(t, res.Success, "dry-run simulates success")
	testutil.AssertContains(t, res.Message, "dry-run", "message names the mode")
	testutil.AssertEqual(t, res.Platform, "linkedin", "platform name")

	content, ok := res.Details["post_content"].(string)
	testutil.AssertTrue(t, ok, "simulated post content in details")
	testutil.AssertContains(t, content, "https://github.com/ada", "github url resolved in default template")
}

func TestBuildPost_CustomTemplate(t *testing.T) {
	i := testIntegration(t, enabledConfig(map[string]any{
		"postTemplate": "Release {version} by {name} — see {github_url} ({github})",
	}), map[string]string{TokenEnv: DryRunToken})

	testutil.AssertEqual(t, i.buildPost(),
		"Release 2.1.0 by Ada Lovelace — see https://github.com/ada (ada)",
		"literal placeholder substitution")
}

func TestBuildPost_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	i := testIntegration(t, enabledConfig(map[string]any{
		"postTemplate": "hello {nope} {name}",
	}), map[string]string{TokenEnv: DryRunToken})

	testutil.AssertEqual(t, i.buildPost(), "hello {nope} Ada Lovelace",
		"only the fixed placeholder set is substituted")
}

func TestPublish_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer real-token" {
			t.Errorf("authorization = %q", auth)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["author"] != "urn:li:person:42" {
			t.Errorf("author = %v", payload["author"])
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"urn:li:share:99"}`))
	}))
	defer srv.Close()

	i := testIntegration(t, enabledConfig(map[string]any{
		"authorURN": "urn:li:person:42",
	}), map[string]string{TokenEnv: "real-token"})

	res := i.publishTo(context.Background(), srv.URL, "real-token", "hello")

	testutil.AssertTrue(t, res.Success, "201 is success")
	testutil.AssertEqual(t, res.Details["post_id"], "urn:li:share:99", "post id extracted")
}

func TestPublish_MissingAuthorURN(t *testing.T) {
	i := testIntegration(t, enabledConfig(nil), map[string]string{TokenEnv: "real-token"})

	res := i.publishTo(context.Background(), "http://unused", "real-token", "hello")

	testutil.AssertFalse(t, res.Success, "missing authorURN fails")
	testutil.AssertContains(t, res.Message, "authorURN", "reason names the key")
}

func TestPublish_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"duplicate"}`))
	}))
	defer srv.Close()

	i := testIntegration(t, enabledConfig(map[string]any{
		"authorURN": "urn:li:person:42",
	}), map[string]string{TokenEnv: "real-token"})

	res := i.publishTo(context.Background(), srv.URL, "real-token", "hello")

	testutil.AssertFalse(t, res.Success, "non-201 is failure")
	testutil.AssertContains(t, res.Message, "422", "status code in reason")
}

func TestAutoRegistration(t *testing.T) {
	testutil.AssertTrue(t, registry.Global().IsRegistered(platformName),
		"importing the package registers linkedin")

	meta, ok := registry.Global().Metadata(platformName)
	testutil.AssertTrue(t, ok, "metadata present")
	testutil.AssertEqual(t, meta.CredentialEnv, TokenEnv, "credential env advertised")
	testutil.AssertTrue(t, meta.RequiresAuth, "requires auth")
}

func TestFactoryProducesWorkingAdapter(t *testing.T) {
	fac, ok := registry.Global().Resolve(platformName)
	testutil.AssertTrue(t, ok, "factory resolvable")

	integ, err := fac(enabledConfig(nil), testProfile(), logx.NewSilent())
	testutil.AssertNoError(t, err, "factory")
	testutil.AssertEqual(t, integ.Name(), "linkedin", "name")
	testutil.AssertTrue(t, integ.IsEnabled(), "enabled from config")
}
