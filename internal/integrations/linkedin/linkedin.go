// Package linkedin implements the LinkedIn integration. It posts a profile
// update announcement via the Share API when the profile changes.
//
// LinkedIn's official API does not allow editing profile sections
// (experience, skills) programmatically; this adapter can only create
// posts announcing the update.
//
// Setup:
//  1. Export LINKEDIN_ACCESS_TOKEN (OAuth token with w_member_social scope).
//  2. Enable in the profile: integrations.linkedin.enabled = true.
//  3. Set postOnUpdate: true to opt in to posting on profile changes.
//
// Dry-run mode: cuando el token es el literal "dry-run" el adapter simula
// la publicacion sin tocar la red y retorna exito. Es un modo documentado
// para probar el orquestador sin acceso a LinkedIn.
package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"profilex/internal/core/domain"
	"profilex/internal/platform/httpclient"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/registry"
)

const (
	platformName = "linkedin"

	// TokenEnv es la variable de entorno con el access token. Solo este
	// adapter la lee; el orquestador nunca toca credenciales.
	TokenEnv = "LINKEDIN_ACCESS_TOKEN"

	// DryRunToken es el valor centinela que activa el modo simulacion.
	DryRunToken = "dry-run"

	shareAPIURL = "https://api.linkedin.com/v2/ugcPosts"
)

// defaultTemplate es el cuerpo de post por defecto cuando el perfil no
// configura postTemplate.
const defaultTemplate = "🎉 ¡Acabo de actualizar mi perfil profesional!\n\n" +
	"He actualizado mi información, proyectos y habilidades. " +
	"Visita {github_url} para ver mis últimos trabajos y experiencia.\n\n" +
	"#OpenToWork #SoftwareEngineering #AI #WebDevelopment"

// Integration publica anuncios de actualizacion de perfil en LinkedIn.
// Una instancia vive exactamente un run del orquestador.
type Integration struct {
	cfg     domain.IntegrationConfig
	profile *domain.Profile
	client  *httpclient.Client
	logger  logx.Logger

	// lookupEnv permite inyectar el entorno en tests
	lookupEnv func(string) string
}

// New construye el adapter para un run.
func New(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) *Integration {
	return &Integration{
		cfg:     cfg,
		profile: profile,
		client: httpclient.New(httpclient.Config{
			Timeout:    cfg.Timeout,
			MaxRetries: 2,
		}, logger),
		logger:    logger.With("integration", platformName),
		lookupEnv: os.Getenv,
	}
}

// Name retorna el identificador estable de la plataforma.
func (i *Integration) Name() string {
	return platformName
}

// IsEnabled deriva de config.enabled. Puro, sin efectos.
func (i *Integration) IsEnabled() bool {
	return i.cfg.Enabled
}

// ValidateConfig verifica las precondiciones: token presente en el entorno
// y opt-in postOnUpdate activo. Idempotente, sin efectos.
func (i *Integration) ValidateConfig() bool {
	if strings.TrimSpace(i.lookupEnv(TokenEnv)) == "" {
		return false
	}
	return registry.GetBoolConfig(i.cfg.Custom, "postOnUpdate", false)
}

// Execute publica el anuncio. Precondiciones fallidas retornan un
// resultado fallido con el motivo, nunca un panic: el que llama no
// necesita distinguir "precondicion" de "fault" por tipo.
func (i *Integration) Execute(ctx context.Context) domain.ExecutionResult {
	if !i.IsEnabled() {
		return domain.NewFailure(platformName, "integration is disabled in config")
	}

	token := strings.TrimSpace(i.lookupEnv(TokenEnv))
	if token == "" {
		return domain.NewFailure(platformName, fmt.Sprintf("missing %s in environment", TokenEnv))
	}
	if !registry.GetBoolConfig(i.cfg.Custom, "postOnUpdate", false) {
		return domain.NewFailure(platformName, "postOnUpdate is disabled in config")
	}

	content := i.buildPost()

	if token == DryRunToken {
		i.logger.Info("dry-run: would post to linkedin", "content_preview", preview(content, 100))
		return domain.NewSuccess(platformName, "post simulated successfully (dry-run mode)").
			WithDetails(map[string]any{"post_content": content})
	}

	return i.publishTo(ctx, shareAPIURL, token, content)
}

// buildPost compone el cuerpo del post desde postTemplate (o el template
// por defecto) con sustitucion literal de placeholders. Los placeholders
// son un conjunto fijo: un template hostil solo controla su propio texto.
func (i *Integration) buildPost() string {
	github := i.profile.GitHub()
	githubURL := "my GitHub"
	if github != "" {
		githubURL = "https://github.com/" + github
	}

	tmpl := registry.GetStringConfig(i.cfg.Custom, "postTemplate", defaultTemplate)

	return strings.NewReplacer(
		"{name}", i.profile.Name(),
		"{version}", i.profile.Version(),
		"{github}", github,
		"{github_url}", githubURL,
	).Replace(tmpl)
}

// publishTo llama al Share API (ugcPosts). Requiere authorURN en la
// configuracion (urn:li:person:xxxx); sin el no se puede construir el
// payload y se reporta la precondicion fallida.
func (i *Integration) publishTo(ctx context.Context, url, token, content string) domain.ExecutionResult {
	authorURN := registry.GetStringConfig(i.cfg.Custom, "authorURN", "")
	if authorURN == "" {
		return domain.NewFailure(platformName, "missing authorURN in config (urn:li:person:...)")
	}

	payload := map[string]any{
		"author":         authorURN,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary":    map[string]any{"text": content},
				"shareMediaCategory": "NONE",
			},
		},
		"visibility": map[string]any{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.NewFailure(platformName, fmt.Sprintf("encoding share payload: %v", err))
	}

	resp, err := i.client.PostJSON(ctx, url, body, map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Restli-Protocol-Version": "2.0.0",
	})
	if err != nil {
		return domain.NewFailure(platformName, fmt.Sprintf("share API request failed: %v", err))
	}

	respBody, readErr := httpclient.ReadBody(resp)

	if resp.StatusCode != http.StatusCreated {
		return domain.NewFailure(platformName, fmt.Sprintf("share API returned HTTP %d", resp.StatusCode)).
			WithDetails(map[string]any{"response": string(respBody)})
	}

	details := map[string]any{"post_content": content}
	if readErr == nil {
		var created struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(respBody, &created) == nil && created.ID != "" {
			details["post_id"] = created.ID
		}
	}

	i.logger.Info("posted profile update to linkedin")
	return domain.NewSuccess(platformName, "post published successfully").WithDetails(details)
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
