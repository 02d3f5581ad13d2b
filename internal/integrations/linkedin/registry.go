package linkedin

import (
	"profilex/internal/core/domain"
	"profilex/internal/core/ports"
	"profilex/internal/platform/logx"
	"profilex/internal/platform/registry"
)

// init registra la integracion en el registry global. Importar este
// paquete (aunque sea con blank import) la deja disponible para el
// orquestador.
func init() {
	registry.Global().Register(platformName, factory, ports.IntegrationMetadata{
		Name:          platformName,
		Description:   "Posts a profile update announcement on LinkedIn",
		Version:       "1.0.0",
		RequiresAuth:  true,
		CredentialEnv: TokenEnv,
	})
}

func factory(cfg domain.IntegrationConfig, profile *domain.Profile, logger logx.Logger) (ports.Integration, error) {
	return New(cfg, profile, logger), nil
}
