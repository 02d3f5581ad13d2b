// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync/atomic"

	"profilex/internal/core/domain"
)

// MockIntegration implementa ports.Integration para tests del registry y
// del orquestador. ExecuteFunc permite simular exitos, fallos de
// precondicion, panics y bloqueos.
type MockIntegration struct {
	PlatformName string
	Enabled      bool
	ConfigValid  bool
	ExecuteFunc  func(ctx context.Context) domain.ExecutionResult

	calls atomic.Int32
}

func (m *MockIntegration) Name() string { return m.PlatformName }

func (m *MockIntegration) IsEnabled() bool { return m.Enabled }

func (m *MockIntegration) ValidateConfig() bool { return m.ConfigValid }

func (m *MockIntegration) Execute(ctx context.Context) domain.ExecutionResult {
	m.calls.Add(1)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx)
	}
	if !m.Enabled {
		return domain.NewFailure(m.PlatformName, "integration disabled in config")
	}
	if !m.ConfigValid {
		return domain.NewFailure(m.PlatformName, "integration misconfigured")
	}
	return domain.NewSuccess(m.PlatformName, "mock executed")
}

// Calls retorna cuantas veces se invoco Execute.
func (m *MockIntegration) Calls() int {
	return int(m.calls.Load())
}
