// Package cart implements per-user shopping carts.
package cart

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/krisly/beauty-store/modules/database"
)

// Module wires the cart service to the database plugin.
type Module struct {
	store   *database.Store
	service *Service
	logger  types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module          = (*Module)(nil)
	_ mono.UsePluginModule = (*Module)(nil)
)

// NewModule creates the cart module.
func NewModule(logger types.Logger) *Module {
	return &Module{logger: logger.WithModule("cart")}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cart"
}

// SetPlugin receives the database plugin from the framework.
func (m *Module) SetPlugin(alias string, plugin mono.PluginModule) {
	if alias != database.PluginAlias {
		return
	}
	db, ok := plugin.(*database.PluginModule)
	if !ok {
		m.logger.Error("Invalid plugin type", "alias", alias, "expected", "*database.PluginModule")
		return
	}
	m.store = db.Port()
}

// Start builds the service.
func (m *Module) Start(_ context.Context) error {
	if m.store == nil {
		return fmt.Errorf("required plugin '%s' not registered", database.PluginAlias)
	}
	m.service = NewService(m.store, m.logger)
	m.logger.Info("Cart module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Cart module stopped")
	return nil
}

// Port returns the cart service, or nil before Start.
func (m *Module) Port() CartPort {
	if m.service == nil {
		return nil
	}
	return m.service
}
