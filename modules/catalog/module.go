// Package catalog implements product listing, lookup and management.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/krisly/beauty-store/events"
	"github.com/krisly/beauty-store/modules/database"
)

// Module wires the catalog service to the database plugin.
type Module struct {
	store    *database.Store
	service  *Service
	eventBus mono.EventBus
	seedDemo bool
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.UsePluginModule       = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates the catalog module. When seedDemo is set the demo
// products are inserted on start if the catalog is empty.
func NewModule(seedDemo bool, logger types.Logger) *Module {
	return &Module{
		seedDemo: seedDemo,
		logger:   logger.WithModule("catalog"),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
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

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ProductDeletedV1.ToBase(),
	}
}

// Start builds the service and seeds the demo catalog if requested.
func (m *Module) Start(ctx context.Context) error {
	if m.store == nil {
		return fmt.Errorf("required plugin '%s' not registered", database.PluginAlias)
	}
	m.service = NewService(m.store, m.eventBus, m.logger)

	if m.seedDemo {
		n, err := m.service.Seed(ctx, DemoProducts())
		if err != nil {
			return fmt.Errorf("failed to seed demo products: %w", err)
		}
		if n > 0 {
			m.logger.Info("Seeded demo products", "count", n)
		}
	}

	m.logger.Info("Catalog module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Catalog module stopped")
	return nil
}

// Port returns the catalog service, or nil before Start.
func (m *Module) Port() CatalogPort {
	if m.service == nil {
		return nil
	}
	return m.service
}

// Health reports whether the product table is reachable.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.store == nil || m.service == nil {
		return mono.HealthStatus{Healthy: false, Message: "not started"}
	}
	count, err := NewRepository(m.store.Session(ctx)).Count()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: err.Error()}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"products": count},
	}
}
