// Package review implements product reviews and rating aggregation.
package review

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"

	"github.com/krisly/beauty-store/events"
	"github.com/krisly/beauty-store/modules/database"
)

// Module wires the review service to the database plugin.
type Module struct {
	store    *database.Store
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module             = (*Module)(nil)
	_ mono.UsePluginModule    = (*Module)(nil)
	_ mono.EventEmitterModule = (*Module)(nil)
)

// NewModule creates the review module.
func NewModule(logger types.Logger) *Module {
	return &Module{logger: logger.WithModule("review")}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "review"
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
		events.ReviewCreatedV1.ToBase(),
		events.ReviewDeletedV1.ToBase(),
	}
}

// Start builds the service.
func (m *Module) Start(_ context.Context) error {
	if m.store == nil {
		return fmt.Errorf("required plugin '%s' not registered", database.PluginAlias)
	}
	m.service = NewService(m.store, m.eventBus, m.logger)
	m.logger.Info("Review module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Review module stopped")
	return nil
}

// Port returns the review service, or nil before Start.
func (m *Module) Port() ReviewPort {
	if m.service == nil {
		return nil
	}
	return m.service
}
