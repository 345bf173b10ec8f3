// Package database provides the storage plugin shared by every store module.
//
// The plugin is registered under the "db" alias. Consumer modules receive it
// through SetPlugin and keep the *Store returned by Port; the connection is
// opened when the plugin starts, before any consumer module starts.
package database

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// PluginAlias is the alias consumer modules look for in SetPlugin.
const PluginAlias = "db"

// PluginModule owns the database connection and the schema migration.
type PluginModule struct {
	cfg       Config
	store     *Store
	container types.ServiceContainer
	logger    types.Logger
}

// Compile-time interface checks.
var (
	_ mono.PluginModule          = (*PluginModule)(nil)
	_ mono.HealthCheckableModule = (*PluginModule)(nil)
)

// NewPluginModule creates the plugin. No connection is made until Start.
func NewPluginModule(cfg Config, logger types.Logger) *PluginModule {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	return &PluginModule{
		cfg:    cfg,
		store:  &Store{},
		logger: logger.WithModule("database"),
	}
}

// Name returns the plugin name.
func (m *PluginModule) Name() string {
	return "database"
}

// Port returns the store. It is usable once the plugin has started.
func (m *PluginModule) Port() *Store {
	return m.store
}

// SetContainer stores the service container assigned by the framework.
func (m *PluginModule) SetContainer(container types.ServiceContainer) {
	m.container = container
}

// Container returns the service container.
func (m *PluginModule) Container() types.ServiceContainer {
	return m.container
}

// Start opens the connection and migrates the schema.
func (m *PluginModule) Start(_ context.Context) error {
	db, err := Connect(m.cfg)
	if err != nil {
		return err
	}
	m.store.db = db

	if err := m.store.Migrate(); err != nil {
		_ = m.store.Close()
		return err
	}

	m.logger.Info("Database connected", "dialect", m.store.Dialect(), "debug", m.cfg.Debug)
	return nil
}

// Stop closes the connection pool.
func (m *PluginModule) Stop(_ context.Context) error {
	if err := m.store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	m.logger.Info("Database connection closed")
	return nil
}

// Health pings the database.
func (m *PluginModule) Health(ctx context.Context) mono.HealthStatus {
	if err := m.store.Ping(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"dialect": m.store.Dialect(),
		},
	}
}
