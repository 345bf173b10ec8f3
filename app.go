package main

import (
	"fmt"

	"github.com/go-monolith/mono"

	"github.com/krisly/beauty-store/config"
	apimod "github.com/krisly/beauty-store/modules/api"
	cartmod "github.com/krisly/beauty-store/modules/cart"
	catalogmod "github.com/krisly/beauty-store/modules/catalog"
	contactmod "github.com/krisly/beauty-store/modules/contact"
	"github.com/krisly/beauty-store/modules/database"
	notificationmod "github.com/krisly/beauty-store/modules/notification"
	reviewmod "github.com/krisly/beauty-store/modules/review"
)

// storeApp is the wired mono application. The notifier is kept so callers
// can read its inbox.
type storeApp struct {
	mono     mono.MonoApplication
	notifier *notificationmod.Module
}

// newStoreApp registers the database plugin and every store module. opts
// are applied after the defaults derived from cfg.
func newStoreApp(cfg config.Config, opts ...mono.MonoFrameworkOption) (*storeApp, error) {
	opts = append([]mono.MonoFrameworkOption{
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	}, opts...)

	app, err := mono.NewMonoApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mono application: %w", err)
	}

	// Modules implementing UsePluginModule receive SetPlugin("db", dbPlugin)
	// before they start.
	dbPlugin := database.NewPluginModule(database.Config{
		URL:          cfg.DatabaseURL,
		Debug:        cfg.DBDebug,
		MaxOpenConns: cfg.DBMaxOpenConns,
	}, app.Logger())
	if err := app.RegisterPlugin(dbPlugin, database.PluginAlias); err != nil {
		return nil, fmt.Errorf("failed to register database plugin: %w", err)
	}

	catalogModule := catalogmod.NewModule(cfg.SeedDemoData, app.Logger())
	cartModule := cartmod.NewModule(app.Logger())
	reviewModule := reviewmod.NewModule(app.Logger())
	contactModule := contactmod.NewModule(app.Logger())
	notificationModule := notificationmod.NewModule(app.Logger())
	apiModule := apimod.NewModule(apimod.Config{
		Port:         cfg.HTTPPort,
		AllowOrigins: cfg.CORSAllowOrigins,
	}, apimod.Providers{
		Catalog: catalogModule,
		Cart:    cartModule,
		Review:  reviewModule,
		Contact: contactModule,
		Health: map[string]mono.HealthCheckableModule{
			dbPlugin.Name():           dbPlugin,
			catalogModule.Name():      catalogModule,
			notificationModule.Name(): notificationModule,
		},
	}, app.Logger())

	for _, m := range []mono.Module{
		catalogModule,
		cartModule,
		reviewModule,
		contactModule,
		notificationModule,
		apiModule,
	} {
		if err := app.Register(m); err != nil {
			return nil, fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	return &storeApp{mono: app, notifier: notificationModule}, nil
}
