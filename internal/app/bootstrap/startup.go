// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// ReliefHub uses it to wire the read cache to the event hub and, when
// seed_demo_data is enabled, load the demo accounts and records.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// The cache follows the hub for the life of the process; its
	// subscription channel is closed by Hub.Close during shutdown.
	events, _ := deps.Hub.Subscribe()
	go deps.Cache.Run(context.Background(), events)

	if appCfg.SeedDemoData {
		if err := seedDemoData(ctx, deps, logger); err != nil {
			return err
		}
	}

	return nil
}
