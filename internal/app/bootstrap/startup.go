// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. Nothing
// beyond config and the database is needed here yet.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("help-me API starting",
		zap.String("env", coreCfg.Env),
		zap.Duration("token_expiry", appCfg.JWTTokenExpiry))
	return nil
}
