// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/thanachok11/CIS-Help-Me/internal/app/features/auth"
	errorsfeature "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	healthfeature "github.com/thanachok11/CIS-Help-Me/internal/app/features/health"
	reportsfeature "github.com/thanachok11/CIS-Help-Me/internal/app/features/reports"
	statsfeature "github.com/thanachok11/CIS-Help-Me/internal/app/features/stats"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/auth"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/storage"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The token middleware is applied globally so every handler can look up
// the current user via auth.CurrentUser(r); route groups inside the
// features enforce signed-in and staff-only access where required.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.JWTSecret, appCfg.JWTTokenExpiry)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	media, err := storage.NewLocalStore(appCfg.StorageLocalPath, appCfg.StorageLocalURL, logger)
	if err != nil {
		logger.Error("report photo storage init failed", zap.Error(err))
		return nil, err
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the token principal into context when
	// a valid bearer token is presented. Requests without one continue
	// unauthenticated and are rejected by the per-route gates.
	r.Use(tokens.Authenticate)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.HelpMeMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded report photos with pre-compressed file support
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Registration, login, and token renewal
	authHandler := authfeature.NewHandler(deps.HelpMeMongoDatabase, tokens, errLog, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// Report lifecycle and analytics share the /api/reports subtree.
	reportsHandler := reportsfeature.NewHandler(deps.HelpMeMongoDatabase, media, errLog, logger)
	statsHandler := statsfeature.NewHandler(deps.HelpMeMongoDatabase, errLog, logger)
	r.Route("/api/reports", func(rr chi.Router) {
		reportsfeature.Register(rr, reportsHandler)
		statsfeature.Register(rr, statsHandler)
	})

	return r, nil
}
