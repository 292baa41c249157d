// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	alertsfeature "github.com/reliefworks/reliefhub/internal/app/features/alerts"
	authapifeature "github.com/reliefworks/reliefhub/internal/app/features/authapi"
	authgooglefeature "github.com/reliefworks/reliefhub/internal/app/features/authgoogle"
	eventsfeature "github.com/reliefworks/reliefhub/internal/app/features/events"
	healthfeature "github.com/reliefworks/reliefhub/internal/app/features/health"
	requestsfeature "github.com/reliefworks/reliefhub/internal/app/features/requests"
	resourcesfeature "github.com/reliefworks/reliefhub/internal/app/features/resources"
	safezonesfeature "github.com/reliefworks/reliefhub/internal/app/features/safezones"
	statsfeature "github.com/reliefworks/reliefhub/internal/app/features/stats"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the stores, hub, cache, and service bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ReliefHub applies session middleware globally and mounts the JSON
// feature routers: auth, resources, requests, stats, safe zones,
// alerts, and the websocket event stream.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	sessionMgr, err := auth.NewSessionManager(auth.Options{
		SessionKey:  appCfg.SessionKey,
		SessionName: appCfg.SessionName,
		Domain:      appCfg.SessionDomain,
		Secure:      coreCfg.Env == "prod",
		TokenTTL:    appCfg.TokenTTL,
	}, deps.Tokens, deps.Users, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	authHandler := authapifeature.NewHandler(deps.Users, sessionMgr, logger)
	r.Mount("/auth", authapifeature.Routes(authHandler))

	googleHandler := authgooglefeature.NewHandler(deps.Users, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Aid coordination
	resourcesHandler := resourcesfeature.NewHandler(deps.Svc, deps.Hub, logger)
	r.Mount("/resources", resourcesfeature.Routes(resourcesHandler))

	requestsHandler := requestsfeature.NewHandler(deps.Svc, deps.Hub, logger)
	r.Mount("/requests", requestsfeature.Routes(requestsHandler))

	safezonesHandler := safezonesfeature.NewHandler(deps.Svc, logger)
	r.Mount("/safezones", safezonesfeature.Routes(safezonesHandler))

	// Dashboards
	statsHandler := statsfeature.NewHandler(deps.Svc, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler))

	// Broadcasts and the live event stream
	alertsHandler := alertsfeature.NewHandler(deps.Hub, logger)
	r.Mount("/alerts", alertsfeature.Routes(alertsHandler))

	eventsHandler := eventsfeature.NewHandler(deps.Hub, deps.Cache, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	return r, nil
}
