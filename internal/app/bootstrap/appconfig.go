// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: CoreConfig handles
// framework-level settings like ports, TLS, logging, and CORS, while
// AppConfig is everything specific to ReliefHub.
type AppConfig struct {
	// Store backend selection: "memory" runs everything in-process
	// (demos, tests), "mongo" persists to MongoDB.
	StoreBackend string

	// MongoDB connection configuration (used when StoreBackend is "mongo")
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: reliefhub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	TokenTTL      time.Duration // Bearer token lifetime (0 means no expiry)

	// Memory backend tuning
	MockLatency  time.Duration // Artificial per-call latency on the memory stores
	SeedDemoData bool          // Load the demo accounts and records on startup

	// Google OAuth configuration (sign-in is optional; blank disables it)
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL for OAuth callbacks and post-login redirects
	BaseURL string // e.g., "https://reliefhub.org" or "http://localhost:8080"
}
