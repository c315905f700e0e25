// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, CORS, and request body size limits.
// AppConfig is where everything specific to this application lives:
// database connection strings, token signing secrets, and file storage
// settings for report photos.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	JWTSecret      string        // Secret key for signing bearer tokens (must be strong in production)
	JWTTokenExpiry time.Duration // Lifetime of issued tokens (default: 30m)

	// File storage configuration for report photos
	StorageLocalPath string // Local storage path (e.g., "./uploads/reports")
	StorageLocalURL  string // URL prefix for serving stored files (e.g., "/files")
}
