// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (HTTP port, TLS, log level); AppConfig covers the
// storefront backend itself.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string; required
	MongoDatabase    string // Database name; derived from MongoURI when blank
	MongoMaxPoolSize uint64 // Max connections in the driver pool (0 = driver default)
	MongoMinPoolSize uint64 // Min connections kept open by the driver

	// Files
	PublicDir       string // Storefront assets served at /
	LessonImagesDir string // Flat directory served at /images/lessons

	// CORSAllowedOrigins lists origins allowed to call the API ("*" for any).
	CORSAllowedOrigins []string
}
