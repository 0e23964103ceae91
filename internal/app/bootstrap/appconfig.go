// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, request limits); AppConfig is everything specific to the
// crew-operations backend: where the documents live, how they are
// persisted, and the credentials for email delivery and admin login.
type AppConfig struct {
	// Data directory holding the JSON documents and contract PDFs.
	DataDir string

	// Document persistence backend: "local", "github", or "mongo".
	StoreBackend string

	// GitHub contents-API configuration (store_backend=github, and
	// remote contract deletion).
	GitHubToken  string
	GitHubOwner  string
	GitHubRepo   string
	GitHubBranch string

	// MongoDB configuration (store_backend=mongo).
	MongoURI      string
	MongoDatabase string

	// Email/SMTP configuration. Delivery is disabled when host or
	// credentials are missing.
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
	SMTPReplyTo      string
	EmailTemplateDir string

	// Admin session configuration.
	AdminPasswordHash string // bcrypt hash; empty disables admin login
	SessionKey        string

	// Intake behavior.
	IntakeMaxAttempts   int
	IntakeEmptyFallback bool
}
