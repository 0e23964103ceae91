// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the crew-operations
// backend. They are loaded via WAFFLE's config system with support for:
//   - Config files: data_dir, store_backend, etc.
//   - Environment variables: CREWOPS_DATA_DIR, CREWOPS_STORE_BACKEND, etc.
//   - Command-line flags: --data_dir, --store_backend, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_dir", Default: "./data", Desc: "Directory holding JSON documents and contract PDFs"},
	{Name: "store_backend", Default: "local", Desc: "Document persistence backend: 'local', 'github', or 'mongo'"},

	// GitHub contents-API backend
	{Name: "github_token", Default: "", Desc: "GitHub token for the contents API"},
	{Name: "github_owner", Default: "cochranfilms", Desc: "GitHub repository owner"},
	{Name: "github_repo", Default: "cochran-job-listings", Desc: "GitHub repository name"},
	{Name: "github_branch", Default: "main", Desc: "GitHub branch"},

	// Mongo backend
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "crewops", Desc: "MongoDB database name"},

	// Email/SMTP configuration
	{Name: "smtp_host", Default: "", Desc: "SMTP server host (empty disables email delivery)"},
	{Name: "smtp_port", Default: 587, Desc: "SMTP server port (465 uses implicit TLS)"},
	{Name: "smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "smtp_from", Default: "no-reply@cochranfilms.com", Desc: "From email address"},
	{Name: "smtp_reply_to", Default: "", Desc: "Reply-To email address"},
	{Name: "email_template_dir", Default: "./templates", Desc: "Directory holding email HTML templates"},

	// Admin session
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password (empty disables admin login)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},

	// Intake behavior
	{Name: "intake_max_attempts", Default: 3, Desc: "Max load-merge-save attempts on version conflict"},
	{Name: "intake_empty_fallback", Default: true, Desc: "Start intake from an empty document when the load fails"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CREWOPS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataDir:      appValues.String("data_dir"),
		StoreBackend: appValues.String("store_backend"),

		GitHubToken:  appValues.String("github_token"),
		GitHubOwner:  appValues.String("github_owner"),
		GitHubRepo:   appValues.String("github_repo"),
		GitHubBranch: appValues.String("github_branch"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SMTPHost:         appValues.String("smtp_host"),
		SMTPPort:         appValues.Int("smtp_port"),
		SMTPUser:         appValues.String("smtp_user"),
		SMTPPass:         appValues.String("smtp_pass"),
		SMTPFrom:         appValues.String("smtp_from"),
		SMTPReplyTo:      appValues.String("smtp_reply_to"),
		EmailTemplateDir: appValues.String("email_template_dir"),

		AdminPasswordHash: appValues.String("admin_password_hash"),
		SessionKey:        appValues.String("session_key"),

		IntakeMaxAttempts:   appValues.Int("intake_max_attempts"),
		IntakeEmptyFallback: appValues.Bool("intake_empty_fallback"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Backend-specific settings are only validated for the selected backend
// so a local deployment needs nothing beyond a writable data_dir.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case "local":
	case "github":
		if appCfg.GitHubToken == "" {
			return fmt.Errorf("store_backend 'github' requires github_token")
		}
		if appCfg.GitHubOwner == "" || appCfg.GitHubRepo == "" {
			return fmt.Errorf("store_backend 'github' requires github_owner and github_repo")
		}
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("unknown store_backend %q (want 'local', 'github', or 'mongo')", appCfg.StoreBackend)
	}

	if appCfg.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if appCfg.IntakeMaxAttempts < 1 {
		return fmt.Errorf("intake_max_attempts must be at least 1")
	}
	return nil
}
