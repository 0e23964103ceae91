// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminauthfeature "github.com/cochranfilms/crewops/internal/app/features/adminauth"
	applyfeature "github.com/cochranfilms/crewops/internal/app/features/apply"
	contractsfeature "github.com/cochranfilms/crewops/internal/app/features/contracts"
	dropdownfeature "github.com/cochranfilms/crewops/internal/app/features/dropdown"
	emailfeature "github.com/cochranfilms/crewops/internal/app/features/email"
	exportsfeature "github.com/cochranfilms/crewops/internal/app/features/exports"
	freelancersfeature "github.com/cochranfilms/crewops/internal/app/features/freelancers"
	healthfeature "github.com/cochranfilms/crewops/internal/app/features/health"
	jobsfeature "github.com/cochranfilms/crewops/internal/app/features/jobs"
	notificationsfeature "github.com/cochranfilms/crewops/internal/app/features/notifications"
	performancefeature "github.com/cochranfilms/crewops/internal/app/features/performance"
	usersfeature "github.com/cochranfilms/crewops/internal/app/features/users"
	"github.com/cochranfilms/crewops/internal/app/system/auth"
	"github.com/cochranfilms/crewops/internal/app/system/intake"
	"github.com/cochranfilms/crewops/internal/app/system/mailer"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The router carries the permissive CORS
// policy the public site and dashboard depend on, the session middleware,
// and one mounted feature router per API surface.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	intakeSvc := intake.NewService(deps.Users, logger)
	if appCfg.IntakeMaxAttempts > 0 {
		intakeSvc.MaxAttempts = appCfg.IntakeMaxAttempts
	}
	intakeSvc.AllowEmptyFallback = appCfg.IntakeEmptyFallback

	var sender mailer.Sender
	smtpCfg := mailer.SMTPConfig{
		Host:     appCfg.SMTPHost,
		Port:     appCfg.SMTPPort,
		Username: appCfg.SMTPUser,
		Password: appCfg.SMTPPass,
		From:     appCfg.SMTPFrom,
		ReplyTo:  appCfg.SMTPReplyTo,
	}
	if smtpCfg.Valid() {
		s, err := mailer.NewSMTPSender(smtpCfg)
		if err != nil {
			logger.Error("smtp sender init failed", zap.Error(err))
			return nil, err
		}
		sender = s
	} else {
		logger.Warn("smtp not configured; email delivery disabled")
	}
	templates := mailer.Templates{Dir: appCfg.EmailTemplateDir}

	var remover contractsfeature.RemoteRemover
	if deps.GitHub != nil {
		remover = contractsfeature.NewGitHubRemover(*deps.GitHub, nil)
	}

	r := chi.NewRouter()

	// The public site and the dashboard are served from other origins;
	// this mirrors the wide-open policy they were built against.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(auth.LoadSession)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, appCfg.DataDir, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	applyHandler := applyfeature.NewHandler(intakeSvc, logger)
	r.Mount("/api/apply", applyfeature.Routes(applyHandler))

	usersHandler := usersfeature.NewHandler(deps.Users, deps.UsersMirror, deps.UsersSource, appCfg.DataDir, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler))

	jobsHandler := jobsfeature.NewHandler(appCfg.DataDir, logger)
	r.Mount("/api/jobs-data", jobsfeature.Routes(jobsHandler))

	freelancersHandler := freelancersfeature.NewHandler(appCfg.DataDir, logger)
	r.Mount("/api/freelancers", freelancersfeature.Routes(freelancersHandler))

	dropdownHandler := dropdownfeature.NewHandler(appCfg.DataDir, logger)
	r.Mount("/api/dropdown-options", dropdownfeature.Routes(dropdownHandler))

	contractsHandler := contractsfeature.NewHandler(deps.Contracts, remover, appCfg.DataDir, logger)
	r.Mount("/api/uploaded-contracts", contractsfeature.ListRoutes(contractsHandler))
	r.Mount("/api/delete-pdf", contractsfeature.DeleteRoutes(contractsHandler))

	emailHandler := emailfeature.NewHandler(sender, templates, logger)
	r.Mount("/api/email", emailfeature.Routes(emailHandler))

	exportsHandler := exportsfeature.NewHandler(logger)
	r.Mount("/api/export-results", exportsfeature.Routes(exportsHandler))

	notificationsHandler := notificationsfeature.NewHandler(deps.Notifications, logger)
	r.Mount("/api/notifications", notificationsfeature.Routes(notificationsHandler))

	performanceHandler := performancefeature.NewHandler(deps.Performance, logger)
	r.Mount("/api/performance", performancefeature.Routes(performanceHandler))

	adminHandler := adminauthfeature.NewHandler(appCfg.AdminPasswordHash, logger)
	r.Mount("/api/admin", adminauthfeature.Routes(adminHandler))

	return r, nil
}
