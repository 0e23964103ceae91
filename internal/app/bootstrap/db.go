// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	contractstore "github.com/cochranfilms/crewops/internal/app/store/contracts"
	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	notificationstore "github.com/cochranfilms/crewops/internal/app/store/notifications"
	performancestore "github.com/cochranfilms/crewops/internal/app/store/performance"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the document stores for the configured backend.
//
// Only the users document travels through the remote backend; the
// operational documents (contracts ledger, notifications, performance)
// stay in the local data dir unless the mongo backend moves everything
// into one database.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{
		Contracts:     contractstore.New(docstore.NewLocal(appCfg.DataDir, "uploaded-contracts.json")),
		Notifications: notificationstore.New(docstore.NewLocal(appCfg.DataDir, "notifications.json")),
		Performance:   performancestore.New(docstore.NewLocal(appCfg.DataDir, "performance.json")),
	}

	switch appCfg.StoreBackend {
	case "local":
		deps.Users = userstore.New(docstore.NewLocal(appCfg.DataDir, "users.json"))
		deps.UsersSource = "local"
		logger.Info("document store: local files", zap.String("data_dir", appCfg.DataDir))

	case "github":
		ghCfg := docstore.GitHubConfig{
			Token:  appCfg.GitHubToken,
			Owner:  appCfg.GitHubOwner,
			Repo:   appCfg.GitHubRepo,
			Branch: appCfg.GitHubBranch,
			Path:   "users.json",
		}
		deps.Users = userstore.New(docstore.NewGitHub(ghCfg, nil))
		deps.UsersMirror = userstore.New(docstore.NewLocal(appCfg.DataDir, "users.json"))
		deps.UsersSource = "github"
		deps.GitHub = &ghCfg
		logger.Info("document store: github contents API",
			zap.String("owner", appCfg.GitHubOwner),
			zap.String("repo", appCfg.GitHubRepo),
			zap.String("branch", appCfg.GitHubBranch))

	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
		}
		db := client.Database(appCfg.MongoDatabase)

		deps.MongoClient = client
		deps.MongoDatabase = db
		deps.Users = userstore.New(docstore.NewMongo(db, "users.json"))
		deps.UsersMirror = userstore.New(docstore.NewLocal(appCfg.DataDir, "users.json"))
		deps.UsersSource = "mongo"
		deps.Contracts = contractstore.New(docstore.NewMongo(db, "uploaded-contracts.json"))
		deps.Notifications = notificationstore.New(docstore.NewMongo(db, "notifications.json"))
		deps.Performance = performancestore.New(docstore.NewMongo(db, "performance.json"))
		logger.Info("document store: mongo", zap.String("database", appCfg.MongoDatabase))

	default:
		return DBDeps{}, fmt.Errorf("unknown store_backend %q", appCfg.StoreBackend)
	}

	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase != nil {
		if err := docstore.EnsureIndexes(ctx, deps.MongoDatabase); err != nil {
			return fmt.Errorf("ensure document indexes: %w", err)
		}
		logger.Info("document indexes ensured")
	}
	return nil
}
