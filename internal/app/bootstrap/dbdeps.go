// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	contractstore "github.com/cochranfilms/crewops/internal/app/store/contracts"
	"github.com/cochranfilms/crewops/internal/app/store/docstore"
	notificationstore "github.com/cochranfilms/crewops/internal/app/store/notifications"
	performancestore "github.com/cochranfilms/crewops/internal/app/store/performance"
	userstore "github.com/cochranfilms/crewops/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the document stores and backend clients for the app.
type DBDeps struct {
	// Users is the authoritative users-document store for the selected
	// backend. UsersMirror is the local fallback copy; nil when Users is
	// already local. UsersSource labels the backend in API metadata.
	Users       *userstore.Store
	UsersMirror *userstore.Store
	UsersSource string

	Contracts     *contractstore.Store
	Notifications *notificationstore.Store
	Performance   *performancestore.Store

	// GitHub is set when the contents-API backend is configured; the
	// contract-deletion endpoint uses it to remove PDFs upstream.
	GitHub *docstore.GitHubConfig

	// Mongo client and database; nil unless store_backend=mongo.
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
}
