// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/service"
	requeststore "github.com/reliefworks/reliefhub/internal/app/store/requests"
	resourcestore "github.com/reliefworks/reliefhub/internal/app/store/resources"
	safezonestore "github.com/reliefworks/reliefhub/internal/app/store/safezones"
	tokenstore "github.com/reliefworks/reliefhub/internal/app/store/tokens"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
)

// DBDeps holds database/back-end dependencies for the app.
//
// MongoClient and MongoDatabase are nil when the app runs on the
// in-memory backend; the store interfaces are always populated.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Users     userstore.Store
	Tokens    tokenstore.Store
	Resources resourcestore.Store
	Requests  requeststore.Store
	SafeZones safezonestore.Store

	Svc   *service.Service
	Hub   *notify.Hub
	Cache *service.Cache
}
