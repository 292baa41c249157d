// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/service"
	requeststore "github.com/reliefworks/reliefhub/internal/app/store/requests"
	resourcestore "github.com/reliefworks/reliefhub/internal/app/store/resources"
	safezonestore "github.com/reliefworks/reliefhub/internal/app/store/safezones"
	tokenstore "github.com/reliefworks/reliefhub/internal/app/store/tokens"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
)

// ConnectDB builds the record stores for the configured backend and the
// shared coordination plumbing (event hub, read cache, service layer).
//
// With store_backend=memory no external connection is made. With
// store_backend=mongo the client is connected and pinged here so a bad
// URI fails startup instead of the first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{
		Tokens: tokenstore.NewMemory(),
		Hub:    notify.NewHub(logger),
		Cache:  service.NewCache(),
	}

	switch appCfg.StoreBackend {
	case "mongo":
		opts := options.Client().
			ApplyURI(appCfg.MongoURI).
			SetMaxPoolSize(appCfg.MongoMaxPoolSize).
			SetMinPoolSize(appCfg.MongoMinPoolSize)

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			logger.Error("mongo connect failed", zap.Error(err))
			return DBDeps{}, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			logger.Error("mongo ping failed", zap.Error(err))
			return DBDeps{}, err
		}

		db := client.Database(appCfg.MongoDatabase)
		deps.MongoClient = client
		deps.MongoDatabase = db
		deps.Users = userstore.NewMongo(db)
		deps.Resources = resourcestore.NewMongo(db)
		deps.Requests = requeststore.NewMongo(db)
		deps.SafeZones = safezonestore.NewMongo(db)

		logger.Info("connected to MongoDB",
			zap.String("database", appCfg.MongoDatabase))

	default:
		deps.Users = userstore.NewMemory(appCfg.MockLatency)
		deps.Resources = resourcestore.NewMemory(appCfg.MockLatency)
		deps.Requests = requeststore.NewMemory(appCfg.MockLatency)
		deps.SafeZones = safezonestore.NewMemory(appCfg.MockLatency)

		logger.Info("using in-memory stores",
			zap.Duration("mock_latency", appCfg.MockLatency))
	}

	deps.Svc = &service.Service{
		Users:     deps.Users,
		Resources: deps.Resources,
		Requests:  deps.Requests,
		SafeZones: deps.SafeZones,
		Log:       logger,
	}

	return deps, nil
}

// EnsureSchema creates the MongoDB indexes. It is a no-op on the
// memory backend.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email_ci", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("email_ci_unique"),
			},
		},
		"resources": {
			{Keys: bson.D{{Key: "type", Value: 1}}, Options: options.Index().SetName("type")},
			{Keys: bson.D{{Key: "availability", Value: 1}}, Options: options.Index().SetName("availability")},
		},
		"help_requests": {
			{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status")},
			{Keys: bson.D{{Key: "urgency", Value: 1}}, Options: options.Index().SetName("urgency")},
			{Keys: bson.D{{Key: "assigned_to", Value: 1}}, Options: options.Index().SetName("assigned_to")},
			{Keys: bson.D{{Key: "requested_by", Value: 1}}, Options: options.Index().SetName("requested_by")},
		},
		"safe_zones": {
			{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status")},
		},
	}

	for coll, models := range indexes {
		if _, err := deps.MongoDatabase.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("index creation failed",
				zap.String("collection", coll), zap.Error(err))
			return err
		}
	}

	logger.Info("mongo indexes ensured")
	return nil
}
