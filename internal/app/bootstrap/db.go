// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/lessonshop/internal/app/system/indexes"
	"github.com/dalemusser/lessonshop/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func clientOptions(appCfg AppConfig) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetServerAPIOptions(serverAPI)
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}
	return opts
}

// ConnectDB creates the process-wide MongoDB client and pings the primary.
// A failed ping aborts startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(appCfg))
	if err != nil {
		return DBDeps{}, errors.Wrap(err, "mongo connect")
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, timeouts.Long())
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, errors.Wrap(err, "mongo ping")
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		Client:   client,
		Database: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the lesson and order queries rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	if err := indexes.EnsureAll(ctx, deps.Database, logger); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
