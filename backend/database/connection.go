package database

import (
	"context"
	"time"

	"telebuddy/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes the process-wide MongoDB connection. The returned
// Store is meant to be constructed once in main and injected into the
// handlers; callers keep a nil Store when connection fails and the API runs
// in degraded mode.
func Connect(ctx context.Context, uri, name string, appLogger *logger.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		appLogger.Error("Failed to connect to MongoDB", "error", err)
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		appLogger.Error("MongoDB ping failed", "error", err)
		return nil, err
	}

	appLogger.Info("Database connection successful.", "database", name)
	return &Store{db: client.Database(name), logger: appLogger}, nil
}
