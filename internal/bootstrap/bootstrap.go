// Package bootstrap provides dependency initialization for the jobboard API.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/maauso/jobboard-api/internal/config"
	"github.com/maauso/jobboard-api/internal/job"
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	Jobs job.Repository

	closeFn func(ctx context.Context) error
}

// Close releases the storage connection. It is safe to call on a memory backend.
func (d *Dependencies) Close(ctx context.Context) error {
	if d.closeFn == nil {
		return nil
	}
	return d.closeFn(ctx)
}

// NewDependencies creates and initializes all dependencies for the application.
// For the mongo backend it returns only after the primary answered a ping, so
// callers never serve requests without a working storage connection.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if cfg.MemoryBackend() {
		logger.Warn("memory store configured, jobs are lost on restart")
		return &Dependencies{Jobs: job.NewMemoryRepository()}, nil
	}

	client, err := connectMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	logger.Info("mongo storage configured",
		slog.String("uri", config.RedactURI(cfg.MongoURI)),
		slog.String("database", cfg.MongoDatabase),
		slog.String("collection", cfg.MongoCollection),
	)

	return &Dependencies{
		Jobs:    job.NewMongoRepository(coll),
		closeFn: client.Disconnect,
	}, nil
}

// connectMongo opens the shared client and verifies it within the configured timeout.
func connectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
