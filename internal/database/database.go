package database

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jmagnuss/vaultbrowse-be/internal/config"
)

// Collection names inside the archive database. Both are populated by the
// external ingestion pipeline; this server only ever reads them.
const (
	BackupCollection = "backups"
	FileCollection   = "files"
)

// ErrUnavailable is returned by readers when no database connection was
// established at startup and the server is running in degraded mode.
var ErrUnavailable = errors.New("storage unavailable")

// Mongo bundles the shared database handles published once at startup and
// injected into every component that reads the archive.
type Mongo struct {
	Client  *mongo.Client
	DB      *mongo.Database
	Backups *mongo.Collection
	Files   *mongo.Collection
}

// Connect establishes the connection to the backup archive. It never fails
// hard: any error is logged and a nil handle is returned so the server can
// still start and answer requests in degraded mode. There is no retry loop;
// a nil handle is permanent until the process restarts.
func Connect(cfg *config.Config) *Mongo {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = config.DefaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetMaxPoolSize(1) // minimal footprint over throughput

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error().Err(err).Msg("MongoDB connection failed, starting in degraded mode")
		return nil
	}

	// Connect is lazy; only a ping proves the deployment is reachable.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error().Err(err).Msg("MongoDB unreachable, starting in degraded mode")
		_ = client.Disconnect(context.Background())
		return nil
	}

	db := client.Database(cfg.MongoDatabase)
	log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	return &Mongo{
		Client:  client,
		DB:      db,
		Backups: db.Collection(BackupCollection),
		Files:   db.Collection(FileCollection),
	}
}

// Ping reports whether the deployment currently answers. Used by the health
// endpoint and the status reporter; never used to reconnect.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return ErrUnavailable
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close releases the client and its single pooled connection.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
