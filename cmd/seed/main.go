// Command seed loads a small sample archive into the backup store for
// local development. The API itself never writes; this stands in for the
// external ingestion process.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmagnuss/vaultbrowse-be/internal/config"
	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/logger"
	"github.com/jmagnuss/vaultbrowse-be/internal/models"
)

func main() {
	reset := flag.Bool("reset", false, "drop the backup and file collections before seeding")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Unlike the API server, seeding is pointless without a reachable store.
	db := database.Connect(cfg)
	if db == nil {
		log.Fatal().Str("uri", cfg.MongoURI).Msg("Storage must be reachable to seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *reset {
		if err := db.Backups.Drop(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to drop backup collection")
		}
		if err := db.Files.Drop(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to drop file collection")
		}
		log.Info().Msg("Dropped existing collections")
	}

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	inserted, err := seedArchive(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed archive")
	}

	log.Info().Int("backups", inserted).Msg("Seed complete")

	if err := db.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close database connection")
	}
}

// ensureIndexes builds the indexes the read paths lean on: the unique
// backup key, the newest-first listing sort, and the per-backup file
// lookups.
func ensureIndexes(ctx context.Context, db *database.Mongo) error {
	_, err := db.Backups.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "backup_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Files.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "backup_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "backup_id", Value: 1}, {Key: "relative_path", Value: 1}},
		},
	})
	return err
}

// seedArchive inserts a few staggered backups, each with nested files, a
// directory entry, and one chunked entry that the download path must treat
// as missing.
func seedArchive(ctx context.Context, db *database.Mongo) (int, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	type sample struct {
		name string
		age  time.Duration
	}
	samples := []sample{
		{name: "world-nightly", age: 48 * time.Hour},
		{name: "world-nightly", age: 24 * time.Hour},
		{name: "world-pre-update", age: time.Hour},
	}

	for _, s := range samples {
		backupID := uuid.New().String()
		files := sampleFiles(backupID)

		var totalSize int64
		docs := make([]interface{}, 0, len(files))
		for _, f := range files {
			if !f.IsDirectory {
				totalSize += f.FileSize
			}
			docs = append(docs, f)
		}

		backup := models.Backup{
			BackupID:   backupID,
			BackupName: s.name,
			Timestamp:  now.Add(-s.age),
			TotalSize:  totalSize,
		}

		if _, err := db.Backups.InsertOne(ctx, backup); err != nil {
			return 0, err
		}
		if _, err := db.Files.InsertMany(ctx, docs); err != nil {
			return 0, err
		}
	}

	return len(samples), nil
}

func sampleFiles(backupID string) []models.File {
	properties := []byte("motd=A Vaultbrowse Seed World\nlevel-name=world\nmax-players=20\n")
	levelDat := []byte{0x1f, 0x8b, 0x08, 0x00, 0x53, 0x45, 0x45, 0x44}
	latestLog := []byte("[12:00:01] [Server thread/INFO]: Done (3.14s)! For help, type \"help\"\n")

	return []models.File{
		{
			BackupID:     backupID,
			RelativePath: "world",
			Filename:     "world",
			IsDirectory:  true,
		},
		{
			BackupID:     backupID,
			RelativePath: "server.properties",
			Filename:     "server.properties",
			FileSize:     int64(len(properties)),
			Content:      properties,
		},
		{
			BackupID:     backupID,
			RelativePath: "world/level.dat",
			Filename:     "level.dat",
			FileSize:     int64(len(levelDat)),
			Content:      levelDat,
		},
		{
			BackupID:     backupID,
			RelativePath: "logs/latest.log",
			Filename:     "latest.log",
			FileSize:     int64(len(latestLog)),
			Content:      latestLog,
		},
		{
			BackupID:     backupID,
			RelativePath: "world/region/r.0.0.mca",
			Filename:     "r.0.0.mca",
			FileSize:     8 << 20,
			IsChunked:    true,
		},
	}
}
