package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/models"
)

// Default listing limits applied when a request carries no usable limit.
const (
	DefaultBackupLimit = 50
	DefaultFileLimit   = 100
)

// collection is the slice of *mongo.Collection the readers depend on.
// Narrowing the driver surface keeps the services testable with cursors
// built from in-memory documents.
type collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// BackupServiceProvider defines the interface for backup catalog reads.
type BackupServiceProvider interface {
	ListBackups(ctx context.Context, limit int64) ([]models.Backup, error)
	ListDownloadable(ctx context.Context, limit int64) ([]models.BackupRef, error)
}

// BackupService provides read access to backup-level archive metadata.
type BackupService struct {
	backups collection
}

// NewBackupService creates a new BackupService. A nil database handle is
// accepted: the service then reports database.ErrUnavailable on every read,
// which is how the server keeps answering after a failed startup connection.
func NewBackupService(db *database.Mongo) *BackupService {
	s := &BackupService{}
	if db != nil {
		s.backups = db.Backups
	}
	return s
}

// ListBackups returns up to limit backups, newest first.
func (s *BackupService) ListBackups(ctx context.Context, limit int64) ([]models.Backup, error) {
	if s.backups == nil {
		return nil, database.ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultBackupLimit
	}

	cur, err := s.backups.Find(ctx, bson.M{}, backupListOptions(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	backups := make([]models.Backup, 0)
	if err := cur.All(ctx, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}

// ListDownloadable returns the same listing as ListBackups projected down
// to the fields a download picker needs.
func (s *BackupService) ListDownloadable(ctx context.Context, limit int64) ([]models.BackupRef, error) {
	if s.backups == nil {
		return nil, database.ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultBackupLimit
	}

	cur, err := s.backups.Find(ctx, bson.M{}, downloadableListOptions(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	backups := make([]models.BackupRef, 0)
	if err := cur.All(ctx, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}

// backupListOptions sorts newest first, bounds the result and projects the
// catalog fields. The object identity field is always suppressed.
func backupListOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "backup_id", Value: 1},
			{Key: "backup_name", Value: 1},
			{Key: "timestamp", Value: 1},
			{Key: "total_size", Value: 1},
		}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
}

func downloadableListOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "backup_id", Value: 1},
			{Key: "backup_name", Value: 1},
			{Key: "timestamp", Value: 1},
		}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
}
