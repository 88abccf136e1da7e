package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/models"
)

// ErrFileNotFound is returned when no downloadable file matches a lookup.
// Chunked files are stored without inline content and report the same error
// as a missing path.
var ErrFileNotFound = errors.New("file not found")

// FileServiceProvider defines the interface for per-backup file reads.
type FileServiceProvider interface {
	ListFiles(ctx context.Context, backupID string, limit int64) ([]models.FileEntry, error)
	GetFileContent(ctx context.Context, backupID, relativePath string) (*models.File, error)
}

// FileService provides read access to the file entries of a backup.
type FileService struct {
	files collection
}

// NewFileService creates a new FileService. As with the backup service, a
// nil database handle leaves the service in degraded mode.
func NewFileService(db *database.Mongo) *FileService {
	s := &FileService{}
	if db != nil {
		s.files = db.Files
	}
	return s
}

// ListFiles returns up to limit file entries for one backup. Directory
// entries are filtered out at the query level; the order is whatever the
// collection yields.
func (s *FileService) ListFiles(ctx context.Context, backupID string, limit int64) ([]models.FileEntry, error) {
	if s.files == nil {
		return nil, database.ErrUnavailable
	}
	if limit <= 0 {
		limit = DefaultFileLimit
	}

	filter := bson.M{
		"backup_id":    backupID,
		"is_directory": bson.M{"$ne": true},
	}
	cur, err := s.files.Find(ctx, filter, fileListOptions(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	files := make([]models.FileEntry, 0)
	if err := cur.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetFileContent loads a single file with its inline content. It returns
// ErrFileNotFound when no document matches, when the stored file is chunked,
// or when the document carries no content field.
func (s *FileService) GetFileContent(ctx context.Context, backupID, relativePath string) (*models.File, error) {
	if s.files == nil {
		return nil, database.ErrUnavailable
	}

	filter := bson.M{
		"backup_id":     backupID,
		"relative_path": relativePath,
		"is_chunked":    bson.M{"$ne": true},
	}
	var file models.File
	err := s.files.FindOne(ctx, filter).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	if file.Content == nil {
		return nil, ErrFileNotFound
	}
	return &file, nil
}

func fileListOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "relative_path", Value: 1},
			{Key: "file_size", Value: 1},
			{Key: "filename", Value: 1},
		}).
		SetLimit(limit)
}
