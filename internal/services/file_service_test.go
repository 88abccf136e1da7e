package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/models"
)

func TestListFiles(t *testing.T) {
	fake := &fakeCollection{docs: []interface{}{
		bson.D{
			{Key: "relative_path", Value: "world/level.dat"},
			{Key: "file_size", Value: int64(512)},
			{Key: "filename", Value: "level.dat"},
		},
		bson.D{
			{Key: "relative_path", Value: "server.properties"},
			{Key: "file_size", Value: int64(128)},
			{Key: "filename", Value: "server.properties"},
		},
	}}
	svc := &FileService{files: fake}

	files, err := svc.ListFiles(context.Background(), "b1", 25)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "world/level.dat", files[0].RelativePath)
	assert.Equal(t, int64(512), files[0].FileSize)
	assert.Equal(t, "level.dat", files[0].Filename)

	assert.Equal(t, bson.M{
		"backup_id":    "b1",
		"is_directory": bson.M{"$ne": true},
	}, fake.gotFilter)
	require.NotNil(t, fake.gotOpts)
	require.NotNil(t, fake.gotOpts.Limit)
	assert.Equal(t, int64(25), *fake.gotOpts.Limit)
	assert.Nil(t, fake.gotOpts.Sort)
	assert.Equal(t, bson.D{
		{Key: "_id", Value: 0},
		{Key: "relative_path", Value: 1},
		{Key: "file_size", Value: 1},
		{Key: "filename", Value: 1},
	}, fake.gotOpts.Projection)
}

func TestListFilesDefaultsLimit(t *testing.T) {
	fake := &fakeCollection{}
	svc := &FileService{files: fake}

	_, err := svc.ListFiles(context.Background(), "b1", 0)
	require.NoError(t, err)
	require.NotNil(t, fake.gotOpts)
	require.NotNil(t, fake.gotOpts.Limit)
	assert.Equal(t, int64(DefaultFileLimit), *fake.gotOpts.Limit)
}

func TestListFilesUnknownBackupIsEmpty(t *testing.T) {
	svc := &FileService{files: &fakeCollection{}}

	files, err := svc.ListFiles(context.Background(), "no-such-backup", 10)
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Len(t, files, 0)
}

func TestListFilesUnavailable(t *testing.T) {
	svc := NewFileService(nil)

	_, err := svc.ListFiles(context.Background(), "b1", 10)
	assert.ErrorIs(t, err, database.ErrUnavailable)
}

func TestGetFileContent(t *testing.T) {
	fake := &fakeCollection{oneDoc: models.File{
		BackupID:     "b1",
		RelativePath: "reports/q1.pdf",
		Filename:     "q1.pdf",
		FileSize:     5,
		Content:      []byte("%PDF-"),
	}}
	svc := &FileService{files: fake}

	file, err := svc.GetFileContent(context.Background(), "b1", "reports/q1.pdf")
	require.NoError(t, err)
	assert.Equal(t, "q1.pdf", file.Filename)
	assert.Equal(t, []byte("%PDF-"), file.Content)

	assert.Equal(t, bson.M{
		"backup_id":     "b1",
		"relative_path": "reports/q1.pdf",
		"is_chunked":    bson.M{"$ne": true},
	}, fake.gotFilter)
}

func TestGetFileContentNotFound(t *testing.T) {
	fake := &fakeCollection{oneErr: mongo.ErrNoDocuments}
	svc := &FileService{files: fake}

	_, err := svc.GetFileContent(context.Background(), "b1", "missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetFileContentWithoutPayload(t *testing.T) {
	// A matching document that carries no content field, the shape a
	// chunk-indexed entry has, reads as not found.
	fake := &fakeCollection{oneDoc: bson.D{
		{Key: "backup_id", Value: "b1"},
		{Key: "relative_path", Value: "big.bin"},
		{Key: "filename", Value: "big.bin"},
		{Key: "file_size", Value: int64(1 << 30)},
	}}
	svc := &FileService{files: fake}

	_, err := svc.GetFileContent(context.Background(), "b1", "big.bin")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGetFileContentLookupError(t *testing.T) {
	boom := errors.New("socket closed")
	fake := &fakeCollection{oneErr: boom}
	svc := &FileService{files: fake}

	_, err := svc.GetFileContent(context.Background(), "b1", "a.txt")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}

func TestGetFileContentUnavailable(t *testing.T) {
	svc := NewFileService(nil)

	_, err := svc.GetFileContent(context.Background(), "b1", "a.txt")
	assert.ErrorIs(t, err, database.ErrUnavailable)
}
