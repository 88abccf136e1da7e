package models

import "time"

// Backup represents one archival run in the backup catalog. Documents are
// written exclusively by the external ingestion pipeline; this API reads
// them and never exposes the Mongo identity field.
type Backup struct {
	BackupID   string    `bson:"backup_id" json:"backup_id"`
	BackupName string    `bson:"backup_name" json:"backup_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	TotalSize  int64     `bson:"total_size" json:"total_size"`
}

// BackupRef is the lighter projection of a backup used by the download
// picker listing, which has no use for the aggregate size.
type BackupRef struct {
	BackupID   string    `bson:"backup_id" json:"backup_id"`
	BackupName string    `bson:"backup_name" json:"backup_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
