package models

// File represents one entry in the file catalog, scoped to a backup by
// backup_id. An entry is either a directory marker, a chunked file whose
// payload lives outside this document, or a regular file carrying its
// content inline as BSON binary.
type File struct {
	BackupID     string `bson:"backup_id" json:"backup_id"`
	RelativePath string `bson:"relative_path" json:"relative_path"`
	Filename     string `bson:"filename" json:"filename"`
	FileSize     int64  `bson:"file_size" json:"file_size"`
	IsDirectory  bool   `bson:"is_directory,omitempty" json:"is_directory,omitempty"`
	IsChunked    bool   `bson:"is_chunked,omitempty" json:"is_chunked,omitempty"`
	Content      []byte `bson:"content,omitempty" json:"-"`
}

// FileEntry is the projection returned by the file listing.
type FileEntry struct {
	RelativePath string `bson:"relative_path" json:"relative_path"`
	FileSize     int64  `bson:"file_size" json:"file_size"`
	Filename     string `bson:"filename" json:"filename"`
}
