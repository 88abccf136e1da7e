// Package mimetype resolves a filename to a MIME content type.
package mimetype

import (
	"mime"
	"path/filepath"
)

// DefaultType is served when no type is registered for an extension.
const DefaultType = "application/octet-stream"

// Lookup infers the content type from a filename's extension.
func Lookup(filename string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return DefaultType
}
