package mimetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "application/pdf", Lookup("q1.pdf"))
	assert.Equal(t, "image/png", Lookup("icon.PNG"))
}

func TestLookupUnknownExtension(t *testing.T) {
	assert.Equal(t, DefaultType, Lookup("backup.x9q"))
	assert.Equal(t, DefaultType, Lookup("LICENSE"))
}
