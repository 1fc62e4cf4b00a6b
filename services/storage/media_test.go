package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("gallery", "Annual Day.JPG")
	assert.True(t, strings.HasPrefix(key, "gallery/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Two uploads of the same file never collide
	assert.NotEqual(t, key, GenerateKey("gallery", "Annual Day.JPG"))
}

func TestGenerateKeyUnknownCategory(t *testing.T) {
	key := GenerateKey("malware", "x.png")
	assert.True(t, strings.HasPrefix(key, "misc/"))
}

func TestImageContentType(t *testing.T) {
	ct, err := ImageContentType("banner.webp")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", ct)

	_, err = ImageContentType("report.pdf")
	assert.Error(t, err)

	_, err = ImageContentType("no-extension")
	assert.Error(t, err)
}

func TestFileURL(t *testing.T) {
	m := &MediaStore{bucket: "sa-media", endpoint: "blr1.digitaloceanspaces.com"}
	assert.Equal(t, "https://sa-media.blr1.digitaloceanspaces.com/gallery/a.jpg", m.FileURL("gallery/a.jpg"))

	m.cdnURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com/gallery/a.jpg", m.FileURL("gallery/a.jpg"))
}
