package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDirectoryCacheKeysShareInvalidationPrefix(t *testing.T) {
	// Every directory key — warmed or populated by a read-through miss —
	// must live under the prefix InvalidateDirectoryCache scans, or a
	// politician write would leave a stale page behind.
	for _, key := range []string{
		directoryCacheKey(1, 10),
		directoryCacheKey(3, 10),
		directoryCacheKey(7, 42),
	} {
		assert.True(t, strings.HasPrefix(key, directoryCachePrefix), "key %q", key)
	}
}

func TestDirectoryCacheKeyDistinguishesPages(t *testing.T) {
	assert.Equal(t, "directory:politicians:p1:s10", directoryCacheKey(1, 10))
	assert.NotEqual(t, directoryCacheKey(1, 10), directoryCacheKey(2, 10))
	assert.NotEqual(t, directoryCacheKey(1, 10), directoryCacheKey(1, 20))
}

func TestProfileCacheKeyPerPolitician(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, "profile:politician:"+id.Hex(), profileCacheKey(id))
	assert.NotEqual(t, profileCacheKey(id), profileCacheKey(primitive.NewObjectID()))
}
