package assets

import (
	"context"
	"testing"

	"cellcontrol/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBlobStore(bucket)

	_, err := store.Get(ctx, "qrcodes/missing.png")
	assert.ErrorIs(t, err, service.ErrAssetNotFound)

	require.NoError(t, store.Put(ctx, "qrcodes/store.png", []byte{0x89, 'P', 'N', 'G'}, "image/png"))

	data, err := store.Get(ctx, "qrcodes/store.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

	attrs, err := bucket.Attributes(ctx, "qrcodes/store.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "qrcodes/store.png"))
	require.NoError(t, store.Delete(ctx, "qrcodes/store.png"))
	_, err = store.Get(ctx, "qrcodes/store.png")
	assert.ErrorIs(t, err, service.ErrAssetNotFound)
}
