package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/cache"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/mocks"
)

const key = "nft:assistant:resolver:okay bears"

func setupCache(t *testing.T) (*mocks.MockRedisClient, cache.ResolverCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	redis := mocks.NewMockRedisClient(ctrl)
	return redis, cache.NewRedisResolverCache(redis, adapter.NewJSON(), "nft:assistant:", time.Hour)
}

func TestResolverCache_Get_Hit(t *testing.T) {
	redis, c := setupCache(t)

	redis.EXPECT().
		Get(gomock.Any(), key).
		Return([]byte(`{"collection_id":"hm-okb","canonical_name":"Okay Bears"}`), nil)

	ref, err := c.Get(context.Background(), "  Okay   BEARS ")
	require.NoError(t, err)
	assert.Equal(t, &domain.CollectionRef{CollectionID: "hm-okb", CanonicalName: "Okay Bears"}, ref)
}

func TestResolverCache_Get_Miss(t *testing.T) {
	redis, c := setupCache(t)

	redis.EXPECT().Get(gomock.Any(), key).Return(nil, adapter.ErrCacheMiss)

	ref, err := c.Get(context.Background(), "Okay Bears")
	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestResolverCache_Get_Errors(t *testing.T) {
	redis, c := setupCache(t)

	redis.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("connection refused"))
	_, err := c.Get(context.Background(), "Okay Bears")
	assert.Error(t, err)

	redis.EXPECT().Get(gomock.Any(), key).Return([]byte(`not json`), nil)
	_, err = c.Get(context.Background(), "Okay Bears")
	assert.Error(t, err)
}

func TestResolverCache_Set(t *testing.T) {
	redis, c := setupCache(t)

	redis.EXPECT().
		Set(gomock.Any(), key, gomock.Any(), time.Hour).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			assert.JSONEq(t, `{"collection_id":"hm-okb","canonical_name":"Okay Bears"}`, string(value))
			return nil
		})

	err := c.Set(context.Background(), "Okay Bears", domain.CollectionRef{CollectionID: "hm-okb", CanonicalName: "Okay Bears"})
	require.NoError(t, err)
}

func TestResolverCache_Invalidate(t *testing.T) {
	redis, c := setupCache(t)

	redis.EXPECT().Del(gomock.Any(), key).Return(nil)
	require.NoError(t, c.Invalidate(context.Background(), "okay bears"))
}
