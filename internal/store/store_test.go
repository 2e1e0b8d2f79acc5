package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestMetadata creates a normalized metadata document
func buildTestMetadata(mint, name, collectionID string) domain.NFTMetadata {
	raw := fmt.Sprintf(`{"id":%q,"content":{"metadata":{"name":%q}}}`, mint, name)
	return domain.NFTMetadata{
		ID:          mint,
		Name:        name,
		Symbol:      "okay_bears",
		Image:       "https://arweave.net/" + mint + ".png",
		JSONURI:     "https://arweave.net/" + mint + ".json",
		Attributes:  []domain.Attribute{{TraitType: "Fur", Value: "Brown"}},
		ContentHash: "hash-" + mint,
		Raw:         json.RawMessage(raw),
		// overwritten by the ingestion record
		CollectionID: "ignored",
	}
}

// buildTestMetadataItems creates n documents named "<name> #<i>"
func buildTestMetadataItems(collectionID, name string, n int) []domain.NFTMetadata {
	items := make([]domain.NFTMetadata, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, buildTestMetadata(fmt.Sprintf("%s-mint-%d", collectionID, i), fmt.Sprintf("%s #%d", name, i), collectionID))
	}
	return items
}

func mustUpsertRecord(t *testing.T, store Store, collectionID, name string) domain.IngestionRecord {
	id, err := store.UpsertIngestionRecord(context.Background(), collectionID, name)
	require.NoError(t, err)
	require.NotZero(t, id)
	return domain.IngestionRecord{ID: id, CollectionID: collectionID, CanonicalName: name}
}

// RunStoreTests runs the store contract tests against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{name: "IngestionRecord", fn: testIngestionRecord},
		{name: "BulkUpsertMetadata", fn: testBulkUpsertMetadata},
		{name: "FindMetadata", fn: testFindMetadata},
		{name: "FailedChunks", fn: testFailedChunks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

// =============================================================================
// Test: IngestionRecord
// =============================================================================

func testIngestionRecord(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("absent collection has no record", func(t *testing.T) {
		exists, err := store.IngestionRecordExists(ctx, "hm-absent")
		require.NoError(t, err)
		assert.False(t, exists)

		record, err := store.GetIngestionRecord(ctx, "hm-absent")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("upsert is idempotent per collection id", func(t *testing.T) {
		first, err := store.UpsertIngestionRecord(ctx, "hm-okb", "Okay Bears")
		require.NoError(t, err)

		second, err := store.UpsertIngestionRecord(ctx, "hm-okb", "Okay Bears")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		exists, err := store.IngestionRecordExists(ctx, "hm-okb")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("upsert refreshes the canonical name", func(t *testing.T) {
		id, err := store.UpsertIngestionRecord(ctx, "hm-rename", "Old Name")
		require.NoError(t, err)

		again, err := store.UpsertIngestionRecord(ctx, "hm-rename", "New Name")
		require.NoError(t, err)
		assert.Equal(t, id, again)

		record, err := store.GetIngestionRecord(ctx, "hm-rename")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, id, record.ID)
		assert.Equal(t, "New Name", record.CanonicalName)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("empty collection id is rejected", func(t *testing.T) {
		_, err := store.UpsertIngestionRecord(ctx, "", "Nameless")
		assert.True(t, domain.IsValidationError(err))
	})
}

// =============================================================================
// Test: BulkUpsertMetadata
// =============================================================================

func testBulkUpsertMetadata(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("empty input is a no-op", func(t *testing.T) {
		require.NoError(t, store.BulkUpsertMetadata(ctx, nil, domain.IngestionRecord{}))
	})

	t.Run("writes every item under the record", func(t *testing.T) {
		record := mustUpsertRecord(t, store, "hm-bulk", "Bulk Bears")
		items := buildTestMetadataItems("hm-bulk", "Bulk Bears", 25)

		require.NoError(t, store.BulkUpsertMetadata(ctx, items, record))

		count, err := store.CountMetadataByCollection(ctx, "hm-bulk")
		require.NoError(t, err)
		assert.Equal(t, int64(25), count)

		got, err := store.FindMetadataByMintAddress(ctx, items[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hm-bulk", got.CollectionID)
		assert.Equal(t, record.ID, got.CollectionRecordID)
	})

	t.Run("re-ingesting updates in place", func(t *testing.T) {
		record := mustUpsertRecord(t, store, "hm-again", "Again")
		items := buildTestMetadataItems("hm-again", "Again", 3)
		require.NoError(t, store.BulkUpsertMetadata(ctx, items, record))

		items[1].Image = "https://example.com/new.png"
		require.NoError(t, store.BulkUpsertMetadata(ctx, items, record))

		count, err := store.CountMetadataByCollection(ctx, "hm-again")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		got, err := store.FindMetadataByMintAddress(ctx, items[1].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "https://example.com/new.png", got.Image)
	})

	t.Run("duplicate mints keep the last document", func(t *testing.T) {
		record := mustUpsertRecord(t, store, "hm-dup", "Dup")
		first := buildTestMetadata("dup-mint", "Dup #1", "hm-dup")
		last := buildTestMetadata("dup-mint", "Dup #1", "hm-dup")
		last.Description = "latest"

		require.NoError(t, store.BulkUpsertMetadata(ctx, []domain.NFTMetadata{first, last}, record))

		got, err := store.FindMetadataByMintAddress(ctx, "dup-mint")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "latest", got.Description)
	})

	t.Run("item without id is rejected", func(t *testing.T) {
		err := store.BulkUpsertMetadata(ctx, []domain.NFTMetadata{{Name: "No Id #1"}}, domain.IngestionRecord{CollectionID: "x"})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	})
}

// =============================================================================
// Test: FindMetadata
// =============================================================================

func testFindMetadata(t *testing.T, store Store) {
	ctx := context.Background()

	record := mustUpsertRecord(t, store, "hm-find", "Okay Bears")
	items := buildTestMetadataItems("hm-find", "Okay Bears", 50)
	require.NoError(t, store.BulkUpsertMetadata(ctx, items, record))

	t.Run("by exact name", func(t *testing.T) {
		got, err := store.FindMetadataByName(ctx, "Okay Bears #42")
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "hm-find-mint-42", got.ID)
		assert.Equal(t, "Okay Bears #42", got.Name)
		assert.Equal(t, "okay_bears", got.Symbol)
		assert.Equal(t, "hash-hm-find-mint-42", got.ContentHash)
		assert.Equal(t, []domain.Attribute{{TraitType: "Fur", Value: "Brown"}}, got.Attributes)
		assert.JSONEq(t, `{"id":"hm-find-mint-42","content":{"metadata":{"name":"Okay Bears #42"}}}`, string(got.Raw))
	})

	t.Run("name match is exact", func(t *testing.T) {
		got, err := store.FindMetadataByName(ctx, "okay bears #42")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.FindMetadataByName(ctx, "Okay Bears #4")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hm-find-mint-4", got.ID)
	})

	t.Run("unknown mint", func(t *testing.T) {
		got, err := store.FindMetadataByMintAddress(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: FailedChunks
// =============================================================================

func testFailedChunks(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.RecordFailedChunk(ctx, []domain.MintAddress{"a", "b"}, 2, "hm-fail", "Failing"))
	require.NoError(t, store.RecordFailedChunk(ctx, []domain.MintAddress{"c"}, 5, "hm-fail", "Failing"))
	require.NoError(t, store.RecordFailedChunk(ctx, []domain.MintAddress{"z"}, 1, "hm-other", "Other"))

	chunks, err := store.ListFailedChunks(ctx, "hm-fail")
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	assert.Equal(t, []domain.MintAddress{"a", "b"}, chunks[0].Chunk)
	assert.Equal(t, 2, chunks[0].ChunkIndex)
	assert.Equal(t, "Failing", chunks[0].CanonicalName)
	assert.False(t, chunks[0].Timestamp.IsZero())
	assert.Equal(t, 5, chunks[1].ChunkIndex)

	none, err := store.ListFailedChunks(ctx, "hm-none")
	require.NoError(t, err)
	assert.Empty(t, none)
}
