package store

import (
	"context"

	"github.com/vtopia/nft-assistant/internal/domain"
)

// Store defines the interface for cache store operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertIngestionRecord creates or refreshes the ingestion record of a collection and returns its id
	UpsertIngestionRecord(ctx context.Context, collectionID string, canonicalName string) (int64, error)
	// IngestionRecordExists checks whether a collection has an ingestion record
	IngestionRecordExists(ctx context.Context, collectionID string) (bool, error)
	// GetIngestionRecord retrieves the ingestion record of a collection, nil if absent
	GetIngestionRecord(ctx context.Context, collectionID string) (*domain.IngestionRecord, error)

	// BulkUpsertMetadata writes the metadata of an ingestion in batches, keyed by mint address
	BulkUpsertMetadata(ctx context.Context, items []domain.NFTMetadata, record domain.IngestionRecord) error
	// FindMetadataByName retrieves the metadata with the exact name, nil if absent
	FindMetadataByName(ctx context.Context, name string) (*domain.NFTMetadata, error)
	// FindMetadataByMintAddress retrieves the metadata of a mint, nil if absent
	FindMetadataByMintAddress(ctx context.Context, mint domain.MintAddress) (*domain.NFTMetadata, error)
	// CountMetadataByCollection counts the metadata documents of a collection
	CountMetadataByCollection(ctx context.Context, collectionID string) (int64, error)

	// RecordFailedChunk appends a failed batch to the audit log
	RecordFailedChunk(ctx context.Context, chunk []domain.MintAddress, chunkIndex int, collectionID string, canonicalName string) error
	// ListFailedChunks lists the failed batches of a collection, oldest first
	ListFailedChunks(ctx context.Context, collectionID string) ([]domain.FailedChunk, error)
}
