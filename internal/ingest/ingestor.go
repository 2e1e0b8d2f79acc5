package ingest

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/messaging"
	"github.com/vtopia/nft-assistant/internal/metrics"
	"github.com/vtopia/nft-assistant/internal/store"
)

// Ingestor answers NFT lookups from the cache store, ingesting the whole collection on a miss
//
//go:generate mockgen -source=ingestor.go -destination=../mocks/ingestor.go -package=mocks -mock_names=Ingestor=MockIngestor
type Ingestor interface {
	// GetMetadataByName returns the metadata of an NFT named "<collection> #<edition>".
	// The collection is ingested first when it has never been.
	GetMetadataByName(ctx context.Context, nftName string) (*domain.NFTMetadata, error)

	// GetMetadataByMint returns the cached metadata of a mint, or domain.ErrMetadataNotFound
	GetMetadataByMint(ctx context.Context, mint domain.MintAddress) (*domain.NFTMetadata, error)

	// EnsureIngested resolves a collection and ingests it unless it already has an ingestion record
	EnsureIngested(ctx context.Context, collectionName string) (*domain.IngestionSummary, error)
}

type ingestor struct {
	resolver  Resolver
	fetcher   Fetcher
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewIngestor creates an ingestor. publisher may be nil.
func NewIngestor(resolver Resolver, fetcher Fetcher, store store.Store, publisher messaging.Publisher, clock adapter.Clock) Ingestor {
	return &ingestor{
		resolver:  resolver,
		fetcher:   fetcher,
		store:     store,
		publisher: publisher,
		clock:     clock,
	}
}

func (i *ingestor) GetMetadataByName(ctx context.Context, nftName string) (*domain.NFTMetadata, error) {
	name, err := domain.ParseNFTName(nftName)
	if err != nil {
		return nil, err
	}

	summary, err := i.EnsureIngested(ctx, name.Collection)
	if err != nil {
		return nil, err
	}

	fullName := name.FullName(summary.Ref.CanonicalName)
	item, err := i.store.FindMetadataByName(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrMetadataNotFound, fullName)
	}

	return item, nil
}

func (i *ingestor) GetMetadataByMint(ctx context.Context, mint domain.MintAddress) (*domain.NFTMetadata, error) {
	if mint == "" {
		return nil, domain.NewValidationError("mint", "mint address is required")
	}

	item, err := i.store.FindMetadataByMintAddress(ctx, mint)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: mint %s", domain.ErrMetadataNotFound, mint)
	}

	return item, nil
}

func (i *ingestor) EnsureIngested(ctx context.Context, collectionName string) (*domain.IngestionSummary, error) {
	start := i.clock.Now()

	ref, err := i.resolver.Resolve(ctx, collectionName)
	if err != nil {
		return nil, err
	}

	exists, err := i.store.IngestionRecordExists(ctx, ref.CollectionID)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.DebugCtx(ctx, "collection already ingested", zap.String("collection_id", ref.CollectionID))
		summary := &domain.IngestionSummary{Ref: *ref, Cached: true}
		observeRun(summary, i.clock.Since(start).Seconds())
		return summary, nil
	}

	// Written before fetching, concurrent requests read whatever has been persisted so far.
	// A fatal failure below leaves the record in place until its collection_info row is deleted.
	recordID, err := i.store.UpsertIngestionRecord(ctx, ref.CollectionID, ref.CanonicalName)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "ingesting collection",
		zap.String("collection_id", ref.CollectionID),
		zap.String("canonical_name", ref.CanonicalName),
		zap.Int64("record_id", recordID))

	mints, err := i.fetcher.FetchMintAddresses(ctx, ref.CollectionID)
	if err != nil {
		return nil, err
	}

	result, err := i.fetcher.FetchMetadata(ctx, *ref, mints)
	if err != nil {
		return nil, err
	}

	record := domain.IngestionRecord{
		ID:            recordID,
		CollectionID:  ref.CollectionID,
		CanonicalName: ref.CanonicalName,
	}
	if err := i.store.BulkUpsertMetadata(ctx, result.Items, record); err != nil {
		return nil, err
	}

	summary := &domain.IngestionSummary{
		Ref:          *ref,
		RecordID:     recordID,
		MintCount:    len(mints),
		Persisted:    len(result.Items),
		Dropped:      result.Dropped,
		FailedChunks: result.FailedChunks,
	}

	metrics.MetadataPersisted.Add(float64(summary.Persisted))
	observeRun(summary, i.clock.Since(start).Seconds())

	logger.InfoCtx(ctx, "ingested collection",
		zap.String("collection_id", ref.CollectionID),
		zap.String("status", string(summary.Status())),
		zap.Int("mints", summary.MintCount),
		zap.Int("persisted", summary.Persisted),
		zap.Int("dropped", summary.Dropped),
		zap.Ints("failed_chunks", summary.FailedChunks))

	i.publish(ctx, summary)

	return summary, nil
}

// publish sends the ingestion event, a broker failure does not fail the ingestion
func (i *ingestor) publish(ctx context.Context, summary *domain.IngestionSummary) {
	if i.publisher == nil {
		return
	}

	now := i.clock.Now()
	event := &domain.IngestionEvent{
		EventID:       ulid.MustNewDefault(now).String(),
		Status:        summary.Status(),
		CollectionID:  summary.Ref.CollectionID,
		CanonicalName: summary.Ref.CanonicalName,
		RecordID:      summary.RecordID,
		MintCount:     summary.MintCount,
		Persisted:     summary.Persisted,
		Dropped:       summary.Dropped,
		FailedChunks:  summary.FailedChunks,
		OccurredAt:    now,
	}

	if err := i.publisher.PublishIngestionEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish ingestion event",
			zap.String("collection_id", summary.Ref.CollectionID),
			zap.Error(err))
	}
}

func observeRun(summary *domain.IngestionSummary, seconds float64) {
	status := string(summary.Status())
	metrics.IngestionRunsTotal.WithLabelValues(status).Inc()
	metrics.IngestionDuration.WithLabelValues(status).Observe(seconds)
}
