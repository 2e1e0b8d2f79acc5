package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/metadata"
	"github.com/vtopia/nft-assistant/internal/metrics"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/hellomoon"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/helius"
	"github.com/vtopia/nft-assistant/internal/retry"
	"github.com/vtopia/nft-assistant/internal/store"
)

// FetcherConfig configures pagination, batching and retries of the bulk fetcher
type FetcherConfig struct {
	// MintPageSize is the page size of the mint address listing
	MintPageSize int
	// MaxPages caps the mint address pages, zero means unbounded
	MaxPages int
	// BatchSize is the number of mints per asset batch
	BatchSize int
	// BatchRetry applies to each asset batch
	BatchRetry retry.Policy
	// PaginationRetry applies to each mint address page
	PaginationRetry retry.Policy
}

// FetchResult is the outcome of fetching the metadata of a collection
type FetchResult struct {
	// Items are the valid metadata documents, in mint order
	Items []domain.NFTMetadata
	// Dropped counts the assets without the required fields
	Dropped int
	// FailedChunks lists the 1-based indices of the batches that exhausted their retries
	FailedChunks []int
	// Batches is the number of batches attempted
	Batches int
}

// Fetcher pulls the mint address list and the asset metadata of a collection
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/bulk_fetcher.go -package=mocks -mock_names=Fetcher=MockBulkFetcher
type Fetcher interface {
	// FetchMintAddresses pages through the mint addresses of a collection until an empty page
	FetchMintAddresses(ctx context.Context, collectionID string) ([]domain.MintAddress, error)

	// FetchMetadata fetches the metadata of mints in batches. A batch that exhausts its
	// retries is recorded as a failed chunk and skipped. Nothing is persisted.
	FetchMetadata(ctx context.Context, ref domain.CollectionRef, mints []domain.MintAddress) (*FetchResult, error)
}

type fetcher struct {
	config     FetcherConfig
	hellomoon  hellomoon.Client
	helius     helius.Client
	normalizer metadata.Normalizer
	store      store.Store
	retrier    *retry.Retrier
}

// NewFetcher creates a bulk fetcher
func NewFetcher(cfg FetcherConfig, hellomoonClient hellomoon.Client, heliusClient helius.Client, normalizer metadata.Normalizer, store store.Store, retrier *retry.Retrier) Fetcher {
	if cfg.MintPageSize <= 0 {
		cfg.MintPageSize = domain.DEFAULT_MINT_PAGE_SIZE
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DEFAULT_ASSET_BATCH_SIZE
	}
	if cfg.MaxPages < 0 {
		cfg.MaxPages = 0
	}

	return &fetcher{
		config:     cfg,
		hellomoon:  hellomoonClient,
		helius:     heliusClient,
		normalizer: normalizer,
		store:      store,
		retrier:    retrier,
	}
}

func (f *fetcher) FetchMintAddresses(ctx context.Context, collectionID string) ([]domain.MintAddress, error) {
	var mints []domain.MintAddress

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if f.config.MaxPages > 0 && page > f.config.MaxPages {
			logger.WarnCtx(ctx, "mint address listing reached the page cap",
				zap.String("collection_id", collectionID),
				zap.Int("max_pages", f.config.MaxPages),
				zap.Int("mints", len(mints)))
			break
		}

		var pageMints []string
		err := f.retrier.Do(ctx, f.config.PaginationRetry, func(ctx context.Context) error {
			var err error
			pageMints, err = f.hellomoon.GetCollectionMints(ctx, collectionID, f.config.MintPageSize, page)
			return retry.PermanentOnClientError(err)
		}, func(attempt int, err error, next time.Duration) {
			logger.WarnCtx(ctx, "mint address page failed, retrying",
				zap.String("collection_id", collectionID),
				zap.Int("page", page),
				zap.Int("attempt", attempt),
				zap.Error(err))
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch mint addresses page %d: %w", page, err)
		}

		if len(pageMints) == 0 {
			break
		}

		// blank entries are skipped but still count as a non-empty page
		for _, m := range pageMints {
			if strings.TrimSpace(m) != "" {
				mints = append(mints, m)
			}
		}
		logger.DebugCtx(ctx, "fetched mint address page",
			zap.String("collection_id", collectionID),
			zap.Int("page", page),
			zap.Int("count", len(pageMints)))
	}

	logger.InfoCtx(ctx, "fetched mint addresses",
		zap.String("collection_id", collectionID),
		zap.Int("count", len(mints)))

	return mints, nil
}

func (f *fetcher) FetchMetadata(ctx context.Context, ref domain.CollectionRef, mints []domain.MintAddress) (*FetchResult, error) {
	result := &FetchResult{
		Items: make([]domain.NFTMetadata, 0, len(mints)),
	}

	for start := 0; start < len(mints); start += f.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := min(start+f.config.BatchSize, len(mints))
		batch := mints[start:end]
		index := start/f.config.BatchSize + 1
		result.Batches++

		responses, err := f.fetchBatch(ctx, ref, batch, index)
		if err != nil {
			// a cancelled context is not a failed chunk
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			f.recordFailedChunk(ctx, ref, batch, index, err)
			result.FailedChunks = append(result.FailedChunks, index)
			continue
		}

		valid, dropped := f.normalizeBatch(ctx, ref, responses)
		result.Items = append(result.Items, valid...)
		result.Dropped += dropped

		metrics.FetcherBatchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		logger.InfoCtx(ctx, "fetched asset batch",
			zap.String("collection_id", ref.CollectionID),
			zap.Int("chunk", index),
			zap.Int("valid", len(valid)),
			zap.Int("dropped", dropped))
	}

	return result, nil
}

// fetchBatch fetches one batch under the batch retry policy, every error is
// retried until the policy gives up
func (f *fetcher) fetchBatch(ctx context.Context, ref domain.CollectionRef, batch []domain.MintAddress, index int) ([]helius.AssetResponse, error) {
	var responses []helius.AssetResponse
	err := f.retrier.Do(ctx, f.config.BatchRetry, func(ctx context.Context) error {
		var err error
		responses, err = f.helius.GetAssetBatch(ctx, batch)
		return err
	}, func(attempt int, err error, next time.Duration) {
		metrics.FetcherBatchRetries.Inc()
		metrics.FetcherBatchesTotal.WithLabelValues(metrics.OutcomeRetried).Inc()
		logger.WarnCtx(ctx, "asset batch failed, retrying",
			zap.String("collection_id", ref.CollectionID),
			zap.Int("chunk", index),
			zap.Int("attempt", attempt),
			zap.Duration("next", next),
			zap.Error(err))
	})

	return responses, err
}

// normalizeBatch keeps the assets that carry the required fields
func (f *fetcher) normalizeBatch(ctx context.Context, ref domain.CollectionRef, responses []helius.AssetResponse) ([]domain.NFTMetadata, int) {
	valid := make([]domain.NFTMetadata, 0, len(responses))
	dropped := 0

	for _, resp := range responses {
		if resp.Error != nil {
			dropped++
			logger.DebugCtx(ctx, "dropping asset with rpc error", zap.String("request_id", resp.ID), zap.Error(resp.Error))
			continue
		}

		item, err := f.normalizer.Normalize(resp.Result, ref)
		if err != nil {
			dropped++
			logger.DebugCtx(ctx, "dropping malformed asset", zap.String("request_id", resp.ID), zap.Error(err))
			continue
		}

		valid = append(valid, *item)
	}

	if dropped > 0 {
		metrics.FetcherDroppedItems.Add(float64(dropped))
	}

	return valid, dropped
}

// recordFailedChunk stores the audit entry of a batch, a storage failure is only logged
func (f *fetcher) recordFailedChunk(ctx context.Context, ref domain.CollectionRef, batch []domain.MintAddress, index int, cause error) {
	metrics.FetcherBatchesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
	metrics.FetcherFailedChunks.Inc()

	logger.ErrorCtx(ctx, fmt.Errorf("asset batch exhausted its retries: %w", cause),
		zap.String("collection_id", ref.CollectionID),
		zap.Int("chunk", index),
		zap.Int("size", len(batch)))

	if err := f.store.RecordFailedChunk(ctx, batch, index, ref.CollectionID, ref.CanonicalName); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record failed chunk: %w", err),
			zap.String("collection_id", ref.CollectionID),
			zap.Int("chunk", index))
	}
}
