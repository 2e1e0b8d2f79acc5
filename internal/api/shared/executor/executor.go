package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/api/shared/constants"
	"github.com/vtopia/nft-assistant/internal/api/shared/dto"
	apierrors "github.com/vtopia/nft-assistant/internal/api/shared/errors"
	"github.com/vtopia/nft-assistant/internal/chat"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/ingest"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/providers/temporal"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/magiceden"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
	"github.com/vtopia/nft-assistant/internal/store"
	"github.com/vtopia/nft-assistant/internal/types"
	"github.com/vtopia/nft-assistant/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ask answers a free text question through the assistant
	Ask(ctx context.Context, query string) (*chat.Answer, error)

	// GetNFTByMint returns the cached metadata of a mint, falling back to Moralis
	GetNFTByMint(ctx context.Context, mint domain.MintAddress) (*dto.NFTResponse, error)

	// GetNFTByName returns the metadata of "<collection> #<n>", ingesting the collection when needed
	GetNFTByName(ctx context.Context, name string) (*dto.NFTResponse, error)

	// GetWalletNFTs lists the NFTs held by a wallet
	GetWalletNFTs(ctx context.Context, address string) (*dto.WalletNFTListResponse, error)

	// GetPopularCollections lists trending collections. An empty timeRange means one day and top <= 0 means the default.
	GetPopularCollections(ctx context.Context, timeRange string, top int) (*dto.PopularCollectionListResponse, error)

	// GetCollectionStats returns the marketplace statistics of a collection symbol
	GetCollectionStats(ctx context.Context, symbol string) (*domain.CollectionStats, error)

	// TriggerCollectionIngestion starts the background ingestion workflow of a collection
	TriggerCollectionIngestion(ctx context.Context, collectionName string) (*dto.TriggerIngestionResponse, error)

	// GetFailedChunks lists the failed chunks audit of a collection id
	GetFailedChunks(ctx context.Context, collectionID string) (*dto.FailedChunkListResponse, error)
}

type executor struct {
	assistant             chat.Assistant
	ingestor              ingest.Ingestor
	store                 store.Store
	moralis               moralis.Client
	magicEden             magiceden.Client
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

func NewExecutor(
	assistant chat.Assistant,
	ingestor ingest.Ingestor,
	store store.Store,
	moralisClient moralis.Client,
	magicEdenClient magiceden.Client,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Executor {
	return &executor{
		assistant:             assistant,
		ingestor:              ingestor,
		store:                 store,
		moralis:               moralisClient,
		magicEden:             magicEdenClient,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

func (e *executor) Ask(ctx context.Context, query string) (*chat.Answer, error) {
	answer, err := e.assistant.Ask(ctx, query)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to answer the query")
	}
	return answer, nil
}

func (e *executor) GetNFTByMint(ctx context.Context, mint domain.MintAddress) (*dto.NFTResponse, error) {
	mint = strings.TrimSpace(mint)
	if !types.IsSolanaAddress(mint) {
		return nil, apierrors.NewValidationError("mint must be a base58 Solana address")
	}

	metadata, err := e.ingestor.GetMetadataByMint(ctx, mint)
	if err == nil {
		return &dto.NFTResponse{
			Source:     dto.NFTSourceCache,
			Metadata:   metadata,
			SolscanURL: domain.SOLSCAN_TOKEN_URL_PREFIX + mint,
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apierrors.FromError(err, "Failed to get NFT metadata")
	}

	logger.DebugCtx(ctx, "Mint not cached, fetching from Moralis", zap.String("mint", mint))

	details, err := e.moralis.GetNFTDetails(ctx, mint)
	if err != nil {
		if errors.Is(err, moralis.ErrNoMetadataURI) {
			return nil, apierrors.NewNotFoundError("NFT metadata not found", err.Error())
		}
		return nil, apierrors.NewUpstreamError("Failed to get NFT details", err.Error())
	}

	return &dto.NFTResponse{
		Source:     dto.NFTSourceMoralis,
		Details:    details,
		SolscanURL: details.SolscanURL(),
	}, nil
}

func (e *executor) GetNFTByName(ctx context.Context, name string) (*dto.NFTResponse, error) {
	metadata, err := e.ingestor.GetMetadataByName(ctx, name)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get NFT metadata")
	}

	return &dto.NFTResponse{
		Source:     dto.NFTSourceCache,
		Metadata:   metadata,
		SolscanURL: domain.SOLSCAN_TOKEN_URL_PREFIX + metadata.ID,
	}, nil
}

func (e *executor) GetWalletNFTs(ctx context.Context, address string) (*dto.WalletNFTListResponse, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apierrors.NewValidationError("address is required")
	}
	if !types.IsSolanaAddress(address) {
		return nil, apierrors.NewValidationError("address must be a base58 Solana address")
	}

	nfts, err := e.moralis.GetWalletNFTs(ctx, address)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to get wallet NFTs", err.Error())
	}

	return &dto.WalletNFTListResponse{
		Address: address,
		Items:   moralis.ToDomainWalletNFTs(nfts),
	}, nil
}

func (e *executor) GetPopularCollections(ctx context.Context, timeRange string, top int) (*dto.PopularCollectionListResponse, error) {
	normalized, err := magiceden.NormalizeTimeRange(timeRange)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to get popular collections")
	}

	if top <= 0 {
		top = magiceden.DEFAULT_TOP
	}
	if top > constants.MAX_POPULAR_COLLECTIONS {
		top = constants.MAX_POPULAR_COLLECTIONS
	}

	collections, err := e.magicEden.GetPopularCollections(ctx, normalized, top)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to get popular collections", err.Error())
	}

	return &dto.PopularCollectionListResponse{
		TimeRange: normalized,
		Items:     collections,
	}, nil
}

func (e *executor) GetCollectionStats(ctx context.Context, symbol string) (*domain.CollectionStats, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, apierrors.NewValidationError("symbol is required")
	}

	stats, err := e.magicEden.GetCollectionStats(ctx, symbol)
	if err != nil {
		return nil, apierrors.NewUpstreamError("Failed to get collection stats", err.Error())
	}
	return stats, nil
}

func (e *executor) TriggerCollectionIngestion(ctx context.Context, collectionName string) (*dto.TriggerIngestionResponse, error) {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	// A running ingestion of the same collection is returned instead of starting a second one
	options := client.StartWorkflowOptions{
		ID:                    workflows.IngestionWorkflowID(collectionName),
		TaskQueue:             e.orchestratorTaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.IngestCollection, collectionName)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to trigger ingestion: %v", err))
	}

	return &dto.TriggerIngestionResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

func (e *executor) GetFailedChunks(ctx context.Context, collectionID string) (*dto.FailedChunkListResponse, error) {
	collectionID = strings.TrimSpace(collectionID)
	if collectionID == "" {
		return nil, apierrors.NewValidationError("collection id is required")
	}

	chunks, err := e.store.ListFailedChunks(ctx, collectionID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list failed chunks: %v", err))
	}
	if chunks == nil {
		chunks = []domain.FailedChunk{}
	}

	return &dto.FailedChunkListResponse{
		CollectionID: collectionID,
		Items:        chunks,
	}, nil
}
