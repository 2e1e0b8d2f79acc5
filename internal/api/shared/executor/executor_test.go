package executor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/vtopia/nft-assistant/internal/api/shared/dto"
	apierrors "github.com/vtopia/nft-assistant/internal/api/shared/errors"
	"github.com/vtopia/nft-assistant/internal/api/shared/executor"
	"github.com/vtopia/nft-assistant/internal/chat"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/mocks"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
)

const (
	testTaskQueue = "ingestion"
	testMint      = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	testWallet    = "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH"
)

type executorMocks struct {
	ctrl         *gomock.Controller
	assistant    *mocks.MockAssistant
	ingestor     *mocks.MockIngestor
	store        *mocks.MockStore
	moralis      *mocks.MockMoralisClient
	magicEden    *mocks.MockMagicEdenClient
	orchestrator *mocks.MockTemporalOrchestrator
}

func setupExecutor(t *testing.T) (*executorMocks, executor.Executor) {
	ctrl := gomock.NewController(t)
	m := &executorMocks{
		ctrl:         ctrl,
		assistant:    mocks.NewMockAssistant(ctrl),
		ingestor:     mocks.NewMockIngestor(ctrl),
		store:        mocks.NewMockStore(ctrl),
		moralis:      mocks.NewMockMoralisClient(ctrl),
		magicEden:    mocks.NewMockMagicEdenClient(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}
	exec := executor.NewExecutor(m.assistant, m.ingestor, m.store, m.moralis, m.magicEden, m.orchestrator, testTaskQueue)
	return m, exec
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func TestExecutor_Ask(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	answer := &chat.Answer{Kind: chat.AnswerKindText, Text: "gm"}
	m.assistant.EXPECT().Ask(ctx, "gm").Return(answer, nil)

	got, err := exec.Ask(ctx, "gm")
	require.NoError(t, err)
	assert.Equal(t, answer, got)
}

func TestExecutor_Ask_UnknownFunction(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.assistant.EXPECT().Ask(ctx, "weather?").Return(nil, fmt.Errorf("%w: getWeather", chat.ErrUnknownFunction))

	_, err := exec.Ask(ctx, "weather?")
	requireAPIError(t, err, apierrors.ErrCodeBadRequest)
}

func TestExecutor_GetNFTByMint_Cached(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	metadata := &domain.NFTMetadata{ID: testMint, Name: "Okay Bears #1"}
	m.ingestor.EXPECT().GetMetadataByMint(ctx, testMint).Return(metadata, nil)

	got, err := exec.GetNFTByMint(ctx, " "+testMint+" ")
	require.NoError(t, err)
	assert.Equal(t, dto.NFTSourceCache, got.Source)
	assert.Equal(t, metadata, got.Metadata)
	assert.Equal(t, "https://solscan.io/token/"+testMint, got.SolscanURL)
}

func TestExecutor_GetNFTByMint_FallsBackToMoralis(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	details := &domain.NFTDetails{Mint: testMint, Name: "Okay Bears #1"}
	gomock.InOrder(
		m.ingestor.EXPECT().GetMetadataByMint(ctx, testMint).Return(nil, fmt.Errorf("%w: mint m1", domain.ErrMetadataNotFound)),
		m.moralis.EXPECT().GetNFTDetails(ctx, testMint).Return(details, nil),
	)

	got, err := exec.GetNFTByMint(ctx, testMint)
	require.NoError(t, err)
	assert.Equal(t, dto.NFTSourceMoralis, got.Source)
	assert.Equal(t, details, got.Details)
	assert.Nil(t, got.Metadata)
}

func TestExecutor_GetNFTByMint_Errors(t *testing.T) {
	tests := []struct {
		name       string
		storeErr   error
		moralisErr error
		wantCode   apierrors.ErrorCode
	}{
		{name: "store failure", storeErr: errors.New("connection refused"), wantCode: apierrors.ErrCodeInternalError},
		{name: "no metadata uri", storeErr: domain.ErrMetadataNotFound, moralisErr: moralis.ErrNoMetadataURI, wantCode: apierrors.ErrCodeNotFound},
		{name: "moralis failure", storeErr: domain.ErrMetadataNotFound, moralisErr: errors.New("status 500"), wantCode: apierrors.ErrCodeUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			ctx := context.Background()
			m.ingestor.EXPECT().GetMetadataByMint(ctx, testMint).Return(nil, tt.storeErr)
			if tt.moralisErr != nil {
				m.moralis.EXPECT().GetNFTDetails(ctx, testMint).Return(nil, tt.moralisErr)
			}

			got, err := exec.GetNFTByMint(ctx, testMint)
			assert.Nil(t, got)
			requireAPIError(t, err, tt.wantCode)
		})
	}
}

func TestExecutor_GetNFTByMint_InvalidMint(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	_, err := exec.GetNFTByMint(context.Background(), "not-a-mint")
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestExecutor_GetNFTByName(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.ingestor.EXPECT().GetMetadataByName(ctx, "okay bears #42").Return(&domain.NFTMetadata{ID: "m42", Name: "Okay Bears #42"}, nil)

	got, err := exec.GetNFTByName(ctx, "okay bears #42")
	require.NoError(t, err)
	assert.Equal(t, "Okay Bears #42", got.Metadata.Name)
	assert.Equal(t, "https://solscan.io/token/m42", got.SolscanURL)
}

func TestExecutor_GetNFTByName_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode apierrors.ErrorCode
	}{
		{name: "validation", err: domain.NewValidationError("nft_name", "missing edition"), wantCode: apierrors.ErrCodeValidationFailed},
		{name: "collection not found", err: domain.ErrCollectionNotFound, wantCode: apierrors.ErrCodeNotFound},
		{name: "nft not found", err: domain.ErrMetadataNotFound, wantCode: apierrors.ErrCodeNotFound},
		{name: "pagination failure", err: errors.New("page 2: status 503"), wantCode: apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			ctx := context.Background()
			m.ingestor.EXPECT().GetMetadataByName(ctx, "Okay Bears").Return(nil, tt.err)

			_, err := exec.GetNFTByName(ctx, "Okay Bears")
			requireAPIError(t, err, tt.wantCode)
		})
	}
}

func TestExecutor_GetWalletNFTs(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.moralis.EXPECT().GetWalletNFTs(ctx, testWallet).Return([]moralis.WalletNFT{
		{Mint: testMint, Name: "Okay Bears #1", Symbol: "OKB", AssociatedTokenAddress: "ata1", Amount: "1"},
	}, nil)

	got, err := exec.GetWalletNFTs(ctx, testWallet)
	require.NoError(t, err)
	assert.Equal(t, testWallet, got.Address)
	assert.Equal(t, []domain.WalletNFT{{Mint: testMint, Name: "Okay Bears #1", Symbol: "OKB", AssociatedTokenAddress: "ata1", Amount: "1"}}, got.Items)
}

func TestExecutor_GetWalletNFTs_InvalidAddress(t *testing.T) {
	for _, address := range []string{"  ", "wallet1", "0x5FbDB2315678afecb367f032d93F642f64180aa3"} {
		t.Run(address, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			_, err := exec.GetWalletNFTs(context.Background(), address)
			requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
		})
	}
}

func TestExecutor_GetPopularCollections(t *testing.T) {
	tests := []struct {
		name      string
		timeRange string
		top       int
		wantRange domain.TimeRange
		wantTop   int
	}{
		{name: "defaults", timeRange: "", top: 0, wantRange: domain.TimeRange1d, wantTop: 10},
		{name: "bucketed range", timeRange: "3d", top: 5, wantRange: domain.TimeRange7d, wantTop: 5},
		{name: "top capped", timeRange: "30d", top: 500, wantRange: domain.TimeRange30d, wantTop: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			ctx := context.Background()
			collections := []domain.PopularCollection{{Symbol: "okay_bears", Name: "Okay Bears"}}
			m.magicEden.EXPECT().GetPopularCollections(ctx, tt.wantRange, tt.wantTop).Return(collections, nil)

			got, err := exec.GetPopularCollections(ctx, tt.timeRange, tt.top)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRange, got.TimeRange)
			assert.Equal(t, collections, got.Items)
		})
	}
}

func TestExecutor_GetPopularCollections_InvalidRange(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	_, err := exec.GetPopularCollections(context.Background(), "forever", 0)
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestExecutor_GetCollectionStats(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	stats := &domain.CollectionStats{Symbol: "okay_bears", FloorPrice: 12.5, ListedCount: 300}
	m.magicEden.EXPECT().GetCollectionStats(ctx, "okay_bears").Return(stats, nil)

	got, err := exec.GetCollectionStats(ctx, "okay_bears")
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	m.magicEden.EXPECT().GetCollectionStats(ctx, "gone").Return(nil, errors.New("status 404"))
	_, err = exec.GetCollectionStats(ctx, "gone")
	requireAPIError(t, err, apierrors.ErrCodeUpstreamError)
}

func TestExecutor_TriggerCollectionIngestion(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	run := mocks.NewMockWorkflowRun(m.ctrl)
	run.EXPECT().GetID().Return("ingest-collection-okay-bears")
	run.EXPECT().GetRunID().Return("run-1")

	m.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), "Okay Bears").
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "ingest-collection-okay-bears", options.ID)
			assert.Equal(t, testTaskQueue, options.TaskQueue)
			assert.Equal(t, enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE, options.WorkflowIDReusePolicy)
			return run, nil
		})

	got, err := exec.TriggerCollectionIngestion(ctx, "Okay Bears")
	require.NoError(t, err)
	assert.Equal(t, "ingest-collection-okay-bears", got.WorkflowID)
	assert.Equal(t, "run-1", got.RunID)
}

func TestExecutor_TriggerCollectionIngestion_Error(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.orchestrator.EXPECT().ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), "Okay Bears").Return(nil, errors.New("temporal unavailable"))

	_, err := exec.TriggerCollectionIngestion(ctx, "Okay Bears")
	requireAPIError(t, err, apierrors.ErrCodeServiceError)
}

func TestExecutor_GetFailedChunks(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().ListFailedChunks(ctx, "hm-okb").Return(nil, nil)

	got, err := exec.GetFailedChunks(ctx, "hm-okb")
	require.NoError(t, err)
	assert.Equal(t, "hm-okb", got.CollectionID)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)

	m.store.EXPECT().ListFailedChunks(ctx, "hm-okb").Return(nil, errors.New("connection refused"))
	_, err = exec.GetFailedChunks(ctx, "hm-okb")
	requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
}
