package dto

import (
	"time"

	"github.com/vtopia/nft-assistant/internal/domain"
)

// NFTSource tells where NFT data was served from
type NFTSource string

const (
	NFTSourceCache   NFTSource = "cache"
	NFTSourceMoralis NFTSource = "moralis"
)

// NFTResponse represents a single NFT.
// Metadata is set when served from the cache store, Details when fetched live.
type NFTResponse struct {
	Source     NFTSource           `json:"source"`
	Metadata   *domain.NFTMetadata `json:"metadata,omitempty"`
	Details    *domain.NFTDetails  `json:"details,omitempty"`
	SolscanURL string              `json:"solscan_url"`
}

// WalletNFTListResponse represents the NFTs held by a wallet
type WalletNFTListResponse struct {
	Address string             `json:"address"`
	Items   []domain.WalletNFT `json:"items"`
}

// PopularCollectionListResponse represents trending collections over a time range
type PopularCollectionListResponse struct {
	TimeRange domain.TimeRange           `json:"time_range"`
	Items     []domain.PopularCollection `json:"items"`
}

// TriggerIngestionResponse represents the response for triggering a collection ingestion
type TriggerIngestionResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// FailedChunkListResponse represents the failed chunks audit of a collection
type FailedChunkListResponse struct {
	CollectionID string               `json:"collection_id"`
	Items        []domain.FailedChunk `json:"items"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
