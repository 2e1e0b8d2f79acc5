package domain

import (
	"encoding/json"
	"time"
)

// MintAddress is the on-chain identifier of a single NFT
type MintAddress = string

// CollectionRef is the canonical identity of a collection as returned by the collection resolver
type CollectionRef struct {
	CollectionID  string `json:"collection_id"`
	CanonicalName string `json:"canonical_name"`
}

// Attribute represents a single trait of an NFT
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// NFTMetadata represents the normalized metadata of a single NFT
type NFTMetadata struct {
	// ID is the mint address (provider asset id)
	ID          MintAddress `json:"id"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	JSONURI     string      `json:"json_uri,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	// CollectionID is the provider collection id the NFT was ingested under
	CollectionID string `json:"collection_id,omitempty"`
	// CollectionRecordID references the ingestion record in the cache store
	CollectionRecordID int64 `json:"collection_record_id,omitempty"`
	// ContentHash is the sha256 of the canonicalized raw provider document
	ContentHash string `json:"content_hash,omitempty"`
	// Raw is the full provider document
	Raw json.RawMessage `json:"raw,omitempty"`
}

// IngestionRecord marks a collection as fully ingested into the cache store
type IngestionRecord struct {
	ID            int64     `json:"id"`
	CollectionID  string    `json:"collection_id"`
	CanonicalName string    `json:"canonical_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FailedChunk is an audit entry for a batch of mint addresses that could not be fetched
type FailedChunk struct {
	ID            int64         `json:"id"`
	Chunk         []MintAddress `json:"chunk"`
	ChunkIndex    int           `json:"chunk_index"`
	CollectionID  string        `json:"collection_id"`
	CanonicalName string        `json:"canonical_name"`
	Timestamp     time.Time     `json:"timestamp"`
}

// IngestionStatus represents the outcome of an ingestion run
type IngestionStatus string

const (
	IngestionStatusCached    IngestionStatus = "cached"
	IngestionStatusCompleted IngestionStatus = "completed"
	IngestionStatusPartial   IngestionStatus = "partial"
)

// IngestionSummary describes the result of ensuring a collection is ingested
type IngestionSummary struct {
	Ref          CollectionRef `json:"collection"`
	RecordID     int64         `json:"record_id"`
	Cached       bool          `json:"cached"`
	MintCount    int           `json:"mint_count"`
	Persisted    int           `json:"persisted"`
	Dropped      int           `json:"dropped"`
	FailedChunks []int         `json:"failed_chunks,omitempty"`
}

// Status returns the ingestion status derived from the summary
func (s *IngestionSummary) Status() IngestionStatus {
	if s.Cached {
		return IngestionStatusCached
	}
	if len(s.FailedChunks) > 0 {
		return IngestionStatusPartial
	}
	return IngestionStatusCompleted
}

// IngestionEvent is published after a collection has been ingested
type IngestionEvent struct {
	EventID       string          `json:"event_id"`
	Status        IngestionStatus `json:"status"`
	CollectionID  string          `json:"collection_id"`
	CanonicalName string          `json:"canonical_name"`
	RecordID      int64           `json:"record_id"`
	MintCount     int             `json:"mint_count"`
	Persisted     int             `json:"persisted"`
	Dropped       int             `json:"dropped"`
	FailedChunks  []int           `json:"failed_chunks,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// WalletNFT represents an NFT held by a wallet
type WalletNFT struct {
	Mint                   MintAddress `json:"mint"`
	Name                   string      `json:"name"`
	Symbol                 string      `json:"symbol,omitempty"`
	AssociatedTokenAddress string      `json:"associated_token_address,omitempty"`
	Amount                 string      `json:"amount,omitempty"`
}

// NFTDetails is the merged view of on-chain metadata and the off-chain metadata document
type NFTDetails struct {
	Mint                 MintAddress            `json:"mint"`
	Name                 string                 `json:"name,omitempty"`
	Symbol               string                 `json:"symbol,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Image                string                 `json:"image,omitempty"`
	ExternalURL          string                 `json:"external_url,omitempty"`
	Edition              interface{}            `json:"edition,omitempty"`
	Standard             string                 `json:"standard,omitempty"`
	UpdateAuthority      string                 `json:"update_authority,omitempty"`
	SellerFeeBasisPoints *int                   `json:"seller_fee_basis_points,omitempty"`
	PrimarySaleHappened  interface{}            `json:"primary_sale_happened,omitempty"`
	IsMutable            *bool                  `json:"is_mutable,omitempty"`
	MasterEdition        *bool                  `json:"master_edition,omitempty"`
	Owners               json.RawMessage        `json:"owners,omitempty"`
	Traits               map[string]interface{} `json:"traits,omitempty"`
	Properties           json.RawMessage        `json:"properties,omitempty"`
}

// SolscanURL returns the explorer link of the NFT
func (d *NFTDetails) SolscanURL() string {
	return SOLSCAN_TOKEN_URL_PREFIX + d.Mint
}

// TimeRange is a marketplace statistics window
type TimeRange string

const (
	TimeRange1h  TimeRange = "1h"
	TimeRange1d  TimeRange = "1d"
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
)

// CollectionStats represents marketplace statistics of a collection, prices in SOL
type CollectionStats struct {
	Symbol       string   `json:"symbol"`
	FloorPrice   float64  `json:"floor_price"`
	ListedCount  int64    `json:"listed_count"`
	VolumeAll    float64  `json:"volume_all"`
	AvgPrice24hr *float64 `json:"avg_price_24hr,omitempty"`
}

// PopularCollection represents a trending collection, prices in SOL
type PopularCollection struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Image      string  `json:"image,omitempty"`
	FloorPrice float64 `json:"floor_price"`
	VolumeAll  float64 `json:"volume_all,omitempty"`
	HasCNFTs   bool    `json:"has_cnfts,omitempty"`
}
