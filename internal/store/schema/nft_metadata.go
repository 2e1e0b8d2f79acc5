package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFTMetadata represents the nft_metadata table - one normalized provider document per mint
type NFTMetadata struct {
	// ID is the mint address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the full NFT name, e.g. "Okay Bears #42" (indexed for exact-name lookups)
	Name        string  `gorm:"column:name;not null;type:text;index:idx_nft_metadata_name"`
	Symbol      *string `gorm:"column:symbol;type:text"`
	Description *string `gorm:"column:description;type:text"`
	ImageURL    *string `gorm:"column:image_url;type:text"`
	JSONURI     *string `gorm:"column:json_uri;type:text"`
	// Attributes is the trait list as a JSON array
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// CollectionID is the provider collection id the NFT was ingested under
	CollectionID string `gorm:"column:collection_id;not null;type:text;index:idx_nft_metadata_collection_id"`
	// CollectionRecordID references the collection_info row of the ingestion
	CollectionRecordID *int64 `gorm:"column:collection_record_id"`
	// ContentHash is the sha256 of the canonicalized raw document
	ContentHash *string `gorm:"column:content_hash;type:text"`
	// Raw is the full provider document
	Raw       datatypes.JSON `gorm:"column:raw;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NFTMetadata model
func (NFTMetadata) TableName() string {
	return "nft_metadata"
}
