package schema

import (
	"time"

	"gorm.io/datatypes"
)

// FailedChunk represents the failed_chunks table - append-only audit of batches that exhausted their retries
type FailedChunk struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Chunk is the list of mint addresses of the batch as a JSON array
	Chunk datatypes.JSON `gorm:"column:chunk;not null;type:jsonb"`
	// ChunkIndex is the 1-based position of the batch in the collection
	ChunkIndex    int       `gorm:"column:chunk_index;not null"`
	CollectionID  string    `gorm:"column:collection_id;not null;type:text;index:idx_failed_chunks_collection_id"`
	CanonicalName string    `gorm:"column:canonical_name;not null;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FailedChunk model
func (FailedChunk) TableName() string {
	return "failed_chunks"
}
