package schema

import "time"

// CollectionInfo represents the collection_info table.
// A row marks a collection as ingested; there is at most one per provider collection id.
type CollectionInfo struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CollectionID  string    `gorm:"column:collection_id;not null;uniqueIndex:idx_collection_info_collection_id;type:text"`
	CanonicalName string    `gorm:"column:canonical_name;not null;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CollectionInfo model
func (CollectionInfo) TableName() string {
	return "collection_info"
}
