package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/store/schema"
)

// nftMetadataFields is the number of parameters one nft_metadata row binds:
// id, name, symbol, description, image_url, json_uri, attributes, collection_id,
// collection_record_id, content_hash, raw, created_at, updated_at
const nftMetadataFields = 13

type pgStore struct {
	db             *gorm.DB
	writeBatchSize int
}

// NewPGStore creates a new PostgreSQL store instance.
// writeBatchSize caps the documents per bulk write, zero means domain.DEFAULT_METADATA_WRITE_BATCH.
func NewPGStore(db *gorm.DB, writeBatchSize int) Store {
	if writeBatchSize <= 0 {
		writeBatchSize = domain.DEFAULT_METADATA_WRITE_BATCH
	}
	return &pgStore{db: db, writeBatchSize: writeBatchSize}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the largest batch that stays under PostgreSQL's
// limit of 65535 bind parameters per statement, keeping a fixed headroom for
// ON CONFLICT parameters and GORM bookkeeping.
//
// Example: nft_metadata binds 13 fields → (65,535 - 1,000) / 13 = 4,964 rows/batch
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// UpsertIngestionRecord creates or refreshes the ingestion record of a collection and returns its id
func (s *pgStore) UpsertIngestionRecord(ctx context.Context, collectionID string, canonicalName string) (int64, error) {
	if collectionID == "" {
		return 0, domain.NewValidationError("collection_id", "collection id is required")
	}

	record := schema.CollectionInfo{
		CollectionID:  collectionID,
		CanonicalName: canonicalName,
	}

	// ON CONFLICT DO UPDATE makes RETURNING yield the existing id on a repeat ingestion
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"canonical_name", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert ingestion record: %w", err)
	}

	return record.ID, nil
}

// IngestionRecordExists checks whether a collection has an ingestion record
func (s *pgStore) IngestionRecordExists(ctx context.Context, collectionID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.CollectionInfo{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ingestion record: %w", err)
	}

	return count > 0, nil
}

// GetIngestionRecord retrieves the ingestion record of a collection, nil if absent
func (s *pgStore) GetIngestionRecord(ctx context.Context, collectionID string) (*domain.IngestionRecord, error) {
	var record schema.CollectionInfo
	err := s.db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingestion record: %w", err)
	}

	return &domain.IngestionRecord{
		ID:            record.ID,
		CollectionID:  record.CollectionID,
		CanonicalName: record.CanonicalName,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}, nil
}

// BulkUpsertMetadata writes the metadata of an ingestion in batches, keyed by mint address.
// Each batch is its own statement, a failing batch leaves the earlier ones in place.
func (s *pgStore) BulkUpsertMetadata(ctx context.Context, items []domain.NFTMetadata, record domain.IngestionRecord) error {
	if len(items) == 0 {
		return nil
	}

	rows, err := toSchemaMetadataRows(items, record)
	if err != nil {
		return err
	}

	batchSize := min(s.writeBatchSize, calculateSafeBatchSize(len(rows), nftMetadataFields))

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		batch := rows[start:end]

		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"symbol",
				"description",
				"image_url",
				"json_uri",
				"attributes",
				"collection_id",
				"collection_record_id",
				"content_hash",
				"raw",
				"updated_at",
			}),
		}).Create(&batch).Error
		if err != nil {
			return fmt.Errorf("failed to upsert metadata batch %d-%d: %w", start, end, err)
		}

		logger.DebugCtx(ctx, "upserted metadata batch",
			zap.String("collection_id", record.CollectionID),
			zap.Int("from", start),
			zap.Int("to", end))
	}

	return nil
}

// FindMetadataByName retrieves the metadata with the exact name, nil if absent
func (s *pgStore) FindMetadataByName(ctx context.Context, name string) (*domain.NFTMetadata, error) {
	var row schema.NFTMetadata
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find metadata by name: %w", err)
	}

	return toDomainMetadata(&row)
}

// FindMetadataByMintAddress retrieves the metadata of a mint, nil if absent
func (s *pgStore) FindMetadataByMintAddress(ctx context.Context, mint domain.MintAddress) (*domain.NFTMetadata, error) {
	var row schema.NFTMetadata
	err := s.db.WithContext(ctx).Where("id = ?", mint).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find metadata by mint address: %w", err)
	}

	return toDomainMetadata(&row)
}

// CountMetadataByCollection counts the metadata documents of a collection
func (s *pgStore) CountMetadataByCollection(ctx context.Context, collectionID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.NFTMetadata{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count metadata: %w", err)
	}

	return count, nil
}

// RecordFailedChunk appends a failed batch to the audit log
func (s *pgStore) RecordFailedChunk(ctx context.Context, chunk []domain.MintAddress, chunkIndex int, collectionID string, canonicalName string) error {
	chunkJSON, err := json.Marshal(chunk)
	if err != nil {
		return fmt.Errorf("failed to marshal chunk: %w", err)
	}

	row := schema.FailedChunk{
		Chunk:         datatypes.JSON(chunkJSON),
		ChunkIndex:    chunkIndex,
		CollectionID:  collectionID,
		CanonicalName: canonicalName,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record failed chunk: %w", err)
	}

	return nil
}

// ListFailedChunks lists the failed batches of a collection, oldest first
func (s *pgStore) ListFailedChunks(ctx context.Context, collectionID string) ([]domain.FailedChunk, error) {
	var rows []schema.FailedChunk
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list failed chunks: %w", err)
	}

	chunks := make([]domain.FailedChunk, 0, len(rows))
	for _, row := range rows {
		var mints []domain.MintAddress
		if err := json.Unmarshal(row.Chunk, &mints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chunk %d: %w", row.ID, err)
		}
		chunks = append(chunks, domain.FailedChunk{
			ID:            row.ID,
			Chunk:         mints,
			ChunkIndex:    row.ChunkIndex,
			CollectionID:  row.CollectionID,
			CanonicalName: row.CanonicalName,
			Timestamp:     row.CreatedAt,
		})
	}

	return chunks, nil
}

// toSchemaMetadataRows converts the items to rows of the ingestion record.
// A mint seen twice keeps its last document, one statement cannot upsert the same row twice.
func toSchemaMetadataRows(items []domain.NFTMetadata, record domain.IngestionRecord) ([]schema.NFTMetadata, error) {
	positions := make(map[string]int, len(items))
	rows := make([]schema.NFTMetadata, 0, len(items))

	var recordID *int64
	if record.ID != 0 {
		id := record.ID
		recordID = &id
	}

	for i := range items {
		item := &items[i]
		if item.ID == "" {
			return nil, fmt.Errorf("%w: id", domain.ErrMissingRequiredField)
		}

		var attributes datatypes.JSON
		if len(item.Attributes) > 0 {
			b, err := json.Marshal(item.Attributes)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal attributes of %s: %w", item.ID, err)
			}
			attributes = datatypes.JSON(b)
		}

		collectionID := item.CollectionID
		if record.CollectionID != "" {
			collectionID = record.CollectionID
		}

		row := schema.NFTMetadata{
			ID:                 item.ID,
			Name:               item.Name,
			Symbol:             optionalString(item.Symbol),
			Description:        optionalString(item.Description),
			ImageURL:           optionalString(item.Image),
			JSONURI:            optionalString(item.JSONURI),
			Attributes:         attributes,
			CollectionID:       collectionID,
			CollectionRecordID: recordID,
			ContentHash:        optionalString(item.ContentHash),
			Raw:                datatypes.JSON(item.Raw),
		}

		if pos, ok := positions[item.ID]; ok {
			rows[pos] = row
			continue
		}
		positions[item.ID] = len(rows)
		rows = append(rows, row)
	}

	return rows, nil
}

func toDomainMetadata(row *schema.NFTMetadata) (*domain.NFTMetadata, error) {
	var attributes []domain.Attribute
	if len(row.Attributes) > 0 {
		if err := json.Unmarshal(row.Attributes, &attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attributes of %s: %w", row.ID, err)
		}
	}

	metadata := &domain.NFTMetadata{
		ID:           row.ID,
		Name:         row.Name,
		Symbol:       derefString(row.Symbol),
		Description:  derefString(row.Description),
		Image:        derefString(row.ImageURL),
		JSONURI:      derefString(row.JSONURI),
		Attributes:   attributes,
		CollectionID: row.CollectionID,
		ContentHash:  derefString(row.ContentHash),
		Raw:          json.RawMessage(row.Raw),
	}
	if row.CollectionRecordID != nil {
		metadata.CollectionRecordID = *row.CollectionRecordID
	}

	return metadata, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
