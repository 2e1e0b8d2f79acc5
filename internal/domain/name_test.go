package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/domain"
)

func TestParseNFTName(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantCollection string
		wantEdition    string
		wantErr        bool
	}{
		{
			name:           "collection and edition",
			input:          "Okay Bears #42",
			wantCollection: "Okay Bears",
			wantEdition:    "#42",
		},
		{
			name:           "surrounding whitespace",
			input:          "  Mad Lads   #  7 ",
			wantCollection: "Mad Lads",
			wantEdition:    "#7",
		},
		{
			name:           "no space before marker",
			input:          "DeGods#1001",
			wantCollection: "DeGods",
			wantEdition:    "#1001",
		},
		{
			name:           "edition ends at the next marker",
			input:          "Okay Bears #1 #2",
			wantCollection: "Okay Bears",
			wantEdition:    "#1",
		},
		{
			name:    "marker directly after marker",
			input:   "Okay Bears ##5",
			wantErr: true,
		},
		{
			name:    "missing edition marker",
			input:   "Okay Bears 42",
			wantErr: true,
		},
		{
			name:    "missing collection",
			input:   "#42",
			wantErr: true,
		},
		{
			name:    "empty edition",
			input:   "Okay Bears #",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseNFTName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCollection, got.Collection)
			assert.Equal(t, tt.wantEdition, got.Edition)
		})
	}
}

func TestNFTName_FullName(t *testing.T) {
	n, err := domain.ParseNFTName("okay bears #42")
	require.NoError(t, err)

	assert.Equal(t, "Okay Bears #42", n.FullName("Okay Bears "))
	assert.Equal(t, "okay bears #42", n.String())
}

func TestNormalizeCollectionName(t *testing.T) {
	assert.Equal(t, "okay bears", domain.NormalizeCollectionName("  Okay   Bears "))
	assert.Equal(t, "", domain.NormalizeCollectionName("   "))
}

func TestIngestionSummary_Status(t *testing.T) {
	assert.Equal(t, domain.IngestionStatusCached, (&domain.IngestionSummary{Cached: true}).Status())
	assert.Equal(t, domain.IngestionStatusCompleted, (&domain.IngestionSummary{Persisted: 3}).Status())
	assert.Equal(t, domain.IngestionStatusPartial, (&domain.IngestionSummary{FailedChunks: []int{2}}).Status())
}

func TestErrors(t *testing.T) {
	assert.ErrorIs(t, domain.ErrCollectionNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, domain.ErrMetadataNotFound, domain.ErrNotFound)
	assert.False(t, domain.IsValidationError(domain.ErrNotFound))
	assert.Equal(t, "invalid address: empty", domain.NewValidationError("address", "empty").Error())
	assert.Equal(t, "bad", domain.NewValidationError("", "bad").Error())
}
