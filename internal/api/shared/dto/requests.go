package dto

import (
	"fmt"
	"strings"

	"github.com/vtopia/nft-assistant/internal/api/shared/constants"
	apierrors "github.com/vtopia/nft-assistant/internal/api/shared/errors"
)

// ChatRequest represents the request body of a chat query
type ChatRequest struct {
	Query string `json:"query"`
}

// Validate validates the request body
func (r *ChatRequest) Validate() error {
	r.Query = strings.TrimSpace(r.Query)
	if r.Query == "" {
		return apierrors.NewValidationError("query is required")
	}
	if len(r.Query) > constants.MAX_QUERY_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("query must be at most %d characters", constants.MAX_QUERY_LENGTH))
	}
	return nil
}

// TriggerIngestionRequest represents the request body for ingesting a collection in the background
type TriggerIngestionRequest struct {
	CollectionName string `json:"collection_name"`
}

// Validate validates the request body
func (r *TriggerIngestionRequest) Validate() error {
	r.CollectionName = strings.TrimSpace(r.CollectionName)
	if r.CollectionName == "" {
		return apierrors.NewValidationError("collection_name is required")
	}
	return nil
}
