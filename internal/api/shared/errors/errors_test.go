package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/vtopia/nft-assistant/internal/api/shared/errors"
	"github.com/vtopia/nft-assistant/internal/chat"
	"github.com/vtopia/nft-assistant/internal/domain"
)

func TestFromError(t *testing.T) {
	upstream := apierrors.NewUpstreamError("Failed to get wallet NFTs")

	tests := []struct {
		name       string
		err        error
		wantCode   apierrors.ErrorCode
		wantStatus int
	}{
		{name: "api error passthrough", err: fmt.Errorf("wrapped: %w", upstream), wantCode: apierrors.ErrCodeUpstreamError, wantStatus: http.StatusBadGateway},
		{name: "validation", err: domain.NewValidationError("nft_name", "missing edition"), wantCode: apierrors.ErrCodeValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "collection not found", err: fmt.Errorf("%w: %q", domain.ErrCollectionNotFound, "Nope"), wantCode: apierrors.ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "metadata not found", err: domain.ErrMetadataNotFound, wantCode: apierrors.ErrCodeNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown function", err: fmt.Errorf("%w: getWeather", chat.ErrUnknownFunction), wantCode: apierrors.ErrCodeBadRequest, wantStatus: http.StatusBadRequest},
		{name: "anything else", err: errors.New("connection refused"), wantCode: apierrors.ErrCodeInternalError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apierrors.FromError(tt.err, "Something failed")
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus())
		})
	}
}

func TestFromError_InternalHidesCause(t *testing.T) {
	got := apierrors.FromError(errors.New("pq: password authentication failed"), "Failed to get NFT metadata")
	assert.Equal(t, "Failed to get NFT metadata", got.Message)
	assert.Empty(t, got.Details)
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewNotFoundError("NFT metadata not found", "mint m1")
	assert.JSONEq(t, `{"code":"not_found","message":"NFT metadata not found","details":"mint m1"}`, err.Error())
}
