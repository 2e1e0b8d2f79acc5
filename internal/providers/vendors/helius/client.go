package helius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
)

const (
	PROVIDER_NAME = "helius"

	JSONRPC_VERSION   = "2.0"
	METHOD_GET_ASSET  = "getAsset"
	REQUEST_ID_PREFIX = "asset-"
)

// ErrBatchSizeMismatch is returned when the RPC answers a different number of items than requested
var ErrBatchSizeMismatch = errors.New("batch response size mismatch")

// RPCRequest is a single JSON-RPC request of a batch
type RPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  AssetParams `json:"params"`
}

// AssetParams are the params of getAsset
type AssetParams struct {
	ID string `json:"id"`
}

// RPCError is a JSON-RPC error object
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// AssetResponse is a single JSON-RPC response of a batch.
// Result is kept raw; normalization decides which fields are required.
type AssetResponse struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RPCError       `json:"error,omitempty"`
}

// Client defines the interface for Helius client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/helius_client.go -package=mocks -mock_names=Client=MockHeliusClient
type Client interface {
	// GetAssetBatch fetches the assets of mints in one JSON-RPC batch call.
	// Responses are returned in request order.
	GetAssetBatch(ctx context.Context, mints []string) ([]AssetResponse, error)
}

// HeliusClient implements Helius client
type HeliusClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	rpcURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new Helius client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, rpcURL string, apiKey string, json adapter.JSON) Client {
	return &HeliusClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		rpcURL:         strings.TrimRight(rpcURL, "/"),
		apiKey:         apiKey,
		json:           json,
	}
}

// BuildBatch builds the getAsset batch for mints
func BuildBatch(mints []string) []RPCRequest {
	batch := make([]RPCRequest, len(mints))
	for i, mint := range mints {
		batch[i] = RPCRequest{
			JSONRPC: JSONRPC_VERSION,
			ID:      fmt.Sprintf("%s%d", REQUEST_ID_PREFIX, i),
			Method:  METHOD_GET_ASSET,
			Params:  AssetParams{ID: mint},
		}
	}
	return batch
}

// GetAssetBatch fetches the assets of mints in one JSON-RPC batch call
func (c *HeliusClient) GetAssetBatch(ctx context.Context, mints []string) ([]AssetResponse, error) {
	if len(mints) == 0 {
		return nil, nil
	}

	body, err := c.json.Marshal(BuildBatch(mints))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal getAsset batch: %w", err)
	}

	endpoint := fmt.Sprintf("%s/?api-key=%s", c.rpcURL, url.QueryEscape(c.apiKey))
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostBytes(ctx, endpoint, nil, body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Helius getAsset batch: %w", err)
	}

	var responses []AssetResponse
	if err := c.json.Unmarshal(respBody, &responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Helius getAsset batch response: %w", err)
	}

	if len(responses) != len(mints) {
		return nil, fmt.Errorf("%w: requested %d, got %d", ErrBatchSizeMismatch, len(mints), len(responses))
	}

	return responses, nil
}
