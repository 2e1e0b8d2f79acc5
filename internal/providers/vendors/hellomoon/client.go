package hellomoon

import (
	"context"
	"fmt"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
)

const (
	PROVIDER_NAME = "hellomoon"

	SEARCH_STRATEGY_LEVENSHTEIN = "levenshtein"
)

// Collection is a collection candidate returned by the name search
type Collection struct {
	CollectionName        string `json:"collectionName"`
	HelloMoonCollectionID string `json:"helloMoonCollectionId"`
}

// Mint is one entry of a collection's mint list
type Mint struct {
	NFTMint string `json:"nftMint"`
}

type searchRequest struct {
	SearchStrategy string `json:"searchStrategy"`
	CollectionName string `json:"collectionName"`
}

type searchResponse struct {
	Data []Collection `json:"data"`
}

type mintsRequest struct {
	HelloMoonCollectionID string `json:"helloMoonCollectionId"`
	Limit                 int    `json:"limit"`
	Page                  int    `json:"page"`
}

type mintsResponse struct {
	Data []Mint `json:"data"`
}

// Client defines the interface for HelloMoon client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/hellomoon_client.go -package=mocks -mock_names=Client=MockHelloMoonClient
type Client interface {
	// SearchCollectionByName returns collection candidates ordered by edit distance to name
	SearchCollectionByName(ctx context.Context, name string) ([]Collection, error)

	// GetCollectionMints returns one page of mint addresses, pages start at 1.
	// Entries are returned as listed, blank ones included.
	// An empty page marks the end of the list.
	GetCollectionMints(ctx context.Context, collectionID string, limit int, page int) ([]string, error)
}

// HelloMoonClient implements HelloMoon client
type HelloMoonClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new HelloMoon client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &HelloMoonClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

func (c *HelloMoonClient) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
}

// SearchCollectionByName returns collection candidates ordered by edit distance to name
func (c *HelloMoonClient) SearchCollectionByName(ctx context.Context, name string) ([]Collection, error) {
	body, err := c.json.Marshal(searchRequest{
		SearchStrategy: SEARCH_STRATEGY_LEVENSHTEIN,
		CollectionName: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection search request: %w", err)
	}

	url := fmt.Sprintf("%s/v0/nft/collection/name", c.apiURL)
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostBytes(ctx, url, c.headers(), body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call HelloMoon collection search: %w", err)
	}

	var resp searchResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal HelloMoon collection search response: %w", err)
	}

	return resp.Data, nil
}

// GetCollectionMints returns one page of mint addresses
func (c *HelloMoonClient) GetCollectionMints(ctx context.Context, collectionID string, limit int, page int) ([]string, error) {
	body, err := c.json.Marshal(mintsRequest{
		HelloMoonCollectionID: collectionID,
		Limit:                 limit,
		Page:                  page,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mints request: %w", err)
	}

	url := fmt.Sprintf("%s/v0/nft/collection/mints", c.apiURL)
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostBytes(ctx, url, c.headers(), body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call HelloMoon mints for page %d: %w", page, err)
	}

	var resp mintsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal HelloMoon mints response: %w", err)
	}

	mints := make([]string, 0, len(resp.Data))
	for _, m := range resp.Data {
		mints = append(mints, m.NFTMint)
	}

	return mints, nil
}
