package magiceden

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
)

const (
	PROVIDER_NAME = "magiceden"

	DEFAULT_TOP = 10
)

// PopularCollection is an entry of the popular collections endpoint, prices in lamports
type PopularCollection struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	FloorPrice  float64 `json:"floorPrice"`
	VolumeAll   float64 `json:"volumeAll"`
	HasCNFTs    bool    `json:"hasCNFTs"`
}

// CollectionStats is the response of the collection stats endpoint, prices in lamports
type CollectionStats struct {
	Symbol       string   `json:"symbol"`
	FloorPrice   float64  `json:"floorPrice"`
	ListedCount  int64    `json:"listedCount"`
	VolumeAll    float64  `json:"volumeAll"`
	AvgPrice24hr *float64 `json:"avgPrice24hr"`
}

// Client defines the interface for Magic Eden client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/magiceden_client.go -package=mocks -mock_names=Client=MockMagicEdenClient
type Client interface {
	// GetPopularCollections returns the top trending collections over a time range, prices in SOL
	GetPopularCollections(ctx context.Context, timeRange domain.TimeRange, top int) ([]domain.PopularCollection, error)

	// GetCollectionStats returns the marketplace statistics of a collection, prices in SOL
	GetCollectionStats(ctx context.Context, symbol string) (*domain.CollectionStats, error)
}

// MagicEdenClient implements Magic Eden client
type MagicEdenClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new Magic Eden client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &MagicEdenClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		json:           json,
	}
}

func (c *MagicEdenClient) get(ctx context.Context, endpoint string, out interface{}) error {
	headers := map[string]string{"Accept": "application/json"}
	// the public endpoints work without a key, a key only raises the limits
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, headers)
	})
	if err != nil {
		return fmt.Errorf("failed to call Magic Eden API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal Magic Eden response: %w", err)
	}

	return nil
}

// GetPopularCollections returns the top trending collections over a time range, prices in SOL
func (c *MagicEdenClient) GetPopularCollections(ctx context.Context, timeRange domain.TimeRange, top int) ([]domain.PopularCollection, error) {
	if top <= 0 {
		top = DEFAULT_TOP
	}

	params := url.Values{}
	params.Set("timeRange", string(timeRange))
	endpoint := fmt.Sprintf("%s/v2/marketplace/popular_collections?%s", c.apiURL, params.Encode())

	var collections []PopularCollection
	if err := c.get(ctx, endpoint, &collections); err != nil {
		return nil, err
	}

	if len(collections) > top {
		collections = collections[:top]
	}

	result := make([]domain.PopularCollection, 0, len(collections))
	for _, col := range collections {
		result = append(result, domain.PopularCollection{
			Symbol:     col.Symbol,
			Name:       col.Name,
			Image:      col.Image,
			FloorPrice: LamportsToSOL(col.FloorPrice),
			VolumeAll:  LamportsToSOL(col.VolumeAll),
			HasCNFTs:   col.HasCNFTs,
		})
	}

	return result, nil
}

// GetCollectionStats returns the marketplace statistics of a collection, prices in SOL
func (c *MagicEdenClient) GetCollectionStats(ctx context.Context, symbol string) (*domain.CollectionStats, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, domain.NewValidationError("symbol", "collection symbol is required")
	}

	endpoint := fmt.Sprintf("%s/v2/collections/%s/stats", c.apiURL, url.PathEscape(symbol))

	var stats CollectionStats
	if err := c.get(ctx, endpoint, &stats); err != nil {
		if adapter.IsStatusCode(err, 404) {
			return nil, fmt.Errorf("collection %s: %w", symbol, domain.ErrNotFound)
		}
		return nil, err
	}

	result := &domain.CollectionStats{
		Symbol:      stats.Symbol,
		FloorPrice:  LamportsToSOL(stats.FloorPrice),
		ListedCount: stats.ListedCount,
		VolumeAll:   LamportsToSOL(stats.VolumeAll),
	}
	if result.Symbol == "" {
		result.Symbol = symbol
	}
	if stats.AvgPrice24hr != nil {
		avg := LamportsToSOL(*stats.AvgPrice24hr)
		result.AvgPrice24hr = &avg
	}

	return result, nil
}

// LamportsToSOL converts a lamport amount to SOL
func LamportsToSOL(lamports float64) float64 {
	return lamports / domain.LAMPORTS_PER_SOL
}

// NormalizeTimeRange buckets a free-form range such as "3d" or "12h" into one of
// the windows the marketplace supports. An empty range means one day.
func NormalizeTimeRange(raw string) (domain.TimeRange, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return domain.TimeRange1d, nil
	}

	if strings.HasSuffix(raw, "h") {
		return domain.TimeRange1h, nil
	}

	if !strings.HasSuffix(raw, "d") {
		return "", domain.NewValidationError("time_range", fmt.Sprintf("unsupported time range %q", raw))
	}

	days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
	if err != nil || days < 0 {
		return "", domain.NewValidationError("time_range", fmt.Sprintf("unsupported time range %q", raw))
	}

	switch {
	case days <= 1:
		return domain.TimeRange1d, nil
	case days <= 7:
		return domain.TimeRange7d, nil
	default:
		return domain.TimeRange30d, nil
	}
}
