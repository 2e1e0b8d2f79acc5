package moralis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/ratelimit"
	"github.com/vtopia/nft-assistant/internal/uri"
)

const PROVIDER_NAME = "moralis"

var (
	ErrNoAPIKey = errors.New("no API key provided")

	// ErrNoMetadataURI is returned when the on-chain metadata does not point to an off-chain document
	ErrNoMetadataURI = errors.New("no metadataUri found in the NFT metadata")
)

// WalletNFT is an NFT held by a wallet
type WalletNFT struct {
	AssociatedTokenAddress string `json:"associatedTokenAddress"`
	Mint                   string `json:"mint"`
	Name                   string `json:"name"`
	Symbol                 string `json:"symbol"`
	Amount                 string `json:"amount"`
}

// Metaplex holds the Metaplex fields of the on-chain metadata
type Metaplex struct {
	MetadataURI          string          `json:"metadataUri"`
	UpdateAuthority      string          `json:"updateAuthority"`
	SellerFeeBasisPoints *int            `json:"sellerFeeBasisPoints"`
	PrimarySaleHappened  interface{}     `json:"primarySaleHappened"`
	Owners               json.RawMessage `json:"owners"`
	IsMutable            *bool           `json:"isMutable"`
	MasterEdition        *bool           `json:"masterEdition"`
}

// NFTMetadata is the on-chain metadata of an NFT
type NFTMetadata struct {
	Mint     string   `json:"mint"`
	Standard string   `json:"standard"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Metaplex Metaplex `json:"metaplex"`
}

// OffChainAttribute is a trait in the off-chain metadata document
type OffChainAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// OffChainMetadata is the JSON document the metadataUri points to
type OffChainMetadata struct {
	Name        string              `json:"name"`
	Symbol      string              `json:"symbol"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	ExternalURL string              `json:"external_url"`
	Edition     interface{}         `json:"edition"`
	Attributes  []OffChainAttribute `json:"attributes"`
	Properties  json.RawMessage     `json:"properties"`
}

// Client defines the interface for Moralis client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/moralis_client.go -package=mocks -mock_names=Client=MockMoralisClient
type Client interface {
	// GetWalletNFTs lists the NFTs held by a wallet
	GetWalletNFTs(ctx context.Context, address string) ([]WalletNFT, error)

	// GetNFTMetadata fetches the on-chain metadata of a mint
	GetNFTMetadata(ctx context.Context, mint string) (*NFTMetadata, error)

	// GetNFTDetails merges the on-chain metadata of a mint with its off-chain document
	GetNFTDetails(ctx context.Context, mint string) (*domain.NFTDetails, error)
}

// MoralisClient implements Moralis client
type MoralisClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	network        string
	json           adapter.JSON
	uriResolver    uri.Resolver
}

// NewClient creates a new Moralis client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, network string, json adapter.JSON, uriResolver uri.Resolver) Client {
	if network == "" {
		network = domain.SOLANA_NETWORK_MAINNET
	}
	if uriResolver == nil {
		uriResolver = uri.NewResolver(httpClient, uri.Config{})
	}
	return &MoralisClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		network:        network,
		json:           json,
		uriResolver:    uriResolver,
	}
}

func (c *MoralisClient) get(ctx context.Context, path string, out interface{}) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	endpoint := c.apiURL + path
	headers := map[string]string{"X-API-Key": c.apiKey}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, headers)
	})
	if err != nil {
		return fmt.Errorf("failed to call Moralis API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal Moralis response: %w", err)
	}

	return nil
}

// GetWalletNFTs lists the NFTs held by a wallet
func (c *MoralisClient) GetWalletNFTs(ctx context.Context, address string) ([]WalletNFT, error) {
	var nfts []WalletNFT
	path := fmt.Sprintf("/account/%s/%s/nft", c.network, url.PathEscape(address))
	if err := c.get(ctx, path, &nfts); err != nil {
		return nil, err
	}
	return nfts, nil
}

// GetNFTMetadata fetches the on-chain metadata of a mint
func (c *MoralisClient) GetNFTMetadata(ctx context.Context, mint string) (*NFTMetadata, error) {
	var metadata NFTMetadata
	path := fmt.Sprintf("/nft/%s/%s/metadata", c.network, url.PathEscape(mint))
	if err := c.get(ctx, path, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// GetNFTDetails merges the on-chain metadata of a mint with its off-chain document
func (c *MoralisClient) GetNFTDetails(ctx context.Context, mint string) (*domain.NFTDetails, error) {
	metadata, err := c.GetNFTMetadata(ctx, mint)
	if err != nil {
		return nil, err
	}

	if metadata.Metaplex.MetadataURI == "" {
		return nil, ErrNoMetadataURI
	}

	// the metadata document is hosted by the collection, not by Moralis
	respBody, err := c.uriResolver.Fetch(ctx, metadata.Metaplex.MetadataURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata document: %w", err)
	}

	var offChain OffChainMetadata
	if err := c.json.Unmarshal(respBody, &offChain); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata document: %w", err)
	}

	return MergeDetails(metadata, &offChain), nil
}

// MergeDetails combines the on-chain metadata with the off-chain document.
// Descriptive fields come from the document, authority fields from the chain.
func MergeDetails(metadata *NFTMetadata, offChain *OffChainMetadata) *domain.NFTDetails {
	details := &domain.NFTDetails{
		Mint:                 metadata.Mint,
		Name:                 offChain.Name,
		Symbol:               offChain.Symbol,
		Description:          offChain.Description,
		Image:                offChain.Image,
		ExternalURL:          offChain.ExternalURL,
		Edition:              offChain.Edition,
		Standard:             metadata.Standard,
		UpdateAuthority:      metadata.Metaplex.UpdateAuthority,
		SellerFeeBasisPoints: metadata.Metaplex.SellerFeeBasisPoints,
		PrimarySaleHappened:  metadata.Metaplex.PrimarySaleHappened,
		IsMutable:            metadata.Metaplex.IsMutable,
		MasterEdition:        metadata.Metaplex.MasterEdition,
		Owners:               nullToEmpty(metadata.Metaplex.Owners),
		Properties:           nullToEmpty(offChain.Properties),
	}

	if len(offChain.Attributes) > 0 {
		details.Traits = make(map[string]interface{}, len(offChain.Attributes))
		for _, attr := range offChain.Attributes {
			details.Traits[attr.TraitType] = attr.Value
		}
	}

	return details
}

func nullToEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// ToDomainWalletNFTs converts wallet NFTs to their domain representation
func ToDomainWalletNFTs(nfts []WalletNFT) []domain.WalletNFT {
	result := make([]domain.WalletNFT, 0, len(nfts))
	for _, nft := range nfts {
		result = append(result, domain.WalletNFT{
			Mint:                   nft.Mint,
			Name:                   nft.Name,
			Symbol:                 nft.Symbol,
			AssociatedTokenAddress: nft.AssociatedTokenAddress,
			Amount:                 nft.Amount,
		})
	}
	return result
}
