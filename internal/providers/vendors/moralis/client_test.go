package moralis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/mocks"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
)

const (
	apiURL = "https://solana-gateway.moralis.io"
	mint   = "7Kc2r5KkJ1hTQ2NfjQiodvCbeZJuuo5CyLVvWfddYzH6"
)

var expectedHeaders = map[string]string{"X-API-Key": "test-api-key"}

func TestMoralisClient_GetWalletNFTs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "", adapter.NewJSON(), nil)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		GetBytes(ctx, apiURL+"/account/mainnet/wallet-1/nft", expectedHeaders).
		Return([]byte(`[{"associatedTokenAddress":"ata-1","mint":"mint-1","name":"Okay Bears #42","symbol":"okay_bears"}]`), nil)

	got, err := client.GetWalletNFTs(ctx, "wallet-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, moralis.WalletNFT{AssociatedTokenAddress: "ata-1", Mint: "mint-1", Name: "Okay Bears #42", Symbol: "okay_bears"}, got[0])
}

func TestMoralisClient_NoAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := moralis.NewClient(mocks.NewMockHTTPClient(ctrl), nil, apiURL, "", "mainnet", adapter.NewJSON(), nil)

	_, err := client.GetWalletNFTs(context.Background(), "wallet-1")
	assert.ErrorIs(t, err, moralis.ErrNoAPIKey)
}

func TestMoralisClient_GetNFTDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "mainnet", adapter.NewJSON(), nil)

	ctx := context.Background()
	gomock.InOrder(
		mockHTTPClient.EXPECT().
			GetBytes(ctx, apiURL+"/nft/mainnet/"+mint+"/metadata", expectedHeaders).
			Return([]byte(`{
				"mint": "`+mint+`",
				"standard": "metaplex",
				"name": "Okay Bear #42",
				"metaplex": {
					"metadataUri": "https://arweave.net/okb42",
					"updateAuthority": "authority-1",
					"sellerFeeBasisPoints": 500,
					"primarySaleHappened": 1,
					"isMutable": true,
					"masterEdition": false,
					"owners": [{"address": "owner-1", "share": 100}]
				}
			}`), nil),
		mockHTTPClient.EXPECT().
			GetBytes(ctx, "https://arweave.net/okb42", nil).
			Return([]byte(`{
				"name": "Okay Bear #42",
				"symbol": "okay_bears",
				"description": "A bear",
				"image": "https://arweave.net/okb42.png",
				"attributes": [{"trait_type": "Fur", "value": "Brown"}, {"trait_type": "Level", "value": 3}],
				"properties": {"category": "image"}
			}`), nil),
	)

	got, err := client.GetNFTDetails(ctx, mint)
	require.NoError(t, err)

	assert.Equal(t, mint, got.Mint)
	assert.Equal(t, "Okay Bear #42", got.Name)
	assert.Equal(t, "okay_bears", got.Symbol)
	assert.Equal(t, "https://arweave.net/okb42.png", got.Image)
	assert.Equal(t, "metaplex", got.Standard)
	assert.Equal(t, "authority-1", got.UpdateAuthority)
	require.NotNil(t, got.SellerFeeBasisPoints)
	assert.Equal(t, 500, *got.SellerFeeBasisPoints)
	assert.Equal(t, float64(1), got.PrimarySaleHappened)
	require.NotNil(t, got.IsMutable)
	assert.True(t, *got.IsMutable)
	assert.Equal(t, map[string]interface{}{"Fur": "Brown", "Level": float64(3)}, got.Traits)
	assert.JSONEq(t, `[{"address":"owner-1","share":100}]`, string(got.Owners))
	assert.JSONEq(t, `{"category":"image"}`, string(got.Properties))
	assert.Equal(t, "https://solscan.io/token/"+mint, got.SolscanURL())
}

func TestMoralisClient_GetNFTDetails_NoMetadataURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "mainnet", adapter.NewJSON(), nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"mint":"`+mint+`","metaplex":{}}`), nil)

	_, err := client.GetNFTDetails(context.Background(), mint)
	assert.ErrorIs(t, err, moralis.ErrNoMetadataURI)
}

func TestMoralisClient_GetNFTDetails_UsesURIResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "mainnet", adapter.NewJSON(), mockResolver)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		GetBytes(ctx, apiURL+"/nft/mainnet/"+mint+"/metadata", expectedHeaders).
		Return([]byte(`{"mint":"`+mint+`","metaplex":{"metadataUri":"ipfs://QmDoc"}}`), nil)
	mockResolver.EXPECT().
		Fetch(ctx, "ipfs://QmDoc").
		Return([]byte(`{"name":"Okay Bears #42","symbol":"okay_bears"}`), nil)

	got, err := client.GetNFTDetails(ctx, mint)
	require.NoError(t, err)
	assert.Equal(t, "Okay Bears #42", got.Name)
	assert.Equal(t, "okay_bears", got.Symbol)
}

func TestMoralisClient_GetNFTDetails_DocumentUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockResolver := mocks.NewMockURIResolver(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "mainnet", adapter.NewJSON(), mockResolver)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"mint":"`+mint+`","metaplex":{"metadataUri":"ar://tx"}}`), nil)
	fetchErr := errors.New("all gateways down")
	mockResolver.EXPECT().Fetch(gomock.Any(), "ar://tx").Return(nil, fetchErr)

	_, err := client.GetNFTDetails(context.Background(), mint)
	assert.ErrorIs(t, err, fetchErr)
}

func TestMoralisClient_GetNFTMetadata_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := moralis.NewClient(mockHTTPClient, nil, apiURL, "test-api-key", "mainnet", adapter.NewJSON(), nil)

	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("404"))

	_, err := client.GetNFTMetadata(context.Background(), mint)
	assert.Error(t, err)
}

func TestMergeDetails_OmitsNullJSON(t *testing.T) {
	got := moralis.MergeDetails(
		&moralis.NFTMetadata{Mint: mint, Metaplex: moralis.Metaplex{Owners: []byte("null")}},
		&moralis.OffChainMetadata{Name: "x"},
	)
	assert.Nil(t, got.Owners)
	assert.Nil(t, got.Properties)
	assert.Nil(t, got.Traits)
}
