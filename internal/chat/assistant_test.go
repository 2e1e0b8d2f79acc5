package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/chat"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/mocks"
	"github.com/vtopia/nft-assistant/internal/providers/openai"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
)

type assistantMocks struct {
	t         *testing.T
	ctrl      *gomock.Controller
	openai    *mocks.MockOpenAIClient
	moralis   *mocks.MockMoralisClient
	magicEden *mocks.MockMagicEdenClient
	ingestor  *mocks.MockIngestor
}

func setupAssistant(t *testing.T) (*assistantMocks, chat.Assistant) {
	ctrl := gomock.NewController(t)
	m := &assistantMocks{
		t:         t,
		ctrl:      ctrl,
		openai:    mocks.NewMockOpenAIClient(ctrl),
		moralis:   mocks.NewMockMoralisClient(ctrl),
		magicEden: mocks.NewMockMagicEdenClient(ctrl),
		ingestor:  mocks.NewMockIngestor(ctrl),
	}
	return m, chat.NewAssistant(m.openai, m.moralis, m.magicEden, m.ingestor, adapter.NewJSON(), 0)
}

func functionCall(name, arguments string) *openai.Message {
	return &openai.Message{
		Role:         openai.ROLE_ASSISTANT,
		FunctionCall: &openai.FunctionCall{Name: name, Arguments: arguments},
	}
}

// expectCall makes the first completion return message and checks the advertised functions
func (m *assistantMocks) expectCall(query string, message *openai.Message) *gomock.Call {
	return m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.Message, error) {
			if assert.Len(m.t, req.Messages, 1) {
				assert.Equal(m.t, openai.ROLE_USER, req.Messages[0].Role)
				assert.Equal(m.t, query, req.Messages[0].Content)
			}
			assert.Len(m.t, req.Functions, 5)
			assert.Nil(m.t, req.Temperature)
			return message, nil
		})
}

func TestDefinitions(t *testing.T) {
	names := make([]string, 0)
	for _, def := range chat.Definitions() {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.JSONEq(t, `"object"`, string(extractType(t, def)))
	}
	assert.Equal(t, []string{
		chat.FUNC_GET_NFT_BALANCE,
		chat.FUNC_GET_NFT_METADATA,
		chat.FUNC_GET_NFT_METADATA_BY_NAME,
		chat.FUNC_GET_COLLECTION_STATS,
		chat.FUNC_GET_POPULAR_COLLECTIONS,
	}, names)
}

func extractType(t *testing.T, def openai.FunctionDefinition) []byte {
	var schema map[string]interface{}
	require.NoError(t, adapter.NewJSON().Unmarshal(def.Parameters, &schema))
	b, err := adapter.NewJSON().Marshal(schema["type"])
	require.NoError(t, err)
	return b
}

func TestAssistant_Ask_FreeText(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	m.expectCall("hello", &openai.Message{Role: openai.ROLE_ASSISTANT, Content: "Hi! Ask me about Solana NFTs."})

	answer, err := a.Ask(context.Background(), "  hello ")
	require.NoError(t, err)
	assert.Equal(t, chat.AnswerKindText, answer.Kind)
	assert.Equal(t, "Hi! Ask me about Solana NFTs.", answer.Text)
	assert.Empty(t, answer.Function)
}

func TestAssistant_Ask_EmptyQuery(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	_, err := a.Ask(context.Background(), "   ")
	assert.True(t, domain.IsValidationError(err))
}

func TestAssistant_Ask_ModelError(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	boom := errors.New("rate limited")
	m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := a.Ask(context.Background(), "what do I own?")
	assert.ErrorIs(t, err, boom)
}

func TestAssistant_Ask_NFTBalance(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "what NFTs does wallet ABC hold?"
	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_BALANCE, `{"address":"ABC"}`))
	m.moralis.EXPECT().GetWalletNFTs(gomock.Any(), "ABC").Return([]moralis.WalletNFT{
		{Mint: "m1", Name: "Okay Bears #1", Symbol: "OKB", Amount: "1", AssociatedTokenAddress: "ata1"},
	}, nil)

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, chat.AnswerKindWalletNFTs, answer.Kind)
	assert.Equal(t, chat.FUNC_GET_NFT_BALANCE, answer.Function)
	assert.Equal(t, []domain.WalletNFT{
		{Mint: "m1", Name: "Okay Bears #1", Symbol: "OKB", Amount: "1", AssociatedTokenAddress: "ata1"},
	}, answer.Data)
}

func TestAssistant_Ask_NFTMetadataFilteredAsJSON(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "show me the name and image of mint m42"
	details := &domain.NFTDetails{Mint: "m42", Name: "Okay Bears #42", Image: "https://img/42.png"}

	gomock.InOrder(
		m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA, `{"address":"m42"}`)),
		m.moralis.EXPECT().GetNFTDetails(gomock.Any(), "m42").Return(details, nil),
		m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.Message, error) {
				require.Len(t, req.Messages, 2)
				assert.Equal(t, openai.ROLE_SYSTEM, req.Messages[0].Role)
				assert.Equal(t, chat.FILTER_SYSTEM_PROMPT, req.Messages[0].Content)
				assert.Contains(t, req.Messages[1].Content, "'"+query+"'")
				assert.Contains(t, req.Messages[1].Content, `"mint":"m42"`)
				assert.Empty(t, req.Functions)
				require.NotNil(t, req.Temperature)
				assert.Zero(t, *req.Temperature)
				return &openai.Message{Content: ` {"name":"Okay Bears #42","image":"https://img/42.png"} `}, nil
			}),
	)

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, chat.AnswerKindNFTDetails, answer.Kind)
	assert.Equal(t, details, answer.Data)
	assert.Equal(t, "https://solscan.io/token/m42", answer.SolscanURL)
	assert.JSONEq(t, `{"name":"Okay Bears #42","image":"https://img/42.png"}`, string(answer.Filtered))
	assert.Empty(t, answer.Text)
}

func TestAssistant_Ask_NFTMetadataFilteredAsText(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "are the eyes violet for m42?"
	details := &domain.NFTDetails{Mint: "m42", Traits: map[string]interface{}{"Eyes": "Blue"}}

	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA, `{"address":"m42"}`))
	m.moralis.EXPECT().GetNFTDetails(gomock.Any(), "m42").Return(details, nil)
	m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
		Return(&openai.Message{Content: "No, the eyes are blue."}, nil)

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Nil(t, answer.Filtered)
	assert.Equal(t, "No, the eyes are blue.", answer.Text)
}

func TestAssistant_Ask_NFTMetadataFilterFailureKeepsDetails(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "details of m42"
	details := &domain.NFTDetails{Mint: "m42"}

	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA, `{"address":"m42"}`))
	m.moralis.EXPECT().GetNFTDetails(gomock.Any(), "m42").Return(details, nil)
	m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, details, answer.Data)
	assert.Nil(t, answer.Filtered)
}

func TestAssistant_Ask_NFTMetadataWithoutMetadataURI(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "details of m42"
	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA, `{"address":"m42"}`))
	m.moralis.EXPECT().GetNFTDetails(gomock.Any(), "m42").Return(nil, moralis.ErrNoMetadataURI)

	_, err := a.Ask(context.Background(), query)
	assert.ErrorIs(t, err, moralis.ErrNoMetadataURI)
}

func TestAssistant_Ask_NFTMetadataByName(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "tell me about Okay Bears #42"
	item := &domain.NFTMetadata{ID: "m42", Name: "Okay Bears #42"}

	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA_BY_NAME, `{"nft_name":"Okay Bears #42"}`))
	m.ingestor.EXPECT().GetMetadataByName(gomock.Any(), "Okay Bears #42").Return(item, nil)

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, chat.AnswerKindNFTMetadata, answer.Kind)
	assert.Equal(t, item, answer.Data)
	assert.Equal(t, "https://solscan.io/token/m42", answer.SolscanURL)
}

func TestAssistant_Ask_NFTMetadataByNameNotFound(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "tell me about Nope #1"
	m.expectCall(query, functionCall(chat.FUNC_GET_NFT_METADATA_BY_NAME, `{"nft_name":"Nope #1"}`))
	m.ingestor.EXPECT().GetMetadataByName(gomock.Any(), "Nope #1").Return(nil, domain.ErrCollectionNotFound)

	_, err := a.Ask(context.Background(), query)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssistant_Ask_CollectionStats(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	query := "floor price of okay_bears"
	stats := &domain.CollectionStats{Symbol: "okay_bears", FloorPrice: 12.5, ListedCount: 300}

	m.expectCall(query, functionCall(chat.FUNC_GET_COLLECTION_STATS, `{"symbol":"okay_bears"}`))
	m.magicEden.EXPECT().GetCollectionStats(gomock.Any(), "okay_bears").Return(stats, nil)

	answer, err := a.Ask(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, chat.AnswerKindCollectionStats, answer.Kind)
	assert.Equal(t, stats, answer.Data)
}

func TestAssistant_Ask_PopularCollections(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		timeRange domain.TimeRange
		top       int
	}{
		{name: "defaults", arguments: `{}`, timeRange: domain.TimeRange1d, top: 10},
		{name: "days bucketed up", arguments: `{"time_range":"3d","top":5}`, timeRange: domain.TimeRange7d, top: 5},
		{name: "month", arguments: `{"time_range":"14d"}`, timeRange: domain.TimeRange30d, top: 10},
		{name: "hours", arguments: `{"time_range":"12h","top":3}`, timeRange: domain.TimeRange1h, top: 3},
		{name: "empty arguments", arguments: ``, timeRange: domain.TimeRange1d, top: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a := setupAssistant(t)
			defer m.ctrl.Finish()

			collections := []domain.PopularCollection{{Symbol: "okay_bears", Name: "Okay Bears", FloorPrice: 12.5}}
			m.expectCall("trending", functionCall(chat.FUNC_GET_POPULAR_COLLECTIONS, tt.arguments))
			m.magicEden.EXPECT().GetPopularCollections(gomock.Any(), tt.timeRange, tt.top).Return(collections, nil)

			answer, err := a.Ask(context.Background(), "trending")
			require.NoError(t, err)
			assert.Equal(t, chat.AnswerKindPopularCollections, answer.Kind)
			assert.Equal(t, collections, answer.Data)
		})
	}
}

func TestAssistant_Ask_PopularCollectionsInvalidTimeRange(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	m.expectCall("trending", functionCall(chat.FUNC_GET_POPULAR_COLLECTIONS, `{"time_range":"forever"}`))

	_, err := a.Ask(context.Background(), "trending")
	assert.True(t, domain.IsValidationError(err))
}

func TestAssistant_Ask_UnknownFunction(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	m.expectCall("buy it", functionCall("buy_nft", `{"mint":"m42"}`))

	_, err := a.Ask(context.Background(), "buy it")
	assert.ErrorIs(t, err, chat.ErrUnknownFunction)
	assert.Contains(t, err.Error(), "buy_nft")
}

func TestAssistant_Ask_MalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		call *openai.Message
	}{
		{name: "not json", call: functionCall(chat.FUNC_GET_NFT_BALANCE, `{"address":`)},
		{name: "wrong type", call: functionCall(chat.FUNC_GET_POPULAR_COLLECTIONS, `{"top":"ten"}`)},
		{name: "missing address", call: functionCall(chat.FUNC_GET_NFT_METADATA, `{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, a := setupAssistant(t)
			defer m.ctrl.Finish()

			m.expectCall("q", tt.call)

			_, err := a.Ask(context.Background(), "q")
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestAssistant_FilterNFTData_MarshalsData(t *testing.T) {
	m, a := setupAssistant(t)
	defer m.ctrl.Finish()

	m.openai.EXPECT().ChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req openai.ChatRequest) (*openai.Message, error) {
			assert.Contains(t, req.Messages[1].Content, `Data to reference: {"fur":"brown"}`)
			return &openai.Message{Content: `["fur"]`}, nil
		})

	filtered, text, err := a.FilterNFTData(context.Background(), "fur?", map[string]string{"fur": "brown"})
	require.NoError(t, err)
	assert.JSONEq(t, `["fur"]`, string(filtered))
	assert.Empty(t, text)
}
