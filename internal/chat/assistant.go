package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/ingest"
	"github.com/vtopia/nft-assistant/internal/logger"
	"github.com/vtopia/nft-assistant/internal/providers/openai"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/magiceden"
	"github.com/vtopia/nft-assistant/internal/providers/vendors/moralis"
)

// ErrUnknownFunction is returned when the model calls a function that is not advertised
var ErrUnknownFunction = errors.New("unknown function")

// AnswerKind tells how the payload of an Answer is shaped
type AnswerKind string

const (
	AnswerKindText               AnswerKind = "text"
	AnswerKindWalletNFTs         AnswerKind = "wallet_nfts"
	AnswerKindNFTDetails         AnswerKind = "nft_details"
	AnswerKindNFTMetadata        AnswerKind = "nft_metadata"
	AnswerKindCollectionStats    AnswerKind = "collection_stats"
	AnswerKindPopularCollections AnswerKind = "popular_collections"
)

// Answer is the reply to a user query
type Answer struct {
	Kind AnswerKind `json:"kind"`
	// Function is the function the model called, empty for a free text reply
	Function string `json:"function,omitempty"`
	// Text is the free text reply, or the plain text rendering of the filtered NFT details
	Text string `json:"text,omitempty"`
	// Data is the raw result of the called function
	Data interface{} `json:"data,omitempty"`
	// Filtered is the JSON object the details were narrowed to
	Filtered   json.RawMessage `json:"filtered,omitempty"`
	SolscanURL string          `json:"solscan_url,omitempty"`
}

// Assistant answers free text questions about Solana NFTs by letting the model pick a data source
//
//go:generate mockgen -source=assistant.go -destination=../mocks/assistant.go -package=mocks -mock_names=Assistant=MockAssistant
type Assistant interface {
	// Ask sends the query with the function definitions and dispatches the function the model picks
	Ask(ctx context.Context, query string) (*Answer, error)

	// FilterNFTData asks the model to narrow data to what query requests.
	// The reply is returned as JSON when it parses, as plain text otherwise.
	FilterNFTData(ctx context.Context, query string, data interface{}) (json.RawMessage, string, error)
}

type assistant struct {
	openai            openai.Client
	moralis           moralis.Client
	magicEden         magiceden.Client
	ingestor          ingest.Ingestor
	json              adapter.JSON
	filterTemperature float64
}

// NewAssistant creates an assistant
func NewAssistant(openaiClient openai.Client, moralisClient moralis.Client, magicEdenClient magiceden.Client, ingestor ingest.Ingestor, json adapter.JSON, filterTemperature float64) Assistant {
	return &assistant{
		openai:            openaiClient,
		moralis:           moralisClient,
		magicEden:         magicEdenClient,
		ingestor:          ingestor,
		json:              json,
		filterTemperature: filterTemperature,
	}
}

func (a *assistant) Ask(ctx context.Context, query string) (*Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "query is required")
	}

	message, err := a.openai.ChatCompletion(ctx, openai.ChatRequest{
		Messages:  []openai.Message{{Role: openai.ROLE_USER, Content: query}},
		Functions: Definitions(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ask the model: %w", err)
	}

	if message.FunctionCall == nil {
		return &Answer{Kind: AnswerKindText, Text: message.Content}, nil
	}

	logger.InfoCtx(ctx, "model requested a function",
		zap.String("function", message.FunctionCall.Name),
		zap.String("arguments", message.FunctionCall.Arguments))

	return a.dispatch(ctx, query, message.FunctionCall)
}

func (a *assistant) dispatch(ctx context.Context, query string, call *openai.FunctionCall) (*Answer, error) {
	switch call.Name {
	case FUNC_GET_NFT_BALANCE:
		var args addressArgs
		if err := a.parseArgs(call, &args); err != nil {
			return nil, err
		}
		if args.Address == "" {
			return nil, domain.NewValidationError("address", "wallet address is required")
		}
		return a.walletNFTs(ctx, args.Address)

	case FUNC_GET_NFT_METADATA:
		var args addressArgs
		if err := a.parseArgs(call, &args); err != nil {
			return nil, err
		}
		if args.Address == "" {
			return nil, domain.NewValidationError("address", "mint address is required")
		}
		return a.nftDetails(ctx, query, args.Address)

	case FUNC_GET_NFT_METADATA_BY_NAME:
		var args nftNameArgs
		if err := a.parseArgs(call, &args); err != nil {
			return nil, err
		}
		item, err := a.ingestor.GetMetadataByName(ctx, args.NFTName)
		if err != nil {
			return nil, err
		}
		return &Answer{
			Kind:       AnswerKindNFTMetadata,
			Function:   call.Name,
			Data:       item,
			SolscanURL: domain.SOLSCAN_TOKEN_URL_PREFIX + item.ID,
		}, nil

	case FUNC_GET_COLLECTION_STATS:
		var args symbolArgs
		if err := a.parseArgs(call, &args); err != nil {
			return nil, err
		}
		stats, err := a.magicEden.GetCollectionStats(ctx, args.Symbol)
		if err != nil {
			return nil, err
		}
		return &Answer{Kind: AnswerKindCollectionStats, Function: call.Name, Data: stats}, nil

	case FUNC_GET_POPULAR_COLLECTIONS:
		var args popularCollectionsArgs
		if err := a.parseArgs(call, &args); err != nil {
			return nil, err
		}
		collections, err := a.popularCollections(ctx, args.TimeRange, args.Top)
		if err != nil {
			return nil, err
		}
		return &Answer{Kind: AnswerKindPopularCollections, Function: call.Name, Data: collections}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, call.Name)
	}
}

// popularCollections buckets the raw time range and returns the top collections
func (a *assistant) popularCollections(ctx context.Context, rawTimeRange string, top int) ([]domain.PopularCollection, error) {
	timeRange, err := magiceden.NormalizeTimeRange(rawTimeRange)
	if err != nil {
		return nil, err
	}
	if top <= 0 {
		top = magiceden.DEFAULT_TOP
	}
	return a.magicEden.GetPopularCollections(ctx, timeRange, top)
}

func (a *assistant) walletNFTs(ctx context.Context, address string) (*Answer, error) {
	nfts, err := a.moralis.GetWalletNFTs(ctx, address)
	if err != nil {
		return nil, err
	}

	return &Answer{Kind: AnswerKindWalletNFTs, Function: FUNC_GET_NFT_BALANCE, Data: moralis.ToDomainWalletNFTs(nfts)}, nil
}

func (a *assistant) nftDetails(ctx context.Context, query string, mint string) (*Answer, error) {
	details, err := a.moralis.GetNFTDetails(ctx, mint)
	if err != nil {
		return nil, err
	}

	answer := &Answer{
		Kind:       AnswerKindNFTDetails,
		Function:   FUNC_GET_NFT_METADATA,
		Data:       details,
		SolscanURL: details.SolscanURL(),
	}

	filtered, text, err := a.FilterNFTData(ctx, query, details)
	if err != nil {
		// the unfiltered details are still a useful answer
		logger.WarnCtx(ctx, "failed to filter nft details", zap.String("mint", mint), zap.Error(err))
		return answer, nil
	}
	answer.Filtered = filtered
	answer.Text = text

	return answer, nil
}

func (a *assistant) FilterNFTData(ctx context.Context, query string, data interface{}) (json.RawMessage, string, error) {
	encoded, err := a.json.Marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal nft data: %w", err)
	}

	temperature := a.filterTemperature
	message, err := a.openai.ChatCompletion(ctx, openai.ChatRequest{
		Messages: []openai.Message{
			{Role: openai.ROLE_SYSTEM, Content: FILTER_SYSTEM_PROMPT},
			{Role: openai.ROLE_USER, Content: fmt.Sprintf(filterTaskTemplate, query, encoded)},
		},
		Temperature: &temperature,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to filter nft data: %w", err)
	}

	content := strings.TrimSpace(message.Content)
	if a.json.Valid([]byte(content)) {
		return json.RawMessage(content), "", nil
	}

	return nil, message.Content, nil
}

func (a *assistant) parseArgs(call *openai.FunctionCall, out interface{}) error {
	arguments := call.Arguments
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	if err := a.json.Unmarshal([]byte(arguments), out); err != nil {
		return domain.NewValidationError("arguments", fmt.Sprintf("malformed arguments for %s: %v", call.Name, err))
	}
	return nil
}
