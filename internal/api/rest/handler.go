package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/api/shared/dto"
	"github.com/vtopia/nft-assistant/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// Chat answers a free text question
	// POST /api/v1/chat
	Chat(c *gin.Context)

	// GetNFTByMint retrieves a single NFT by its mint address
	// GET /api/v1/nfts/:mint
	GetNFTByMint(c *gin.Context)

	// GetNFTByName retrieves a single NFT by its "<collection> #<number>" name
	// GET /api/v1/nfts?name=<name>
	GetNFTByName(c *gin.Context)

	// GetWalletNFTs lists the NFTs held by a wallet
	// GET /api/v1/wallets/:address/nfts
	GetWalletNFTs(c *gin.Context)

	// GetPopularCollections lists trending collections
	// GET /api/v1/collections/popular?time_range=<range>&top=<n>
	GetPopularCollections(c *gin.Context)

	// GetCollectionStats retrieves the marketplace statistics of a collection symbol
	// GET /api/v1/collections/:id/stats
	GetCollectionStats(c *gin.Context)

	// TriggerCollectionIngestion starts a background collection ingestion (requires authentication)
	// POST /api/v1/collections/ingest
	TriggerCollectionIngestion(c *gin.Context)

	// GetFailedChunks lists the failed chunks audit of a collection id (requires authentication)
	// GET /api/v1/collections/:id/failed-chunks
	GetFailedChunks(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	answer, err := h.executor.Ask(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err, "Failed to answer the query")
		return
	}

	c.JSON(http.StatusOK, answer)
}

func (h *handler) GetNFTByMint(c *gin.Context) {
	mint := c.Param("mint")

	response, err := h.executor.GetNFTByMint(c.Request.Context(), mint)
	if err != nil {
		respondError(c, err, "Failed to get NFT", zap.String("mint", mint))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetNFTByName(c *gin.Context) {
	params, err := ParseGetNFTByNameQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if params.Name == "" {
		respondValidationError(c, "name is required")
		return
	}

	response, err := h.executor.GetNFTByName(c.Request.Context(), params.Name)
	if err != nil {
		respondError(c, err, "Failed to get NFT", zap.String("name", params.Name))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetWalletNFTs(c *gin.Context) {
	address := c.Param("address")

	response, err := h.executor.GetWalletNFTs(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to get wallet NFTs", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetPopularCollections(c *gin.Context) {
	params, err := ParsePopularCollectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetPopularCollections(c.Request.Context(), params.TimeRange, params.Top)
	if err != nil {
		respondError(c, err, "Failed to get popular collections")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetCollectionStats(c *gin.Context) {
	symbol := c.Param("id")

	stats, err := h.executor.GetCollectionStats(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err, "Failed to get collection stats", zap.String("symbol", symbol))
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *handler) TriggerCollectionIngestion(c *gin.Context) {
	var req dto.TriggerIngestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.TriggerCollectionIngestion(c.Request.Context(), req.CollectionName)
	if err != nil {
		respondError(c, err, "Failed to trigger ingestion", zap.String("collection_name", req.CollectionName))
		return
	}

	c.JSON(http.StatusAccepted, response)
}

func (h *handler) GetFailedChunks(c *gin.Context) {
	collectionID := c.Param("id")

	response, err := h.executor.GetFailedChunks(c.Request.Context(), collectionID)
	if err != nil {
		respondError(c, err, "Failed to list failed chunks", zap.String("collection_id", collectionID))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
