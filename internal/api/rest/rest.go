package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/vtopia/nft-assistant/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", handler.Chat)

		// NFT endpoints (public read access)
		v1.GET("/nfts/:mint", handler.GetNFTByMint)
		v1.GET("/nfts", handler.GetNFTByName)
		v1.GET("/wallets/:address/nfts", handler.GetWalletNFTs)

		// Marketplace endpoints (public read access)
		v1.GET("/collections/popular", handler.GetPopularCollections)
		v1.GET("/collections/:id/stats", handler.GetCollectionStats)

		// Ingestion endpoints (requires authentication)
		v1.POST("/collections/ingest", middleware.Auth(authCfg), handler.TriggerCollectionIngestion)
		v1.GET("/collections/:id/failed-chunks", middleware.Auth(authCfg), handler.GetFailedChunks)
	}
}
