package domain

import "time"

const (
	// EDITION_MARKER separates the collection part of an NFT name from its edition number
	EDITION_MARKER = "#"

	// Ingestion defaults
	DEFAULT_MINT_PAGE_SIZE       = 100
	DEFAULT_ASSET_BATCH_SIZE     = 1000
	DEFAULT_BATCH_MAX_ATTEMPTS   = 5
	DEFAULT_BATCH_RETRY_DELAY    = 10 * time.Second
	DEFAULT_METADATA_WRITE_BATCH = 7000

	// Solana constants
	LAMPORTS_PER_SOL         = 1_000_000_000
	SOLANA_NETWORK_MAINNET   = "mainnet"
	SOLSCAN_TOKEN_URL_PREFIX = "https://solscan.io/token/"

	// Gateways
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"
)
