package uri

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/logger"
)

// ErrHTMLResponse is returned for a gateway that answers with an HTML page, usually an error or a captcha
var ErrHTMLResponse = errors.New("gateway returned an HTML page")

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try, in order
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try, in order
	ArweaveGateways []string
}

// Resolver turns ipfs:// and ar:// URIs into HTTP URLs and fetches them through the configured gateways
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Candidates returns the HTTP URLs uri can be fetched from, preferred first.
	// A plain HTTP(S) URL is its own single candidate, except for IPFS gateway URLs
	// which also get every configured gateway as fallback.
	Candidates(uri string) []string

	// Fetch returns the body of the first candidate that answers with a non HTML body
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

type resolver struct {
	httpClient      adapter.HTTPClient
	ipfsGateways    []string
	arweaveGateways []string
}

// NewResolver creates a resolver; empty gateway lists fall back to ipfs.io and arweave.net
func NewResolver(httpClient adapter.HTTPClient, cfg Config) Resolver {
	r := &resolver{
		httpClient:      httpClient,
		ipfsGateways:    trimGateways(cfg.IPFSGateways),
		arweaveGateways: trimGateways(cfg.ArweaveGateways),
	}
	if len(r.ipfsGateways) == 0 {
		r.ipfsGateways = []string{domain.DEFAULT_IPFS_GATEWAY}
	}
	if len(r.arweaveGateways) == 0 {
		r.arweaveGateways = []string{domain.DEFAULT_ARWEAVE_GATEWAY}
	}
	return r
}

func (r *resolver) Candidates(uri string) []string {
	uri = strings.TrimSpace(uri)

	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return withGateways(nil, r.ipfsGateways, "/ipfs/"+strings.TrimPrefix(cid, "ipfs/"))
	}

	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return withGateways(nil, r.arweaveGateways, "/"+txID)
	}

	// IPFS gateway URL such as https://nftstorage.link/ipfs/Qm...; the original host stays first
	if strings.HasPrefix(uri, "http") {
		if _, cid, ok := strings.Cut(uri, "/ipfs/"); ok && cid != "" {
			return withGateways([]string{uri}, r.ipfsGateways, "/ipfs/"+cid)
		}
	}

	return []string{uri}
}

func (r *resolver) Fetch(ctx context.Context, uri string) ([]byte, error) {
	candidates := r.Candidates(uri)

	var lastErr error
	for _, candidate := range candidates {
		body, err := r.httpClient.GetBytes(ctx, candidate, nil)
		if err == nil {
			if !mimetype.Detect(body).Is("text/html") {
				return body, nil
			}
			err = ErrHTMLResponse
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logger.DebugCtx(ctx, "Gateway failed, trying next",
			zap.String("url", candidate),
			zap.Error(err),
		)
		lastErr = err
	}

	return nil, fmt.Errorf("failed to fetch %s from %d candidate(s): %w", uri, len(candidates), lastErr)
}

var defaultResolver = NewResolver(nil, Config{})

// GatewayURL returns the preferred HTTP URL of uri using the default gateways
func GatewayURL(uri string) string {
	return defaultResolver.Candidates(uri)[0]
}

func withGateways(urls []string, gateways []string, path string) []string {
	for _, gw := range gateways {
		candidate := gw + path
		if len(urls) > 0 && urls[0] == candidate {
			continue
		}
		urls = append(urls, candidate)
	}
	return urls
}

func trimGateways(gateways []string) []string {
	result := make([]string, 0, len(gateways))
	for _, gw := range gateways {
		if gw = strings.TrimRight(strings.TrimSpace(gw), "/"); gw != "" {
			result = append(result, gw)
		}
	}
	return result
}
