package metadata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vtopia/nft-assistant/internal/adapter"
	"github.com/vtopia/nft-assistant/internal/domain"
	"github.com/vtopia/nft-assistant/internal/uri"
)

// Normalizer defines the interface for turning a provider asset into NFT metadata
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/metadata_normalizer.go -package=mocks -mock_names=Normalizer=MockMetadataNormalizer
type Normalizer interface {
	// Normalize converts a DAS asset document into NFT metadata of the given collection.
	// It returns domain.ErrMissingRequiredField when the id or the name is absent.
	Normalize(raw json.RawMessage, ref domain.CollectionRef) (*domain.NFTMetadata, error)
}

type normalizer struct {
	json adapter.JSON
	jcs  adapter.JCS
}

func NewNormalizer(json adapter.JSON, jcs adapter.JCS) Normalizer {
	return &normalizer{
		json: json,
		jcs:  jcs,
	}
}

func (n *normalizer) Normalize(raw json.RawMessage, ref domain.CollectionRef) (*domain.NFTMetadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%w: result", domain.ErrMissingRequiredField)
	}

	var asset map[string]interface{}
	if err := n.json.Unmarshal(raw, &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal asset: %w", err)
	}

	// Required fields
	id := stringField(asset, "id")
	if id == "" {
		return nil, fmt.Errorf("%w: id", domain.ErrMissingRequiredField)
	}

	content := mapField(asset, "content")
	meta := mapField(content, "metadata")
	name := strings.TrimSpace(stringField(meta, "name"))
	if name == "" {
		return nil, fmt.Errorf("%w: content.metadata.name", domain.ErrMissingRequiredField)
	}

	// Best-effort fields
	image := stringField(mapField(content, "links"), "image")
	if image == "" {
		image = firstFileURI(content)
	}

	metadata := &domain.NFTMetadata{
		ID:           id,
		Name:         name,
		Symbol:       stringField(meta, "symbol"),
		Description:  stringField(meta, "description"),
		Image:        uri.GatewayURL(image),
		JSONURI:      stringField(content, "json_uri"),
		Attributes:   attributes(meta),
		CollectionID: ref.CollectionID,
		Raw:          raw,
	}

	// A document that cannot be canonicalized is still usable, it just has no hash
	if hash, err := adapter.CanonicalHash(n.jcs, raw); err == nil {
		metadata.ContentHash = hash
	}

	return metadata, nil
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func mapField(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// firstFileURI returns the uri of the first image file of the asset
func firstFileURI(content map[string]interface{}) string {
	files, ok := content["files"].([]interface{})
	if !ok {
		return ""
	}
	for _, f := range files {
		file, ok := f.(map[string]interface{})
		if !ok {
			continue
		}
		mime := stringField(file, "mime")
		if mime != "" && !strings.HasPrefix(mime, "image/") {
			continue
		}
		if uri := stringField(file, "uri"); uri != "" {
			return uri
		}
	}
	return ""
}

// attributes collects the traits of the asset, skipping entries without a trait type
func attributes(meta map[string]interface{}) []domain.Attribute {
	list, ok := meta["attributes"].([]interface{})
	if !ok {
		return nil
	}

	var attrs []domain.Attribute
	for _, item := range list {
		attr, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		traitType := stringField(attr, "trait_type")
		if traitType == "" {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			TraitType: traitType,
			Value:     attr["value"],
		})
	}
	return attrs
}
