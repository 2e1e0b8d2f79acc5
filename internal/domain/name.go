package domain

import (
	"fmt"
	"strings"
)

// NFTName is a user supplied NFT name split into its collection and edition parts
type NFTName struct {
	// Collection is the free-text collection part, e.g. "Okay Bears"
	Collection string
	// Edition is the edition suffix including the marker, e.g. "#42"
	Edition string
}

// ParseNFTName splits "<collection> #<edition>" into its parts.
// A name without the edition marker is rejected. The edition ends at the next
// marker, so "Okay Bears #1 #2" has edition "#1".
func ParseNFTName(name string) (*NFTName, error) {
	name = strings.TrimSpace(name)
	idx := strings.Index(name, EDITION_MARKER)
	if idx < 0 {
		return nil, NewValidationError("nft_name", fmt.Sprintf("%q has no edition marker, expected a name like \"Okay Bears #42\"", name))
	}

	collection := strings.TrimSpace(name[:idx])
	edition, _, _ := strings.Cut(name[idx+len(EDITION_MARKER):], EDITION_MARKER)
	edition = strings.TrimSpace(edition)
	if collection == "" {
		return nil, NewValidationError("nft_name", fmt.Sprintf("%q has no collection name", name))
	}
	if edition == "" {
		return nil, NewValidationError("nft_name", fmt.Sprintf("%q has an empty edition", name))
	}

	return &NFTName{
		Collection: collection,
		Edition:    EDITION_MARKER + edition,
	}, nil
}

// FullName returns the exact name of the NFT under the given canonical collection name
func (n *NFTName) FullName(canonicalName string) string {
	return strings.TrimSpace(canonicalName) + " " + n.Edition
}

// String returns the name as entered, normalized
func (n *NFTName) String() string {
	return n.FullName(n.Collection)
}

// NormalizeCollectionName lower-cases and collapses whitespace of a collection name
func NormalizeCollectionName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
