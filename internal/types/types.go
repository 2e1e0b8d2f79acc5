package types

import (
	"regexp"
)

// Solana public keys are 32 bytes rendered in base58, which excludes 0, O, I and l
var solanaAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsSolanaAddress checks if a string looks like a Solana account or mint address
func IsSolanaAddress(s string) bool {
	return solanaAddressRegex.MatchString(s)
}
