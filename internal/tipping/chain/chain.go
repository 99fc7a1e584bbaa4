// Package chain holds the provider names and EVM helpers shared by the
// chain-indexing adapters.
package chain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Provider names a chain-indexing backend.
type Provider string

const (
	ProviderBitquery   Provider = "bitquery"
	ProviderRPC        Provider = "rpc"
	ProviderClickhouse Provider = "clickhouse"
	ProviderNone       Provider = "none"
)

// ParseProvider validates a configured provider name.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderBitquery, ProviderRPC, ProviderClickhouse, ProviderNone:
		return p, nil
	case "":
		return ProviderNone, nil
	default:
		return "", fmt.Errorf("unknown chain provider %q", s)
	}
}

// NormalizeAddress returns the EIP-55 checksummed form of a hex address.
func NormalizeAddress(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return "", false
	}
	return common.HexToAddress(s).Hex(), true
}

// NormalizeTxHash returns the lowercase 0x-prefixed form of a transaction hash.
func NormalizeTxHash(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2+2*common.HashLength || !strings.HasPrefix(s, "0x") {
		return "", false
	}
	for _, r := range s[2:] {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", false
		}
	}
	return s, true
}
