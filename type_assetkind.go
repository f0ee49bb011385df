package stlot

import "fmt"

// AssetKind identifies the kind of instrument behind a ticker. The only
// behavioral difference between kinds is which external quote endpoint is
// queried, so a single concrete Asset type is parameterized by kind instead
// of one type per instrument.
type AssetKind int

const (
	// KindStock is an exchange traded equity.
	KindStock AssetKind = iota
	// KindCrypto is a cryptocurrency quoted against a market currency.
	KindCrypto
)

func (k AssetKind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetKind parses a string into an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	switch s {
	case "stock":
		return KindStock, nil
	case "crypto":
		return KindCrypto, nil
	default:
		return 0, fmt.Errorf("unknown asset kind: %q", s)
	}
}
