package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomIntInRange returns a uniformly distributed integer in [lo, hi] from crypto/rand.
func RandomIntInRange(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, fmt.Errorf("invalid range [%d, %d]", lo, hi)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return lo + n.Int64(), nil
}
