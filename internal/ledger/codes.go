package ledger

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const codeSuffixLen = 6

// NewStockCode issues a code like "STOCK-1756700000000-4K9ZQ1".
// Uniqueness rides on the millisecond timestamp plus the random suffix;
// the unique index on the stock table is the backstop if two collide.
func NewStockCode() string {
	return newCode("STOCK")
}

// NewRawMaterialCode issues a code like "RAW-1756700000000-X2B7MP".
func NewRawMaterialCode() string {
	return newCode("RAW")
}

func newCode(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), randBase36(codeSuffixLen))
}

func randBase36(n int) string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var b strings.Builder
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			idx = big.NewInt(int64(time.Now().UnixNano() % int64(len(alphabet))))
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String()
}
