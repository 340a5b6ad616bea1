package voucher

import (
	"crypto/rand"
	"fmt"
	"time"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewCode generates a voucher code like "VCH-7KQ2M9XT". The alphabet drops
// ambiguous characters since codes are read over the counter.
func NewCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand should not fail; fall back to a time-derived code
		return fmt.Sprintf("VCH-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return "VCH-" + string(buf)
}
