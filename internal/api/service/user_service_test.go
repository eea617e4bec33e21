package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := generateReferralCode(8)
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(referralAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// 100 draws from a 36^8 space colliding would mean a broken generator.
	assert.Greater(t, len(seen), 90)
}
