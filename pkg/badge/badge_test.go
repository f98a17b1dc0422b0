package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := map[int64]Tier{
		0:          TierNone,
		9999:       TierNone,
		10000:      TierSilver,
		99999:      TierSilver,
		100000:     TierGold,
		999999999:  TierGold,
		1000000000: TierLegendary,
		5000000000: TierLegendary,
	}
	for total, want := range cases {
		assert.Equal(t, want, Classify(total), "total=%d", total)
	}
}

func TestHasBadge(t *testing.T) {
	assert.False(t, Classify(42).HasBadge())
	assert.True(t, Classify(Total(9000, 1000)).HasBadge())
}
