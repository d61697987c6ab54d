package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

func TestLossCombination_Exhaustive(t *testing.T) {
	jackpot := domain.ReelCombination{domain.SymbolO, domain.SymbolW, domain.SymbolO}
	paytable := DefaultPaytable()
	seen := make(map[domain.ReelCombination]struct{})

	for i1 := 0; i1 < 5; i1++ {
		for i2 := 0; i2 < 5; i2++ {
			for i3 := 0; i3 < 5; i3++ {
				for k := 1; k <= 4; k++ {
					comb := lossCombination(i1, i2, i3, k)
					assert.False(t, comb.TripleMatch(), "triple from (%d,%d,%d,%d): %s", i1, i2, i3, k, comb)
					assert.NotEqual(t, jackpot, comb, "jackpot from (%d,%d,%d,%d)", i1, i2, i3, k)
					_, paid := paytable.Lookup(comb)
					assert.False(t, paid, "paying combination from (%d,%d,%d,%d): %s", i1, i2, i3, k, comb)
					assert.True(t, comb.Resolved())
					seen[comb] = struct{}{}
				}
			}
		}
	}

	// reels 1 and 3 draw from five symbols, reel 2 from {eggplant..cowoncy, w}
	assert.LessOrEqual(t, len(seen), 5*5*5)
	assert.Greater(t, len(seen), 50)
}

func TestLossCombination_ReelTwoShowsWForO(t *testing.T) {
	comb := lossCombination(0, 4, 1, 1)
	assert.Equal(t, domain.ReelCombination{domain.SymbolEggplant, domain.SymbolW, domain.SymbolHeart}, comb)

	// also when the outer reels match
	comb = lossCombination(0, 2, 0, 4)
	assert.Equal(t, domain.ReelCombination{domain.SymbolEggplant, domain.SymbolW, domain.SymbolEggplant}, comb)

	for i1 := 0; i1 < 5; i1++ {
		for i2 := 0; i2 < 5; i2++ {
			for i3 := 0; i3 < 5; i3++ {
				for k := 1; k <= 4; k++ {
					assert.NotEqual(t, domain.SymbolO, lossCombination(i1, i2, i3, k)[1])
				}
			}
		}
	}
}

func TestLossCombination_MatchingOuterReels(t *testing.T) {
	// O _ O forces reel 2 off O; k=1 wraps to eggplant
	comb := lossCombination(4, 4, 4, 1)
	assert.Equal(t, domain.ReelCombination{domain.SymbolO, domain.SymbolEggplant, domain.SymbolO}, comb)

	// cowoncy _ cowoncy with k=1 lands on O, which reel 2 shows as W
	comb = lossCombination(3, 3, 3, 1)
	assert.Equal(t, domain.ReelCombination{domain.SymbolCowoncy, domain.SymbolW, domain.SymbolCowoncy}, comb)
}

func TestDrawLoss_NeverPays(t *testing.T) {
	paytable := DefaultPaytable()
	rapid.Check(t, func(t *rapid.T) {
		src := NewSeededSource(rapid.Uint64().Draw(t, "seed"))
		comb := drawLoss(src)
		if comb.TripleMatch() {
			t.Fatalf("triple %s", comb)
		}
		if _, paid := paytable.Lookup(comb); paid {
			t.Fatalf("paying combination %s", comb)
		}
	})
}

func TestPickIndex_Clamps(t *testing.T) {
	assert.Equal(t, 0, pickIndex(0, 5))
	assert.Equal(t, 4, pickIndex(0.9999999, 5))
	assert.Equal(t, 4, pickIndex(1, 5))
	assert.Equal(t, 0, pickIndex(-0.5, 5))
}
