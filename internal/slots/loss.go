package slots

import (
	"fmt"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

// lossCombination maps a loss draw onto reels.
// i1, i2, i3 index the first five symbols of the bot slots order and k is in [1,4].
// When reels 1 and 3 agree, reel 2 is pushed off their symbol by k, so no triple
// can form. O never appears on reel 2: its index always maps to W, so O-W-O never forms.
func lossCombination(i1, i2, i3, k int) domain.ReelCombination {
	if i3 == i1 {
		i2 = (i1 + k) % lossAlphabetSize
	}
	if i2 == lossReservedIndex {
		i2 = lossWIndex
	}
	order := domain.BotSlotsOrder
	return domain.ReelCombination{order[i1], order[i2], order[i3]}
}

// pickIndex scales u in [0,1) to [0,n), guarding against u == 1 from a misbehaving source.
func pickIndex(u float64, n int) int {
	i := int(u * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// drawLoss draws a non-paying combination from src
func drawLoss(src RandomSource) domain.ReelCombination {
	i1 := pickIndex(src.Float64(), lossAlphabetSize)
	i2 := pickIndex(src.Float64(), lossAlphabetSize)
	i3 := pickIndex(src.Float64(), lossAlphabetSize)
	k := 1
	if i3 == i1 {
		k += pickIndex(src.Float64(), lossAlphabetSize-1)
	}
	return lossCombination(i1, i2, i3, k)
}

// checkLossDisjoint verifies that no input of the loss draw produces a paying combination.
func checkLossDisjoint(p Paytable) error {
	for i1 := 0; i1 < lossAlphabetSize; i1++ {
		for i2 := 0; i2 < lossAlphabetSize; i2++ {
			for i3 := 0; i3 < lossAlphabetSize; i3++ {
				for k := 1; k < lossAlphabetSize; k++ {
					comb := lossCombination(i1, i2, i3, k)
					if r, ok := p.Lookup(comb); ok {
						return fmt.Errorf("%w: rule %q collides with loss combination %s", domain.ErrInvalidPaytable, r.Name, comb)
					}
				}
			}
		}
	}
	return nil
}
