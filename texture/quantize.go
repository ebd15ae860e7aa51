package texture

import (
	"math"

	"github.com/lixenwraith/term7/bitmap"
)

// Quantizer merges nearest palette entries until an image uses few enough colors
// The occupancy table is reused between passes and between calls; a Quantizer
// must not be shared across goroutines
type Quantizer struct {
	counts [bitmap.PaletteEntries]uint32
}

// Quantize reduces img in place so that at most maxColors indices are occupied
// Stops as soon as fewer than 2 colors remain, whatever maxColors says
func (q *Quantizer) Quantize(img *bitmap.Image, maxColors int) {
	for {
		img.Occupancy(&q.counts)

		occupied := 0
		for _, n := range q.counts {
			if n > 0 {
				occupied++
			}
		}
		if occupied < 2 || occupied <= maxColors {
			return
		}

		a, b := q.nearestPair(&img.Palette)
		q.merge(img, a, b)
	}
}

// nearestPair finds the occupied pair (a < b) with the smallest RGB distance
// Ties keep the first pair in ascending (a, b) order
func (q *Quantizer) nearestPair(pal *bitmap.Palette) (uint8, uint8) {
	var bestA, bestB int
	best := math.MaxInt

	for i := 0; i < bitmap.PaletteEntries; i++ {
		if q.counts[i] == 0 {
			continue
		}
		for j := i + 1; j < bitmap.PaletteEntries; j++ {
			if q.counts[j] == 0 {
				continue
			}
			// Squared distance orders pairs exactly like the Euclidean one
			if d := distSq(pal[i].R, pal[i].G, pal[i].B, pal[j].R, pal[j].G, pal[j].B); d < best {
				best = d
				bestA, bestB = i, j
			}
		}
	}
	return uint8(bestA), uint8(bestB)
}

// merge replaces both entries by their occupancy-weighted mean and folds b into a
func (q *Quantizer) merge(img *bitmap.Image, a, b uint8) {
	na, nb := uint64(q.counts[a]), uint64(q.counts[b])
	total := na + nb
	ca, cb := img.Palette[a], img.Palette[b]

	mixed := ca
	mixed.R = uint8((uint64(ca.R)*na + uint64(cb.R)*nb) / total)
	mixed.G = uint8((uint64(ca.G)*na + uint64(cb.G)*nb) / total)
	mixed.B = uint8((uint64(ca.B)*na + uint64(cb.B)*nb) / total)

	img.Palette[a] = mixed
	img.Palette[b] = mixed

	for i, idx := range img.Pix {
		if idx == b {
			img.Pix[i] = a
		}
	}
}

// Quantize reduces img in place with a throwaway Quantizer
func Quantize(img *bitmap.Image, maxColors int) {
	var q Quantizer
	q.Quantize(img, maxColors)
}

// CountColors returns the number of distinct indices referenced by img
func CountColors(img *bitmap.Image) int {
	var counts [bitmap.PaletteEntries]uint32
	img.Occupancy(&counts)
	n := 0
	for _, c := range counts {
		if c > 0 {
			n++
		}
	}
	return n
}

func distSq(r1, g1, b1, r2, g2, b2 uint8) int {
	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)
	return dr*dr + dg*dg + db*db
}
