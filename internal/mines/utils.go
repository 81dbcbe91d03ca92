package mines

import "iter"

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// neighbours yields the row-major indices of the up to 8 cells around i.
func neighbours(width, height, i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		x, y := i%width, i/width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if xx < 0 || xx >= width || yy < 0 || yy >= height {
					continue
				}
				if !yield(yy*width + xx) {
					return
				}
			}
		}
	}
}
