package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func absDiff(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

// offsets of the 8-connected neighbourhood, row-major
var around = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// offsets of the 4-connected neighbourhood
var cross = [4][2]int{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// offset returns the index dx, dy away from i, or false if that falls off
// the grid. There is no wraparound.
func (p GameParams) offset(i, dx, dy int) (int, bool) {
	x, y := i%p.Width+dx, i/p.Width+dy
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return 0, false
	}
	return y*p.Width + x, true
}

func (p GameParams) neighbours(i int, offsets [][2]int) []int {
	res := make([]int, 0, len(offsets))
	for _, d := range offsets {
		if j, ok := p.offset(i, d[0], d[1]); ok {
			res = append(res, j)
		}
	}
	return res
}
