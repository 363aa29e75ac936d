package tui

// region is the on-screen rectangle of a hit target, in cells.
type region struct {
	id         string
	x, y, w, h int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func shift(rs []region, dx, dy int) []region {
	if len(rs) == 0 || (dx == 0 && dy == 0) {
		return rs
	}
	out := make([]region, len(rs))
	for i, r := range rs {
		r.x += dx
		r.y += dy
		out[i] = r
	}
	return out
}

// hitTest returns the innermost region containing (x, y). Children are appended after
// their parents, so the last match wins.
func hitTest(rs []region, x, y int) string {
	id := ""
	for _, r := range rs {
		if r.contains(x, y) {
			id = r.id
		}
	}
	return id
}
