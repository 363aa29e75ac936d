//nolint:testpackage // White-box tests exercise unexported layout helpers.
package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitTest_InnermostWins(t *testing.T) {
	t.Parallel()

	rs := []region{
		{id: "body", x: 0, y: 0, w: 20, h: 10},
		{id: "tile:roco", x: 2, y: 2, w: 5, h: 3},
	}
	assert.Equal(t, "tile:roco", hitTest(rs, 3, 3))
	assert.Equal(t, "body", hitTest(rs, 10, 3))
	assert.Equal(t, "body", hitTest(rs, 7, 2), "right edge is exclusive")
	assert.Empty(t, hitTest(rs, 20, 0))
	assert.Empty(t, hitTest(nil, 0, 0))
}

func TestShift(t *testing.T) {
	t.Parallel()

	rs := []region{{id: "a", x: 1, y: 1, w: 2, h: 2}}
	got := shift(rs, 3, 4)
	assert.Equal(t, []region{{id: "a", x: 4, y: 5, w: 2, h: 2}}, got)
	assert.Equal(t, 1, rs[0].x, "input is not mutated")
	assert.Equal(t, rs, shift(rs, 0, 0))
}
