package autoscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectCursor(t *testing.T) {
	tests := []struct {
		h, v float64
		want Cursor
	}{
		{1, 1, CursorScrollSE},
		{1, -1, CursorScrollNE},
		{1, 0, CursorScrollE},
		{-1, 1, CursorScrollSW},
		{-1, -1, CursorScrollNW},
		{-1, 0, CursorScrollW},
		{0, 1, CursorScrollS},
		{0, -1, CursorScrollN},
		{0, 0, CursorScrollAll},
		{42, -0.5, CursorScrollNE},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectCursor(tt.h, tt.v), "h=%v v=%v", tt.h, tt.v)
	}
}

func TestCursorIsScroll(t *testing.T) {
	assert.False(t, CursorDefault.IsScroll())
	assert.False(t, CursorText.IsScroll())
	for c := CursorScrollAll; c <= CursorScrollNW; c++ {
		assert.True(t, c.IsScroll(), c.String())
	}
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "scroll-all", CursorScrollAll.String())
	assert.Equal(t, "scroll-sw", CursorScrollSW.String())
	assert.Equal(t, "text", CursorText.String())
	assert.Equal(t, "unknown", Cursor(99).String())
}
