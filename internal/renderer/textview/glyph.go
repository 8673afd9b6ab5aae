package textview

import "github.com/dshills/autoscroll/internal/autoscroll"

var cursorGlyphs = map[autoscroll.Cursor]rune{
	autoscroll.CursorScrollAll: '✥',
	autoscroll.CursorScrollN:   '↑',
	autoscroll.CursorScrollNE:  '↗',
	autoscroll.CursorScrollE:   '→',
	autoscroll.CursorScrollSE:  '↘',
	autoscroll.CursorScrollS:   '↓',
	autoscroll.CursorScrollSW:  '↙',
	autoscroll.CursorScrollW:   '←',
	autoscroll.CursorScrollNW:  '↖',
	autoscroll.CursorText:      'I',
}

// Glyph returns the character drawn for a cursor shape.
func Glyph(c autoscroll.Cursor) rune {
	if r, ok := cursorGlyphs[c]; ok {
		return r
	}
	return ' '
}
