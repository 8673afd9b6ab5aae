package autoscroll

// Cursor identifies a pointer cursor shape shown by a viewport.
type Cursor uint8

const (
	// CursorDefault is whatever the viewport shows outside a session.
	CursorDefault Cursor = iota
	// CursorText is the text-insertion cursor.
	CursorText
	// CursorScrollAll is the neutral, omni-directional pan cursor.
	CursorScrollAll
	CursorScrollN
	CursorScrollNE
	CursorScrollE
	CursorScrollSE
	CursorScrollS
	CursorScrollSW
	CursorScrollW
	CursorScrollNW
)

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorText:
		return "text"
	case CursorScrollAll:
		return "scroll-all"
	case CursorScrollN:
		return "scroll-n"
	case CursorScrollNE:
		return "scroll-ne"
	case CursorScrollE:
		return "scroll-e"
	case CursorScrollSE:
		return "scroll-se"
	case CursorScrollS:
		return "scroll-s"
	case CursorScrollSW:
		return "scroll-sw"
	case CursorScrollW:
		return "scroll-w"
	case CursorScrollNW:
		return "scroll-nw"
	default:
		return "unknown"
	}
}

// IsScroll reports whether c is one of the nine pan cursors.
func (c Cursor) IsScroll() bool {
	return c >= CursorScrollAll && c <= CursorScrollNW
}

// SelectCursor maps the signs of the per-tick scroll amounts to a pan
// cursor. Positive horizontal is east, positive vertical is south (screen
// coordinates). Zero on both axes selects CursorScrollAll.
func SelectCursor(horizontal, vertical float64) Cursor {
	switch {
	case horizontal > 0:
		switch {
		case vertical > 0:
			return CursorScrollSE
		case vertical < 0:
			return CursorScrollNE
		}
		return CursorScrollE
	case horizontal < 0:
		switch {
		case vertical > 0:
			return CursorScrollSW
		case vertical < 0:
			return CursorScrollNW
		}
		return CursorScrollW
	case vertical > 0:
		return CursorScrollS
	case vertical < 0:
		return CursorScrollN
	}
	return CursorScrollAll
}
