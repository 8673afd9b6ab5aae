// Package textview draws a read-only text document into a region of a
// terminal backend and exposes it as an autoscroll.Viewport.
//
// Terminal cells stand in for pixels: one cell of pointer movement is one
// pixel of displacement, and one scrolled pixel moves the view by one line
// or column. The pointer shape cannot be changed on a terminal, so the
// current cursor is reflected in the status line and the anchor indicator
// is drawn as a glyph over the text.
package textview
