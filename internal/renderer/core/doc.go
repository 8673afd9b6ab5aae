// Package core provides the cell, style and geometry types shared by the
// renderer packages. It has no renderer dependencies of its own so that
// backend and textview can both import it.
package core
