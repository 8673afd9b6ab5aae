package input

import "strings"

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceMouse indicates the action originated from mouse input.
	SourceMouse
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Modifier represents keyboard modifier keys held during an input event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key.
	ModCtrl
	// ModAlt indicates the Alt key.
	ModAlt
	// ModMeta indicates the Meta key.
	ModMeta
)

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// String returns a representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Extra holds additional key-value pairs, such as the "x" and "y"
	// screen cell of a mouse action.
	Extra map[string]interface{}
}

// GetInt retrieves an int value from Extra.
func (a ActionArgs) GetInt(key string) int {
	if v, ok := a.Extra[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// Action represents a command for the pager to execute.
type Action struct {
	// Name is the command identifier (e.g., "scroll.down", "view.markLine").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count. Zero means once.
	Count int
}

// Times returns the effective repeat count, at least 1.
func (a Action) Times() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}

// At builds a mouse action carrying the screen cell it happened at.
func At(name string, x, y int) Action {
	return Action{
		Name:   name,
		Source: SourceMouse,
		Args: ActionArgs{
			Extra: map[string]interface{}{"x": x, "y": y},
		},
	}
}
