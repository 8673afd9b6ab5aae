package event

import "strings"

// Topic is a hierarchical event type using dot notation.
type Topic string

const (
	// Separator separates topic segments.
	Separator = "."

	// WildcardMulti matches zero or more trailing segments.
	WildcardMulti = "**"
)

// Viewport lifecycle topics.
const (
	TopicViewportVisibility Topic = "viewport.visibility"
	TopicViewportClosed     Topic = "viewport.closed"
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// IsValid reports whether the topic is non-empty and has no empty segments.
func (t Topic) IsValid() bool {
	if t == "" {
		return false
	}
	for _, seg := range strings.Split(string(t), Separator) {
		if seg == "" {
			return false
		}
	}
	return true
}

// Matches reports whether the pattern t matches the concrete topic other.
// Only a trailing "**" segment is treated as a wildcard.
func (t Topic) Matches(other Topic) bool {
	if t == other {
		return true
	}
	s := string(t)
	if s == WildcardMulti {
		return true
	}
	prefix, ok := strings.CutSuffix(s, Separator+WildcardMulti)
	if !ok {
		return false
	}
	o := string(other)
	return o == prefix || strings.HasPrefix(o, prefix+Separator)
}
