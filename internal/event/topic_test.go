package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_IsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"viewport.closed", true},
		{"viewport", true},
		{"", false},
		{"viewport.", false},
		{".closed", false},
		{"viewport..closed", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.topic), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.topic.IsValid())
		})
	}
}

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		pattern Topic
		topic   Topic
		want    bool
	}{
		{"viewport.closed", "viewport.closed", true},
		{"viewport.closed", "viewport.visibility", false},
		{"viewport.**", "viewport.closed", true},
		{"viewport.**", "viewport", true},
		{"viewport.**", "viewports.closed", false},
		{"**", "anything.at.all", true},
		{"viewport.*", "viewport.closed", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern)+"->"+string(tt.topic), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.topic))
		})
	}
}
