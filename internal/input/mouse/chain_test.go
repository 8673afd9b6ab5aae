package mouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/autoscroll/internal/input"
)

type stubProcessor struct {
	name   string
	handle func(Event) bool
	seen   []Event
}

func (p *stubProcessor) Name() string { return p.name }

func (p *stubProcessor) ProcessMouse(ev Event) bool {
	p.seen = append(p.seen, ev)
	return p.handle(ev)
}

func TestChainOrder(t *testing.T) {
	first := &stubProcessor{name: "first", handle: func(ev Event) bool { return ev.Button == ButtonMiddle }}
	second := &stubProcessor{name: "second", handle: func(Event) bool { return true }}
	c := NewChain(first, nil, second)
	require.Equal(t, 2, c.Len())

	by, ok := c.Process(Event{Button: ButtonMiddle, Action: ActionPress})
	assert.True(t, ok)
	assert.Equal(t, "first", by)
	assert.Empty(t, second.seen)

	by, ok = c.Process(Event{Button: ButtonLeft, Action: ActionPress})
	assert.True(t, ok)
	assert.Equal(t, "second", by)
	assert.Len(t, first.seen, 2)
}

func TestChainUnhandled(t *testing.T) {
	c := NewChain(&stubProcessor{name: "never", handle: func(Event) bool { return false }})

	by, ok := c.Process(Event{Action: ActionMove})
	assert.False(t, ok)
	assert.Empty(t, by)
}

func TestChainInsertRemove(t *testing.T) {
	c := NewChain(&stubProcessor{name: "b"})
	c.Insert(&stubProcessor{name: "a"})
	c.Add(&stubProcessor{name: "c"})
	assert.Equal(t, []string{"a", "b", "c"}, c.Names())

	assert.True(t, c.Remove("b"))
	assert.False(t, c.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, c.Names())
}

func TestHandlerProcessorDispatches(t *testing.T) {
	var got []input.Action
	p := NewHandler(DefaultConfig()).Processor(func(a input.Action) { got = append(got, a) })
	assert.Equal(t, "mouse", p.Name())

	assert.True(t, p.ProcessMouse(press(ButtonScrollUp, 0, 0, time.Now())))
	assert.False(t, p.ProcessMouse(Event{Action: ActionMove}))

	require.Len(t, got, 1)
	assert.Equal(t, ActionScrollUp, got[0].Name)
}
