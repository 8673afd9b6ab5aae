package mouse

// Processor consumes mouse events. ProcessMouse reports whether the event
// was handled; a handled event is not offered to later processors.
type Processor interface {
	Name() string
	ProcessMouse(event Event) bool
}

// Chain is an ordered list of processors. Events are offered to each
// processor in turn until one handles them.
type Chain struct {
	processors []Processor
}

// NewChain creates a chain with the given processors, first to last.
func NewChain(processors ...Processor) *Chain {
	c := &Chain{}
	for _, p := range processors {
		c.Add(p)
	}
	return c
}

// Add appends p to the end of the chain. Nil processors are ignored.
func (c *Chain) Add(p Processor) {
	if p == nil {
		return
	}
	c.processors = append(c.processors, p)
}

// Insert puts p at the front of the chain.
func (c *Chain) Insert(p Processor) {
	if p == nil {
		return
	}
	c.processors = append([]Processor{p}, c.processors...)
}

// Remove drops the first processor called name.
func (c *Chain) Remove(name string) bool {
	for i, p := range c.processors {
		if p.Name() == name {
			c.processors = append(c.processors[:i], c.processors[i+1:]...)
			return true
		}
	}
	return false
}

// Process offers event to the processors in order. It returns the name of
// the processor that handled it, or false if none did.
func (c *Chain) Process(event Event) (string, bool) {
	for _, p := range c.processors {
		if p.ProcessMouse(event) {
			return p.Name(), true
		}
	}
	return "", false
}

// Len returns the number of processors.
func (c *Chain) Len() int {
	return len(c.processors)
}

// Names returns the processor names in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.processors))
	for i, p := range c.processors {
		names[i] = p.Name()
	}
	return names
}
