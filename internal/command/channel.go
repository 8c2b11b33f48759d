package command

import "sync"

// Channel is an unbounded FIFO of commands. Any number of goroutines may Push;
// a single consumer calls DrainAll once per tick. It is the only value shared
// between the recognition goroutine and the simulation.
type Channel struct {
	mu    sync.Mutex
	queue []Command
}

// NewChannel creates an empty command channel.
func NewChannel() *Channel {
	return &Channel{}
}

// Push appends a command. It never blocks on the consumer.
func (c *Channel) Push(cmd Command) {
	c.mu.Lock()
	c.queue = append(c.queue, cmd)
	c.mu.Unlock()
}

// DrainAll removes and returns every queued command in enqueue order.
// It returns nil when the queue is empty.
func (c *Channel) DrainAll() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.queue) == 0 {
		return nil
	}
	out := c.queue
	c.queue = nil
	return out
}

// Len returns the number of queued commands.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}
