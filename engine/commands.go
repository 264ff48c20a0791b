package engine

// Commands buffers work that must happen after every system of a frame has run.
type Commands struct {
	defers []func()
	quit   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a function to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Quit asks the scheduler to stop after the current frame.
func (c *Commands) Quit() {
	c.quit = true
}

// Flush runs the deferred functions in order and resets the buffer. It reports
// whether a quit was requested.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}
	clear(c.defers)
	c.defers = c.defers[:0]

	quit := c.quit
	c.quit = false
	return quit
}
