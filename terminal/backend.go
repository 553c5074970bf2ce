package terminal

// Backend abstracts the platform side of the native terminal: raw mode,
// byte-level I/O and resize notification
type Backend interface {
	Init() error
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// An empty slice with a nil error means the poll timed out or stop was requested.
	// io.EOF reports that the input side was closed.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
