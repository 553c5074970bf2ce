//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import "io"

// otherBackend refuses to start; use the tcell backend on these platforms
type otherBackend struct{}

func newBackend() Backend { return otherBackend{} }

func (otherBackend) Init() error { return ErrUnsupported }
func (otherBackend) Fini() {}
func (otherBackend) Size() (int, int) { return 80, 24 }
func (otherBackend) Write(p []byte) (int, error) { return len(p), nil }
func (otherBackend) Read(<-chan struct{}) ([]byte, error) { return nil, io.EOF }
func (otherBackend) SetResizeHandler(func(width, height int)) {}

func resetTerminalMode() {}
