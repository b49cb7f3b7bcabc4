//go:build !unix

package terminal

import "errors"

// ErrNotTerminal is returned when the raw backend cannot run on this platform
var ErrNotTerminal = errors.New("raw terminal backend requires a unix system, use -backend tcell")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                              { return ErrNotTerminal }
func (unsupportedBackend) Fini()                                    {}
func (unsupportedBackend) Size() (int, int)                         { return 80, 24 }
func (unsupportedBackend) Write([]byte) error                       { return ErrNotTerminal }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error)     { return nil, ErrNotTerminal }
func (unsupportedBackend) SetResizeHandler(func(width, height int)) {}

func resetTerminalMode() {}
