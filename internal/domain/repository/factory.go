package repository

import "io"

// Backend is an order registry that owns resources released on shutdown.
type Backend interface {
	OrderRegistry
	io.Closer
	Name() string
}
