package rop

// OkGetter is the contract shared by every result type that can be unwrapped
// by the propagation helpers.
type OkGetter[T any] interface {
	// GetOk returns the Ok payload or nil
	GetOk() *T
}

// ErrGetter exposes the failure payload of a result.
type ErrGetter[E any] interface {
	// GetErr returns the Err payload or nil
	GetErr() *E
}

// Fallible is implemented by pointers to rop.Result and sentinel.Result.
type Fallible[T, E any] interface {
	OkGetter[T]
	ErrGetter[E]
	// IsOk reports whether the Ok payload is live
	IsOk() bool
	// IsErr reports whether the Err payload is live
	IsErr() bool
}

var _ Fallible[int, string] = (*Result[int, string])(nil)
