// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous chains whose payload types change along the way.
//
// It composes solo functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, E] type. Package tiny covers chains that keep one type.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map/MapErr: transform the Ok value (T -> U) or the Err value (E -> F)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
