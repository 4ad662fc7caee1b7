// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of rop.Result[T, E] values.
//
// Every step runs only on an Ok result; None and Err stop the chain and are
// carried to the end unchanged.
// - Start/FromValue: create a Chain
// - Then/Map: compose result-returning or plain functions
// - RepeatUntil/While: loop a step while the result stays Ok
// - Or/And: pick between chains
// - Ensure: trigger side effects per state
// - Finally: reduce to a concrete value via handlers
package tiny
