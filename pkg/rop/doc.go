// Package rop provides Result, a three-state tagged union of None, Ok and Err,
// and scoped early-return helpers for functions that return results.
//
// Domain failures are data: no operation here returns a Go error or panics
// for a failed computation. Panics are reserved for contract violations such
// as MustOk on a result that is not Ok.
//
// Key operations:
// - MakeOk/MakeErr/None: construct a Result (the zero value is None)
// - Match/MatchMut: dispatch on the current state
// - GetOk/GetErr: pointer to the live payload, or nil
// - MapOk/MapErr: consume a Result and replace a matching payload
// - Take: move a Result out, leaving None behind
// - Do/Try/TryInto/Check: return a failing result from the enclosing function
// - FromTuple/ToTuple: bridge to the (value, error) idiom
//
// Free combinators live in package solo, a fluent chain in package tiny and
// the sentinel-tagged variant in package sentinel.
package rop
