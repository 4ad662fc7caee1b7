// Package solo contains single-value, synchronous combinators over
// rop.Result[T, E]. Unlike the methods of rop.Result they may change the Ok or
// Err type.
//
// None and Err inputs pass through every combinator untouched; only the Ok
// path runs user code.
//
// Highlights:
// - Succeed/Fail/Empty: construct Result[T, E]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/MapErr: transform the Ok or the Err payload
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Or/Collect: combine several results
// - Finally: reduce to a concrete value via ok/err/none handlers
package solo
