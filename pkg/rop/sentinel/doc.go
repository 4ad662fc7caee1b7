// Package sentinel provides Result, a two-state result whose error value is
// also its discriminant.
//
// One value of the error type is reserved to mean "no error". The reserved
// value is fixed at compile time by a marker type implementing Sentinel, so
// two result types with different sentinels never mix:
//
//	type ErrorCode int
//
//	const (
//		CodeOK ErrorCode = iota
//		CodeFail
//	)
//
//	type codeOK struct{}
//
//	func (codeOK) Sentinel() ErrorCode { return CodeOK }
//
//	type EcResult = sentinel.Result[string, ErrorCode, codeOK]
//
// There is no None state. Constructing an Err with the sentinel value is a
// contract violation.
package sentinel
