// Package mem moves values between owned slots.
//
// Swap, Replace and Take transfer ownership through ordinary Go assignment and
// are safe for every type. SwapBytes and SwapBytesWith exchange the raw memory
// of two values and are reserved for address-independent, pointer-free types:
// a value that stores its own address, or any pointer the garbage collector
// must track, is rejected.
//
// Key operations:
// - Swap: exchange two owned slots
// - Replace/Take: move a value out, leaving a replacement or the zero value
// - SwapBytes/SwapBytesWith: byte-level exchange of same-layout values
package mem
