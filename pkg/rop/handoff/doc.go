// Package handoff moves rop.Result values between goroutines through
// channels. Results carry no synchronization, so a value crossing goroutines
// is handed off rather than shared: once it has been delivered the sending
// side only holds None.
//
// Key operations:
// - Send: move one result into a channel
// - ToChanMany: move a slice of results into a new channel
// - FromChanMany/FirstOrDefault: drain a channel until it closes or ctx ends
package handoff
