// Package contract reports programmer errors: broken preconditions of the rop
// types that are bugs in the calling code rather than runtime conditions.
//
// A violation is logged through the global zap logger and then raised as a
// panic carrying *Violation. Require checks are removed when the module is
// built with the rop_unchecked tag; Fail always panics because its callers
// have no value left to return.
package contract
