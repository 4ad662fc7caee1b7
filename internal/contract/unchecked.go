//go:build rop_unchecked

package contract

const checksEnabled = false
