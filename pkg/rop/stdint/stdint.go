// Package stdint names Go's fixed-width integers with short Rust-style
// aliases. The widths are verified at compile time.
package stdint

import "unsafe"

type (
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64

	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64

	// Usize and Isize are pointer-width.
	Usize = uint
	Isize = int
)

// Each pair of array types is only valid when the width matches exactly:
// a negative constant length does not compile.
var (
	_ [unsafe.Sizeof(U8(0)) - 1]struct{}
	_ [1 - unsafe.Sizeof(U8(0))]struct{}
	_ [unsafe.Sizeof(U16(0)) - 2]struct{}
	_ [2 - unsafe.Sizeof(U16(0))]struct{}
	_ [unsafe.Sizeof(U32(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(U32(0))]struct{}
	_ [unsafe.Sizeof(U64(0)) - 8]struct{}
	_ [8 - unsafe.Sizeof(U64(0))]struct{}

	_ [unsafe.Sizeof(I8(0)) - 1]struct{}
	_ [1 - unsafe.Sizeof(I8(0))]struct{}
	_ [unsafe.Sizeof(I16(0)) - 2]struct{}
	_ [2 - unsafe.Sizeof(I16(0))]struct{}
	_ [unsafe.Sizeof(I32(0)) - 4]struct{}
	_ [4 - unsafe.Sizeof(I32(0))]struct{}
	_ [unsafe.Sizeof(I64(0)) - 8]struct{}
	_ [8 - unsafe.Sizeof(I64(0))]struct{}

	_ [unsafe.Sizeof(Usize(0)) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Usize(0))]struct{}
	_ [unsafe.Sizeof(Isize(0)) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Isize(0))]struct{}
)
