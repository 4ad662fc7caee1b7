package mem

import (
	"reflect"
	"unsafe"

	"github.com/ib-77/rustlike/internal/contract"
	"go.uber.org/zap"
)

func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// Replace stores v in dst and returns the previous value.
func Replace[T any](dst *T, v T) T {
	old := *dst
	*dst = v
	return old
}

// Take moves the value out of p and leaves the zero value behind.
func Take[T any](p *T) T {
	var zero T
	return Replace(p, zero)
}

// SwapBytes exchanges the memory of a and b byte by byte.
func SwapBytes[T any](a, b *T) {
	SwapBytesWith(a, b)
}

// SwapBytesWith exchanges the memory of two values of different types that
// share size and alignment. Both types must be pointer-free.
func SwapBytesWith[A, B any](a *A, b *B) {
	ta := reflect.TypeFor[A]()
	tb := reflect.TypeFor[B]()

	contract.Require(ta.Size() == tb.Size(), "mem.SwapBytesWith", "size mismatch",
		zap.Stringer("lhs", ta), zap.Stringer("rhs", tb))
	contract.Require(ta.Align() == tb.Align(), "mem.SwapBytesWith", "alignment mismatch",
		zap.Stringer("lhs", ta), zap.Stringer("rhs", tb))
	contract.Require(pointerFree(ta) && pointerFree(tb), "mem.SwapBytesWith", "type holds pointers",
		zap.Stringer("lhs", ta), zap.Stringer("rhs", tb))

	swapSized(
		unsafe.Slice((*byte)(unsafe.Pointer(a)), ta.Size()),
		unsafe.Slice((*byte)(unsafe.Pointer(b)), tb.Size()))
}

func swapSized(lhs, rhs []byte) {
	for i := range lhs {
		lhs[i], rhs[i] = rhs[i], lhs[i]
	}
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// uintptr may hide an address; strings, slices, maps, funcs,
		// channels, interfaces and pointers all carry one.
		return false
	}
}
