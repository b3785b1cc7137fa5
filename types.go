// Package typeframe puts a compile-time schema in front of the untyped
// columnar engine in package frame. Schemas are declared once through the
// registration builder; afterwards every table handle, column reference, sort
// key and expression is checked by the compiler, and the single remaining
// runtime check happens at table construction.
package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// Element is the closed set of Go types that map 1:1 onto the engine's
// runtime element types. The set is deliberately exact (no ~approximation):
// TypeOf must be total over it.
type Element interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | string
}

// Numeric are the element types with arithmetic.
type Numeric interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Ordered are the element types with a total order. Booleans are excluded, so
// sorting by a bool column is a compile error.
type Ordered interface {
	Numeric | string
}

// TypeOf returns the engine's runtime type tag for the element type T.
func TypeOf[T Element]() frame.Type {
	var zero T
	switch interface{}(zero).(type) {
	case int8:
		return frame.Int8
	case int16:
		return frame.Int16
	case int32:
		return frame.Int32
	case int64:
		return frame.Int64
	case uint8:
		return frame.UInt8
	case uint16:
		return frame.UInt16
	case uint32:
		return frame.UInt32
	case uint64:
		return frame.UInt64
	case float32:
		return frame.Float32
	case float64:
		return frame.Float64
	case bool:
		return frame.Boolean
	case string:
		return frame.String
	}
	panic("unreachable: Element is a closed set")
}
