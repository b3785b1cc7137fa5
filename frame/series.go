package frame

import (
	"strconv"

	"github.com/pkg/errors"
)

// Series is a single named column. The backing slice's element kind always
// matches the type tag; that invariant is established in NewSeries and
// preserved by every operation, so accessors never cast across types.
type Series struct {
	name   string
	typ    Type
	data   interface{}
	length int
}

// NewSeries wraps a typed slice as a column. data must be the slice kind
// matching typ ([]int64 for Int64 and so on), otherwise an error is returned.
func NewSeries(name string, typ Type, data interface{}) (*Series, error) {
	length, ok := sliceLength(typ, data)
	if !ok {
		return nil, errors.Errorf("series %q: backing data %T doesn't match element type %s", name, data, typ)
	}
	return &Series{name: name, typ: typ, data: data, length: length}, nil
}

func sliceLength(typ Type, data interface{}) (int, bool) {
	switch typ {
	case Int8:
		v, ok := data.([]int8)
		return len(v), ok
	case Int16:
		v, ok := data.([]int16)
		return len(v), ok
	case Int32:
		v, ok := data.([]int32)
		return len(v), ok
	case Int64:
		v, ok := data.([]int64)
		return len(v), ok
	case UInt8:
		v, ok := data.([]uint8)
		return len(v), ok
	case UInt16:
		v, ok := data.([]uint16)
		return len(v), ok
	case UInt32:
		v, ok := data.([]uint32)
		return len(v), ok
	case UInt64:
		v, ok := data.([]uint64)
		return len(v), ok
	case Float32:
		v, ok := data.([]float32)
		return len(v), ok
	case Float64:
		v, ok := data.([]float64)
		return len(v), ok
	case Boolean:
		v, ok := data.([]bool)
		return len(v), ok
	case String:
		v, ok := data.([]string)
		return len(v), ok
	}
	return 0, false
}

func (s *Series) Name() string { return s.name }

func (s *Series) Type() Type { return s.typ }

func (s *Series) Len() int { return s.length }

// Data returns the backing slice. The dynamic type is the slice kind matching
// Type(); callers that checked the tag may assert without a comma-ok.
func (s *Series) Data() interface{} { return s.data }

// Value returns the i-th element boxed as interface{}.
func (s *Series) Value(i int) interface{} {
	switch s.typ {
	case Int8:
		return s.data.([]int8)[i]
	case Int16:
		return s.data.([]int16)[i]
	case Int32:
		return s.data.([]int32)[i]
	case Int64:
		return s.data.([]int64)[i]
	case UInt8:
		return s.data.([]uint8)[i]
	case UInt16:
		return s.data.([]uint16)[i]
	case UInt32:
		return s.data.([]uint32)[i]
	case UInt64:
		return s.data.([]uint64)[i]
	case Float32:
		return s.data.([]float32)[i]
	case Float64:
		return s.data.([]float64)[i]
	case Boolean:
		return s.data.([]bool)[i]
	case String:
		return s.data.([]string)[i]
	}
	panic("invalid series type")
}

func typedData[T any](s *Series, want Type) ([]T, error) {
	if s.typ != want {
		return nil, errors.Errorf("series %q has type %s, expected %s", s.name, s.typ, want)
	}
	return s.data.([]T), nil
}

// The typed accessors below return the backing slice when the series carries
// the requested element type, an error otherwise. Shared, not copied.

func (s *Series) Int8s() ([]int8, error) { return typedData[int8](s, Int8) }

func (s *Series) Int16s() ([]int16, error) { return typedData[int16](s, Int16) }

func (s *Series) Int32s() ([]int32, error) { return typedData[int32](s, Int32) }

func (s *Series) Int64s() ([]int64, error) { return typedData[int64](s, Int64) }

func (s *Series) UInt8s() ([]uint8, error) { return typedData[uint8](s, UInt8) }

func (s *Series) UInt16s() ([]uint16, error) { return typedData[uint16](s, UInt16) }

func (s *Series) UInt32s() ([]uint32, error) { return typedData[uint32](s, UInt32) }

func (s *Series) UInt64s() ([]uint64, error) { return typedData[uint64](s, UInt64) }

func (s *Series) Float32s() ([]float32, error) { return typedData[float32](s, Float32) }

func (s *Series) Float64s() ([]float64, error) { return typedData[float64](s, Float64) }

func (s *Series) Bools() ([]bool, error) { return typedData[bool](s, Boolean) }

func (s *Series) Strings() ([]string, error) { return typedData[string](s, String) }

// Renamed returns a series with the same data under a new name.
func (s *Series) Renamed(name string) *Series {
	return &Series{name: name, typ: s.typ, data: s.data, length: s.length}
}

func gatherSlice[T any](values []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

// gather returns a series with the rows at the given indices, in order.
func (s *Series) gather(indices []int) *Series {
	var data interface{}
	switch s.typ {
	case Int8:
		data = gatherSlice(s.data.([]int8), indices)
	case Int16:
		data = gatherSlice(s.data.([]int16), indices)
	case Int32:
		data = gatherSlice(s.data.([]int32), indices)
	case Int64:
		data = gatherSlice(s.data.([]int64), indices)
	case UInt8:
		data = gatherSlice(s.data.([]uint8), indices)
	case UInt16:
		data = gatherSlice(s.data.([]uint16), indices)
	case UInt32:
		data = gatherSlice(s.data.([]uint32), indices)
	case UInt64:
		data = gatherSlice(s.data.([]uint64), indices)
	case Float32:
		data = gatherSlice(s.data.([]float32), indices)
	case Float64:
		data = gatherSlice(s.data.([]float64), indices)
	case Boolean:
		data = gatherSlice(s.data.([]bool), indices)
	case String:
		data = gatherSlice(s.data.([]string), indices)
	default:
		panic("invalid series type")
	}
	return &Series{name: s.name, typ: s.typ, data: data, length: len(indices)}
}

// sliceRows returns the rows in [from, to). Bounds must be valid.
func (s *Series) sliceRows(from, to int) *Series {
	var data interface{}
	switch s.typ {
	case Int8:
		data = s.data.([]int8)[from:to]
	case Int16:
		data = s.data.([]int16)[from:to]
	case Int32:
		data = s.data.([]int32)[from:to]
	case Int64:
		data = s.data.([]int64)[from:to]
	case UInt8:
		data = s.data.([]uint8)[from:to]
	case UInt16:
		data = s.data.([]uint16)[from:to]
	case UInt32:
		data = s.data.([]uint32)[from:to]
	case UInt64:
		data = s.data.([]uint64)[from:to]
	case Float32:
		data = s.data.([]float32)[from:to]
	case Float64:
		data = s.data.([]float64)[from:to]
	case Boolean:
		data = s.data.([]bool)[from:to]
	case String:
		data = s.data.([]string)[from:to]
	default:
		panic("invalid series type")
	}
	return &Series{name: s.name, typ: s.typ, data: data, length: to - from}
}

// less compares rows i and j. Only valid for ordered types; Sort checks
// IsOrdered before ever calling this.
func (s *Series) less(i, j int) bool {
	switch s.typ {
	case Int8:
		v := s.data.([]int8)
		return v[i] < v[j]
	case Int16:
		v := s.data.([]int16)
		return v[i] < v[j]
	case Int32:
		v := s.data.([]int32)
		return v[i] < v[j]
	case Int64:
		v := s.data.([]int64)
		return v[i] < v[j]
	case UInt8:
		v := s.data.([]uint8)
		return v[i] < v[j]
	case UInt16:
		v := s.data.([]uint16)
		return v[i] < v[j]
	case UInt32:
		v := s.data.([]uint32)
		return v[i] < v[j]
	case UInt64:
		v := s.data.([]uint64)
		return v[i] < v[j]
	case Float32:
		v := s.data.([]float32)
		return v[i] < v[j]
	case Float64:
		v := s.data.([]float64)
		return v[i] < v[j]
	case String:
		v := s.data.([]string)
		return v[i] < v[j]
	}
	panic("less on unordered series")
}

// valueString formats the i-th element for text output (CSV, table display).
func (s *Series) valueString(i int) string {
	switch s.typ {
	case Int8:
		return strconv.FormatInt(int64(s.data.([]int8)[i]), 10)
	case Int16:
		return strconv.FormatInt(int64(s.data.([]int16)[i]), 10)
	case Int32:
		return strconv.FormatInt(int64(s.data.([]int32)[i]), 10)
	case Int64:
		return strconv.FormatInt(s.data.([]int64)[i], 10)
	case UInt8:
		return strconv.FormatUint(uint64(s.data.([]uint8)[i]), 10)
	case UInt16:
		return strconv.FormatUint(uint64(s.data.([]uint16)[i]), 10)
	case UInt32:
		return strconv.FormatUint(uint64(s.data.([]uint32)[i]), 10)
	case UInt64:
		return strconv.FormatUint(s.data.([]uint64)[i], 10)
	case Float32:
		return strconv.FormatFloat(float64(s.data.([]float32)[i]), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(s.data.([]float64)[i], 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(s.data.([]bool)[i])
	case String:
		return s.data.([]string)[i]
	}
	panic("invalid series type")
}
