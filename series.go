package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// Series wraps an engine column whose runtime element type is known to be T.
// The tag is established at construction (SeriesOf or FromSlice) and never
// re-checked.
type Series[T Element] struct {
	inner *frame.Series
}

// FromSlice builds a typed column from a Go slice.
func FromSlice[T Element](name string, values []T) Series[T] {
	s, err := frame.NewSeries(name, TypeOf[T](), values)
	if err != nil {
		// TypeOf guarantees the slice kind matches the tag.
		panic("typeframe: " + err.Error())
	}
	return Series[T]{inner: s}
}

func (s Series[T]) Name() string { return s.inner.Name() }

func (s Series[T]) Len() int { return s.inner.Len() }

func (s Series[T]) IsEmpty() bool { return s.inner.Len() == 0 }

// Inner releases the wrapped engine column.
func (s Series[T]) Inner() *frame.Series { return s.inner }

// Values returns the backing slice. Shared, not copied; treat as read-only.
func (s Series[T]) Values() []T {
	return s.inner.Data().([]T)
}

func (s Series[T]) Get(i int) T {
	return s.Values()[i]
}

// Sum adds all elements. Available for numeric T only.
func Sum[T Numeric](s Series[T]) T {
	var sum T
	for _, v := range s.Values() {
		sum += v
	}
	return sum
}

// Mean averages all elements as float64. Zero for an empty series.
func Mean[T Numeric](s Series[T]) float64 {
	values := s.Values()
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// Min returns the smallest element. false when the series is empty.
func Min[T Ordered](s Series[T]) (T, bool) {
	values := s.Values()
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out, true
}

// Max returns the largest element. false when the series is empty.
func Max[T Ordered](s Series[T]) (T, bool) {
	values := s.Values()
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out, true
}
