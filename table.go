package typeframe

import (
	"github.com/pkg/errors"

	"github.com/typeframe/typeframe/frame"
)

// Model binds a schema value to a type. Declare a zero-size marker per schema:
//
//	type Users struct{}
//	func (Users) Schema() typeframe.Schema { return UsersSchema }
//
// The marker is the phantom parameter of Table, Query and the readers; it has
// no runtime representation inside them.
type Model interface {
	Schema() Schema
}

func schemaOf[S Model]() Schema {
	var model S
	return model.Schema()
}

// Table wraps an engine frame together with a compile-time binding to the
// schema S. Obtained only from New or a typed reader, both of which run the
// one mandatory validation; every operation afterwards trusts the binding and
// never re-checks it.
type Table[S Model] struct {
	inner *frame.DataFrame
}

// New validates df against the schema of S and wraps it. For each declared
// field: a missing column fails with *MissingColumnError, a differing runtime
// type with *TypeMismatchError. Columns present in df but not declared are
// fine: a schema describes the required subset, not the exact column set.
// The frame's column data is shared, not copied.
func New[S Model](df *frame.DataFrame) (Table[S], error) {
	if df == nil {
		return Table[S]{}, errors.Errorf("nil frame")
	}
	actual := df.Fields()
	byName := make(map[string]frame.Type, len(actual))
	for _, field := range actual {
		byName[field.Name] = field.Type
	}
	for _, field := range schemaOf[S]().Fields() {
		typ, ok := byName[field.Name]
		if !ok {
			return Table[S]{}, &MissingColumnError{Column: field.Name}
		}
		if typ != field.Type {
			return Table[S]{}, &TypeMismatchError{Column: field.Name, Expected: field.Type, Actual: typ}
		}
	}
	return Table[S]{inner: df}, nil
}

// Inner releases the wrapped engine frame.
func (t Table[S]) Inner() *frame.DataFrame { return t.inner }

func (t Table[S]) Height() int { return t.inner.Height() }

func (t Table[S]) Width() int { return t.inner.Width() }

func (t Table[S]) IsEmpty() bool { return t.inner.IsEmpty() }

func (t Table[S]) String() string { return t.inner.String() }

// Head keeps the first n rows. Row selection can't break the schema, so the
// binding carries over without revalidation; the same holds for Tail, Slice
// and Filter.
func (t Table[S]) Head(n int) Table[S] {
	return Table[S]{inner: t.inner.Head(n)}
}

// Tail keeps the last n rows.
func (t Table[S]) Tail(n int) Table[S] {
	return Table[S]{inner: t.inner.Tail(n)}
}

// Slice keeps the rows in [offset, offset+length), clamped to the table.
func (t Table[S]) Slice(offset, length int) Table[S] {
	return Table[S]{inner: t.inner.Slice(offset, length)}
}

// Filter keeps the rows where mask is true. The engine rejects masks that
// don't cover every row.
func (t Table[S]) Filter(mask []bool) (Table[S], error) {
	df, err := t.inner.Filter(mask)
	if err != nil {
		return Table[S]{}, err
	}
	return Table[S]{inner: df}, nil
}

// Lazy starts a typed deferred query over the table.
func (t Table[S]) Lazy() Query[S] {
	return Query[S]{inner: t.inner.Lazy()}
}

// Sort reorders the table by a declared column. Orderability is a compile-time
// bound on T. A free function because Go methods cannot introduce the extra
// type parameter.
func Sort[S Model, T Ordered](t Table[S], column Column[T], descending bool) (Table[S], error) {
	df, err := t.inner.Sort(column.Name(), descending)
	if err != nil {
		return Table[S]{}, err
	}
	return Table[S]{inner: df}, nil
}

// SeriesOf looks a declared column up as a typed series. Construction already
// validated the schema, so this succeeds unless the wrapped frame was swapped
// out from under the table; in that case the engine's lookup error (or a
// *TypeMismatchError) comes back instead of a mistyped handle.
func SeriesOf[S Model, T Element](t Table[S], column Column[T]) (Series[T], error) {
	s, err := t.inner.Column(column.Name())
	if err != nil {
		return Series[T]{}, err
	}
	if s.Type() != TypeOf[T]() {
		return Series[T]{}, &TypeMismatchError{Column: column.Name(), Expected: TypeOf[T](), Actual: s.Type()}
	}
	return Series[T]{inner: s}, nil
}
