package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// Query is a typed deferred query bound to the schema S. Schema-preserving
// steps keep the binding; projections that change the column set exit to the
// untyped engine explicitly through SelectUntyped.
type Query[S Model] struct {
	inner *frame.LazyFrame
}

// Inner releases the wrapped engine query.
func (q Query[S]) Inner() *frame.LazyFrame { return q.inner }

// Filter keeps the rows where pred is true. Row-reducing, schema unchanged.
func (q Query[S]) Filter(pred Expr[bool]) Query[S] {
	return Query[S]{inner: q.inner.Filter(pred.Inner())}
}

// Head keeps the first n rows.
func (q Query[S]) Head(n int) Query[S] {
	return Query[S]{inner: q.inner.Head(n)}
}

// Slice keeps the rows in [offset, offset+length).
func (q Query[S]) Slice(offset, length int) Query[S] {
	return Query[S]{inner: q.inner.Slice(offset, length)}
}

// SortBy orders the rows by a declared column.
func SortBy[S Model, T Ordered](q Query[S], column Column[T], descending bool) Query[S] {
	return Query[S]{inner: q.inner.Sort(column.Name(), descending)}
}

// SelectUntyped projects to an arbitrary expression list. The result no
// longer matches S, so the query leaves the typed layer; validate the
// collected frame against another schema with New to come back.
func (q Query[S]) SelectUntyped(exprs ...AnyExpr) *frame.LazyFrame {
	inner := make([]frame.Expr, len(exprs))
	for i, e := range exprs {
		inner[i] = e.Inner()
	}
	return q.inner.Select(inner...)
}

// Collect runs the pipeline and re-wraps the result. The result funnels
// through the same validating constructor as New, so the typed handle a
// collect hands out is checked at the boundary like every other one.
func (q Query[S]) Collect() (Table[S], error) {
	df, err := q.inner.Collect()
	if err != nil {
		return Table[S]{}, err
	}
	return New[S](df)
}
