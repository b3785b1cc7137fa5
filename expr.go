package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// Expr is a type-tagged reference into the engine's expression tree. The tag
// tracks what the engine will produce: combinators either preserve T or
// transition to the explicit result type (mean to float64, comparisons to
// bool). The engine's evaluator computes untyped; the tag is asserted by
// construction, and the next validating boundary (Query.Collect, New)
// reconciles it with reality.
type Expr[T Element] struct {
	inner frame.Expr
}

// AnyExpr is the type-erased view of Expr, for engine entry points that take
// a heterogeneous expression list.
type AnyExpr interface {
	Inner() frame.Expr
}

// Inner releases the wrapped engine expression.
func (e Expr[T]) Inner() frame.Expr { return e.inner }

// Alias renames the expression's result column.
func (e Expr[T]) Alias(name string) Expr[T] {
	return Expr[T]{inner: frame.NewAlias(name, e.inner)}
}

// Col references a declared column as an expression.
func Col[T Element](column Column[T]) Expr[T] {
	return Expr[T]{inner: frame.NewColumn(column.Name())}
}

// Lit embeds a constant.
func Lit[T Element](value T) Expr[T] {
	return Expr[T]{inner: frame.NewLiteral(value, TypeOf[T]())}
}

func Add[T Numeric](left, right Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewArithmetic(frame.OpAdd, left.inner, right.inner)}
}

func Sub[T Numeric](left, right Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewArithmetic(frame.OpSubtract, left.inner, right.inner)}
}

func Mul[T Numeric](left, right Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewArithmetic(frame.OpMultiply, left.inner, right.inner)}
}

func Div[T Numeric](left, right Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewArithmetic(frame.OpDivide, left.inner, right.inner)}
}

// SumExpr aggregates to a single row, preserving T.
func SumExpr[T Numeric](e Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewAggregate(frame.AggSum, e.inner)}
}

// MeanExpr aggregates to a single float64 row; the engine's mean always
// widens, so the tag transitions with it.
func MeanExpr[T Numeric](e Expr[T]) Expr[float64] {
	return Expr[float64]{inner: frame.NewAggregate(frame.AggMean, e.inner)}
}

func MinExpr[T Ordered](e Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewAggregate(frame.AggMin, e.inner)}
}

func MaxExpr[T Ordered](e Expr[T]) Expr[T] {
	return Expr[T]{inner: frame.NewAggregate(frame.AggMax, e.inner)}
}

// CountExpr counts rows into a single int64 row.
func CountExpr[T Element](e Expr[T]) Expr[int64] {
	return Expr[int64]{inner: frame.NewAggregate(frame.AggCount, e.inner)}
}

// Eq compares for equality; defined for every element type.
func Eq[T Element](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpEqual, left.inner, right.inner)}
}

func Neq[T Element](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpNotEqual, left.inner, right.inner)}
}

func Lt[T Ordered](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpLess, left.inner, right.inner)}
}

func Lte[T Ordered](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpLessEqual, left.inner, right.inner)}
}

func Gt[T Ordered](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpGreater, left.inner, right.inner)}
}

func Gte[T Ordered](left, right Expr[T]) Expr[bool] {
	return Expr[bool]{inner: frame.NewComparison(frame.CmpGreaterEqual, left.inner, right.inner)}
}

func And(left, right Expr[bool]) Expr[bool] {
	return Expr[bool]{inner: frame.NewAnd(left.inner, right.inner)}
}

func Or(left, right Expr[bool]) Expr[bool] {
	return Expr[bool]{inner: frame.NewOr(left.inner, right.inner)}
}

func Not(e Expr[bool]) Expr[bool] {
	return Expr[bool]{inner: frame.NewNot(e.inner)}
}
