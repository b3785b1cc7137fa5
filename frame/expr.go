package frame

import (
	"github.com/pkg/errors"
)

// Expr is a node of the deferred expression tree. Evaluate produces a column
// against a concrete frame; aggregations produce a single-row column.
type Expr interface {
	Evaluate(df *DataFrame) (*Series, error)
	// Name is the column name the expression's result carries.
	Name() string
}

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

type CompareOp int

const (
	CmpEqual CompareOp = iota
	CmpNotEqual
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
)

type AggregateKind int

const (
	AggSum AggregateKind = iota
	AggMean
	AggMin
	AggMax
	AggCount
)

func (k AggregateKind) String() string {
	switch k {
	case AggSum:
		return "sum"
	case AggMean:
		return "mean"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	case AggCount:
		return "count"
	}
	return "?"
}

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

type orderable interface {
	number | ~string
}

// ColumnExpr references a source column by name.
type ColumnExpr struct {
	name string
}

func NewColumn(name string) *ColumnExpr {
	return &ColumnExpr{name: name}
}

func (e *ColumnExpr) Name() string { return e.name }

func (e *ColumnExpr) Evaluate(df *DataFrame) (*Series, error) {
	return df.Column(e.name)
}

// LiteralExpr is a constant. It evaluates to a single-row column and
// broadcasts inside binary operations.
type LiteralExpr struct {
	value interface{}
	typ   Type
}

// NewLiteral builds a constant of the given element type. value must be the
// matching Go scalar.
func NewLiteral(value interface{}, typ Type) *LiteralExpr {
	return &LiteralExpr{value: value, typ: typ}
}

func (e *LiteralExpr) Name() string { return "literal" }

func (e *LiteralExpr) Evaluate(df *DataFrame) (*Series, error) {
	data, ok := singletonSlice(e.typ, e.value)
	if !ok {
		return nil, errors.Errorf("literal %v doesn't match element type %s", e.value, e.typ)
	}
	return NewSeries(e.Name(), e.typ, data)
}

func singletonSlice(typ Type, value interface{}) (interface{}, bool) {
	switch typ {
	case Int8:
		v, ok := value.(int8)
		return []int8{v}, ok
	case Int16:
		v, ok := value.(int16)
		return []int16{v}, ok
	case Int32:
		v, ok := value.(int32)
		return []int32{v}, ok
	case Int64:
		v, ok := value.(int64)
		return []int64{v}, ok
	case UInt8:
		v, ok := value.(uint8)
		return []uint8{v}, ok
	case UInt16:
		v, ok := value.(uint16)
		return []uint16{v}, ok
	case UInt32:
		v, ok := value.(uint32)
		return []uint32{v}, ok
	case UInt64:
		v, ok := value.(uint64)
		return []uint64{v}, ok
	case Float32:
		v, ok := value.(float32)
		return []float32{v}, ok
	case Float64:
		v, ok := value.(float64)
		return []float64{v}, ok
	case Boolean:
		v, ok := value.(bool)
		return []bool{v}, ok
	case String:
		v, ok := value.(string)
		return []string{v}, ok
	}
	return nil, false
}

// ArithmeticExpr applies + - * / elementwise. Both operands must share one
// numeric element type; single-row operands broadcast.
type ArithmeticExpr struct {
	op          BinaryOp
	left, right Expr
}

func NewArithmetic(op BinaryOp, left, right Expr) *ArithmeticExpr {
	return &ArithmeticExpr{op: op, left: left, right: right}
}

func (e *ArithmeticExpr) Name() string { return e.left.Name() }

func (e *ArithmeticExpr) Evaluate(df *DataFrame) (*Series, error) {
	l, r, err := evaluatePair(df, e.left, e.right)
	if err != nil {
		return nil, err
	}
	if !l.Type().IsNumeric() {
		return nil, errors.Errorf("arithmetic requires a numeric column, got %s", l.Type())
	}
	return arithSeries(e.op, e.Name(), l, r)
}

func evaluatePair(df *DataFrame, left, right Expr) (*Series, *Series, error) {
	l, err := left.Evaluate(df)
	if err != nil {
		return nil, nil, errors.Wrap(err, "couldn't evaluate left operand")
	}
	r, err := right.Evaluate(df)
	if err != nil {
		return nil, nil, errors.Wrap(err, "couldn't evaluate right operand")
	}
	if l.Type() != r.Type() {
		return nil, nil, errors.Errorf("operand types don't match: %s vs %s", l.Type(), r.Type())
	}
	l, r, err = broadcast(l, r)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func broadcast(l, r *Series) (*Series, *Series, error) {
	switch {
	case l.Len() == r.Len():
		return l, r, nil
	case l.Len() == 1:
		return l.gather(repeatIndex(r.Len())), r, nil
	case r.Len() == 1:
		return l, r.gather(repeatIndex(l.Len())), nil
	}
	return nil, nil, errors.Errorf("operand lengths don't match: %d vs %d", l.Len(), r.Len())
}

func repeatIndex(n int) []int {
	return make([]int, n)
}

func arithSeries(op BinaryOp, name string, l, r *Series) (*Series, error) {
	switch l.Type() {
	case Int8:
		return arithTyped(op, name, Int8, false, l.data.([]int8), r.data.([]int8))
	case Int16:
		return arithTyped(op, name, Int16, false, l.data.([]int16), r.data.([]int16))
	case Int32:
		return arithTyped(op, name, Int32, false, l.data.([]int32), r.data.([]int32))
	case Int64:
		return arithTyped(op, name, Int64, false, l.data.([]int64), r.data.([]int64))
	case UInt8:
		return arithTyped(op, name, UInt8, false, l.data.([]uint8), r.data.([]uint8))
	case UInt16:
		return arithTyped(op, name, UInt16, false, l.data.([]uint16), r.data.([]uint16))
	case UInt32:
		return arithTyped(op, name, UInt32, false, l.data.([]uint32), r.data.([]uint32))
	case UInt64:
		return arithTyped(op, name, UInt64, false, l.data.([]uint64), r.data.([]uint64))
	case Float32:
		return arithTyped(op, name, Float32, true, l.data.([]float32), r.data.([]float32))
	case Float64:
		return arithTyped(op, name, Float64, true, l.data.([]float64), r.data.([]float64))
	}
	return nil, errors.Errorf("arithmetic requires a numeric column, got %s", l.Type())
}

func arithTyped[T number](op BinaryOp, name string, typ Type, float bool, a, b []T) (*Series, error) {
	out := make([]T, len(a))
	switch op {
	case OpAdd:
		for i := range a {
			out[i] = a[i] + b[i]
		}
	case OpSubtract:
		for i := range a {
			out[i] = a[i] - b[i]
		}
	case OpMultiply:
		for i := range a {
			out[i] = a[i] * b[i]
		}
	case OpDivide:
		var zero T
		for i := range a {
			if !float && b[i] == zero {
				return nil, errors.Errorf("integer division by zero at row %d", i)
			}
			out[i] = a[i] / b[i]
		}
	}
	return &Series{name: name, typ: typ, data: out, length: len(out)}, nil
}

// ComparisonExpr compares two operands of one element type into a bool column.
type ComparisonExpr struct {
	op          CompareOp
	left, right Expr
}

func NewComparison(op CompareOp, left, right Expr) *ComparisonExpr {
	return &ComparisonExpr{op: op, left: left, right: right}
}

func (e *ComparisonExpr) Name() string { return e.left.Name() }

func (e *ComparisonExpr) Evaluate(df *DataFrame) (*Series, error) {
	l, r, err := evaluatePair(df, e.left, e.right)
	if err != nil {
		return nil, err
	}
	if l.Type() == Boolean {
		if e.op != CmpEqual && e.op != CmpNotEqual {
			return nil, errors.Errorf("bool columns support only equality comparison")
		}
		out := equalTyped(e.op == CmpNotEqual, l.data.([]bool), r.data.([]bool))
		return &Series{name: e.Name(), typ: Boolean, data: out, length: len(out)}, nil
	}
	return compareSeries(e.op, e.Name(), l, r)
}

func compareSeries(op CompareOp, name string, l, r *Series) (*Series, error) {
	var out []bool
	switch l.Type() {
	case Int8:
		out = compareTyped(op, l.data.([]int8), r.data.([]int8))
	case Int16:
		out = compareTyped(op, l.data.([]int16), r.data.([]int16))
	case Int32:
		out = compareTyped(op, l.data.([]int32), r.data.([]int32))
	case Int64:
		out = compareTyped(op, l.data.([]int64), r.data.([]int64))
	case UInt8:
		out = compareTyped(op, l.data.([]uint8), r.data.([]uint8))
	case UInt16:
		out = compareTyped(op, l.data.([]uint16), r.data.([]uint16))
	case UInt32:
		out = compareTyped(op, l.data.([]uint32), r.data.([]uint32))
	case UInt64:
		out = compareTyped(op, l.data.([]uint64), r.data.([]uint64))
	case Float32:
		out = compareTyped(op, l.data.([]float32), r.data.([]float32))
	case Float64:
		out = compareTyped(op, l.data.([]float64), r.data.([]float64))
	case String:
		out = compareTyped(op, l.data.([]string), r.data.([]string))
	default:
		return nil, errors.Errorf("cannot compare columns of type %s", l.Type())
	}
	return &Series{name: name, typ: Boolean, data: out, length: len(out)}, nil
}

func compareTyped[T orderable](op CompareOp, a, b []T) []bool {
	out := make([]bool, len(a))
	for i := range a {
		switch op {
		case CmpEqual:
			out[i] = a[i] == b[i]
		case CmpNotEqual:
			out[i] = a[i] != b[i]
		case CmpLess:
			out[i] = a[i] < b[i]
		case CmpLessEqual:
			out[i] = a[i] <= b[i]
		case CmpGreater:
			out[i] = a[i] > b[i]
		case CmpGreaterEqual:
			out[i] = a[i] >= b[i]
		}
	}
	return out
}

func equalTyped[T comparable](negate bool, a, b []T) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = (a[i] == b[i]) != negate
	}
	return out
}

// LogicExpr combines bool columns with and/or.
type LogicExpr struct {
	or          bool
	left, right Expr
}

func NewAnd(left, right Expr) *LogicExpr {
	return &LogicExpr{left: left, right: right}
}

func NewOr(left, right Expr) *LogicExpr {
	return &LogicExpr{or: true, left: left, right: right}
}

func (e *LogicExpr) Name() string { return e.left.Name() }

func (e *LogicExpr) Evaluate(df *DataFrame) (*Series, error) {
	l, r, err := evaluatePair(df, e.left, e.right)
	if err != nil {
		return nil, err
	}
	if l.Type() != Boolean {
		return nil, errors.Errorf("logic operators require bool columns, got %s", l.Type())
	}
	a := l.data.([]bool)
	b := r.data.([]bool)
	out := make([]bool, len(a))
	for i := range a {
		if e.or {
			out[i] = a[i] || b[i]
		} else {
			out[i] = a[i] && b[i]
		}
	}
	return &Series{name: e.Name(), typ: Boolean, data: out, length: len(out)}, nil
}

type NotExpr struct {
	arg Expr
}

func NewNot(arg Expr) *NotExpr {
	return &NotExpr{arg: arg}
}

func (e *NotExpr) Name() string { return e.arg.Name() }

func (e *NotExpr) Evaluate(df *DataFrame) (*Series, error) {
	s, err := e.arg.Evaluate(df)
	if err != nil {
		return nil, err
	}
	if s.Type() != Boolean {
		return nil, errors.Errorf("not requires a bool column, got %s", s.Type())
	}
	in := s.data.([]bool)
	out := make([]bool, len(in))
	for i := range in {
		out[i] = !in[i]
	}
	return &Series{name: e.Name(), typ: Boolean, data: out, length: len(out)}, nil
}

// AggregateExpr collapses its argument into a single-row column. Sum, min and
// max preserve the input type, mean yields float64, count yields int64.
type AggregateExpr struct {
	kind AggregateKind
	arg  Expr
}

func NewAggregate(kind AggregateKind, arg Expr) *AggregateExpr {
	return &AggregateExpr{kind: kind, arg: arg}
}

func (e *AggregateExpr) Name() string { return e.arg.Name() }

func (e *AggregateExpr) Evaluate(df *DataFrame) (*Series, error) {
	s, err := e.arg.Evaluate(df)
	if err != nil {
		return nil, err
	}
	return aggregateSeries(e.kind, e.Name(), s)
}

func aggregateSeries(kind AggregateKind, name string, s *Series) (*Series, error) {
	if kind == AggCount {
		return &Series{name: name, typ: Int64, data: []int64{int64(s.Len())}, length: 1}, nil
	}
	if (kind == AggSum || kind == AggMean) && !s.Type().IsNumeric() {
		return nil, errors.Errorf("%s requires a numeric column, got %s", kind, s.Type())
	}
	if (kind == AggMin || kind == AggMax) && !s.Type().IsOrdered() {
		return nil, errors.Errorf("%s requires an ordered column, got %s", kind, s.Type())
	}
	switch s.Type() {
	case Int8:
		return aggregateTyped(kind, name, Int8, s.data.([]int8))
	case Int16:
		return aggregateTyped(kind, name, Int16, s.data.([]int16))
	case Int32:
		return aggregateTyped(kind, name, Int32, s.data.([]int32))
	case Int64:
		return aggregateTyped(kind, name, Int64, s.data.([]int64))
	case UInt8:
		return aggregateTyped(kind, name, UInt8, s.data.([]uint8))
	case UInt16:
		return aggregateTyped(kind, name, UInt16, s.data.([]uint16))
	case UInt32:
		return aggregateTyped(kind, name, UInt32, s.data.([]uint32))
	case UInt64:
		return aggregateTyped(kind, name, UInt64, s.data.([]uint64))
	case Float32:
		return aggregateTyped(kind, name, Float32, s.data.([]float32))
	case Float64:
		return aggregateTyped(kind, name, Float64, s.data.([]float64))
	case String:
		// only min/max reach here
		return minMaxTyped(kind, name, String, s.data.([]string))
	}
	return nil, errors.Errorf("cannot aggregate column of type %s", s.Type())
}

func aggregateTyped[T number](kind AggregateKind, name string, typ Type, v []T) (*Series, error) {
	switch kind {
	case AggSum:
		var sum T
		for _, x := range v {
			sum += x
		}
		return &Series{name: name, typ: typ, data: []T{sum}, length: 1}, nil
	case AggMean:
		if len(v) == 0 {
			return nil, errors.Errorf("mean of empty column %q", name)
		}
		var sum float64
		for _, x := range v {
			sum += float64(x)
		}
		return &Series{name: name, typ: Float64, data: []float64{sum / float64(len(v))}, length: 1}, nil
	}
	return minMaxTyped(kind, name, typ, v)
}

func minMaxTyped[T orderable](kind AggregateKind, name string, typ Type, v []T) (*Series, error) {
	if len(v) == 0 {
		return nil, errors.Errorf("%s of empty column %q", kind, name)
	}
	out := v[0]
	for _, x := range v[1:] {
		if (kind == AggMin && x < out) || (kind == AggMax && x > out) {
			out = x
		}
	}
	return &Series{name: name, typ: typ, data: []T{out}, length: 1}, nil
}

// AliasExpr renames its argument's result.
type AliasExpr struct {
	name string
	arg  Expr
}

func NewAlias(name string, arg Expr) *AliasExpr {
	return &AliasExpr{name: name, arg: arg}
}

func (e *AliasExpr) Name() string { return e.name }

func (e *AliasExpr) Evaluate(df *DataFrame) (*Series, error) {
	s, err := e.arg.Evaluate(df)
	if err != nil {
		return nil, err
	}
	return s.Renamed(e.name), nil
}
