package frame

import (
	"github.com/pkg/errors"
)

// LazyFrame is a deferred query: a source frame plus a pipeline of operations
// applied in order at Collect. Builders are immutable; each call returns a new
// LazyFrame sharing the prefix.
type LazyFrame struct {
	source *DataFrame
	ops    []operation
}

type operation interface {
	apply(df *DataFrame) (*DataFrame, error)
}

func (lf *LazyFrame) with(op operation) *LazyFrame {
	ops := make([]operation, len(lf.ops), len(lf.ops)+1)
	copy(ops, lf.ops)
	return &LazyFrame{source: lf.source, ops: append(ops, op)}
}

// Filter keeps the rows where pred evaluates to true. pred must produce a bool
// column covering every row.
func (lf *LazyFrame) Filter(pred Expr) *LazyFrame {
	return lf.with(&filterOp{pred: pred})
}

// Select replaces the columns with the evaluated expressions. Aggregations mix
// with full-length columns only if everything collapses to the same length.
func (lf *LazyFrame) Select(exprs ...Expr) *LazyFrame {
	return lf.with(&selectOp{exprs: exprs})
}

// Sort orders the rows by the named column.
func (lf *LazyFrame) Sort(name string, descending bool) *LazyFrame {
	return lf.with(&sortOp{name: name, descending: descending})
}

// Head keeps the first n rows.
func (lf *LazyFrame) Head(n int) *LazyFrame {
	return lf.with(&sliceOp{offset: 0, length: n})
}

// Slice keeps the rows in [offset, offset+length).
func (lf *LazyFrame) Slice(offset, length int) *LazyFrame {
	return lf.with(&sliceOp{offset: offset, length: length})
}

// Collect runs the pipeline and materializes the result.
func (lf *LazyFrame) Collect() (*DataFrame, error) {
	df := lf.source
	var err error
	for _, op := range lf.ops {
		df, err = op.apply(df)
		if err != nil {
			return nil, err
		}
	}
	return df, nil
}

type filterOp struct {
	pred Expr
}

func (op *filterOp) apply(df *DataFrame) (*DataFrame, error) {
	s, err := op.pred.Evaluate(df)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't evaluate filter predicate")
	}
	mask, err := s.Bools()
	if err != nil {
		return nil, errors.Wrap(err, "filter predicate must produce a bool column")
	}
	return df.Filter(mask)
}

type selectOp struct {
	exprs []Expr
}

func (op *selectOp) apply(df *DataFrame) (*DataFrame, error) {
	if len(op.exprs) == 0 {
		return nil, errors.Errorf("select requires at least one expression")
	}
	columns := make([]*Series, len(op.exprs))
	for i, expr := range op.exprs {
		s, err := expr.Evaluate(df)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't evaluate selected expression %d", i)
		}
		columns[i] = s
	}
	return NewDataFrame(columns...)
}

type sortOp struct {
	name       string
	descending bool
}

func (op *sortOp) apply(df *DataFrame) (*DataFrame, error) {
	return df.Sort(op.name, op.descending)
}

type sliceOp struct {
	offset, length int
}

func (op *sliceOp) apply(df *DataFrame) (*DataFrame, error) {
	return df.Slice(op.offset, op.length), nil
}
