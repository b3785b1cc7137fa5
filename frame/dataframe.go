package frame

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// ColumnNotFoundError is returned by lookups for a column name the table
// doesn't have.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// DataFrame is an ordered collection of equal-length columns. It is immutable:
// every operation returns a new frame, sharing column storage with the old one.
type DataFrame struct {
	columns []*Series
	byName  map[string]int
}

// NewDataFrame assembles columns into a frame. Column names must be unique and
// all columns must have the same length.
func NewDataFrame(columns ...*Series) (*DataFrame, error) {
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := byName[col.Name()]; ok {
			return nil, errors.Errorf("duplicate column name %q", col.Name())
		}
		byName[col.Name()] = i
		if col.Len() != columns[0].Len() {
			return nil, errors.Errorf("column %q has %d rows, expected %d", col.Name(), col.Len(), columns[0].Len())
		}
	}
	return &DataFrame{columns: columns, byName: byName}, nil
}

// Fields lists the actual (name, runtime type) pairs of the frame's columns,
// in column order.
func (df *DataFrame) Fields() []Field {
	fields := make([]Field, len(df.columns))
	for i, col := range df.columns {
		fields[i] = Field{Name: col.Name(), Type: col.Type()}
	}
	return fields
}

// Column looks a column up by name.
func (df *DataFrame) Column(name string) (*Series, error) {
	i, ok := df.byName[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	return df.columns[i], nil
}

func (df *DataFrame) Width() int { return len(df.columns) }

func (df *DataFrame) Height() int {
	if len(df.columns) == 0 {
		return 0
	}
	return df.columns[0].Len()
}

func (df *DataFrame) IsEmpty() bool { return df.Height() == 0 }

// Slice returns the rows in [offset, offset+length), clamped to the frame's
// bounds.
func (df *DataFrame) Slice(offset, length int) *DataFrame {
	height := df.Height()
	if offset < 0 {
		offset = 0
	}
	if offset > height {
		offset = height
	}
	end := offset + length
	if length < 0 || end > height {
		end = height
	}
	columns := make([]*Series, len(df.columns))
	for i, col := range df.columns {
		columns[i] = col.sliceRows(offset, end)
	}
	return &DataFrame{columns: columns, byName: df.byName}
}

// Head returns the first n rows (all rows when n exceeds the height).
func (df *DataFrame) Head(n int) *DataFrame {
	return df.Slice(0, n)
}

// Tail returns the last n rows.
func (df *DataFrame) Tail(n int) *DataFrame {
	if n > df.Height() {
		n = df.Height()
	}
	return df.Slice(df.Height()-n, n)
}

// Sort returns the frame reordered by the named column. The sort is stable.
// Sorting by an unordered (bool) column is an error.
func (df *DataFrame) Sort(name string, descending bool) (*DataFrame, error) {
	i, ok := df.byName[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	key := df.columns[i]
	if !key.Type().IsOrdered() {
		return nil, errors.Errorf("cannot sort by column %q of type %s", name, key.Type())
	}
	order := make([]int, df.Height())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return key.less(order[b], order[a])
		}
		return key.less(order[a], order[b])
	})
	return df.gather(order), nil
}

// Filter returns the rows where mask is true. The mask must cover every row.
func (df *DataFrame) Filter(mask []bool) (*DataFrame, error) {
	if len(mask) != df.Height() {
		return nil, errors.Errorf("filter mask has %d entries, frame has %d rows", len(mask), df.Height())
	}
	indices := make([]int, 0, len(mask))
	for i, keep := range mask {
		if keep {
			indices = append(indices, i)
		}
	}
	return df.gather(indices), nil
}

func (df *DataFrame) gather(indices []int) *DataFrame {
	columns := make([]*Series, len(df.columns))
	for i, col := range df.columns {
		columns[i] = col.gather(indices)
	}
	return &DataFrame{columns: columns, byName: df.byName}
}

// Lazy starts a deferred query over this frame.
func (df *DataFrame) Lazy() *LazyFrame {
	return &LazyFrame{source: df}
}

// Show renders the frame as a text table.
func (df *DataFrame) Show(w io.Writer) {
	header := make([]string, len(df.columns))
	for i, col := range df.columns {
		header[i] = col.Name()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	for row := 0; row < df.Height(); row++ {
		out := make([]string, len(df.columns))
		for i, col := range df.columns {
			out[i] = col.valueString(row)
		}
		table.Append(out)
	}

	table.Render()
}

func (df *DataFrame) String() string {
	var sb strings.Builder
	df.Show(&sb)
	return sb.String()
}
