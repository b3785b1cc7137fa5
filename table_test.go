package typeframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeframe/typeframe/frame"
)

func mustSeries(t *testing.T, name string, typ frame.Type, data interface{}) *frame.Series {
	t.Helper()
	s, err := frame.NewSeries(name, typ, data)
	require.NoError(t, err)
	return s
}

// usersFrame has an undeclared bonus column on top of the users schema.
func usersFrame(t *testing.T) *frame.DataFrame {
	t.Helper()
	df, err := frame.NewDataFrame(
		mustSeries(t, "id", frame.Int64, []int64{1, 2, 3, 4}),
		mustSeries(t, "name", frame.String, []string{"alice", "bob", "celine", "dan"}),
		mustSeries(t, "age", frame.Int32, []int32{34, 27, 19, 27}),
		mustSeries(t, "bonus", frame.Float64, []float64{100, 0, 50, 25}),
	)
	require.NoError(t, err)
	return df
}

func TestNewAcceptsSupersetOfSchema(t *testing.T) {
	table, err := New[users](usersFrame(t))
	require.NoError(t, err)
	assert.Equal(t, 4, table.Height())
	assert.Equal(t, 4, table.Width())
}

func TestNewMissingColumn(t *testing.T) {
	df, err := frame.NewDataFrame(
		mustSeries(t, "id", frame.Int64, []int64{1}),
		mustSeries(t, "age", frame.Int32, []int32{34}),
	)
	require.NoError(t, err)

	_, err = New[users](df)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Column)
}

func TestNewTypeMismatch(t *testing.T) {
	// age stored as int64 instead of the declared int32
	df, err := frame.NewDataFrame(
		mustSeries(t, "id", frame.Int64, []int64{1}),
		mustSeries(t, "name", frame.String, []string{"alice"}),
		mustSeries(t, "age", frame.Int64, []int64{34}),
		mustSeries(t, "bonus", frame.Float64, []float64{100}),
	)
	require.NoError(t, err)

	_, err = New[users](df)
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "age", mismatch.Column)
	assert.Equal(t, frame.Int32, mismatch.Expected)
	assert.Equal(t, frame.Int64, mismatch.Actual)
}

func TestSeriesOfReturnsDeclaredType(t *testing.T) {
	table, err := New[users](usersFrame(t))
	require.NoError(t, err)

	age, err := SeriesOf(table, userAge)
	require.NoError(t, err)
	assert.Equal(t, frame.Int32, age.Inner().Type())
	assert.Equal(t, []int32{34, 27, 19, 27}, age.Values())
	assert.Equal(t, int32(19), age.Get(2))
}

func TestSeriesOfSingleRequiredColumn(t *testing.T) {
	df, err := frame.NewDataFrame(
		mustSeries(t, "salary", frame.Float64, []float64{4200.5, 3100}),
		mustSeries(t, "id", frame.Int64, []int64{1, 2}),
	)
	require.NoError(t, err)

	table, err := New[payroll](df)
	require.NoError(t, err)

	salary, err := SeriesOf(table, paySalary)
	require.NoError(t, err)
	assert.Equal(t, frame.Float64, salary.Inner().Type())
	assert.Equal(t, []float64{4200.5, 3100}, salary.Values())
}

func TestHeadTailRowCounts(t *testing.T) {
	table, err := New[users](usersFrame(t))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Head(2).Height())
	assert.Equal(t, 2, table.Tail(2).Height())

	// n at or above the row count is idempotent
	assert.Equal(t, 4, table.Head(10).Tail(10).Height())
	assert.Equal(t, 1, table.Slice(3, 5).Height())
}

func TestSortByDeclaredColumn(t *testing.T) {
	table, err := New[users](usersFrame(t))
	require.NoError(t, err)

	sorted, err := Sort(table, userAge, false)
	require.NoError(t, err)

	age, err := SeriesOf(sorted, userAge)
	require.NoError(t, err)
	assert.Equal(t, []int32{19, 27, 27, 34}, age.Values())

	id, err := SeriesOf(sorted, userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 4, 1}, id.Values())
}

func TestFilterKeepsBinding(t *testing.T) {
	table, err := New[users](usersFrame(t))
	require.NoError(t, err)

	filtered, err := table.Filter([]bool{true, false, false, true})
	require.NoError(t, err)

	name, err := SeriesOf(filtered, userName)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "dan"}, name.Values())

	_, err = table.Filter([]bool{true})
	assert.Error(t, err)
}

func TestInnerReleasesWrappedFrame(t *testing.T) {
	df := usersFrame(t)
	table, err := New[users](df)
	require.NoError(t, err)
	assert.Same(t, df, table.Inner())
}

func TestNewNilFrame(t *testing.T) {
	_, err := New[users](nil)
	assert.Error(t, err)
}
