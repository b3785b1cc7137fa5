package frame

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParquetRoundTrip(t *testing.T) {
	df, err := NewDataFrame(
		mustSeries(t, "id", Int64, []int64{1, 2, 3}),
		mustSeries(t, "small", Int8, []int8{-1, 0, 1}),
		mustSeries(t, "medium", Int16, []int16{-300, 0, 300}),
		mustSeries(t, "regular", Int32, []int32{-70000, 0, 70000}),
		mustSeries(t, "byte", UInt8, []uint8{0, 128, 255}),
		mustSeries(t, "word", UInt16, []uint16{0, 40000, 65535}),
		mustSeries(t, "dword", UInt32, []uint32{0, 3000000000, 4294967295}),
		mustSeries(t, "qword", UInt64, []uint64{0, 1, 18446744073709551615}),
		mustSeries(t, "ratio", Float32, []float32{-1.5, 0, 1.5}),
		mustSeries(t, "score", Float64, []float64{-2.25, 0, 2.25}),
		mustSeries(t, "active", Boolean, []bool{true, false, true}),
		mustSeries(t, "name", String, []string{"alice", "", "celine"}),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frame.parquet")
	require.NoError(t, df.WriteParquetFile(path))

	out, err := ReadParquet(path)
	require.NoError(t, err)

	require.Equal(t, df.Height(), out.Height())
	require.Equal(t, df.Width(), out.Width())
	// parquet orders columns alphabetically; compare by name
	for _, field := range df.Fields() {
		want, err := df.Column(field.Name)
		require.NoError(t, err)
		got, err := out.Column(field.Name)
		require.NoError(t, err)
		assert.Equal(t, field.Type, got.Type(), field.Name)
		assert.Equal(t, want.Data(), got.Data(), field.Name)
	}
}

func TestParquetEmptyFrame(t *testing.T) {
	df, err := NewDataFrame(
		mustSeries(t, "id", Int64, []int64{}),
		mustSeries(t, "name", String, []string{}),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, df.WriteParquetFile(path))

	out, err := ReadParquet(path)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Height())
	assert.Equal(t, 2, out.Width())
}

func TestReadParquetMissingFile(t *testing.T) {
	_, err := ReadParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.Error(t, err)
}
