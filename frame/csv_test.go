package frame

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	df := testFrame(t)
	path := filepath.Join(t.TempDir(), "users.csv")

	require.NoError(t, df.WriteCSVFile(path, DefaultCSVOptions()))

	out, err := ReadCSV(path, CSVOptions{
		HasHeader: true,
		Fields:    df.Fields(),
	})
	require.NoError(t, err)

	assert.Equal(t, df.Fields(), out.Fields())
	assert.Equal(t, df.Height(), out.Height())
	for _, field := range df.Fields() {
		want, err := df.Column(field.Name)
		require.NoError(t, err)
		got, err := out.Column(field.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Data(), got.Data(), field.Name)
	}
}

func TestCSVTypeInference(t *testing.T) {
	input := strings.Join([]string{
		"id,score,active,label",
		"1,1.5,true,foo",
		"2,2,false,bar",
		"3,2.5,true,7up",
	}, "\n")

	df, err := readCSV(strings.NewReader(input), CSVOptions{HasHeader: true})
	require.NoError(t, err)

	assert.Equal(t, []Field{
		{Name: "id", Type: Int64},
		{Name: "score", Type: Float64},
		{Name: "active", Type: Boolean},
		{Name: "label", Type: String},
	}, df.Fields())

	score, err := df.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 2.5}, score.Data())
}

func TestCSVSchemaHintOverridesInference(t *testing.T) {
	input := "age\n1\n2\n3\n"

	df, err := readCSV(strings.NewReader(input), CSVOptions{
		HasHeader: true,
		Fields:    []Field{{Name: "age", Type: Int32}},
	})
	require.NoError(t, err)

	age, err := df.Column("age")
	require.NoError(t, err)
	assert.Equal(t, Int32, age.Type())
	assert.Equal(t, []int32{1, 2, 3}, age.Data())
}

func TestCSVHintParseFailure(t *testing.T) {
	input := "age\n1\nnot-a-number\n"

	_, err := readCSV(strings.NewReader(input), CSVOptions{
		HasHeader: true,
		Fields:    []Field{{Name: "age", Type: Int32}},
	})
	assert.Error(t, err)
}

func TestCSVOverflowAtDeclaredWidth(t *testing.T) {
	input := "age\n300\n"

	_, err := readCSV(strings.NewReader(input), CSVOptions{
		HasHeader: true,
		Fields:    []Field{{Name: "age", Type: Int8}},
	})
	assert.Error(t, err)
}

func TestCSVWithoutHeader(t *testing.T) {
	input := "1,alice\n2,bob\n"

	df, err := readCSV(strings.NewReader(input), CSVOptions{
		HasHeader: false,
		Fields: []Field{
			{Name: "id", Type: Int64},
			{Name: "name", Type: String},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []Field{
		{Name: "id", Type: Int64},
		{Name: "name", Type: String},
	}, df.Fields())
	assert.Equal(t, 2, df.Height())
}

func TestCSVCustomSeparator(t *testing.T) {
	input := "id;name\n1;alice\n"

	df, err := readCSV(strings.NewReader(input), CSVOptions{
		HasHeader: true,
		Comma:     ';',
		Fields:    []Field{{Name: "id", Type: Int64}},
	})
	require.NoError(t, err)

	name, err := df.Column("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, name.Data())
}
