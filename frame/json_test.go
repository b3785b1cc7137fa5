package frame

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	df := testFrame(t)
	path := filepath.Join(t.TempDir(), "users.json")

	require.NoError(t, df.WriteJSONFile(path))

	out, err := ReadJSON(path, df.Fields())
	require.NoError(t, err)

	assert.Equal(t, df.Fields(), out.Fields())
	for _, field := range df.Fields() {
		want, err := df.Column(field.Name)
		require.NoError(t, err)
		got, err := out.Column(field.Name)
		require.NoError(t, err)
		assert.Equal(t, want.Data(), got.Data(), field.Name)
	}
}

func TestJSONReadWithHint(t *testing.T) {
	input := strings.Join([]string{
		`{"id": 1, "name": "alice", "score": 1.5}`,
		`{"id": 2, "name": "bob", "score": 2.5}`,
	}, "\n")

	df, err := readJSON(strings.NewReader(input), []Field{
		{Name: "id", Type: Int32},
		{Name: "score", Type: Float64},
	})
	require.NoError(t, err)

	// only hinted fields are materialized
	assert.Equal(t, 2, df.Width())
	id, err := df.Column("id")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, id.Data())
}

func TestJSONInference(t *testing.T) {
	input := strings.Join([]string{
		`{"id": 1, "score": 1.5, "active": true, "name": "alice"}`,
		`{"id": 2, "score": 2.5, "active": false, "name": "bob"}`,
	}, "\n")

	df, err := readJSON(strings.NewReader(input), nil)
	require.NoError(t, err)

	id, err := df.Column("id")
	require.NoError(t, err)
	assert.Equal(t, Int64, id.Type())
	score, err := df.Column("score")
	require.NoError(t, err)
	assert.Equal(t, Float64, score.Type())
	active, err := df.Column("active")
	require.NoError(t, err)
	assert.Equal(t, Boolean, active.Type())
	name, err := df.Column("name")
	require.NoError(t, err)
	assert.Equal(t, String, name.Type())
}

func TestJSONMissingField(t *testing.T) {
	input := `{"id": 1}`

	_, err := readJSON(strings.NewReader(input), []Field{
		{Name: "id", Type: Int64},
		{Name: "name", Type: String},
	})
	assert.Error(t, err)
}

func TestJSONWrongValueType(t *testing.T) {
	input := `{"id": "not-a-number"}`

	_, err := readJSON(strings.NewReader(input), []Field{{Name: "id", Type: Int64}})
	assert.Error(t, err)
}

func TestJSONOverflowAtDeclaredWidth(t *testing.T) {
	_, err := readJSON(strings.NewReader(`{"age": 300}`), []Field{{Name: "age", Type: Int8}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = readJSON(strings.NewReader(`{"count": 70000}`), []Field{{Name: "count", Type: UInt16}})
	assert.Error(t, err)

	// the widest values at the declared widths still parse
	df, err := readJSON(strings.NewReader(`{"age": 127, "count": 65535}`), []Field{
		{Name: "age", Type: Int8},
		{Name: "count", Type: UInt16},
	})
	require.NoError(t, err)
	age, err := df.Column("age")
	require.NoError(t, err)
	assert.Equal(t, []int8{127}, age.Data())
	count, err := df.Column("count")
	require.NoError(t, err)
	assert.Equal(t, []uint16{65535}, count.Data())
}

func TestJSONNotAnObject(t *testing.T) {
	_, err := readJSON(strings.NewReader(`[1, 2, 3]`), nil)
	assert.Error(t, err)
}
