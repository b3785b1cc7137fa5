package typeframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeframe/typeframe/frame"
)

// The test schemas below are shared across the package's tests.

var usersBuilder = NewBuilder("users")

var (
	userID   = Field[int64](usersBuilder, "id")
	userName = Field[string](usersBuilder, "name")
	userAge  = Field[int32](usersBuilder, "age")
)

var usersSchema = usersBuilder.MustBuild()

type users struct{}

func (users) Schema() Schema { return usersSchema }

var payrollBuilder = NewBuilder("payroll")

var paySalary = Field[float64](payrollBuilder, "salary")

var payrollSchema = payrollBuilder.MustBuild()

type payroll struct{}

func (payroll) Schema() Schema { return payrollSchema }

func TestColumnTokens(t *testing.T) {
	assert.Equal(t, "id", userID.Name())
	assert.Equal(t, frame.Int64, userID.Type())
	assert.Equal(t, "age", userAge.Name())
	assert.Equal(t, frame.Int32, userAge.Type())
	assert.Equal(t, frame.String, userName.Type())
}

func TestSchemaFieldsInDeclarationOrder(t *testing.T) {
	assert.Equal(t, "users", usersSchema.Name())
	assert.Equal(t, []frame.Field{
		{Name: "id", Type: frame.Int64},
		{Name: "name", Type: frame.String},
		{Name: "age", Type: frame.Int32},
	}, usersSchema.Fields())
}

func TestSchemaLookup(t *testing.T) {
	field, ok := usersSchema.Lookup("age")
	require.True(t, ok)
	assert.Equal(t, frame.Int32, field.Type)

	_, ok = usersSchema.Lookup("salary")
	assert.False(t, ok)
}

func TestSchemaString(t *testing.T) {
	assert.Equal(t, "users(id int64, name string, age int32)", usersSchema.String())
}

func TestDuplicateFieldNameFailsRegistration(t *testing.T) {
	b := NewBuilder("broken")
	Field[int64](b, "id")
	Field[string](b, "id")

	_, err := b.Build()
	var duplicate *DuplicateFieldError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "id", duplicate.Name)
}

func TestMustBuildPanicsOnDuplicate(t *testing.T) {
	b := NewBuilder("broken")
	Field[int64](b, "id")
	Field[int32](b, "id")

	assert.Panics(t, func() { b.MustBuild() })
}

func TestFieldAfterBuildPanics(t *testing.T) {
	b := NewBuilder("late")
	Field[int64](b, "id")
	_, err := b.Build()
	require.NoError(t, err)

	assert.Panics(t, func() { Field[string](b, "name") })
}

func TestDuplicateAcrossTypesIsStillDuplicate(t *testing.T) {
	// same name under two element types is one name taken twice
	b := NewBuilder("broken")
	Field[float64](b, "value")
	Field[float32](b, "value")

	_, err := b.Build()
	assert.Error(t, err)
}
